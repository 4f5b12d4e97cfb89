package entity

import "time"

// Client representa un cliente del freelancer.
type Client struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Phone     string
	Company   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
