package entity

import "time"

// User representa la cuenta de un freelancer.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	BusinessName string // nombre comercial que aparece en las facturas
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
