package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un proyecto.
const (
	ProjectStatusPlanned    = "planned"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusOnHold     = "on_hold"
)

// Project representa un proyecto asociado a un cliente.
type Project struct {
	ID          string
	UserID      string
	ClientID    string
	Name        string
	Description string
	Status      string
	Budget      decimal.Decimal
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
