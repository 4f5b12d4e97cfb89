package entity

import "time"

// TimeEntry representa un registro de tiempo sobre un proyecto.
// Mientras el temporizador corre EndTime es nil y Duration 0; al detenerlo
// se fija EndTime y Duration = EndTime - StartTime en segundos.
type TimeEntry struct {
	ID          string
	UserID      string
	ProjectID   string
	Description string
	Tag         string
	StartTime   time.Time
	EndTime     *time.Time
	Duration    int64 // segundos
	CreatedAt   time.Time
}

// Running indica si el temporizador sigue activo.
func (t *TimeEntry) Running() bool { return t.EndTime == nil }
