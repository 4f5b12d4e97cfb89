package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
)

// TimeEntryRepository define el puerto de persistencia para TimeEntry.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *entity.TimeEntry) error
	GetByID(ctx context.Context, userID, id string) (*entity.TimeEntry, error)
	// GetRunning devuelve el temporizador activo del usuario, o nil si no
	// hay ninguno corriendo. A lo sumo existe uno.
	GetRunning(ctx context.Context, userID string) (*entity.TimeEntry, error)
	ListByUser(ctx context.Context, userID string, from, to time.Time, limit, offset int) ([]*entity.TimeEntry, error)
	ListByProject(ctx context.Context, userID, projectID string) ([]*entity.TimeEntry, error)
	Update(ctx context.Context, entry *entity.TimeEntry) error
	Delete(ctx context.Context, userID, id string) error
}
