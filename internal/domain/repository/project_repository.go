package repository

import (
	"context"

	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, userID, id string) (*entity.Project, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Project, error)
	ListByClient(ctx context.Context, userID, clientID string) ([]*entity.Project, error)
	Search(ctx context.Context, userID, term string, limit int) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, userID, id string) error
}
