package repository

import (
	"context"

	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// Todas las consultas están acotadas por userID: un usuario jamás ve
// clientes de otro.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, userID, id string) (*entity.Client, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Client, error)
	Search(ctx context.Context, userID, term string, limit int) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, userID, id string) error
}
