// Package crm administra los clientes y proyectos del freelance.
package crm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/domain"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

// ClientUseCase CRUD de clientes, siempre acotado al usuario autenticado.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
	now        func() time.Time
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, now: time.Now}
}

// Create registra un cliente nuevo.
func (uc *ClientUseCase) Create(ctx context.Context, userID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Get devuelve un cliente del usuario.
func (uc *ClientUseCase) Get(ctx context.Context, userID, id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List devuelve los clientes del usuario paginados.
func (uc *ClientUseCase) List(ctx context.Context, userID string, page dto.PageRequest) ([]dto.ClientResponse, error) {
	page.DefaultPage()
	clients, err := uc.clientRepo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Update modifica un cliente existente.
func (uc *ClientUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	client.Name = in.Name
	client.Email = in.Email
	client.Phone = in.Phone
	client.Company = in.Company
	client.Notes = in.Notes
	client.UpdatedAt = uc.now()
	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente del usuario.
func (uc *ClientUseCase) Delete(ctx context.Context, userID, id string) error {
	client, err := uc.clientRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(ctx, userID, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
