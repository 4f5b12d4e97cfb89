// Package search implementa la búsqueda global sobre clientes, proyectos y
// facturas del usuario.
package search

import (
	"context"
	"strings"

	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

const defaultLimit = 5 // resultados por tipo

// UseCase búsqueda global. Cada repositorio aporta su propia consulta ILIKE;
// aquí solo se agregan y ordenan los resultados.
type UseCase struct {
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	invoiceRepo repository.InvoiceRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	invoiceRepo repository.InvoiceRepository,
) *UseCase {
	return &UseCase{clientRepo: clientRepo, projectRepo: projectRepo, invoiceRepo: invoiceRepo}
}

// Search busca el término en los tres tipos. Término vacío o de un solo
// carácter devuelve cero resultados sin tocar la base.
func (uc *UseCase) Search(ctx context.Context, userID string, in dto.SearchRequest) (*dto.SearchResponse, error) {
	term := strings.TrimSpace(in.Query)
	if len(term) < 2 {
		return &dto.SearchResponse{Results: []dto.SearchResult{}}, nil
	}
	limit := in.Limit
	if limit <= 0 || limit > 20 {
		limit = defaultLimit
	}

	results := []dto.SearchResult{}

	clients, err := uc.clientRepo.Search(ctx, userID, term, limit)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		results = append(results, dto.SearchResult{
			Type:     "client",
			ID:       c.ID,
			Title:    c.Name,
			Subtitle: c.Email,
			URL:      "/clients/" + c.ID,
		})
	}

	projects, err := uc.projectRepo.Search(ctx, userID, term, limit)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		results = append(results, dto.SearchResult{
			Type:     "project",
			ID:       p.ID,
			Title:    p.Name,
			Subtitle: p.Status,
			URL:      "/projects/" + p.ID,
		})
	}

	invoices, err := uc.invoiceRepo.Search(ctx, userID, term, limit)
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		results = append(results, dto.SearchResult{
			Type:     "invoice",
			ID:       inv.ID,
			Title:    inv.InvoiceNumber,
			Subtitle: inv.Status,
			URL:      "/invoices/" + inv.ID,
		})
	}

	return &dto.SearchResponse{Results: results, Total: len(results)}, nil
}
