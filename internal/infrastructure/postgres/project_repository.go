package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectColumns = `id, user_id, client_id, name, COALESCE(description, ''), status,
	COALESCE(budget, 0), deadline, created_at, updated_at`

// ProjectRepo implementación de ProjectRepository (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	query := `
		INSERT INTO projects (id, user_id, client_id, name, description, status, budget, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		project.ID, project.UserID, project.ClientID, project.Name, nullIfEmpty(project.Description),
		project.Status, project.Budget, project.Deadline, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto del usuario.
func (r *ProjectRepo) GetByID(ctx context.Context, userID, id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 AND id = $2`
	var p entity.Project
	err := r.q.QueryRow(ctx, query, userID, id).Scan(
		&p.ID, &p.UserID, &p.ClientID, &p.Name, &p.Description, &p.Status,
		&p.Budget, &p.Deadline, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// ListByUser lista proyectos del usuario con paginación.
func (r *ProjectRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	return scanProjects(rows)
}

// ListByClient lista proyectos de un cliente.
func (r *ProjectRepo) ListByClient(ctx context.Context, userID, clientID string) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 AND client_id = $2 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, userID, clientID)
	if err != nil {
		return nil, fmt.Errorf("list projects by client: %w", err)
	}
	defer rows.Close()
	return scanProjects(rows)
}

// Search busca proyectos por nombre o descripción (ILIKE).
func (r *ProjectRepo) Search(ctx context.Context, userID, term string, limit int) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE user_id = $1 AND (name ILIKE $2 OR description ILIKE $2)
		ORDER BY name LIMIT $3`
	rows, err := r.q.Query(ctx, query, userID, "%"+term+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search projects: %w", err)
	}
	defer rows.Close()
	return scanProjects(rows)
}

// Update actualiza un proyecto.
func (r *ProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	query := `
		UPDATE projects SET name = $3, description = $4, status = $5, budget = $6, deadline = $7, updated_at = $8
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		project.UserID, project.ID, project.Name, nullIfEmpty(project.Description),
		project.Status, project.Budget, project.Deadline, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete elimina un proyecto del usuario.
func (r *ProjectRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM projects WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func scanProjects(rows pgx.Rows) ([]*entity.Project, error) {
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.ClientID, &p.Name, &p.Description, &p.Status,
			&p.Budget, &p.Deadline, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
