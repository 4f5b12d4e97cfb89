package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, user_id, name, COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(company, ''), COALESCE(notes, ''), created_at, updated_at`

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, user_id, name, email, phone, company, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.UserID, client.Name, nullIfEmpty(client.Email), nullIfEmpty(client.Phone),
		nullIfEmpty(client.Company), nullIfEmpty(client.Notes), client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente del usuario.
func (r *ClientRepo) GetByID(ctx context.Context, userID, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE user_id = $1 AND id = $2`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, userID, id).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// ListByUser lista clientes del usuario con paginación.
func (r *ClientRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE user_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	return scanClients(rows)
}

// Search busca por nombre, email o empresa (ILIKE).
func (r *ClientRepo) Search(ctx context.Context, userID, term string, limit int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + `
		FROM clients
		WHERE user_id = $1 AND (name ILIKE $2 OR email ILIKE $2 OR company ILIKE $2)
		ORDER BY name LIMIT $3`
	rows, err := r.q.Query(ctx, query, userID, "%"+term+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	defer rows.Close()
	return scanClients(rows)
}

// Update actualiza un cliente.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients SET name = $3, email = $4, phone = $5, company = $6, notes = $7, updated_at = $8
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		client.UserID, client.ID, client.Name, nullIfEmpty(client.Email), nullIfEmpty(client.Phone),
		nullIfEmpty(client.Company), nullIfEmpty(client.Notes), client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente del usuario.
func (r *ClientRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func scanClients(rows pgx.Rows) ([]*entity.Client, error) {
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
