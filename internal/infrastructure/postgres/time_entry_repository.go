package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

var _ repository.TimeEntryRepository = (*TimeEntryRepo)(nil)

const timeEntryColumns = `id, user_id, project_id, COALESCE(description, ''), COALESCE(tag, ''),
	start_time, end_time, duration, created_at`

// TimeEntryRepo implementación de TimeEntryRepository (usable con pool o tx).
type TimeEntryRepo struct {
	q Querier
}

// NewTimeEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTimeEntryRepository(q Querier) *TimeEntryRepo {
	return &TimeEntryRepo{q: q}
}

// Create persiste un registro de tiempo.
func (r *TimeEntryRepo) Create(ctx context.Context, entry *entity.TimeEntry) error {
	query := `
		INSERT INTO time_entries (id, user_id, project_id, description, tag, start_time, end_time, duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.UserID, entry.ProjectID, nullIfEmpty(entry.Description), nullIfEmpty(entry.Tag),
		entry.StartTime, entry.EndTime, entry.Duration, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert time entry: %w", err)
	}
	return nil
}

// GetByID obtiene un registro del usuario.
func (r *TimeEntryRepo) GetByID(ctx context.Context, userID, id string) (*entity.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE user_id = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, userID, id))
}

// GetRunning devuelve el temporizador activo del usuario (end_time IS NULL),
// o nil si no hay ninguno.
func (r *TimeEntryRepo) GetRunning(ctx context.Context, userID string) (*entity.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + `
		FROM time_entries WHERE user_id = $1 AND end_time IS NULL
		ORDER BY start_time DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, userID))
}

func (r *TimeEntryRepo) scanOne(row pgx.Row) (*entity.TimeEntry, error) {
	var e entity.TimeEntry
	err := row.Scan(&e.ID, &e.UserID, &e.ProjectID, &e.Description, &e.Tag,
		&e.StartTime, &e.EndTime, &e.Duration, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get time entry: %w", err)
	}
	return &e, nil
}

// ListByUser lista registros del usuario en el rango [from, to).
func (r *TimeEntryRepo) ListByUser(ctx context.Context, userID string, from, to time.Time, limit, offset int) ([]*entity.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE user_id = $1 AND start_time >= $2 AND start_time < $3
		ORDER BY start_time DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, userID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()
	return scanTimeEntries(rows)
}

// ListByProject lista registros de un proyecto.
func (r *TimeEntryRepo) ListByProject(ctx context.Context, userID, projectID string) ([]*entity.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + `
		FROM time_entries WHERE user_id = $1 AND project_id = $2 ORDER BY start_time DESC`
	rows, err := r.q.Query(ctx, query, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list time entries by project: %w", err)
	}
	defer rows.Close()
	return scanTimeEntries(rows)
}

// Update actualiza fin y duración (al detener el temporizador).
func (r *TimeEntryRepo) Update(ctx context.Context, entry *entity.TimeEntry) error {
	query := `
		UPDATE time_entries SET description = $2, tag = $3, end_time = $4, duration = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		entry.ID, nullIfEmpty(entry.Description), nullIfEmpty(entry.Tag), entry.EndTime, entry.Duration,
	)
	if err != nil {
		return fmt.Errorf("update time entry: %w", err)
	}
	return nil
}

// Delete elimina un registro del usuario.
func (r *TimeEntryRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM time_entries WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return nil
}

func scanTimeEntries(rows pgx.Rows) ([]*entity.TimeEntry, error) {
	var list []*entity.TimeEntry
	for rows.Next() {
		var e entity.TimeEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProjectID, &e.Description, &e.Tag,
			&e.StartTime, &e.EndTime, &e.Duration, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
