package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only del dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetRevenueSummary agrega montos y conteos por estado en una sola pasada
// sobre la tabla de facturas. COALESCE garantiza ceros sin facturas.
func (r *AnalyticsRepo) GetRevenueSummary(ctx context.Context, userID string) (repository.RevenueSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'paid'), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'sent'), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'overdue'), 0),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COUNT(*) FILTER (WHERE status = 'sent'),
			COUNT(*) FILTER (WHERE status = 'overdue'),
			COUNT(*) FILTER (WHERE status = 'draft')
		FROM invoices WHERE user_id = $1`
	var s repository.RevenueSummary
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&s.TotalRevenue, &s.PendingAmount, &s.OverdueAmount,
		&s.PaidCount, &s.PendingCount, &s.OverdueCount, &s.DraftCount,
	)
	if err != nil {
		return repository.RevenueSummary{}, fmt.Errorf("revenue summary: %w", err)
	}
	return s, nil
}

// GetMonthlyRevenue agrupa ingresos pagados por mes, del más antiguo al más
// reciente, limitado a los últimos `months` meses.
func (r *AnalyticsRepo) GetMonthlyRevenue(ctx context.Context, userID string, months int) ([]repository.MonthlyRevenue, error) {
	query := `
		SELECT EXTRACT(YEAR FROM payment_date)::int,
		       EXTRACT(MONTH FROM payment_date)::int,
		       COALESCE(SUM(total_amount), 0)
		FROM invoices
		WHERE user_id = $1 AND status = 'paid' AND payment_date IS NOT NULL
		  AND payment_date >= date_trunc('month', now()) - ($2 - 1) * interval '1 month'
		GROUP BY 1, 2
		ORDER BY 1, 2`
	rows, err := r.q.Query(ctx, query, userID, months)
	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}
	defer rows.Close()
	var list []repository.MonthlyRevenue
	for rows.Next() {
		var m repository.MonthlyRevenue
		if err := rows.Scan(&m.Year, &m.Month, &m.Revenue); err != nil {
			return nil, fmt.Errorf("scan monthly revenue: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// CountClients cuenta los clientes del usuario.
func (r *AnalyticsRepo) CountClients(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clients WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

// CountProjects cuenta proyectos; con onlyActive solo los en curso.
func (r *AnalyticsRepo) CountProjects(ctx context.Context, userID string, onlyActive bool) (int, error) {
	query := `SELECT COUNT(*) FROM projects WHERE user_id = $1`
	if onlyActive {
		query += ` AND status IN ('planned', 'in_progress')`
	}
	var n int
	if err := r.q.QueryRow(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

// GetTrackedSeconds suma la duración registrada en el rango dado.
func (r *AnalyticsRepo) GetTrackedSeconds(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(duration), 0)
		FROM time_entries
		WHERE user_id = $1 AND start_time >= $2 AND start_time < $3`
	var secs int64
	if err := r.q.QueryRow(ctx, query, userID, from, to).Scan(&secs); err != nil {
		return 0, fmt.Errorf("tracked seconds: %w", err)
	}
	return secs, nil
}
