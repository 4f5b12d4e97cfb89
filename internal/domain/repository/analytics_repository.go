package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RevenueSummary resultado crudo de las métricas de ingresos del dashboard.
// Lo produce la DB; el use case lo convierte en DTO.
type RevenueSummary struct {
	TotalRevenue  decimal.Decimal // suma de total_amount de facturas pagadas
	PendingAmount decimal.Decimal // suma de total_amount de facturas sent
	OverdueAmount decimal.Decimal // suma de total_amount de facturas overdue
	PaidCount     int
	PendingCount  int
	OverdueCount  int
	DraftCount    int
}

// MonthlyRevenue ingresos pagados agrupados por mes (para la gráfica).
type MonthlyRevenue struct {
	Year    int
	Month   int
	Revenue decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura del dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetRevenueSummary agrega montos y conteos por estado de factura.
	// Usa COALESCE para devolver cero si el usuario no tiene facturas.
	GetRevenueSummary(ctx context.Context, userID string) (RevenueSummary, error)

	// GetMonthlyRevenue devuelve los ingresos pagados por mes de los últimos
	// `months` meses, del más antiguo al más reciente.
	GetMonthlyRevenue(ctx context.Context, userID string, months int) ([]MonthlyRevenue, error)

	// CountClients y CountProjects conteos simples para las tarjetas.
	CountClients(ctx context.Context, userID string) (int, error)
	CountProjects(ctx context.Context, userID string, onlyActive bool) (int, error)

	// GetTrackedSeconds suma la duración registrada en el rango dado.
	GetTrackedSeconds(ctx context.Context, userID string, from, to time.Time) (int64, error)
}
