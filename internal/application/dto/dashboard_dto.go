package dto

import "github.com/shopspring/decimal"

// DashboardResponse métricas agregadas para la pantalla principal.
type DashboardResponse struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
	OverdueAmount   decimal.Decimal `json:"overdue_amount"`
	PaidInvoices    int             `json:"paid_invoices"`
	PendingInvoices int             `json:"pending_invoices"`
	OverdueInvoices int             `json:"overdue_invoices"`
	DraftInvoices   int             `json:"draft_invoices"`
	TotalClients    int             `json:"total_clients"`
	ActiveProjects  int             `json:"active_projects"`
	TrackedHours    decimal.Decimal `json:"tracked_hours"` // del mes en curso
	// RevenueChangePct variación porcentual del último mes de la serie frente
	// al anterior; cero si no hay mes anterior o su ingreso fue cero.
	RevenueChangePct decimal.Decimal     `json:"revenue_change_pct"`
	MonthlyRevenue   []MonthlyRevenueDTO `json:"monthly_revenue"`
}

// MonthlyRevenueDTO punto de la serie mensual de ingresos.
type MonthlyRevenueDTO struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}
