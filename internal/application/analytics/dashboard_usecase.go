// Package analytics contiene el caso de uso del dashboard del freelance:
// ingresos, cartera pendiente y vencida, conteos y horas registradas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

const revenueMonths = 6 // meses de la serie de ingresos

// DashboardUseCase genera el resumen de la pantalla principal.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetSummary construye el DashboardResponse del usuario.
//
// Cuatro llamadas en paralelo:
//  1. GetRevenueSummary           → montos y conteos por estado de factura
//  2. GetMonthlyRevenue(6 meses)  → serie para la gráfica
//  3. CountClients/CountProjects  → tarjetas de conteo
//  4. GetTrackedSeconds(mes)      → horas del mes en curso
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	type summaryResult struct {
		summary repository.RevenueSummary
		err     error
	}
	type seriesResult struct {
		series []repository.MonthlyRevenue
		err    error
	}
	type countsResult struct {
		clients  int
		projects int
		err      error
	}
	type trackedResult struct {
		seconds int64
		err     error
	}

	summaryCh := make(chan summaryResult, 1)
	seriesCh := make(chan seriesResult, 1)
	countsCh := make(chan countsResult, 1)
	trackedCh := make(chan trackedResult, 1)

	go func() {
		s, err := uc.analyticsRepo.GetRevenueSummary(ctx, userID)
		summaryCh <- summaryResult{s, err}
	}()
	go func() {
		s, err := uc.analyticsRepo.GetMonthlyRevenue(ctx, userID, revenueMonths)
		seriesCh <- seriesResult{s, err}
	}()
	go func() {
		clients, err := uc.analyticsRepo.CountClients(ctx, userID)
		if err != nil {
			countsCh <- countsResult{err: err}
			return
		}
		projects, err := uc.analyticsRepo.CountProjects(ctx, userID, true)
		countsCh <- countsResult{clients, projects, err}
	}()
	go func() {
		secs, err := uc.analyticsRepo.GetTrackedSeconds(ctx, userID, monthStart, monthEnd)
		trackedCh <- trackedResult{secs, err}
	}()

	summary := <-summaryCh
	series := <-seriesCh
	counts := <-countsCh
	tracked := <-trackedCh

	if summary.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de ingresos: %w", summary.err)
	}
	if series.err != nil {
		return nil, fmt.Errorf("dashboard: serie mensual: %w", series.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if tracked.err != nil {
		return nil, fmt.Errorf("dashboard: horas registradas: %w", tracked.err)
	}

	monthly := make([]dto.MonthlyRevenueDTO, 0, len(series.series))
	for _, m := range series.series {
		monthly = append(monthly, dto.MonthlyRevenueDTO{Year: m.Year, Month: m.Month, Revenue: m.Revenue.Round(2)})
	}

	hours := decimal.NewFromInt(tracked.seconds).Div(decimal.NewFromInt(3600)).Round(2)

	return &dto.DashboardResponse{
		TotalRevenue:     summary.summary.TotalRevenue.Round(2),
		PendingAmount:    summary.summary.PendingAmount.Round(2),
		OverdueAmount:    summary.summary.OverdueAmount.Round(2),
		PaidInvoices:     summary.summary.PaidCount,
		PendingInvoices:  summary.summary.PendingCount,
		OverdueInvoices:  summary.summary.OverdueCount,
		DraftInvoices:    summary.summary.DraftCount,
		TotalClients:     counts.clients,
		ActiveProjects:   counts.projects,
		TrackedHours:     hours,
		RevenueChangePct: revenueChange(series.series),
		MonthlyRevenue:   monthly,
	}, nil
}

// revenueChange compara el último mes de la serie con el anterior. Con menos
// de dos meses, o con mes anterior en cero, no hay base de comparación.
func revenueChange(series []repository.MonthlyRevenue) decimal.Decimal {
	if len(series) < 2 {
		return decimal.Zero
	}
	prev := series[len(series)-2].Revenue
	last := series[len(series)-1].Revenue
	if prev.IsZero() {
		return decimal.Zero
	}
	return last.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(2)
}
