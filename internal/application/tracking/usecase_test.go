package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/domain"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
)

type memEntryRepo struct {
	entries         map[string]*entity.TimeEntry
	errOnGetRunning error
}

func newMemEntryRepo() *memEntryRepo { return &memEntryRepo{entries: map[string]*entity.TimeEntry{}} }

func (r *memEntryRepo) Create(_ context.Context, e *entity.TimeEntry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *memEntryRepo) GetByID(_ context.Context, userID, id string) (*entity.TimeEntry, error) {
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memEntryRepo) GetRunning(_ context.Context, userID string) (*entity.TimeEntry, error) {
	if r.errOnGetRunning != nil {
		return nil, r.errOnGetRunning
	}
	for _, e := range r.entries {
		if e.UserID == userID && e.EndTime == nil {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memEntryRepo) ListByUser(_ context.Context, userID string, from, to time.Time, _, _ int) ([]*entity.TimeEntry, error) {
	var out []*entity.TimeEntry
	for _, e := range r.entries {
		if e.UserID == userID && !e.StartTime.Before(from) && e.StartTime.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memEntryRepo) ListByProject(_ context.Context, _, _ string) ([]*entity.TimeEntry, error) {
	return nil, nil
}

func (r *memEntryRepo) Update(_ context.Context, e *entity.TimeEntry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *memEntryRepo) Delete(_ context.Context, _, id string) error {
	delete(r.entries, id)
	return nil
}

type memProjectRepo struct {
	projects map[string]*entity.Project
}

func (r *memProjectRepo) Create(_ context.Context, p *entity.Project) error { return nil }

func (r *memProjectRepo) GetByID(_ context.Context, userID, id string) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	return p, nil
}

func (r *memProjectRepo) ListByUser(_ context.Context, _ string, _, _ int) ([]*entity.Project, error) {
	return nil, nil
}

func (r *memProjectRepo) ListByClient(_ context.Context, _, _ string) ([]*entity.Project, error) {
	return nil, nil
}

func (r *memProjectRepo) Search(_ context.Context, _, _ string, _ int) ([]*entity.Project, error) {
	return nil, nil
}

func (r *memProjectRepo) Update(_ context.Context, _ *entity.Project) error { return nil }
func (r *memProjectRepo) Delete(_ context.Context, _, _ string) error       { return nil }

func nuevoUC() (*UseCase, *memEntryRepo) {
	entryRepo := newMemEntryRepo()
	projectRepo := &memProjectRepo{projects: map[string]*entity.Project{
		"proj-1": {ID: "proj-1", UserID: "user-1", Name: "Rediseño web"},
	}}
	return NewUseCase(entryRepo, projectRepo), entryRepo
}

func TestStartStop(t *testing.T) {
	uc, _ := nuevoUC()
	inicio := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return inicio }

	arrancado, err := uc.Start(context.Background(), "user-1", dto.StartTimerRequest{
		ProjectID: "proj-1", Description: "maquetación", Tag: "frontend",
	})
	require.NoError(t, err)
	assert.True(t, arrancado.Running)
	assert.Zero(t, arrancado.Duration)

	uc.now = func() time.Time { return inicio.Add(90 * time.Minute) }
	detenido, err := uc.Stop(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, detenido.Running)
	assert.Equal(t, int64(5400), detenido.Duration, "90 minutos en segundos")
}

func TestStart_SoloUnTemporizadorActivo(t *testing.T) {
	uc, _ := nuevoUC()
	_, err := uc.Start(context.Background(), "user-1", dto.StartTimerRequest{ProjectID: "proj-1"})
	require.NoError(t, err)

	_, err = uc.Start(context.Background(), "user-1", dto.StartTimerRequest{ProjectID: "proj-1"})
	assert.ErrorIs(t, err, domain.ErrTimerRunning)
}

func TestStart_FallaSiNoSePuedeVerificarElActivo(t *testing.T) {
	uc, repo := nuevoUC()
	repo.errOnGetRunning = errors.New("conexión perdida")

	// Si no se puede consultar el temporizador activo, Start no arranca otro:
	// el error se propaga y no se crea ninguna entrada.
	_, err := uc.Start(context.Background(), "user-1", dto.StartTimerRequest{ProjectID: "proj-1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTimerRunning)
	assert.Empty(t, repo.entries, "sin verificación no se crea entrada")
}

func TestStop_SinTemporizador(t *testing.T) {
	uc, _ := nuevoUC()
	_, err := uc.Stop(context.Background(), "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateManual(t *testing.T) {
	uc, _ := nuevoUC()

	res, err := uc.CreateManual(context.Background(), "user-1", dto.CreateTimeEntryRequest{
		ProjectID: "proj-1",
		StartTime: "2026-08-09T14:00:00Z",
		EndTime:   "2026-08-09T16:30:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9000), res.Duration)
	assert.False(t, res.Running)
}

func TestCreateManual_FinAntesDelInicio(t *testing.T) {
	uc, _ := nuevoUC()

	_, err := uc.CreateManual(context.Background(), "user-1", dto.CreateTimeEntryRequest{
		ProjectID: "proj-1",
		StartTime: "2026-08-09T16:00:00Z",
		EndTime:   "2026-08-09T14:00:00Z",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateManual_ProyectoAjeno(t *testing.T) {
	uc, _ := nuevoUC()

	_, err := uc.CreateManual(context.Background(), "user-2", dto.CreateTimeEntryRequest{
		ProjectID: "proj-1",
		StartTime: "2026-08-09T14:00:00Z",
		EndTime:   "2026-08-09T15:00:00Z",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
