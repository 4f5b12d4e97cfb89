// Package tracking implementa el registro de tiempo: temporizador en vivo
// (start/stop) y registros manuales con inicio y fin conocidos.
package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/domain"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// UseCase casos de uso de registro de tiempo.
type UseCase struct {
	entryRepo   repository.TimeEntryRepository
	projectRepo repository.ProjectRepository
	now         func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(entryRepo repository.TimeEntryRepository, projectRepo repository.ProjectRepository) *UseCase {
	return &UseCase{entryRepo: entryRepo, projectRepo: projectRepo, now: time.Now}
}

// Start arranca el temporizador sobre un proyecto. Solo puede haber uno
// corriendo por usuario: si ya hay uno activo devuelve ErrTimerRunning.
func (uc *UseCase) Start(ctx context.Context, userID string, in dto.StartTimerRequest) (*dto.TimeEntryResponse, error) {
	if in.ProjectID == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(ctx, userID, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	running, err := uc.entryRepo.GetRunning(ctx, userID)
	if err != nil {
		return nil, err
	}
	if running != nil {
		return nil, domain.ErrTimerRunning
	}

	entry := &entity.TimeEntry{
		ID:          uuid.New().String(),
		UserID:      userID,
		ProjectID:   in.ProjectID,
		Description: in.Description,
		Tag:         in.Tag,
		StartTime:   uc.now(),
		CreatedAt:   uc.now(),
	}
	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return toTimeEntryResponse(entry), nil
}

// Stop detiene el temporizador activo del usuario y fija la duración.
func (uc *UseCase) Stop(ctx context.Context, userID string) (*dto.TimeEntryResponse, error) {
	entry, err := uc.entryRepo.GetRunning(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	entry.EndTime = &now
	entry.Duration = int64(now.Sub(entry.StartTime).Seconds())
	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return toTimeEntryResponse(entry), nil
}

// CreateManual registra un bloque de tiempo ya terminado.
func (uc *UseCase) CreateManual(ctx context.Context, userID string, in dto.CreateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	if in.ProjectID == "" || in.StartTime == "" || in.EndTime == "" {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.Parse(time.RFC3339, in.StartTime)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(time.RFC3339, in.EndTime)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !end.After(start) {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(ctx, userID, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}

	entry := &entity.TimeEntry{
		ID:          uuid.New().String(),
		UserID:      userID,
		ProjectID:   in.ProjectID,
		Description: in.Description,
		Tag:         in.Tag,
		StartTime:   start,
		EndTime:     &end,
		Duration:    int64(end.Sub(start).Seconds()),
		CreatedAt:   uc.now(),
	}
	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return toTimeEntryResponse(entry), nil
}

// List devuelve los registros del usuario en el rango pedido (por defecto,
// los últimos 30 días).
func (uc *UseCase) List(ctx context.Context, userID string, in dto.ListTimeEntriesRequest) ([]dto.TimeEntryResponse, error) {
	in.DefaultPage()
	now := uc.now()
	from := now.AddDate(0, 0, -30)
	to := now
	var err error
	if in.From != "" {
		from, err = time.Parse(dateLayout, in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.To != "" {
		to, err = time.Parse(dateLayout, in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		to = to.AddDate(0, 0, 1) // inclusivo hasta el fin del día
	}
	entries, err := uc.entryRepo.ListByUser(ctx, userID, from, to, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toTimeEntryResponse(e))
	}
	return out, nil
}

// Delete elimina un registro del usuario.
func (uc *UseCase) Delete(ctx context.Context, userID, id string) error {
	entry, err := uc.entryRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.entryRepo.Delete(ctx, userID, id)
}

func toTimeEntryResponse(e *entity.TimeEntry) *dto.TimeEntryResponse {
	res := &dto.TimeEntryResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		Description: e.Description,
		Tag:         e.Tag,
		StartTime:   e.StartTime.Format(time.RFC3339),
		Duration:    e.Duration,
		Running:     e.Running(),
	}
	if e.EndTime != nil {
		res.EndTime = e.EndTime.Format(time.RFC3339)
	}
	return res
}
