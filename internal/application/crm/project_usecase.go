package crm

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

// ProjectUseCase CRUD de proyectos.
type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	clientRepo  repository.ClientRepository
	now         func() time.Time
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(projectRepo repository.ProjectRepository, clientRepo repository.ClientRepository) *ProjectUseCase {
	return &ProjectUseCase{projectRepo: projectRepo, clientRepo: clientRepo, now: time.Now}
}

func validProjectStatus(s string) bool {
	switch s {
	case entity.ProjectStatusPlanned, entity.ProjectStatusInProgress, entity.ProjectStatusCompleted, entity.ProjectStatusOnHold:
		return true
	}
	return false
}

// Create registra un proyecto; el cliente debe pertenecer al usuario.
func (uc *ProjectUseCase) Create(ctx context.Context, userID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.ProjectStatusPlanned
	}
	if !validProjectStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(ctx, userID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	var deadline *time.Time
	if in.Deadline != "" {
		t, err := time.Parse(dateLayout, in.Deadline)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		deadline = &t
	}

	now := uc.now()
	project := &entity.Project{
		ID:          uuid.New().String(),
		UserID:      userID,
		ClientID:    in.ClientID,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Budget:      in.Budget,
		Deadline:    deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Get devuelve un proyecto del usuario.
func (uc *ProjectUseCase) Get(ctx context.Context, userID, id string) (*dto.ProjectResponse, error) {
	project, err := uc.projectRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// List devuelve los proyectos del usuario paginados.
func (uc *ProjectUseCase) List(ctx context.Context, userID string, page dto.PageRequest) ([]dto.ProjectResponse, error) {
	page.DefaultPage()
	projects, err := uc.projectRepo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, *toProjectResponse(p))
	}
	return out, nil
}

// Update modifica un proyecto existente.
func (uc *ProjectUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != "" && !validProjectStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}

	project.Name = in.Name
	project.Description = in.Description
	if in.Status != "" {
		project.Status = in.Status
	}
	project.Budget = in.Budget
	if in.Deadline != "" {
		t, err := time.Parse(dateLayout, in.Deadline)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		project.Deadline = &t
	}
	project.UpdatedAt = uc.now()
	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete elimina un proyecto del usuario.
func (uc *ProjectUseCase) Delete(ctx context.Context, userID, id string) error {
	project, err := uc.projectRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	return uc.projectRepo.Delete(ctx, userID, id)
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	res := &dto.ProjectResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		Budget:      p.Budget,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	if p.Deadline != nil {
		res.Deadline = p.Deadline.Format(dateLayout)
	}
	return res
}
