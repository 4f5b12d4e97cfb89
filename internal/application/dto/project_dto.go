package dto

import "github.com/shopspring/decimal"

// CreateProjectRequest body para POST /api/projects.
type CreateProjectRequest struct {
	ClientID    string          `json:"client_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status,omitempty"` // planned|in_progress|completed|on_hold
	Budget      decimal.Decimal `json:"budget,omitempty"`
	Deadline    string          `json:"deadline,omitempty"` // YYYY-MM-DD
}

// UpdateProjectRequest body para PUT /api/projects/:id.
type UpdateProjectRequest = CreateProjectRequest

// ProjectResponse proyecto en respuestas.
type ProjectResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	Deadline    string          `json:"deadline,omitempty"`
	CreatedAt   string          `json:"created_at"`
}
