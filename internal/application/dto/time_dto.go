package dto

// StartTimerRequest body para POST /api/time-entries/start.
type StartTimerRequest struct {
	ProjectID   string `json:"project_id"`
	Description string `json:"description,omitempty"`
	Tag         string `json:"tag,omitempty"`
}

// CreateTimeEntryRequest body para POST /api/time-entries (registro manual
// con inicio y fin ya conocidos).
type CreateTimeEntryRequest struct {
	ProjectID   string `json:"project_id"`
	Description string `json:"description,omitempty"`
	Tag         string `json:"tag,omitempty"`
	StartTime   string `json:"start_time"` // RFC 3339
	EndTime     string `json:"end_time"`   // RFC 3339
}

// TimeEntryResponse registro de tiempo en respuestas.
type TimeEntryResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Description string `json:"description,omitempty"`
	Tag         string `json:"tag,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time,omitempty"`
	Duration    int64  `json:"duration"` // segundos; 0 mientras corre
	Running     bool   `json:"running"`
}

// ListTimeEntriesRequest filtros del listado de registros.
type ListTimeEntriesRequest struct {
	PageRequest
	From string `query:"from"` // YYYY-MM-DD
	To   string `query:"to"`
}
