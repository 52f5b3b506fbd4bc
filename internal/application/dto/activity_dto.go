package dto

import "time"

// ActivityUser datos públicos del autor de una actividad.
type ActivityUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// ActivityResponse una actividad del feed.
type ActivityResponse struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"createdAt"`
	User        ActivityUser `json:"user"`
}

// ActivityListResponse data de GET /api/activities.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Pagination Pagination         `json:"pagination"`
}

// CreateActivityRequest entrada de POST /api/activities. El autor es el usuario de la sesión.
type CreateActivityRequest struct {
	Type        string `json:"type" validate:"required,max=50"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// ActivityReport contenido del reporte PDF de actividades.
type ActivityReport struct {
	Title       string
	GeneratedAt time.Time
	GeneratedBy string
	Filters     []string // "status=login", "search=invoice"
	Activities  []ActivityResponse
	Pagination  Pagination
}
