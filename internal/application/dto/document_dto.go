package dto

import "time"

// DocumentResponse un documento registrado.
type DocumentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DocumentListResponse data de GET /api/documents.
type DocumentListResponse struct {
	Documents  []DocumentResponse `json:"documents"`
	Pagination Pagination         `json:"pagination"`
}
