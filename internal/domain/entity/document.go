package entity

import "time"

// Document representa un documento registrado (factura, contrato, etc.).
type Document struct {
	ID          string
	Title       string
	Description string
	Type        string
	URL         string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
