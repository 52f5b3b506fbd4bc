package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Order.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order representa un pedido de un cliente.
type Order struct {
	ID           string
	OrderNumber  string // único
	CustomerName string
	Description  string
	Status       string
	Total        decimal.Decimal
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
