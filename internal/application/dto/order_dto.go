package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderResponse un pedido. Total se serializa como string decimal ("1250.50").
type OrderResponse struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"orderNumber"`
	CustomerName string          `json:"customerName"`
	Description  string          `json:"description"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	CreatedBy    string          `json:"createdBy"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// OrderListResponse data de GET /api/orders.
type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}
