package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/validation"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// OrderUseCase lectura paginada de pedidos.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// List filtra por status y busca en número, cliente y descripción.
func (uc *OrderUseCase) List(ctx context.Context, p validation.ListParams) (*dto.OrderListResponse, error) {
	q := p.Query(query.Orders)
	total, err := uc.repo.Count(ctx, q.WithoutPage())
	if err != nil {
		return nil, fmt.Errorf("contar pedidos: %w", err)
	}
	list, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	return &dto.OrderListResponse{
		Orders:     mapSlice(list, toOrderResponse),
		Pagination: dto.NewPagination(total, p.Page, p.Limit),
	}, nil
}
