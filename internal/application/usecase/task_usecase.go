package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/validation"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TaskUseCase lectura paginada de tareas.
type TaskUseCase struct {
	repo repository.TaskRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

// List filtra por status/priority y busca en título y descripción.
func (uc *TaskUseCase) List(ctx context.Context, p validation.ListParams) (*dto.TaskListResponse, error) {
	q := p.Query(query.Tasks)
	total, err := uc.repo.Count(ctx, q.WithoutPage())
	if err != nil {
		return nil, fmt.Errorf("contar tareas: %w", err)
	}
	list, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listar tareas: %w", err)
	}
	return &dto.TaskListResponse{
		Tasks:      mapSlice(list, toTaskResponse),
		Pagination: dto.NewPagination(total, p.Page, p.Limit),
	}, nil
}
