package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/validation"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ActivityUseCase lista y registra actividades.
type ActivityUseCase struct {
	repo repository.ActivityRepository
	now  func() time.Time
}

// NewActivityUseCase construye el caso de uso con el puerto de persistencia.
func NewActivityUseCase(repo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo, now: time.Now}
}

// List devuelve la página pedida y los metadatos calculados sobre el total filtrado.
func (uc *ActivityUseCase) List(ctx context.Context, p validation.ListParams) (*dto.ActivityListResponse, error) {
	q := p.Query(query.Activities)

	total, err := uc.repo.Count(ctx, q.WithoutPage())
	if err != nil {
		return nil, fmt.Errorf("contar actividades: %w", err)
	}
	list, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listar actividades: %w", err)
	}
	return &dto.ActivityListResponse{
		Activities: mapSlice(list, toActivityResponse),
		Pagination: dto.NewPagination(total, p.Page, p.Limit),
	}, nil
}

// Recent devuelve las n actividades más recientes (sin filtros).
func (uc *ActivityUseCase) Recent(ctx context.Context, n int) ([]dto.ActivityResponse, error) {
	q := query.Build(query.Activities, query.Params{Page: query.Page{Number: 1, Limit: n}})
	list, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("actividades recientes: %w", err)
	}
	return mapSlice(list, toActivityResponse), nil
}

// Create registra una actividad a nombre de userID.
func (uc *ActivityUseCase) Create(ctx context.Context, userID string, in dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	a := &entity.Activity{
		ID:          uuid.NewString(),
		Type:        strings.TrimSpace(in.Type),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		UserID:      userID,
		CreatedAt:   uc.now().UTC(),
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("crear actividad: %w", err)
	}
	out := toActivityResponse(&entity.ActivityWithUser{Activity: *a})
	return &out, nil
}
