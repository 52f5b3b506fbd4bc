package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/validation"
	"github.com/jhoicas/Gestion-api/internal/domain/query"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// DocumentUseCase lectura paginada de documentos.
type DocumentUseCase struct {
	repo repository.DocumentRepository
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo}
}

// List filtra por tipo y busca en título y descripción.
func (uc *DocumentUseCase) List(ctx context.Context, p validation.ListParams) (*dto.DocumentListResponse, error) {
	q := p.Query(query.Documents)
	total, err := uc.repo.Count(ctx, q.WithoutPage())
	if err != nil {
		return nil, fmt.Errorf("contar documentos: %w", err)
	}
	list, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listar documentos: %w", err)
	}
	return &dto.DocumentListResponse{
		Documents:  mapSlice(list, toDocumentResponse),
		Pagination: dto.NewPagination(total, p.Page, p.Limit),
	}, nil
}
