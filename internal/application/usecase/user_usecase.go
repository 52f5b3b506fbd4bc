package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una transacción.
type TxRunner interface {
	InTx(ctx context.Context, fn func(repository.Set) error) error
}

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
	tx   TxRunner
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, tx TxRunner) *UserUseCase {
	return &UserUseCase{repo: repo, tx: tx}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// UpdateRole es la única vía para cambiar el rol de un usuario. Deja registro en
// actividades a nombre de quien hizo el cambio, en la misma transacción.
// El rol del actor se relee de la base: el del token puede estar desactualizado.
func (uc *UserUseCase) UpdateRole(ctx context.Context, actorID, userID, role string) (*dto.UserResponse, error) {
	if !entity.ValidRole(role) {
		return nil, &domain.ValidationError{Violations: []domain.Violation{
			{Field: "role", Rule: "oneof", Message: "debe ser uno de: admin, manager, user"},
		}}
	}
	var updated *entity.User
	err := uc.tx.InTx(ctx, func(r repository.Set) error {
		actor, err := r.Users.GetByID(ctx, actorID)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: el actor ya no existe", domain.ErrForbidden)
		}
		if err != nil {
			return err
		}
		if actor.Role != entity.RoleAdmin {
			return fmt.Errorf("%w: se requiere rol admin", domain.ErrForbidden)
		}

		if err := r.Users.UpdateRole(ctx, userID, role); err != nil {
			return err
		}
		u, err := r.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		updated = u
		return r.Activities.Create(ctx, &entity.Activity{
			ID:          uuid.NewString(),
			Type:        "role_updated",
			Title:       "Cambio de rol",
			Description: fmt.Sprintf("%s ahora es %s", u.Email, role),
			UserID:      actorID,
			CreatedAt:   time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}
	return ToUserResponse(updated), nil
}
