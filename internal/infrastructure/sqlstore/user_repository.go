package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, name, password_hash, role, COALESCE(image, ''), created_at, updated_at`

// UserRepo implementación de UserRepository.
type UserRepo struct {
	q Querier
	d Dialect
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier, d Dialect) *UserRepo {
	return &UserRepo{q: q, d: d}
}

// Create persiste un nuevo usuario. Email duplicado → domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	stmt := `INSERT INTO users (id, email, name, password_hash, role, image, created_at, updated_at)
		VALUES (` + r.d.Params(8) + `)`
	var image any
	if u.Image != "" {
		image = u.Image
	}
	_, err := r.q.ExecContext(ctx, stmt, u.ID, u.Email, u.Name, u.PasswordHash, u.Role, image, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if r.d.uniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = `+r.d.Placeholder(1), id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = `+r.d.Placeholder(1), email)
}

// UpdateRole cambia el rol; es la única vía para modificarlo.
func (r *UserRepo) UpdateRole(ctx context.Context, id, role string) error {
	stmt := `UPDATE users SET role = ` + r.d.Placeholder(1) + `, updated_at = ` + r.d.Placeholder(2) +
		` WHERE id = ` + r.d.Placeholder(3)
	res, err := r.q.ExecContext(ctx, stmt, role, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	if n == 0 {
		return &domain.NotFoundError{Resource: "usuario", ID: id}
	}
	return nil
}

func (r *UserRepo) getOne(ctx context.Context, stmt string, arg string) (*entity.User, error) {
	var u entity.User
	err := queryRow(ctx, r.q, stmt, []any{arg},
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Image, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "usuario", ID: arg}
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
