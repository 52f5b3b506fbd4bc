package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase/usecasetest"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Gestion-api/pkg/jwt"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 30, Issuer: "gestion-test"}

func newUseCase(t *testing.T) (*auth.AuthUseCase, *usecasetest.Store) {
	t.Helper()
	s := usecasetest.NewStore()
	client := usecasetest.NewClient("sqlite", s)
	require.NoError(t, client.Connect(context.Background()))
	return auth.NewAuthUseCase(client.Repos().Users, client, jwtCfg), s
}

func TestRegisterUser_RolUserYActividad(t *testing.T) {
	uc, s := newUseCase(t)

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: " Ana@Example.com ", Password: "supersecreta", Name: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, entity.RoleUser, out.Role)

	require.Len(t, s.Users, 1)
	assert.NotEqual(t, "supersecreta", s.Users[0].PasswordHash)
	require.Len(t, s.Activities, 1)
	assert.Equal(t, "user_registered", s.Activities[0].Type)
	assert.Equal(t, out.ID, s.Activities[0].UserID)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newUseCase(t)
	in := dto.RegisterRequest{Email: "ana@example.com", Password: "supersecreta", Name: "Ana"}

	_, err := uc.RegisterUser(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc, _ := newUseCase(t)
	reg, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "ana@example.com", Password: "supersecreta", Name: "Ana"})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ANA@example.com", Password: "supersecreta"})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, out.User.ID)

	id, err := pkgjwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, id.UserID)
	assert.Equal(t, entity.RoleUser, id.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "ana@example.com", Password: "supersecreta", Name: "Ana"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "supersecreta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "email inexistente no se distingue de password incorrecto")
}
