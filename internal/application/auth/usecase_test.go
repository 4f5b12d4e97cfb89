package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/domain"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
	"github.com/tu-usuario/freelance-pro/pkg/jwt"
)

type memUserRepo struct {
	users           map[string]*entity.User
	errOnGetByEmail error
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*entity.User{}} }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.errOnGetByEmail != nil {
		return nil, r.errOnGetByEmail
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

var cfg = JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "freelance-pro"}

func TestRegisterYLogin(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewUseCase(repo, cfg)
	ctx := context.Background()

	reg, err := uc.Register(ctx, dto.RegisterRequest{
		Email: "dev@freelance.test", Password: "s3creta", Name: "Dev", BusinessName: "Dev Studio",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "Dev Studio", reg.User.BusinessName)

	// El hash nunca es el password en claro.
	stored := repo.users[reg.User.ID]
	assert.NotEqual(t, "s3creta", stored.PasswordHash)

	login, err := uc.Login(ctx, dto.LoginRequest{Email: "dev@freelance.test", Password: "s3creta"})
	require.NoError(t, err)

	userID, err := jwt.Parse(cfg.Secret, login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, userID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := NewUseCase(newMemUserRepo(), cfg)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "dev@freelance.test", Password: "x1"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "dev@freelance.test", Password: "x2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_FallaSiNoSePuedeVerificarElEmail(t *testing.T) {
	repo := newMemUserRepo()
	repo.errOnGetByEmail = errors.New("conexión perdida")
	uc := NewUseCase(repo, cfg)

	// Sin poder consultar el email no se registra nada: el error se propaga
	// tal cual, no como email duplicado.
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "dev@freelance.test", Password: "x1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, repo.users)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := NewUseCase(newMemUserRepo(), cfg)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "dev@freelance.test", Password: "correcta"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "dev@freelance.test", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := NewUseCase(newMemUserRepo(), cfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@freelance.test", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
