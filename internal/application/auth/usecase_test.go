package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simulador-reforma/internal/application/auth"
	"github.com/jhoicas/simulador-reforma/internal/application/dto"
	"github.com/jhoicas/simulador-reforma/internal/domain"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/pkg/jwt"
)

const secret = "test-secret"

type memStore struct {
	users     []*entity.User
	tenants   []*entity.Tenant
	groups    []*entity.CompanyGroup
	companies []*entity.Company
}

type userRepo struct{ s *memStore }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.users = append(r.s.users, u)
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r userRepo) ListByTenant(context.Context, string) ([]*entity.User, error) { return r.s.users, nil }

func (r userRepo) Confirm(_ context.Context, _, id string) error {
	u, _ := r.GetByID(context.Background(), id)
	if u == nil {
		return domain.ErrNotFound
	}
	u.Confirmed = true
	return nil
}

type tenantRepo struct{ s *memStore }

func (r tenantRepo) Create(_ context.Context, t *entity.Tenant) error {
	r.s.tenants = append(r.s.tenants, t)
	return nil
}
func (r tenantRepo) GetByID(context.Context, string) (*entity.Tenant, error) { return nil, nil }
func (r tenantRepo) List(context.Context, int, int) ([]*entity.Tenant, error) {
	return r.s.tenants, nil
}

type groupRepo struct{ s *memStore }

func (r groupRepo) Create(_ context.Context, g *entity.CompanyGroup) error {
	r.s.groups = append(r.s.groups, g)
	return nil
}
func (r groupRepo) GetByID(context.Context, string) (*entity.CompanyGroup, error) { return nil, nil }
func (r groupRepo) ListByTenant(context.Context, string) ([]*entity.CompanyGroup, error) {
	return r.s.groups, nil
}

type companyRepo struct{ s *memStore }

func (r companyRepo) Create(_ context.Context, c *entity.Company) error {
	r.s.companies = append(r.s.companies, c)
	return nil
}

func (r companyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r companyRepo) ListByTenant(context.Context, string) ([]*entity.Company, error) {
	return r.s.companies, nil
}

func newAuth() (*auth.AuthUseCase, *memStore) {
	s := &memStore{}
	uc := auth.NewAuthUseCase(userRepo{s}, tenantRepo{s}, groupRepo{s}, companyRepo{s},
		auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "simulador-reforma"})
	return uc, s
}

func bootstrap(t *testing.T, uc *auth.AuthUseCase) *dto.UserResponse {
	t.Helper()
	u, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "Admin@Alfa.com.br", Password: "segredo123", TenantName: "Alfa", CompanyName: "Alfa Indústria",
	})
	require.NoError(t, err)
	return u
}

func TestRegister_NuevoTenantCreaAdminConfirmado(t *testing.T) {
	uc, s := newAuth()

	u := bootstrap(t, uc)

	assert.Equal(t, "admin@alfa.com.br", u.Email)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.True(t, u.Confirmed)
	require.Len(t, s.tenants, 1)
	require.Len(t, s.groups, 1)
	require.Len(t, s.companies, 1)
	assert.Equal(t, s.tenants[0].ID, u.TenantID)
	assert.Equal(t, s.companies[0].ID, u.CompanyID)
	assert.NotEqual(t, "segredo123", s.users[0].PasswordHash)
}

func TestRegister_UnirseAEmpresaQuedaPendiente(t *testing.T) {
	uc, _ := newAuth()
	admin := bootstrap(t, uc)
	ctx := context.Background()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		Email: "analista@alfa.com.br", Password: "segredo123", TenantID: admin.TenantID, CompanyID: admin.CompanyID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.False(t, u.Confirmed)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{
		Email: "otro@beta.com.br", Password: "segredo123", TenantID: "otro-tenant", CompanyID: admin.CompanyID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()
	cases := []dto.RegisterRequest{
		{Email: "sin-arroba", Password: "segredo123", TenantName: "A", CompanyName: "B"},
		{Email: "a@b.com", Password: "corta", TenantName: "A", CompanyName: "B"},
		{Email: "a@b.com", Password: "segredo123"},
		{Email: "a@b.com", Password: "segredo123", TenantName: "A"},
	}
	for _, in := range cases {
		_, err := uc.RegisterUser(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuth()
	bootstrap(t, uc)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "admin@alfa.com.br", Password: "segredo123", TenantName: "Otro", CompanyName: "Otra",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenLlevaElTenant(t *testing.T) {
	uc, _ := newAuth()
	admin := bootstrap(t, uc)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: " ADMIN@alfa.com.br", Password: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, out.User.ID)

	id, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.TenantID, id.TenantID)
	assert.Equal(t, admin.CompanyID, id.CompanyID)
	assert.Equal(t, entity.RoleAdmin, id.Role)
}

func TestLogin_Errores(t *testing.T) {
	uc, _ := newAuth()
	admin := bootstrap(t, uc)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "nadie@alfa.com.br", Password: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "admin@alfa.com.br", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{
		Email: "pendiente@alfa.com.br", Password: "segredo123", TenantID: admin.TenantID, CompanyID: admin.CompanyID,
	})
	require.NoError(t, err)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "pendiente@alfa.com.br", Password: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
