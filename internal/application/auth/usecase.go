package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/simulador-reforma/internal/application/dto"
	"github.com/jhoicas/simulador-reforma/internal/domain"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/repository"
	"github.com/jhoicas/simulador-reforma/pkg/jwt"
)

const minPasswordLen = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	tenantRepo  repository.TenantRepository
	groupRepo   repository.CompanyGroupRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	tenantRepo repository.TenantRepository,
	groupRepo repository.CompanyGroupRepository,
	companyRepo repository.CompanyRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		tenantRepo:  tenantRepo,
		groupRepo:   groupRepo,
		companyRepo: companyRepo,
		jwtCfg:      jwtCfg,
	}
}

// RegisterUser crea el perfil con el password hasheado con bcrypt.
// Con tenant_id/company_id el usuario se une a una empresa existente y queda pendiente
// de confirmación; con tenant_name/company_name se crea la jerarquía y el usuario es admin.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !strings.Contains(email, "@") || len(in.Password) < minPasswordLen {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Email:     email,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch {
	case in.TenantID != "" && in.CompanyID != "":
		company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil || company.TenantID != in.TenantID {
			return nil, domain.ErrNotFound
		}
		user.TenantID, user.CompanyID = company.TenantID, company.ID
	case strings.TrimSpace(in.TenantName) != "" && strings.TrimSpace(in.CompanyName) != "":
		company, err := uc.bootstrapTenant(ctx, strings.TrimSpace(in.TenantName), strings.TrimSpace(in.CompanyName), now)
		if err != nil {
			return nil, err
		}
		user.TenantID, user.CompanyID = company.TenantID, company.ID
		user.Role = entity.RoleAdmin
		user.Confirmed = true
	default:
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// bootstrapTenant crea tenant, grupo (con el nombre de la empresa) y empresa.
func (uc *AuthUseCase) bootstrapTenant(ctx context.Context, tenantName, companyName string, now time.Time) (*entity.Company, error) {
	tenant := &entity.Tenant{ID: uuid.New().String(), Name: tenantName, CreatedAt: now}
	if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	group := &entity.CompanyGroup{ID: uuid.New().String(), TenantID: tenant.ID, Name: companyName, CreatedAt: now}
	if err := uc.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	company := &entity.Company{
		ID: uuid.New().String(), TenantID: tenant.ID, GroupID: group.ID, Name: companyName, CreatedAt: now,
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Un perfil sin confirmar devuelve ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Confirmed {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:    user.ID,
		TenantID:  user.TenantID,
		CompanyID: user.CompanyID,
		Role:      user.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// ToUserResponse mapea el perfil sin el hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Role:      u.Role,
		Confirmed: u.Confirmed,
		CreatedAt: u.CreatedAt,
	}
}
