package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/simulador-reforma/internal/application/dto"
	"github.com/jhoicas/simulador-reforma/internal/domain"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/repository"
	"github.com/jhoicas/simulador-reforma/pkg/cnpj"
)

// TenancyUseCase jerarquía tenant > grupo > empresa > filial.
// Todo lo que no es el propio tenant se crea dentro del tenant del usuario autenticado.
type TenancyUseCase struct {
	tenants   repository.TenantRepository
	groups    repository.CompanyGroupRepository
	companies repository.CompanyRepository
	branches  repository.BranchRepository
}

// NewTenancyUseCase construye el caso de uso con los puertos de persistencia.
func NewTenancyUseCase(
	tenants repository.TenantRepository,
	groups repository.CompanyGroupRepository,
	companies repository.CompanyRepository,
	branches repository.BranchRepository,
) *TenancyUseCase {
	return &TenancyUseCase{tenants: tenants, groups: groups, companies: companies, branches: branches}
}

// CreateTenant crea un tenant.
func (uc *TenancyUseCase) CreateTenant(ctx context.Context, in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.Tenant{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	if err := uc.tenants.Create(ctx, t); err != nil {
		return nil, err
	}
	return &dto.TenantResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}, nil
}

// ListTenants lista tenants con paginación. Con tenantID no vacío devuelve solo ese
// tenant; el listado completo queda para el rol platform.
func (uc *TenancyUseCase) ListTenants(ctx context.Context, tenantID string, page dto.PageRequest) (*dto.TenantListResponse, error) {
	page.DefaultPage()
	var list []*entity.Tenant
	if tenantID != "" {
		t, err := uc.tenants.GetByID(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		if t != nil && page.Offset == 0 {
			list = []*entity.Tenant{t}
		}
	} else {
		all, err := uc.tenants.List(ctx, page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		list = all
	}
	items := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.TenantResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt})
	}
	return &dto.TenantListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// CreateGroup crea un grupo empresarial en el tenant.
func (uc *TenancyUseCase) CreateGroup(ctx context.Context, tenantID string, in dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	g := &entity.CompanyGroup{ID: uuid.New().String(), TenantID: tenantID, Name: name, CreatedAt: time.Now()}
	if err := uc.groups.Create(ctx, g); err != nil {
		return nil, err
	}
	return toGroupResponse(g), nil
}

// ListGroups grupos del tenant.
func (uc *TenancyUseCase) ListGroups(ctx context.Context, tenantID string) ([]dto.GroupResponse, error) {
	list, err := uc.groups.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GroupResponse, 0, len(list))
	for _, g := range list {
		out = append(out, *toGroupResponse(g))
	}
	return out, nil
}

// CreateCompany crea una empresa. El grupo debe existir en el mismo tenant (ErrNotFound).
func (uc *TenancyUseCase) CreateCompany(ctx context.Context, tenantID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.GroupID == "" {
		return nil, domain.ErrInvalidInput
	}
	group, err := uc.groups.GetByID(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil || group.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	c := &entity.Company{
		ID: uuid.New().String(), TenantID: tenantID, GroupID: group.ID, Name: name, CreatedAt: time.Now(),
	}
	if err := uc.companies.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCompanyResponse(c), nil
}

// ListCompanies empresas del tenant.
func (uc *TenancyUseCase) ListCompanies(ctx context.Context, tenantID string) ([]dto.CompanyResponse, error) {
	list, err := uc.companies.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCompanyResponse(c))
	}
	return out, nil
}

// CreateBranch crea una filial. El CNPJ se normaliza a 14 dígitos y se validan los
// dígitos verificadores; un CNPJ ya registrado devuelve ErrDuplicate.
func (uc *TenancyUseCase) CreateBranch(ctx context.Context, tenantID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	id := cnpj.Normalize(in.CNPJ)
	if err := cnpj.Validate(id); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	company, err := uc.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	b := &entity.Branch{
		ID: uuid.New().String(), TenantID: tenantID, CompanyID: company.ID, Name: name, CNPJ: id, CreatedAt: time.Now(),
	}
	if err := uc.branches.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBranchResponse(b), nil
}

// ListBranches filiales del tenant, opcionalmente de una sola empresa.
func (uc *TenancyUseCase) ListBranches(ctx context.Context, tenantID, companyID string) ([]dto.BranchResponse, error) {
	list, err := uc.branches.ListByTenant(ctx, tenantID, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *toBranchResponse(b))
	}
	return out, nil
}

func toGroupResponse(g *entity.CompanyGroup) *dto.GroupResponse {
	return &dto.GroupResponse{ID: g.ID, TenantID: g.TenantID, Name: g.Name, CreatedAt: g.CreatedAt}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{ID: c.ID, TenantID: c.TenantID, GroupID: c.GroupID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:            b.ID,
		TenantID:      b.TenantID,
		CompanyID:     b.CompanyID,
		Name:          b.Name,
		CNPJ:          b.CNPJ,
		CNPJFormatted: cnpj.Format(b.CNPJ),
		CreatedAt:     b.CreatedAt,
	}
}
