package repository

import (
	"context"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
)

// TenantRepository define el puerto de persistencia para Tenant (DIP).
// La implementación vive en infrastructure.
type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error)
}

// CompanyGroupRepository puerto de persistencia para grupos empresariales.
type CompanyGroupRepository interface {
	Create(ctx context.Context, group *entity.CompanyGroup) error
	GetByID(ctx context.Context, id string) (*entity.CompanyGroup, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.CompanyGroup, error)
}

// CompanyRepository puerto de persistencia para empresas.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Company, error)
}

// BranchRepository puerto de persistencia para filiales.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	// GetByCNPJ devuelve nil, nil si el tenant no tiene una filial con ese CNPJ.
	GetByCNPJ(ctx context.Context, tenantID, cnpj string) (*entity.Branch, error)
	// FirstByCompany devuelve la filial más antigua de la empresa, o nil, nil.
	FirstByCompany(ctx context.Context, companyID string) (*entity.Branch, error)
	// ListByTenant lista las filiales; companyID vacío no filtra.
	ListByTenant(ctx context.Context, tenantID, companyID string) ([]*entity.Branch, error)
}
