package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simulador-reforma/internal/application/dto"
	"github.com/jhoicas/simulador-reforma/internal/application/usecase"
	"github.com/jhoicas/simulador-reforma/internal/domain"
)

type tenancyEnv struct {
	uc       *usecase.TenancyUseCase
	branches *memBranches
}

func newTenancy() tenancyEnv {
	branches := &memBranches{}
	return tenancyEnv{
		uc:       usecase.NewTenancyUseCase(&memTenants{}, &memGroups{}, &memCompanies{}, branches),
		branches: branches,
	}
}

// seedCompany crea tenant, grupo y empresa y devuelve tenantID y companyID.
func seedCompany(t *testing.T, uc *usecase.TenancyUseCase) (string, string) {
	t.Helper()
	ctx := context.Background()
	tenant, err := uc.CreateTenant(ctx, dto.CreateTenantRequest{Name: "Grupo Alfa"})
	require.NoError(t, err)
	group, err := uc.CreateGroup(ctx, tenant.ID, dto.CreateGroupRequest{Name: "Alfa Holding"})
	require.NoError(t, err)
	company, err := uc.CreateCompany(ctx, tenant.ID, dto.CreateCompanyRequest{GroupID: group.ID, Name: "Alfa Indústria"})
	require.NoError(t, err)
	return tenant.ID, company.ID
}

func TestTenancy_JerarquiaCompleta(t *testing.T) {
	env := newTenancy()
	ctx := context.Background()
	tenantID, companyID := seedCompany(t, env.uc)

	branch, err := env.uc.CreateBranch(ctx, tenantID, dto.CreateBranchRequest{
		CompanyID: companyID, Name: "Matriz", CNPJ: "11.222.333/0001-81",
	})
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", branch.CNPJ)
	assert.Equal(t, "11.222.333/0001-81", branch.CNPJFormatted)

	list, err := env.uc.ListBranches(ctx, tenantID, companyID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	companies, err := env.uc.ListCompanies(ctx, tenantID)
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

func TestTenancy_CNPJInvalidoODuplicado(t *testing.T) {
	env := newTenancy()
	ctx := context.Background()
	tenantID, companyID := seedCompany(t, env.uc)

	_, err := env.uc.CreateBranch(ctx, tenantID, dto.CreateBranchRequest{CompanyID: companyID, Name: "X", CNPJ: "11222333000182"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in := dto.CreateBranchRequest{CompanyID: companyID, Name: "Matriz", CNPJ: "11222333000181"}
	_, err = env.uc.CreateBranch(ctx, tenantID, in)
	require.NoError(t, err)
	_, err = env.uc.CreateBranch(ctx, tenantID, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestTenancy_OtroTenantNoVeLaEmpresa(t *testing.T) {
	env := newTenancy()
	ctx := context.Background()
	_, companyID := seedCompany(t, env.uc)

	_, err := env.uc.CreateBranch(ctx, "otro-tenant", dto.CreateBranchRequest{
		CompanyID: companyID, Name: "Filial", CNPJ: "11222333000181",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = env.uc.CreateCompany(ctx, "otro-tenant", dto.CreateCompanyRequest{GroupID: "no-existe", Name: "Beta"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTenancy_ListTenantsPaginado(t *testing.T) {
	env := newTenancy()
	ctx := context.Background()
	for _, n := range []string{"A", "B", "C"} {
		_, err := env.uc.CreateTenant(ctx, dto.CreateTenantRequest{Name: n})
		require.NoError(t, err)
	}

	out, err := env.uc.ListTenants(ctx, "", dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Limit)

	out, err = env.uc.ListTenants(ctx, "", dto.PageRequest{Limit: 500, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 100, out.Page.Limit)

	_, err = env.uc.CreateTenant(ctx, dto.CreateTenantRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTenancy_ListTenantsConTenantSoloDevuelveElPropio(t *testing.T) {
	env := newTenancy()
	ctx := context.Background()
	a, err := env.uc.CreateTenant(ctx, dto.CreateTenantRequest{Name: "Alfa"})
	require.NoError(t, err)
	_, err = env.uc.CreateTenant(ctx, dto.CreateTenantRequest{Name: "Beta"})
	require.NoError(t, err)

	out, err := env.uc.ListTenants(ctx, a.ID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Alfa", out.Items[0].Name)

	out, err = env.uc.ListTenants(ctx, a.ID, dto.PageRequest{Offset: 1})
	require.NoError(t, err)
	assert.Empty(t, out.Items)

	out, err = env.uc.ListTenants(ctx, "no-existe", dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}
