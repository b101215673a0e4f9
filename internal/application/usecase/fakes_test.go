package usecase_test

import (
	"context"

	"github.com/jhoicas/simulador-reforma/internal/domain"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
)

type memTenants struct{ items []*entity.Tenant }

func (m *memTenants) Create(_ context.Context, t *entity.Tenant) error {
	m.items = append(m.items, t)
	return nil
}

func (m *memTenants) GetByID(_ context.Context, id string) (*entity.Tenant, error) {
	for _, t := range m.items {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (m *memTenants) List(_ context.Context, limit, offset int) ([]*entity.Tenant, error) {
	if offset >= len(m.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return m.items[offset:end], nil
}

type memGroups struct{ items []*entity.CompanyGroup }

func (m *memGroups) Create(_ context.Context, g *entity.CompanyGroup) error {
	m.items = append(m.items, g)
	return nil
}

func (m *memGroups) GetByID(_ context.Context, id string) (*entity.CompanyGroup, error) {
	for _, g := range m.items {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (m *memGroups) ListByTenant(_ context.Context, tenantID string) ([]*entity.CompanyGroup, error) {
	var out []*entity.CompanyGroup
	for _, g := range m.items {
		if g.TenantID == tenantID {
			out = append(out, g)
		}
	}
	return out, nil
}

type memCompanies struct{ items []*entity.Company }

func (m *memCompanies) Create(_ context.Context, c *entity.Company) error {
	m.items = append(m.items, c)
	return nil
}

func (m *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	for _, c := range m.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCompanies) ListByTenant(_ context.Context, tenantID string) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range m.items {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

// memBranches aplica la unicidad de CNPJ como la tabla filiales.
type memBranches struct{ items []*entity.Branch }

func (m *memBranches) Create(_ context.Context, b *entity.Branch) error {
	for _, x := range m.items {
		if x.CNPJ == b.CNPJ {
			return domain.ErrDuplicate
		}
	}
	m.items = append(m.items, b)
	return nil
}

func (m *memBranches) GetByCNPJ(_ context.Context, tenantID, cnpj string) (*entity.Branch, error) {
	for _, b := range m.items {
		if b.TenantID == tenantID && b.CNPJ == cnpj {
			return b, nil
		}
	}
	return nil, nil
}

func (m *memBranches) FirstByCompany(_ context.Context, companyID string) (*entity.Branch, error) {
	for _, b := range m.items {
		if b.CompanyID == companyID {
			return b, nil
		}
	}
	return nil, nil
}

func (m *memBranches) ListByTenant(_ context.Context, tenantID, companyID string) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range m.items {
		if b.TenantID == tenantID && (companyID == "" || b.CompanyID == companyID) {
			out = append(out, b)
		}
	}
	return out, nil
}

type memUsers struct{ items []*entity.User }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.items = append(m.items, u)
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.items {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) ListByTenant(_ context.Context, tenantID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.items {
		if u.TenantID == tenantID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUsers) Confirm(_ context.Context, tenantID, id string) error {
	for _, u := range m.items {
		if u.ID == id && u.TenantID == tenantID {
			u.Confirmed = true
			return nil
		}
	}
	return domain.ErrNotFound
}

type memRates struct {
	rates []entity.TaxRateYear
	err   error
}

func (m *memRates) List(context.Context) ([]entity.TaxRateYear, error) { return m.rates, m.err }

func (m *memRates) Upsert(_ context.Context, r entity.TaxRateYear) error {
	for i := range m.rates {
		if m.rates[i].Year == r.Year {
			m.rates[i] = r
			return nil
		}
	}
	m.rates = append(m.rates, r)
	return nil
}
