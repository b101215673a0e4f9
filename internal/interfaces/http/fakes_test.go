package http_test

import (
	"context"
	"sort"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/repository"
)

type memBranches struct {
	items []*entity.Branch
}

func (m *memBranches) Create(_ context.Context, b *entity.Branch) error {
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

func (m *memBranches) ListByTenant(_ context.Context, tenantID, _ string) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range m.items {
		if b.TenantID == tenantID {
			out = append(out, b)
		}
	}
	return out, nil
}

// memEfd guarda lo importado y lo devuelve tal cual en LoadRecords.
type memEfd struct {
	files []*entity.EfdFile
	data  entity.SpedData
}

func (m *memEfd) CreateFile(_ context.Context, f *entity.EfdFile) error {
	m.files = append(m.files, f)
	return nil
}

func (m *memEfd) CreateBlock(context.Context, *entity.EfdBlock) error { return nil }

func (m *memEfd) InsertRecords(_ context.Context, _ *entity.EfdBlock, recs []entity.SpedRecord) error {
	for _, rec := range recs {
		switch rec.Category {
		case entity.CategoryGoods:
			m.data.Goods = append(m.data.Goods, rec)
		case entity.CategoryEnergyCredit:
			m.data.EnergyCredits = append(m.data.EnergyCredits, rec)
		case entity.CategoryEnergyDebit:
			m.data.EnergyDebits = append(m.data.EnergyDebits, rec)
		case entity.CategoryFreight:
			m.data.Freight = append(m.data.Freight, rec)
		}
	}
	return nil
}

func (m *memEfd) LoadRecords(context.Context, string) (entity.SpedData, error) { return m.data, nil }

func (m *memEfd) ListFiles(context.Context, string) ([]*entity.EfdFile, error) { return m.files, nil }

func (m *memEfd) RunImport(_ context.Context, fn func(repository.EfdRepository) error) error {
	return fn(m)
}

type memRates struct {
	byYear map[int]entity.TaxRateYear
}

func (m *memRates) List(context.Context) ([]entity.TaxRateYear, error) {
	out := make([]entity.TaxRateYear, 0, len(m.byYear))
	for _, r := range m.byYear {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func (m *memRates) Upsert(_ context.Context, r entity.TaxRateYear) error {
	if m.byYear == nil {
		m.byYear = map[int]entity.TaxRateYear{}
	}
	m.byYear[r.Year] = r
	return nil
}

type memTenants struct {
	items []*entity.Tenant
}

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
