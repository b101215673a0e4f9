package simulation

import (
	"context"
	"errors"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/repository"
)

type fakeBranches struct {
	byCNPJ    map[string]*entity.Branch
	byCompany map[string]*entity.Branch
}

func (f *fakeBranches) Create(context.Context, *entity.Branch) error { return nil }

func (f *fakeBranches) GetByCNPJ(_ context.Context, tenantID, cnpj string) (*entity.Branch, error) {
	b := f.byCNPJ[cnpj]
	if b == nil || b.TenantID != tenantID {
		return nil, nil
	}
	return b, nil
}

func (f *fakeBranches) FirstByCompany(_ context.Context, companyID string) (*entity.Branch, error) {
	return f.byCompany[companyID], nil
}

func (f *fakeBranches) ListByTenant(context.Context, string, string) ([]*entity.Branch, error) {
	return nil, nil
}

// fakeEfd registra lo que la importación escribe.
type fakeEfd struct {
	files   []*entity.EfdFile
	blocks  []*entity.EfdBlock
	records map[string][]entity.SpedRecord // por ID de bloque
	failOn  string
	stored  entity.SpedData
}

func newFakeEfd() *fakeEfd { return &fakeEfd{records: map[string][]entity.SpedRecord{}} }

func (f *fakeEfd) CreateFile(_ context.Context, file *entity.EfdFile) error {
	f.files = append(f.files, file)
	return nil
}

func (f *fakeEfd) CreateBlock(_ context.Context, b *entity.EfdBlock) error {
	if f.failOn == b.Block {
		return errors.New("insert falló")
	}
	f.blocks = append(f.blocks, b)
	return nil
}

func (f *fakeEfd) InsertRecords(_ context.Context, b *entity.EfdBlock, recs []entity.SpedRecord) error {
	f.records[b.ID] = append(f.records[b.ID], recs...)
	return nil
}

func (f *fakeEfd) LoadRecords(context.Context, string) (entity.SpedData, error) { return f.stored, nil }

func (f *fakeEfd) ListFiles(context.Context, string) ([]*entity.EfdFile, error) { return f.files, nil }

type fakeTx struct {
	repo  *fakeEfd
	calls int
}

func (t *fakeTx) RunImport(_ context.Context, fn func(repository.EfdRepository) error) error {
	t.calls++
	return fn(t.repo)
}

type fakeSchedule struct {
	rates []entity.TaxRateYear
	err   error
}

func (f fakeSchedule) Schedule(context.Context) ([]entity.TaxRateYear, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	if len(f.rates) == 0 {
		return []entity.TaxRateYear{
			{Year: 2027, PercIBS: 0.1, PercCBS: 0.9, PercReducICMS: 10},
			{Year: 2028, PercIBS: 0.2, PercCBS: 1.8, PercReducICMS: 20},
		}, true, nil
	}
	return f.rates, false, nil
}

type fakeRenderer struct {
	got Report
}

func (r *fakeRenderer) Excel(rep Report) ([]byte, error) {
	r.got = rep
	return []byte("xlsx"), nil
}

func (r *fakeRenderer) PDF(rep Report) ([]byte, error) {
	r.got = rep
	return []byte("%PDF"), nil
}
