package projection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/projection"
)

const eps = 1e-9

var rate2027 = entity.TaxRateYear{Year: 2027, PercIBS: 0.1, PercCBS: 0.9, PercReducICMS: 10}

func sampleRecord() entity.SpedRecord {
	return entity.SpedRecord{
		Category: entity.CategoryGoods, CNPJ: "11222333000181", IndOper: entity.IndOperOut,
		VlDoc: 1000, VlIcms: 100, VlPis: 10, VlCofins: 20,
	}
}

func TestProject_EjemploDeReferencia(t *testing.T) {
	rec := sampleRecord()

	res := projection.Project(rec, rate2027)

	assert.InDelta(t, 90.0, res.ICMS, eps)
	assert.InDelta(t, 1.0, res.IBS, eps)
	assert.InDelta(t, 9.0, res.CBS, eps)
	assert.InDelta(t, 100.0, res.Total(), eps)
	assert.InDelta(t, 130.0, projection.Current(rec), eps)
}

func TestProject_ReduccionTotalEliminaICMS(t *testing.T) {
	res := projection.Project(sampleRecord(), entity.TaxRateYear{Year: 2032, PercIBS: 0.6, PercCBS: 5.4, PercReducICMS: 100})
	assert.InDelta(t, 0.0, res.ICMS, eps)
	assert.InDelta(t, 6.0, res.IBS, eps)
	assert.InDelta(t, 54.0, res.CBS, eps)
}

func TestSelect_AnioExistente(t *testing.T) {
	r, ok := projection.Select(projection.DefaultSchedule(), 2030)
	assert.True(t, ok)
	assert.Equal(t, entity.TaxRateYear{Year: 2030, PercIBS: 0.4, PercCBS: 3.6, PercReducICMS: 60}, r)
}

func TestSelect_AnioAusenteUsaPrimeraEntrada(t *testing.T) {
	// Orden deliberadamente no cronológico: la primera entrada es la recibida, no la menor.
	schedule := []entity.TaxRateYear{
		{Year: 2029, PercIBS: 0.3, PercCBS: 2.7, PercReducICMS: 40},
		{Year: 2027, PercIBS: 0.1, PercCBS: 0.9, PercReducICMS: 10},
	}

	missing, ok := projection.Select(schedule, 2040)
	assert.False(t, ok)
	first, _ := projection.Select(schedule, schedule[0].Year)
	assert.Equal(t, first, missing)

	data := entity.SpedData{Goods: []entity.SpedRecord{sampleRecord()}}
	assert.Equal(t, projection.Summarize(data, first), projection.Summarize(data, missing))
}

func TestSelect_CronogramaVacioUsaDefault(t *testing.T) {
	r, ok := projection.Select(nil, 2031)
	assert.True(t, ok)
	assert.Equal(t, 0.5, r.PercIBS)

	r, ok = projection.Select([]entity.TaxRateYear{}, 1999)
	assert.False(t, ok)
	assert.Equal(t, projection.DefaultYear, r.Year)
}

func TestDefaultSchedule_Copia(t *testing.T) {
	s := projection.DefaultSchedule()
	require.Len(t, s, 7)
	s[0].PercIBS = 99
	assert.Equal(t, 0.1, projection.DefaultSchedule()[0].PercIBS)
	for i, r := range projection.DefaultSchedule() {
		assert.Equal(t, 2027+i, r.Year)
	}
}

func TestSummarize_CategoriasYGlobal(t *testing.T) {
	data := entity.SpedData{
		Goods: []entity.SpedRecord{sampleRecord()},
		EnergyCredits: []entity.SpedRecord{
			{Category: entity.CategoryEnergyCredit, VlDoc: 500, VlIcms: 90, VlPis: 8, VlCofins: 37},
		},
		EnergyDebits: []entity.SpedRecord{
			{Category: entity.CategoryEnergyDebit, VlDoc: 200},
		},
		Freight: []entity.SpedRecord{
			{Category: entity.CategoryFreight, VlDoc: 300, VlIcms: 36, VlPis: 5, VlCofins: 23},
		},
	}

	s := projection.Summarize(data, rate2027)

	assert.Equal(t, rate2027, s.Rate)
	assert.InDelta(t, 130.0, s.Goods.Current, eps)
	assert.InDelta(t, 100.0, s.Goods.Projected, eps)
	assert.InDelta(t, -30.0, s.Goods.Delta, eps)

	// energía: 135 actual; proyectado 81 + 0,5 + 4,5 + (0 + 0,2 + 1,8)
	assert.InDelta(t, 135.0, s.Energy.Current, eps)
	assert.InDelta(t, 88.0, s.Energy.Projected, eps)

	// flete: 64 actual; proyectado 32,4 + 0,3 + 2,7
	assert.InDelta(t, 64.0, s.Freight.Current, eps)
	assert.InDelta(t, 35.4, s.Freight.Projected, eps)

	assert.InDelta(t, 329.0, s.Global.Current, eps)
	assert.InDelta(t, 223.4, s.Global.Projected, eps)
	assert.InDelta(t, s.Global.Projected-s.Global.Current, s.Global.Delta, eps)
}

func TestSummarize_SinRegistros(t *testing.T) {
	s := projection.Summarize(entity.SpedData{}, rate2027)
	assert.Equal(t, projection.Totals{}, s.Global)
	assert.Equal(t, projection.Totals{}, s.Goods)
	assert.Equal(t, projection.Totals{}, s.Energy)
	assert.Equal(t, projection.Totals{}, s.Freight)
}

func TestProjectRecords_ConservaOrden(t *testing.T) {
	a := sampleRecord()
	b := sampleRecord()
	b.VlDoc = 2000

	rows := projection.ProjectRecords([]entity.SpedRecord{a, b}, rate2027)

	require.Len(t, rows, 2)
	assert.Equal(t, 1000.0, rows[0].Record.VlDoc)
	assert.InDelta(t, 2.0, rows[1].Projected.IBS, eps)
	assert.InDelta(t, 130.0, rows[1].Current, eps)
}
