// Package projection aplica una entrada del cronograma de transición a los
// registros de la EFD y calcula la carga actual frente a la proyectada.
// Todo el cálculo es en float64 y sin redondeo; redondear es tarea de la presentación.
package projection

import "github.com/jhoicas/simulador-reforma/internal/domain/entity"

// Result valores proyectados de un registro.
type Result struct {
	ICMS float64 `json:"icms_proj"`
	IBS  float64 `json:"ibs_proj"`
	CBS  float64 `json:"cbs_proj"`
}

// Total carga proyectada del registro.
func (r Result) Total() float64 { return r.ICMS + r.IBS + r.CBS }

// Project calcula el trío ICMS/IBS/CBS proyectado de un registro.
//
//	icms = icms - icms*reduc/100
//	ibs  = vlDoc*ibs/100
//	cbs  = vlDoc*cbs/100
func Project(rec entity.SpedRecord, rate entity.TaxRateYear) Result {
	return Result{
		ICMS: rec.VlIcms - rec.VlIcms*rate.PercReducICMS/100,
		IBS:  rec.VlDoc * rate.PercIBS / 100,
		CBS:  rec.VlDoc * rate.PercCBS / 100,
	}
}

// Current carga actual del registro: PIS + COFINS + ICMS.
func Current(rec entity.SpedRecord) float64 {
	return rec.VlPis + rec.VlCofins + rec.VlIcms
}

// Totals agregado actual frente a proyectado.
type Totals struct {
	Current   float64 `json:"current"`
	Projected float64 `json:"projected"`
	Delta     float64 `json:"delta"`
}

// Add suma un registro al agregado.
func (t Totals) Add(rec entity.SpedRecord, rate entity.TaxRateYear) Totals {
	t.Current += Current(rec)
	t.Projected += Project(rec, rate).Total()
	t.Delta = t.Projected - t.Current
	return t
}

// Merge combina dos agregados.
func (t Totals) Merge(o Totals) Totals {
	t.Current += o.Current
	t.Projected += o.Projected
	t.Delta = t.Projected - t.Current
	return t
}

// Fold agrega una secuencia de registros.
func Fold(records []entity.SpedRecord, rate entity.TaxRateYear) Totals {
	var t Totals
	for _, rec := range records {
		t = t.Add(rec, rate)
	}
	return t
}

// Summary agregados por categoría y global. Energía une C500 y C600.
type Summary struct {
	Rate    entity.TaxRateYear `json:"rate"`
	Goods   Totals             `json:"goods"`
	Energy  Totals             `json:"energy"`
	Freight Totals             `json:"freight"`
	Global  Totals             `json:"global"`
}

// Summarize calcula los agregados de todas las categorías con una misma entrada.
func Summarize(data entity.SpedData, rate entity.TaxRateYear) Summary {
	s := Summary{
		Rate:    rate,
		Goods:   Fold(data.Goods, rate),
		Energy:  Fold(data.Energy(), rate),
		Freight: Fold(data.Freight, rate),
	}
	s.Global = s.Goods.Merge(s.Energy).Merge(s.Freight)
	return s
}

// Row registro con su proyección, para los paneles por categoría.
type Row struct {
	Record    entity.SpedRecord `json:"record"`
	Current   float64           `json:"current"`
	Projected Result            `json:"projected"`
}

// ProjectRecords proyecta cada registro conservando el orden.
func ProjectRecords(records []entity.SpedRecord, rate entity.TaxRateYear) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{Record: rec, Current: Current(rec), Projected: Project(rec, rate)})
	}
	return rows
}
