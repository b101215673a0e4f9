package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/simulador-reforma/internal/application/simulation"
	"github.com/jhoicas/simulador-reforma/internal/domain/projection"
)

const (
	sheetSummary = "Resumo"
	moneyFormat  = `#,##0.00`
)

var detailHeader = []any{
	"CNPJ", "Período", "Operação", "Valor documento", "PIS+COFINS", "ICMS atual",
	"ICMS projetado", "IBS", "CBS", "Carga atual", "Carga projetada", "Diferença",
}

// Excel arma el libro: hoja de resumen y una hoja por categoría con las filas proyectadas.
func (Renderer) Excel(r simulation.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("excel: %w", err)
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}
	if err := writeSummary(f, st, r); err != nil {
		return nil, err
	}
	details := []struct {
		name string
		rows []projection.Row
	}{
		{"Mercadorias", r.Goods},
		{"Energia", r.Energy},
		{"Fretes", r.Freight},
	}
	for _, d := range details {
		if err := writeDetail(f, st, d.name, d.rows); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

type styles struct {
	header int
	money  int
	bold   int
}

func newStyles(f *excelize.File) (styles, error) {
	var (
		st  styles
		err error
	)
	format := moneyFormat
	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return st, fmt.Errorf("excel: estilo: %w", err)
	}
	st.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return st, fmt.Errorf("excel: estilo: %w", err)
	}
	st.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return st, fmt.Errorf("excel: estilo: %w", err)
	}
	return st, nil
}

func writeSummary(f *excelize.File, st styles, r simulation.Report) error {
	s := sheetSummary
	rows := [][]any{
		{r.Title},
		{"Ano", r.Year},
		{"IBS %", r.Rate.PercIBS},
		{"CBS %", r.Rate.PercCBS},
		{"Redução ICMS %", r.Rate.PercReducICMS},
		{"Gerado em", r.GeneratedAt.Format("02/01/2006 15:04")},
		{},
		{"Categoria", "Carga atual", "Carga projetada", "Diferença"},
	}
	totals := []struct {
		label string
		t     projection.Totals
	}{
		{"Mercadorias", r.Summary.Goods},
		{"Energia", r.Summary.Energy},
		{"Fretes", r.Summary.Freight},
		{"Global", r.Summary.Global},
	}
	for _, t := range totals {
		rows = append(rows, []any{t.label, t.t.Current, t.t.Projected, t.t.Delta})
	}

	for i, values := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(s, cell, &values); err != nil {
			return fmt.Errorf("excel: resumo: %w", err)
		}
	}
	headerRow := 8
	first := headerRow + 1
	last := headerRow + len(totals)
	if err := f.SetCellStyle(s, "A1", "A1", st.bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(s, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("D%d", headerRow), st.header); err != nil {
		return err
	}
	if err := f.SetCellStyle(s, fmt.Sprintf("B%d", first), fmt.Sprintf("D%d", last), st.money); err != nil {
		return err
	}
	if err := f.SetCellStyle(s, fmt.Sprintf("A%d", last), fmt.Sprintf("A%d", last), st.bold); err != nil {
		return err
	}
	return f.SetColWidth(s, "A", "D", 20)
}

func writeDetail(f *excelize.File, st styles, name string, rows []projection.Row) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("excel: hoja %s: %w", name, err)
	}
	header := detailHeader
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("excel: %s: %w", name, err)
	}
	for i, row := range rows {
		rec := row.Record
		projected := row.Projected.Total()
		values := []any{
			entityLabel(rec.CNPJ),
			period(rec.DtDoc),
			directionLabel(rec.IndOper),
			rec.VlDoc,
			rec.VlPis + rec.VlCofins,
			rec.VlIcms,
			row.Projected.ICMS,
			row.Projected.IBS,
			row.Projected.CBS,
			row.Current,
			projected,
			projected - row.Current,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("excel: %s: %w", name, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(detailHeader), len(rows)+1)
	if err := f.SetCellStyle(name, "A1", fmt.Sprintf("L%d", 1), st.header); err != nil {
		return err
	}
	if len(rows) > 0 {
		if err := f.SetCellStyle(name, "D2", last, st.money); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(name, "A", "A", 22); err != nil {
		return err
	}
	return f.SetColWidth(name, "B", "L", 16)
}
