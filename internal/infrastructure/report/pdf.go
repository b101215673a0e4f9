package report

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/simulador-reforma/internal/application/simulation"
	"github.com/jhoicas/simulador-reforma/internal/domain/projection"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorGreen   = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// PDF informe A4: alícuotas del año, tabla de agregados y cantidad de registros.
func (Renderer) PDF(r simulation.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(titleRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(rateRow(r))
	m.AddRows(line.NewRow(4))
	m.AddRows(totalsHeaderRow())
	m.AddRows(totalsRow("Mercadorias", r.Summary.Goods, false))
	m.AddRows(totalsRow("Energia", r.Summary.Energy, false))
	m.AddRows(totalsRow("Fretes", r.Summary.Freight, false))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow("Global", r.Summary.Global, true))
	m.AddRows(line.NewRow(4))
	m.AddRows(countsRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(r simulation.Report) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Impacto projetado da reforma tributária", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Ano %d", r.Year), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Gerado em "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func rateRow(r simulation.Report) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Size: 8, Color: colorGray, Top: 1})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5})
	}
	return row.New(12).Add(
		col.New(4).Add(label("IBS"), value(FormatPercent(r.Rate.PercIBS))),
		col.New(4).Add(label("CBS"), value(FormatPercent(r.Rate.PercCBS))),
		col.New(4).Add(label("Redução do ICMS"), value(FormatPercent(r.Rate.PercReducICMS))),
	)
}

func totalsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Categoria", 3, align.Left),
		h("Carga atual", 3, align.Right),
		h("Carga projetada", 3, align.Right),
		h("Diferença", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func totalsRow(label string, t projection.Totals, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	deltaColor := colorGreen
	if t.Delta > 0 {
		deltaColor = colorRed
	}
	cell := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Style: style, Size: 9, Align: a, Top: 1.5, Left: 1, Right: 1})
	}
	return row.New(7).Add(
		col.New(3).Add(cell(label, align.Left)),
		col.New(3).Add(cell(FormatBRL(t.Current), align.Right)),
		col.New(3).Add(cell(FormatBRL(t.Projected), align.Right)),
		col.New(3).Add(text.New(FormatBRL(t.Delta), props.Text{
			Style: style, Size: 9, Align: align.Right, Top: 1.5, Right: 1, Color: deltaColor,
		})),
	)
}

func countsRow(r simulation.Report) core.Row {
	msg := fmt.Sprintf("Registros: %d mercadorias, %d energia, %d fretes.",
		len(r.Goods), len(r.Energy), len(r.Freight))
	return row.New(8).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1}),
	))
}
