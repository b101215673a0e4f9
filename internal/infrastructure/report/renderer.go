// Package report genera las exportaciones de la simulación: libro Excel
// (resumen más una hoja por categoría) e informe PDF resumido.
package report

import (
	"github.com/dustin/go-humanize"

	"github.com/jhoicas/simulador-reforma/internal/application/simulation"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/sped"
	"github.com/jhoicas/simulador-reforma/pkg/cnpj"
)

var _ simulation.Renderer = (*Renderer)(nil)

// Renderer implementa simulation.Renderer con excelize y maroto.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// FormatBRL formatea un monto como "R$ 1.234,56".
func FormatBRL(v float64) string {
	if v < 0 {
		return "-R$ " + humanize.FormatFloat("#.###,##", -v)
	}
	return "R$ " + humanize.FormatFloat("#.###,##", v)
}

// FormatPercent "0,9%".
func FormatPercent(v float64) string {
	return humanize.FormatFloat("#.###,##", v) + "%"
}

func entityLabel(id string) string {
	if len(id) == cnpj.Length {
		return cnpj.Format(id)
	}
	return id
}

func directionLabel(ind int) string {
	switch ind {
	case entity.IndOperIn:
		return "Entrada"
	case entity.IndOperOut:
		return "Saída"
	case entity.IndOperNone:
		return ""
	}
	return "?"
}

func period(dt string) string { return sped.PeriodLabel(dt) }
