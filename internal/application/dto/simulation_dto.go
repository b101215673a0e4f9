package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportResponse resumen de POST /api/sped/import.
type ImportResponse struct {
	FileID        string     `json:"file_id"`
	BranchID      string     `json:"branch_id"`
	CNPJ          string     `json:"cnpj"`
	PeriodStart   *time.Time `json:"period_start,omitempty"`
	PeriodEnd     *time.Time `json:"period_end,omitempty"`
	Goods         int        `json:"c100"`
	EnergyCredits int        `json:"c500"`
	EnergyDebits  int        `json:"c600"`
	Freight       int        `json:"d100"`
	Lines         int        `json:"lines"`
	Ignored       int        `json:"ignored_lines"`
}

// ImportFileResponse un archivo importado (historial).
type ImportFileResponse struct {
	ID          string     `json:"id"`
	BranchID    string     `json:"branch_id"`
	CNPJ        string     `json:"cnpj"`
	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TotalsDTO carga actual frente a proyectada, redondeada a 2 decimales.
type TotalsDTO struct {
	Current   decimal.Decimal `json:"current"`
	Projected decimal.Decimal `json:"projected"`
	Delta     decimal.Decimal `json:"delta"`
}

// DashboardDTO respuesta de GET /api/simulation/dashboard y de la vista previa.
type DashboardDTO struct {
	Year          int             `json:"year"`
	Rate          TaxRateResponse `json:"rate"`
	RateIsDefault bool            `json:"rate_fallback"` // el año pedido no estaba en el cronograma
	Goods         TotalsDTO       `json:"goods"`
	Energy        TotalsDTO       `json:"energy"`
	Freight       TotalsDTO       `json:"freight"`
	Global        TotalsDTO       `json:"global"`
	Records       int             `json:"records"`
}

// PanelRowDTO una fila de los paneles por categoría.
type PanelRowDTO struct {
	Category    string          `json:"category"`
	CNPJ        string          `json:"cnpj"`
	Period      string          `json:"period"` // MM/AAAA
	IndOper     *int            `json:"ind_oper,omitempty"`
	VlDoc       decimal.Decimal `json:"vl_doc"`
	PisCofins   decimal.Decimal `json:"pis_cofins"`
	IcmsCurrent decimal.Decimal `json:"icms_current"`
	IcmsProj    decimal.Decimal `json:"icms_proj"`
	IbsProj     decimal.Decimal `json:"ibs_proj"`
	CbsProj     decimal.Decimal `json:"cbs_proj"`
	Current     decimal.Decimal `json:"current"`
	Projected   decimal.Decimal `json:"projected"`
}

// PanelDTO respuesta de GET /api/simulation/panels/:category.
type PanelDTO struct {
	Category string          `json:"category"`
	Year     int             `json:"year"`
	Rate     TaxRateResponse `json:"rate"`
	Entities []string        `json:"entities"` // CNPJs disponibles para el filtro
	Rows     []PanelRowDTO   `json:"rows"`
	Totals   TotalsDTO       `json:"totals"`
}
