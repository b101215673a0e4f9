package simulation

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-reforma/internal/application/dto"
	"github.com/jhoicas/simulador-reforma/internal/domain"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/projection"
	"github.com/jhoicas/simulador-reforma/internal/domain/repository"
	"github.com/jhoicas/simulador-reforma/internal/domain/sped"
)

// Paneles disponibles.
const (
	PanelGoods   = "goods"
	PanelEnergy  = "energy"
	PanelFreight = "freight"
)

// PanelQuery filtros de un panel. IndOper nil muestra ambas direcciones;
// en energía se ignora porque esos registros no tienen dirección.
type PanelQuery struct {
	Year    int
	IndOper *int
	CNPJ    string
}

// ViewsUseCase vistas de la simulación sobre lo importado por el tenant.
type ViewsUseCase struct {
	records     repository.EfdReader
	rates       ScheduleSource
	renderer    Renderer
	defaultYear int
	encoding    string
}

// NewViewsUseCase construye el caso de uso. defaultYear se usa cuando la petición no trae año.
func NewViewsUseCase(records repository.EfdReader, rates ScheduleSource, renderer Renderer, defaultYear int, encoding string) *ViewsUseCase {
	if defaultYear == 0 {
		defaultYear = projection.DefaultYear
	}
	return &ViewsUseCase{records: records, rates: rates, renderer: renderer, defaultYear: defaultYear, encoding: encoding}
}

// load trae registros y cronograma en paralelo.
func (uc *ViewsUseCase) load(ctx context.Context, tenantID string) (entity.SpedData, []entity.TaxRateYear, error) {
	type recordsResult struct {
		data entity.SpedData
		err  error
	}
	type ratesResult struct {
		rates []entity.TaxRateYear
		err   error
	}
	recordsCh := make(chan recordsResult, 1)
	ratesCh := make(chan ratesResult, 1)

	go func() {
		data, err := uc.records.LoadRecords(ctx, tenantID)
		recordsCh <- recordsResult{data, err}
	}()
	go func() {
		rates, _, err := uc.rates.Schedule(ctx)
		ratesCh <- ratesResult{rates, err}
	}()

	recs := <-recordsCh
	rates := <-ratesCh
	if recs.err != nil {
		return entity.SpedData{}, nil, fmt.Errorf("simulación: registros: %w", recs.err)
	}
	if rates.err != nil {
		return entity.SpedData{}, nil, fmt.Errorf("simulación: alícuotas: %w", rates.err)
	}
	return recs.data, rates.rates, nil
}

func (uc *ViewsUseCase) year(y int) int {
	if y == 0 {
		return uc.defaultYear
	}
	return y
}

// Dashboard agregados actual/proyectado por categoría y global.
func (uc *ViewsUseCase) Dashboard(ctx context.Context, tenantID string, year int) (*dto.DashboardDTO, error) {
	data, schedule, err := uc.load(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dashboard(data, schedule, uc.year(year)), nil
}

// Preview calcula el dashboard directamente de un archivo, sin persistir nada.
func (uc *ViewsUseCase) Preview(ctx context.Context, r io.Reader, year int) (*dto.DashboardDTO, error) {
	data, _, err := parseFile(r, uc.encoding)
	if err != nil {
		return nil, err
	}
	schedule, _, err := uc.rates.Schedule(ctx)
	if err != nil {
		return nil, err
	}
	return dashboard(data, schedule, uc.year(year)), nil
}

// Panel filas proyectadas de una categoría con sus totales.
func (uc *ViewsUseCase) Panel(ctx context.Context, tenantID, panel string, q PanelQuery) (*dto.PanelDTO, error) {
	data, schedule, err := uc.load(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	records, directional, err := panelRecords(data, panel)
	if err != nil {
		return nil, err
	}
	year := uc.year(q.Year)
	rate, _ := projection.Select(schedule, year)

	filter := projection.Filter{CNPJ: q.CNPJ}
	if directional {
		filter.IndOper = q.IndOper
	}
	rows := projection.ProjectRecords(filter.Apply(records), rate)

	out := &dto.PanelDTO{
		Category: panel,
		Year:     year,
		Rate:     rateDTO(rate),
		Entities: projection.Entities(records),
		Rows:     make([]dto.PanelRowDTO, 0, len(rows)),
	}
	if out.Entities == nil {
		out.Entities = []string{}
	}
	var totals projection.Totals
	for _, row := range rows {
		out.Rows = append(out.Rows, panelRow(row, directional))
		totals = totals.Add(row.Record, rate)
	}
	out.Totals = totalsDTO(totals)
	return out, nil
}

// BuildReport datos de exportación del tenant para el año pedido.
func (uc *ViewsUseCase) BuildReport(ctx context.Context, tenantID string, year int) (Report, error) {
	data, schedule, err := uc.load(ctx, tenantID)
	if err != nil {
		return Report{}, err
	}
	y := uc.year(year)
	rate, _ := projection.Select(schedule, y)
	return Report{
		Title:       "Simulação da reforma tributária",
		Year:        y,
		Rate:        rate,
		Summary:     projection.Summarize(data, rate),
		Goods:       projection.ProjectRecords(data.Goods, rate),
		Energy:      projection.ProjectRecords(data.Energy(), rate),
		Freight:     projection.ProjectRecords(data.Freight, rate),
		GeneratedAt: time.Now(),
	}, nil
}

// ExportExcel libro con el resumen y una hoja por categoría.
func (uc *ViewsUseCase) ExportExcel(ctx context.Context, tenantID string, year int) ([]byte, error) {
	rep, err := uc.BuildReport(ctx, tenantID, year)
	if err != nil {
		return nil, err
	}
	return uc.renderer.Excel(rep)
}

// ExportPDF informe resumido en PDF.
func (uc *ViewsUseCase) ExportPDF(ctx context.Context, tenantID string, year int) ([]byte, error) {
	rep, err := uc.BuildReport(ctx, tenantID, year)
	if err != nil {
		return nil, err
	}
	return uc.renderer.PDF(rep)
}

func dashboard(data entity.SpedData, schedule []entity.TaxRateYear, year int) *dto.DashboardDTO {
	rate, exact := projection.Select(schedule, year)
	s := projection.Summarize(data, rate)
	return &dto.DashboardDTO{
		Year:          year,
		Rate:          rateDTO(rate),
		RateIsDefault: !exact,
		Goods:         totalsDTO(s.Goods),
		Energy:        totalsDTO(s.Energy),
		Freight:       totalsDTO(s.Freight),
		Global:        totalsDTO(s.Global),
		Records:       data.Len(),
	}
}

// panelRecords registros del panel y si admiten filtro por dirección.
func panelRecords(data entity.SpedData, panel string) ([]entity.SpedRecord, bool, error) {
	switch panel {
	case PanelGoods:
		return data.Goods, true, nil
	case PanelEnergy:
		return data.Energy(), false, nil
	case PanelFreight:
		return data.Freight, true, nil
	}
	return nil, false, fmt.Errorf("%w: panel %q (goods, energy, freight)", domain.ErrInvalidInput, panel)
}

func panelRow(row projection.Row, directional bool) dto.PanelRowDTO {
	rec := row.Record
	out := dto.PanelRowDTO{
		Category:    string(rec.Category),
		CNPJ:        rec.CNPJ,
		Period:      sped.PeriodLabel(rec.DtDoc),
		VlDoc:       round(rec.VlDoc),
		PisCofins:   round(rec.VlPis + rec.VlCofins),
		IcmsCurrent: round(rec.VlIcms),
		IcmsProj:    round(row.Projected.ICMS),
		IbsProj:     round(row.Projected.IBS),
		CbsProj:     round(row.Projected.CBS),
		Current:     round(row.Current),
		Projected:   round(row.Projected.Total()),
	}
	if directional && rec.IndOper != entity.IndOperNone {
		ind := rec.IndOper
		out.IndOper = &ind
	}
	return out
}

func round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func totalsDTO(t projection.Totals) dto.TotalsDTO {
	return dto.TotalsDTO{Current: round(t.Current), Projected: round(t.Projected), Delta: round(t.Delta)}
}

func rateDTO(r entity.TaxRateYear) dto.TaxRateResponse {
	return dto.TaxRateResponse{Year: r.Year, PercIBS: r.PercIBS, PercCBS: r.PercCBS, PercReducICMS: r.PercReducICMS}
}
