// Package simulation orquesta la importación de archivos EFD y las vistas de la
// simulación (dashboard, paneles, vista previa y exportaciones).
package simulation

import (
	"context"
	"time"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/projection"
	"github.com/jhoicas/simulador-reforma/internal/domain/repository"
)

// ImportTxRunner ejecuta la importación completa en una transacción.
type ImportTxRunner interface {
	RunImport(ctx context.Context, fn func(repo repository.EfdRepository) error) error
}

// ScheduleSource cronograma de alícuotas vigente (tabla o cronograma por defecto).
type ScheduleSource interface {
	Schedule(ctx context.Context) ([]entity.TaxRateYear, bool, error)
}

// Report datos de una exportación; los renderers no calculan nada.
type Report struct {
	Title       string
	Year        int
	Rate        entity.TaxRateYear
	Summary     projection.Summary
	Goods       []projection.Row
	Energy      []projection.Row
	Freight     []projection.Row
	GeneratedAt time.Time
}

// Renderer genera los archivos de exportación.
type Renderer interface {
	Excel(r Report) ([]byte, error)
	PDF(r Report) ([]byte, error)
}

// Scope tenant y empresa del usuario autenticado.
type Scope struct {
	TenantID  string
	CompanyID string
}
