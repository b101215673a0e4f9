package repository

import (
	"context"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
)

// TaxRateRepository puerto de la tabla de alícuotas de transición.
type TaxRateRepository interface {
	// List devuelve las entradas ordenadas por año (vacío si la tabla no tiene filas).
	List(ctx context.Context) ([]entity.TaxRateYear, error)
	Upsert(ctx context.Context, rate entity.TaxRateYear) error
}
