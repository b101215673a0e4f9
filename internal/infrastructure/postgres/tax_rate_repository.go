package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/repository"
)

var _ repository.TaxRateRepository = (*TaxRateRepo)(nil)

// TaxRateRepo tabla tabela_aliquota (global, no depende del tenant).
type TaxRateRepo struct {
	q Querier
}

// NewTaxRateRepository construye el adaptador.
func NewTaxRateRepository(q Querier) *TaxRateRepo {
	return &TaxRateRepo{q: q}
}

// List devuelve las alícuotas ordenadas por año.
func (r *TaxRateRepo) List(ctx context.Context) ([]entity.TaxRateYear, error) {
	rows, err := r.q.Query(ctx,
		`SELECT ano, perc_ibs, perc_cbs, perc_reduc_icms FROM tabela_aliquota ORDER BY ano`)
	if err != nil {
		return nil, fmt.Errorf("list tax rates: %w", err)
	}
	defer rows.Close()

	list := []entity.TaxRateYear{}
	for rows.Next() {
		var (
			year           int
			ibs, cbs, redu decimal.Decimal
		)
		if err := rows.Scan(&year, &ibs, &cbs, &redu); err != nil {
			return nil, fmt.Errorf("scan tax rate: %w", err)
		}
		list = append(list, entity.TaxRateYear{
			Year:          year,
			PercIBS:       ibs.InexactFloat64(),
			PercCBS:       cbs.InexactFloat64(),
			PercReducICMS: redu.InexactFloat64(),
		})
	}
	return list, rows.Err()
}

// Upsert crea o reemplaza la entrada del año.
func (r *TaxRateRepo) Upsert(ctx context.Context, rate entity.TaxRateYear) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO tabela_aliquota (ano, perc_ibs, perc_cbs, perc_reduc_icms)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (ano) DO UPDATE SET
			perc_ibs = EXCLUDED.perc_ibs,
			perc_cbs = EXCLUDED.perc_cbs,
			perc_reduc_icms = EXCLUDED.perc_reduc_icms`,
		rate.Year,
		decimal.NewFromFloat(rate.PercIBS).Round(2),
		decimal.NewFromFloat(rate.PercCBS).Round(2),
		decimal.NewFromFloat(rate.PercReducICMS).Round(2),
	)
	if err != nil {
		return fmt.Errorf("upsert tax rate %d: %w", rate.Year, err)
	}
	return nil
}
