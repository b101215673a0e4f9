package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/simulador-reforma/internal/application/dto"
	"github.com/jhoicas/simulador-reforma/internal/domain"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/projection"
	"github.com/jhoicas/simulador-reforma/internal/domain/repository"
)

// Rango de años aceptado para la tabla de alícuotas.
const (
	MinRateYear = 2000
	MaxRateYear = 2100
)

// TaxRateUseCase tabla de alícuotas de transición.
type TaxRateUseCase struct {
	repo repository.TaxRateRepository
}

// NewTaxRateUseCase construye el caso de uso.
func NewTaxRateUseCase(repo repository.TaxRateRepository) *TaxRateUseCase {
	return &TaxRateUseCase{repo: repo}
}

// Schedule cronograma vigente: la tabla o, si está vacía, el cronograma por defecto.
// El bool indica que se usó el cronograma por defecto.
func (uc *TaxRateUseCase) Schedule(ctx context.Context) ([]entity.TaxRateYear, bool, error) {
	rates, err := uc.repo.List(ctx)
	if err != nil {
		return nil, false, err
	}
	if len(rates) == 0 {
		return projection.DefaultSchedule(), true, nil
	}
	return rates, false, nil
}

// List igual que Schedule pero como DTO.
func (uc *TaxRateUseCase) List(ctx context.Context) (*dto.TaxRateListResponse, error) {
	rates, def, err := uc.Schedule(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaxRateResponse, 0, len(rates))
	for _, r := range rates {
		items = append(items, ToTaxRateResponse(r))
	}
	return &dto.TaxRateListResponse{Items: items, Default: def}, nil
}

// Upsert crea o reemplaza la entrada de un año.
func (uc *TaxRateUseCase) Upsert(ctx context.Context, year int, in dto.TaxRateRequest) (*dto.TaxRateResponse, error) {
	rate := entity.TaxRateYear{Year: year, PercIBS: in.PercIBS, PercCBS: in.PercCBS, PercReducICMS: in.PercReducICMS}
	if err := ValidateTaxRate(rate); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, rate); err != nil {
		return nil, err
	}
	out := ToTaxRateResponse(rate)
	return &out, nil
}

// ValidateTaxRate porcentajes no negativos, reducción hasta 100 y año en rango.
func ValidateTaxRate(r entity.TaxRateYear) error {
	switch {
	case r.Year < MinRateYear || r.Year > MaxRateYear:
		return fmt.Errorf("%w: año %d fuera de rango", domain.ErrInvalidInput, r.Year)
	case r.PercIBS < 0 || r.PercCBS < 0 || r.PercReducICMS < 0:
		return fmt.Errorf("%w: porcentajes negativos", domain.ErrInvalidInput)
	case r.PercReducICMS > 100:
		return fmt.Errorf("%w: la reducción de ICMS no puede superar 100", domain.ErrInvalidInput)
	}
	return nil
}

// ToTaxRateResponse mapea una entrada del cronograma.
func ToTaxRateResponse(r entity.TaxRateYear) dto.TaxRateResponse {
	return dto.TaxRateResponse{Year: r.Year, PercIBS: r.PercIBS, PercCBS: r.PercCBS, PercReducICMS: r.PercReducICMS}
}
