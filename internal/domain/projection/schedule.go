package projection

import "github.com/jhoicas/simulador-reforma/internal/domain/entity"

// DefaultYear primer año de la transición.
const DefaultYear = 2027

// DefaultSchedule cronograma de transición usado cuando la tabla de alícuotas está vacía.
// Devuelve una copia nueva en cada llamada.
func DefaultSchedule() []entity.TaxRateYear {
	return []entity.TaxRateYear{
		{Year: 2027, PercIBS: 0.1, PercCBS: 0.9, PercReducICMS: 10},
		{Year: 2028, PercIBS: 0.2, PercCBS: 1.8, PercReducICMS: 20},
		{Year: 2029, PercIBS: 0.3, PercCBS: 2.7, PercReducICMS: 40},
		{Year: 2030, PercIBS: 0.4, PercCBS: 3.6, PercReducICMS: 60},
		{Year: 2031, PercIBS: 0.5, PercCBS: 4.5, PercReducICMS: 80},
		{Year: 2032, PercIBS: 0.6, PercCBS: 5.4, PercReducICMS: 100},
		{Year: 2033, PercIBS: 0.7, PercCBS: 6.3, PercReducICMS: 100},
	}
}

// Select devuelve la entrada del año pedido. Si el año no está en el cronograma
// se usa la primera entrada en el orden recibido; un cronograma vacío se
// reemplaza por DefaultSchedule. El segundo valor indica si hubo coincidencia exacta.
func Select(schedule []entity.TaxRateYear, year int) (entity.TaxRateYear, bool) {
	if len(schedule) == 0 {
		schedule = DefaultSchedule()
	}
	for _, r := range schedule {
		if r.Year == year {
			return r, true
		}
	}
	return schedule[0], false
}
