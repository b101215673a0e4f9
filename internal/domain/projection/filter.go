package projection

import (
	"strings"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/pkg/cnpj"
)

// AllEntities valor del filtro de CNPJ que no restringe.
const AllEntities = "all"

// Filter criterio de los paneles. IndOper nil no filtra por dirección; un registro
// con IND_OPER fuera de 0/1 nunca coincide con un filtro de dirección.
type Filter struct {
	IndOper *int
	CNPJ    string
}

func (f Filter) matches(rec entity.SpedRecord) bool {
	if f.IndOper != nil && rec.IndOper != *f.IndOper {
		return false
	}
	if c := strings.TrimSpace(f.CNPJ); c != "" && c != AllEntities {
		if cnpj.Normalize(rec.CNPJ) != cnpj.Normalize(c) {
			return false
		}
	}
	return true
}

// Apply devuelve los registros que cumplen el filtro, en el mismo orden.
func (f Filter) Apply(records []entity.SpedRecord) []entity.SpedRecord {
	out := make([]entity.SpedRecord, 0, len(records))
	for _, rec := range records {
		if f.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Entities CNPJs distintos en el orden en que aparecen, para el selector de los paneles.
func Entities(records []entity.SpedRecord) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, rec := range records {
		if _, ok := seen[rec.CNPJ]; ok {
			continue
		}
		seen[rec.CNPJ] = struct{}{}
		out = append(out, rec.CNPJ)
	}
	return out
}
