// Package ratefile lee y escribe cronogramas de alícuotas en YAML y genera el
// SQL de carga de tabela_aliquota.
//
//	aliquotas:
//	  - ano: 2027
//	    ibs: 0.1
//	    cbs: 0.9
//	    reduc_icms: 10
package ratefile

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/jhoicas/simulador-reforma/internal/application/usecase"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
)

// File documento YAML.
type File struct {
	Rates []Entry `yaml:"aliquotas"`
}

// Entry una fila del cronograma.
type Entry struct {
	Year      int     `yaml:"ano"`
	IBS       float64 `yaml:"ibs"`
	CBS       float64 `yaml:"cbs"`
	ReducICMS float64 `yaml:"reduc_icms"`
}

// Parse decodifica y valida un cronograma. Conserva el orden del archivo,
// que define la entrada de respaldo cuando se pide un año ausente.
func Parse(b []byte) ([]entity.TaxRateYear, error) {
	var f File
	if err := yaml.UnmarshalStrict(b, &f); err != nil {
		return nil, errors.Wrap(err, "ratefile: yaml inválido")
	}
	seen := make(map[int]bool, len(f.Rates))
	out := make([]entity.TaxRateYear, 0, len(f.Rates))
	for _, e := range f.Rates {
		r := entity.TaxRateYear{Year: e.Year, PercIBS: e.IBS, PercCBS: e.CBS, PercReducICMS: e.ReducICMS}
		if err := usecase.ValidateTaxRate(r); err != nil {
			return nil, errors.Wrapf(err, "ratefile: año %d", e.Year)
		}
		if seen[e.Year] {
			return nil, fmt.Errorf("ratefile: año %d repetido", e.Year)
		}
		seen[e.Year] = true
		out = append(out, r)
	}
	return out, nil
}

// Load lee un cronograma desde disco.
func Load(path string) ([]entity.TaxRateYear, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "ratefile: leer")
	}
	return Parse(b)
}

// Marshal serializa un cronograma a YAML.
func Marshal(rates []entity.TaxRateYear) ([]byte, error) {
	f := File{Rates: make([]Entry, 0, len(rates))}
	for _, r := range rates {
		f.Rates = append(f.Rates, Entry{Year: r.Year, IBS: r.PercIBS, CBS: r.PercCBS, ReducICMS: r.PercReducICMS})
	}
	return yaml.Marshal(&f)
}

// WriteSeedSQL escribe un INSERT ... ON CONFLICT por año, ordenado por año.
func WriteSeedSQL(w io.Writer, rates []entity.TaxRateYear) error {
	sorted := append([]entity.TaxRateYear(nil), rates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	if _, err := io.WriteString(w, "-- Cronograma de transición IBS/CBS y reducción de ICMS\n"); err != nil {
		return err
	}
	if len(sorted) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "INSERT INTO tabela_aliquota (ano, perc_ibs, perc_cbs, perc_reduc_icms) VALUES\n"); err != nil {
		return err
	}
	for i, r := range sorted {
		sep := ","
		if i == len(sorted)-1 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "  (%d, %s, %s, %s)%s\n", r.Year, num(r.PercIBS), num(r.PercCBS), num(r.PercReducICMS), sep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "ON CONFLICT (ano) DO UPDATE SET\n"+
		"  perc_ibs = EXCLUDED.perc_ibs,\n"+
		"  perc_cbs = EXCLUDED.perc_cbs,\n"+
		"  perc_reduc_icms = EXCLUDED.perc_reduc_icms;\n")
	return err
}

func num(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
