// seed_aliquotas genera el script SQL que carga tabela_aliquota a partir de un
// cronograma YAML; sin argumentos usa el cronograma de transición por defecto.
//
// Uso: go run ./cmd/seed_aliquotas [aliquotas.yaml]
// Escribe: internal/infrastructure/postgres/migrations/002_seed_aliquotas.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/projection"
	"github.com/jhoicas/simulador-reforma/internal/infrastructure/ratefile"
)

func main() {
	var (
		rates []entity.TaxRateYear
		err   error
	)
	source := "cronograma por defecto"
	if len(os.Args) > 1 {
		source = os.Args[1]
		rates, err = ratefile.Load(source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer cronograma: %v\n", err)
			os.Exit(1)
		}
	} else {
		rates = projection.DefaultSchedule()
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_aliquotas.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := ratefile.WriteSeedSQL(out, rates); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s desde %s: %d años\n", outPath, source, len(rates))
}

// findModuleRoot sube directorios hasta encontrar go.mod.
func findModuleRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}
