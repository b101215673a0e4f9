package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/simulador-reforma/internal/application/simulation"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/projection"
	"github.com/jhoicas/simulador-reforma/internal/infrastructure/ratefile"
	"github.com/jhoicas/simulador-reforma/internal/infrastructure/report"
)

var (
	projectYear int
	ratesFile   string
	xlsxOutput  string
)

var projectCmd = &cobra.Command{
	Use:   "project archivo",
	Short: "Proyecta la carga actual frente a IBS/CBS para un año del cronograma",
	Args:  cobra.ExactArgs(1),
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().IntVarP(&projectYear, "year", "y", projection.DefaultYear, "Año del cronograma")
	projectCmd.Flags().StringVarP(&ratesFile, "rates", "r", "", "Cronograma YAML (por defecto el cronograma de transición)")
	projectCmd.Flags().StringVarP(&xlsxOutput, "xlsx", "x", "", "Exporta el resultado a un libro Excel")
}

func runProject(cmd *cobra.Command, args []string) error {
	data, _, err := readFile(args[0])
	if err != nil {
		return err
	}
	var schedule []entity.TaxRateYear
	if ratesFile != "" {
		if schedule, err = ratefile.Load(ratesFile); err != nil {
			return err
		}
	}
	rate, exact := projection.Select(schedule, projectYear)
	summary := projection.Summarize(data, rate)

	w := cmd.OutOrStdout()
	if !exact {
		fmt.Fprintf(w, "Ano %d fora do cronograma; usando %d\n", projectYear, rate.Year)
	}
	printSummary(w, summary)

	if xlsxOutput == "" {
		return nil
	}
	out, err := report.NewRenderer().Excel(simulation.Report{
		Title:       "Simulação " + data.Header.Name,
		Year:        rate.Year,
		Rate:        rate,
		Summary:     summary,
		Goods:       projection.ProjectRecords(data.Goods, rate),
		Energy:      projection.ProjectRecords(data.Energy(), rate),
		Freight:     projection.ProjectRecords(data.Freight, rate),
		GeneratedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(xlsxOutput, out, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(w, "[√] %s\n", xlsxOutput)
	return nil
}

func printSummary(w io.Writer, s projection.Summary) {
	fmt.Fprintf(w, "Ano %d: IBS %s, CBS %s, redução ICMS %s\n\n", s.Rate.Year,
		report.FormatPercent(s.Rate.PercIBS), report.FormatPercent(s.Rate.PercCBS), report.FormatPercent(s.Rate.PercReducICMS))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Categoria\tAtual\tProjetada\tDiferença\t")
	rows := []struct {
		label string
		t     projection.Totals
	}{
		{"Mercadorias", s.Goods},
		{"Energia", s.Energy},
		{"Fretes", s.Freight},
		{"Global", s.Global},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", r.label,
			report.FormatBRL(r.t.Current), report.FormatBRL(r.t.Projected), report.FormatBRL(r.t.Delta))
	}
	_ = tw.Flush()
}
