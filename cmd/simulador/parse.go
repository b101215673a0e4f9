package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/sped"
	"github.com/jhoicas/simulador-reforma/pkg/cnpj"
)

var parseCmd = &cobra.Command{
	Use:   "parse archivo",
	Short: "Muestra la cabecera y los conteos por categoría",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, stats, err := readFile(args[0])
		if err != nil {
			return err
		}
		printParse(cmd.OutOrStdout(), data, stats)
		return nil
	},
}

// readFile abre, decodifica e interpreta un archivo SPED.
func readFile(path string) (entity.SpedData, sped.Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return entity.SpedData{}, sped.Stats{}, err
	}
	defer f.Close()

	r, err := sped.NewDecodingReader(f, encoding)
	if err != nil {
		return entity.SpedData{}, sped.Stats{}, err
	}
	return sped.ParseReader(r)
}

func printParse(w io.Writer, data entity.SpedData, stats sped.Stats) {
	h := data.Header
	fmt.Fprintf(w, "Contribuinte: %s\n", h.Name)
	fmt.Fprintf(w, "CNPJ:         %s\n", cnpj.Format(h.CNPJ))
	fmt.Fprintf(w, "Período:      %s a %s\n", h.PeriodStart, h.PeriodEnd)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "C100 (mercadorias):      %s\n", humanize.Comma(int64(len(data.Goods))))
	fmt.Fprintf(w, "C500 (energia, crédito): %s\n", humanize.Comma(int64(len(data.EnergyCredits))))
	fmt.Fprintf(w, "C600 (energia, débito):  %s\n", humanize.Comma(int64(len(data.EnergyDebits))))
	fmt.Fprintf(w, "D100 (fretes):           %s\n", humanize.Comma(int64(len(data.Freight))))
	fmt.Fprintf(w, "Linhas: %s lidas, %s ignoradas\n", humanize.Comma(int64(stats.Lines)), humanize.Comma(int64(stats.Ignored)))
}
