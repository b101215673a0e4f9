// simulador procesa archivos EFD sin base de datos: conteos por categoría y
// proyección de la carga tributaria por año de transición.
//
// Uso:
//
//	simulador parse efd.txt
//	simulador project efd.txt --year 2029 --rates aliquotas.yaml --xlsx simulacao.xlsx
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/simulador-reforma/pkg/config"
)

var encoding string

var rootCmd = &cobra.Command{
	Use:           "simulador",
	Short:         "Simulación de la reforma tributaria sobre archivos EFD ICMS/IPI",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&encoding, "encoding", "e", config.EncodingAuto, "Codificación del archivo: auto, latin1 o utf8")
	rootCmd.AddCommand(parseCmd, projectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "[x]", err)
		os.Exit(1)
	}
}
