package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexv/logicopt"
	"github.com/alexv/logicopt/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export [expression]",
	Short: "Export an optimized expression to an external format",
	Long: `Optimizes the expression and emits it in the requested format:
dimacs (CNF clauses), blif, verilog, latex or c.
Example) logicopt export --format dimacs "a & b | !a & c"`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one expression")
			os.Exit(1)
		}

		text, err := exportExpression(args[0], exportFormat)
		if err != nil {
			logger.Error("Export failed", zap.String("format", exportFormat), zap.Error(err))
			os.Exit(1)
		}

		if exportOut != "" {
			if err := os.WriteFile(exportOut, []byte(text), 0o644); err != nil {
				logger.Error("Failed to write output file", zap.Error(err))
				os.Exit(1)
			}
			return
		}
		fmt.Print(text)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "dimacs", "output format: dimacs, blif, verilog, latex, c")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output path (default stdout)")
}

func exportExpression(expr, format string) (string, error) {
	node, err := logicopt.Parse(expr)
	if err != nil {
		return "", err
	}
	optimized, err := logicopt.Optimize(node, nil)
	if err != nil {
		return "", err
	}

	switch format {
	case "dimacs":
		cnf, err := logicopt.ToCNF(optimized)
		if err != nil {
			return "", err
		}
		return export.DIMACS(cnf)
	case "blif":
		return export.BLIF(optimized)
	case "verilog":
		return export.Verilog(optimized)
	case "latex":
		return export.LaTeX(optimized)
	case "c":
		return export.CCode(optimized)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
