package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexv/logicopt"
	"github.com/alexv/logicopt/internal/logic"
	"github.com/alexv/logicopt/internal/truthtable"
)

var csvPath string

var tableCmd = &cobra.Command{
	Use:   "table [expression]",
	Short: "Print the truth table of an expression, or build one from CSV",
	Long: `Prints the truth table of the given expression. With --csv the
expression is synthesized from a truth-table CSV file instead: the header
names the input variables and the last column holds the result.
Example) logicopt table "a & b | !c"`,
	Run: func(cmd *cobra.Command, args []string) {
		node, err := tableInput(args)
		if err != nil {
			logger.Error("Failed to read input", zap.Error(err))
			os.Exit(1)
		}

		table, err := truthtable.Enumerate(node)
		if err != nil {
			logger.Error("Failed to enumerate truth table", zap.Error(err))
			os.Exit(1)
		}
		fmt.Print(table.String())

		if csvPath != "" {
			optimized, err := logicopt.Optimize(node, nil)
			if err != nil {
				logger.Error("Failed to optimize synthesized expression", zap.Error(err))
				os.Exit(1)
			}
			fmt.Printf("synthesized: %s\n", logic.Render(node))
			fmt.Printf("optimized:   %s\n", logic.Render(optimized))
		}
	},
}

func init() {
	tableCmd.Flags().StringVar(&csvPath, "csv", "", "read a truth-table CSV file instead of an expression")
}

func tableInput(args []string) (logic.Node, error) {
	if csvPath != "" {
		f, err := os.Open(csvPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return truthtable.FromCSV(f)
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("provide exactly one expression or --csv")
	}
	return logicopt.Parse(args[0])
}
