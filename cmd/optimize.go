package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexv/logicopt"
	"github.com/alexv/logicopt/formatter"
	"github.com/alexv/logicopt/internal/logic"
)

var jsonOutput bool

var optimizeCmd = &cobra.Command{
	Use:   "optimize [expressions...]",
	Short: "Optimize boolean expressions and print the full report",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide at least one expression")
			os.Exit(1)
		}

		limits, err := loadLimits()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		failed := false
		for _, expr := range args {
			result, err := logicopt.AnalyzeWithLimits(expr, limits)
			if err != nil {
				logger.Error("Analysis failed", zap.String("expression", expr), zap.Error(err))
				failed = true
				continue
			}
			if jsonOutput {
				printJSON(result)
			} else {
				fmt.Println(formatter.Format(result, !noColor))
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	optimizeCmd.Flags().BoolVar(&jsonOutput, "json", false, "output results in JSON format")
}

type jsonReport struct {
	Input         string         `json:"input"`
	Optimized     string         `json:"optimized"`
	Folded        string         `json:"folded"`
	CNF           string         `json:"cnf"`
	DNF           string         `json:"dnf"`
	CNFTooComplex bool           `json:"cnf_too_complex,omitempty"`
	DNFTooComplex bool           `json:"dnf_too_complex,omitempty"`
	OriginalNodes int            `json:"original_nodes"`
	OptimizedNode int            `json:"optimized_nodes"`
	Iterations    int            `json:"iterations"`
	Rules         map[string]int `json:"rules"`
	Variables     []string       `json:"variables"`
}

func printJSON(r *logicopt.Result) {
	report := jsonReport{
		Input:         r.Input,
		Optimized:     logic.Render(r.Optimized),
		Folded:        logic.Render(r.Folded),
		CNF:           logic.Render(r.CNF),
		DNF:           logic.Render(r.DNF),
		CNFTooComplex: r.CNFTooComplex,
		DNFTooComplex: r.DNFTooComplex,
		OriginalNodes: r.Metrics.OriginalNodes,
		OptimizedNode: r.Metrics.OptimizedNodes,
		Iterations:    r.Metrics.Iterations,
		Rules:         r.Metrics.RuleApplications,
		Variables:     logic.Variables(r.Original),
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal JSON output", zap.Error(err))
		return
	}
	fmt.Println(string(data))
}
