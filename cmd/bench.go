package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexv/logicopt"
	"github.com/alexv/logicopt/formatter"
)

// benchCorpus exercises every rule at least once: De Morgan pushes,
// constant folding, absorption, complement collapse, consensus,
// factorization in both directions, and a distribution-heavy case.
var benchCorpus = []string{
	"!(a & b)",
	"!(a | b) & !(c | d)",
	"a & 1 | b & 0",
	"!!a & !!!b",
	"a | a & b",
	"a & (a | b) & (a | c)",
	"a & (!a | b)",
	"a & b & !a & c",
	"a | b | !a",
	"a & b | !a & c",
	"a & b | a & c | a & d",
	"(a | b) & (a | c)",
	"(a & !b) | (!a & b)",
	"!a | b",
	"(a | b) & (c | d) & (e | f)",
	"a & b & c | a & b & d | a & b & e",
	"(a | b | c) & (d | e | f) & (g | h | i)",
}

var benchRepeat int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the bundled benchmark corpus and print timing statistics",
	Run: func(cmd *cobra.Command, args []string) {
		limits, err := loadLimits()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		total := len(benchCorpus) * benchRepeat
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetDescription("optimizing"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)

		var results []*logicopt.Result
		start := time.Now()
		for i := 0; i < benchRepeat; i++ {
			for _, expr := range benchCorpus {
				result, err := logicopt.AnalyzeWithLimits(expr, limits)
				if err != nil {
					logger.Error("Benchmark expression failed", zap.String("expression", expr), zap.Error(err))
					os.Exit(1)
				}
				if i == 0 {
					results = append(results, result)
				}
				_ = bar.Add(1)
			}
		}
		elapsed := time.Since(start)

		fmt.Println(formatter.FormatStats(results))
		fmt.Printf("%d runs in %s (%.0f expr/s)\n",
			total, elapsed, float64(total)/elapsed.Seconds())
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchRepeat, "repeat", 100, "number of passes over the corpus")
}
