// Package formatter renders analysis results for terminal output.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/alexv/logicopt"
)

var (
	headerStyle   = color.New(color.FgCyan, color.Bold)
	exprStyle     = color.New(color.FgWhite, color.Bold)
	resultStyle   = color.New(color.FgGreen, color.Bold)
	warningStyle  = color.New(color.FgHiYellow, color.Bold)
	ruleStyle     = color.New(color.FgYellow)
	metricStyle   = color.New(color.FgHiBlue)
	noStyle       = color.New(color.FgWhite)
	rollbackStyle = color.New(color.FgRed)
)

// Format builds the full report for one analysis result. With useColor
// false all styles degrade to plain text.
func Format(r *logicopt.Result, useColor bool) string {
	if !useColor {
		color.NoColor = true
	}

	var sb strings.Builder
	writeLine(&sb, headerStyle, "expression")
	writeLine(&sb, exprStyle, "  %s", r.Input)

	writeLine(&sb, headerStyle, "optimized")
	writeLine(&sb, resultStyle, "  %s", logicopt.Render(r.Optimized))
	if folded := logicopt.Render(r.Folded); folded != logicopt.Render(r.Optimized) {
		writeLine(&sb, resultStyle, "  %s  (folded)", folded)
	}

	writeLine(&sb, headerStyle, "conjunctive normal form")
	if r.CNFTooComplex {
		writeLine(&sb, warningStyle, "  too complex, showing optimized form")
	}
	writeLine(&sb, noStyle, "  %s", logicopt.Render(r.CNF))

	writeLine(&sb, headerStyle, "disjunctive normal form")
	if r.DNFTooComplex {
		writeLine(&sb, warningStyle, "  too complex, showing optimized form")
	}
	writeLine(&sb, noStyle, "  %s", logicopt.Render(r.DNF))

	writeLine(&sb, headerStyle, "metrics")
	writeLine(&sb, metricStyle, "  nodes: %d -> %d", r.Metrics.OriginalNodes, r.Metrics.OptimizedNodes)
	writeLine(&sb, metricStyle, "  iterations: %d", r.Metrics.Iterations)
	writeLine(&sb, metricStyle, "  elapsed: %s", r.Metrics.Elapsed)

	names := make([]string, 0, len(r.Metrics.RuleApplications))
	for name := range r.Metrics.RuleApplications {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		style := ruleStyle
		if strings.HasSuffix(name, "_Rollback") {
			style = rollbackStyle
		}
		writeLine(&sb, style, "  %s: %d", name, r.Metrics.RuleApplications[name])
	}

	return sb.String()
}

func writeLine(sb *strings.Builder, style *color.Color, format string, args ...any) {
	sb.WriteString(style.Sprintf(format, args...))
	sb.WriteByte('\n')
}

// FormatStats summarizes a batch of results, used by the benchmark
// command.
func FormatStats(results []*logicopt.Result) string {
	var sb strings.Builder
	var totalBefore, totalAfter int
	for _, r := range results {
		totalBefore += r.Metrics.OriginalNodes
		totalAfter += r.Metrics.OptimizedNodes
	}
	fmt.Fprintf(&sb, "%d expressions, %d -> %d nodes", len(results), totalBefore, totalAfter)
	if totalBefore > 0 {
		fmt.Fprintf(&sb, " (%.1f%% reduction)", 100*float64(totalBefore-totalAfter)/float64(totalBefore))
	}
	return sb.String()
}
