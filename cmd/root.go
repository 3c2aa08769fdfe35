package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexv/logicopt"
	"github.com/alexv/logicopt/internal/logic"
)

var (
	cfgFile string
	timeout time.Duration
	noColor bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "logicopt [expressions...]",
	Short:            "logicopt - boolean expression optimizer",
	TraverseChildren: true, // Prioritize subcommands
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()
	return rootCmd.Execute()
}

// loadLimits resolves the effective resource limits: configuration file
// first, then the --timeout flag on top when it was given explicitly.
func loadLimits() (logic.Limits, error) {
	limits, err := logicopt.LoadConfig(cfgFile)
	if err != nil {
		return limits, err
	}
	if rootCmd.PersistentFlags().Changed("timeout") {
		limits.MaxDuration = timeout
	}
	return limits, nil
}

func init() {
	// Assigned here rather than in the rootCmd literal to avoid an
	// initialization cycle (rootCmd -> optimizeCmd -> loadLimits -> rootCmd).
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		// Format: logicopt [expr1 expr2 ...] => behaves like the optimize subcommand
		optimizeCmd.Run(optimizeCmd, args)
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to .logicopt.yaml")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "overall timeout for a run")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(watchCmd)
}
