package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexv/logicopt"
	"github.com/alexv/logicopt/formatter"
	"github.com/alexv/logicopt/internal/logic"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-optimize the expressions in a file whenever it changes",
	Long: `Watches a text file with one expression per line and reprints the
optimization report on every write. Lines starting with # are skipped.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide a file to watch")
			os.Exit(1)
		}
		path := args[0]

		limits, err := loadLimits()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		defer watcher.Close()

		if err := watcher.Add(path); err != nil {
			logger.Fatal("Failed to watch file", zap.String("path", path), zap.Error(err))
		}

		processExpressionFile(path, limits)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					processExpressionFile(path, limits)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("Watcher error", zap.Error(err))
			}
		}
	},
}

func processExpressionFile(path string, limits logic.Limits) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error("Failed to open watched file", zap.Error(err))
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result, err := logicopt.AnalyzeWithLimits(line, limits)
		if err != nil {
			logger.Error("Analysis failed", zap.String("expression", line), zap.Error(err))
			continue
		}
		fmt.Println(formatter.Format(result, !noColor))
	}
}
