package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexv/logicopt"
)

const configName = ".logicopt.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .logicopt.yaml in the current directory",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(configName); err == nil {
			fmt.Printf("%s already exists\n", configName)
			os.Exit(1)
		}
		if err := os.WriteFile(configName, []byte(logicopt.DefaultConfigYAML), 0o644); err != nil {
			fmt.Printf("error: failed to write %s: %v\n", configName, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", configName)
	},
}
