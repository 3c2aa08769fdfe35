package logicopt

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexv/logicopt/internal/logic"
)

// Config mirrors the optional .logicopt.yaml configuration file.
// Unset fields keep their defaults.
type Config struct {
	Limits struct {
		MaxExpressionLength int    `yaml:"max-expression-length"`
		MaxNestingDepth     int    `yaml:"max-nesting-depth"`
		MaxVariables        int    `yaml:"max-variables"`
		MaxIterations       int    `yaml:"max-iterations"`
		MaxDuration         string `yaml:"max-duration"`
	} `yaml:"limits"`
}

// LoadConfig reads limits from a YAML configuration file. An empty path
// yields the defaults; a missing file is an error.
func LoadConfig(path string) (logic.Limits, error) {
	limits := logic.DefaultLimits()
	if path == "" {
		return limits, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return limits, fmt.Errorf("reading config: %w", err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return limits, fmt.Errorf("parsing config: %w", err)
	}

	if config.Limits.MaxExpressionLength > 0 {
		limits.MaxExprLen = config.Limits.MaxExpressionLength
	}
	if config.Limits.MaxNestingDepth > 0 {
		limits.MaxNestingDepth = config.Limits.MaxNestingDepth
	}
	if config.Limits.MaxVariables > 0 {
		limits.MaxVariables = config.Limits.MaxVariables
	}
	if config.Limits.MaxIterations > 0 {
		limits.MaxIterations = config.Limits.MaxIterations
	}
	if config.Limits.MaxDuration != "" {
		d, err := time.ParseDuration(config.Limits.MaxDuration)
		if err != nil {
			return limits, fmt.Errorf("parsing config: max-duration: %w", err)
		}
		limits.MaxDuration = d
	}
	return limits, nil
}

// DefaultConfigYAML is the starter configuration written by the init
// command.
const DefaultConfigYAML = `# logicopt configuration
limits:
  max-expression-length: 10000
  max-nesting-depth: 50
  max-variables: 100
  max-iterations: 50
  max-duration: 30s
`
