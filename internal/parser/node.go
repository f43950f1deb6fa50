package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ParseNodeConfig reads search-node settings: optional yaml file first, then flags on top of it.
// args must not contain the program name.
func ParseNodeConfig(args []string) (*model.NodeConfig, error) {
	nc := model.NodeConfig{
		Address:         model.DefaultNodeAddress,
		Env:             model.EnvDev,
		ShutdownTimeout: model.DefaultShutdownTimeout,
	}

	flag := pflag.NewFlagSet("minigrep-node", pflag.ContinueOnError)
	flag.SortFlags = false

	cfgPath := flag.StringP("config", "c", "", "path to yaml config file")
	addr := flag.StringP("address", "a", "", fmt.Sprintf("search-node listen address (default %q)", model.DefaultNodeAddress))
	env := flag.StringP("env", "e", "", "logging environment: 'dev' or 'prod'")

	if err := flag.Parse(args); err != nil {
		return nil, err
	}

	if *cfgPath != "" {
		if err := loadNodeConfigFile(*cfgPath, &nc); err != nil {
			return nil, err
		}
	}

	// флаги перекрывают значения из файла
	if flag.Changed("address") {
		nc.Address = *addr
	}
	if flag.Changed("env") {
		nc.Env = *env
	}

	switch {
	case nc.Address == "":
		return nil, errors.New("empty search-node address")
	case nc.Env != model.EnvDev && nc.Env != model.EnvProd:
		return nil, fmt.Errorf("unknown env %q: want %q or %q", nc.Env, model.EnvDev, model.EnvProd)
	case nc.ShutdownTimeout <= 0:
		return nil, fmt.Errorf("incorrect shutdown_timeout %v provided", nc.ShutdownTimeout)
	}

	return &nc, nil
}

func loadNodeConfigFile(path string, nc *model.NodeConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, nc); err != nil {
		return fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return nil
}
