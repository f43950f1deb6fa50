// Package parser puts os.Args into Config structure and validates it for any issues
package parser

import "github.com/UnendingLoop/MiniGrep/internal/model"

const ignoreCaseArg = "i"

// ParseConfig expects the full argument list including the program name at index 0:
// <program> <filename> <query> [i]
func ParseConfig(args []string) (*model.Config, error) {
	if len(args) < 3 {
		return nil, model.ErrMissingArguments
	}

	cfg := model.Config{
		FileName:      args[1],
		Query:         args[2],
		CaseSensitive: true,
	}

	// регистр игнорируется только если аргументов ровно 4 и последний - "i", остальное молча пропускаем
	if len(args) == 4 && args[3] == ignoreCaseArg {
		cfg.CaseSensitive = false
	}

	return &cfg, nil
}
