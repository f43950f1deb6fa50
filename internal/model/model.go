// Package model contains data structures for launch parameters, node settings and search DTO
package model

import (
	"errors"
	"time"
)

var (
	// ErrMissingArguments - меньше двух позиционных аргументов (файл и запрос)
	ErrMissingArguments = errors.New("Not enough arguments")
	// ErrRead - файл не найден, не читается или не является валидным UTF-8 текстом
	ErrRead = errors.New("failed to read file")
)

// Config - параметры одного запуска CLI, после парсинга не меняются
type Config struct {
	Query         string
	FileName      string
	CaseSensitive bool
}

// CaseMode returns human-readable name of the matching mode used in the output header
func (c *Config) CaseMode() string {
	if c.CaseSensitive {
		return "sensitive"
	}
	return "insensitive"
}

const (
	DefaultNodeAddress     = ":8080"
	DefaultShutdownTimeout = 5 * time.Second
	EnvDev                 = "dev"
	EnvProd                = "prod"
)

// NodeConfig - настройки search-node: из yaml-файла и флагов
type NodeConfig struct {
	Address         string        `yaml:"address"`
	Env             string        `yaml:"env"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type SearchTask struct {
	TaskID        string `json:"tid"`
	Query         string `json:"query" binding:"required"`
	Contents      string `json:"contents"`
	CaseSensitive *bool  `json:"case_sensitive,omitempty"` // nil - значит по умолчанию true
}

// IsCaseSensitive resolves omitted case_sensitive to the default (true)
func (t *SearchTask) IsCaseSensitive() bool {
	return t.CaseSensitive == nil || *t.CaseSensitive
}

type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}
