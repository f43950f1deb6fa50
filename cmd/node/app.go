package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/logger"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
)

func main() {
	// параметры запуска search-node
	nodeCfg, err := parser.ParseNodeConfig(os.Args[1:])
	if err != nil {
		log.Printf("Failed to launch minigrep search-node: %q", err.Error())
		os.Exit(2)
	}

	zl, err := logger.ProvideLogger(nodeCfg.Env)
	if err != nil {
		log.Printf("Failed to init logger: %q", err.Error())
		os.Exit(1)
	}
	defer func() { _ = zl.Sync() }()

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appmode.RunNode(ctx, stop, nodeCfg, zl)
}
