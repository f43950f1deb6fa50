// Package appmode runs the search-node until the context is cancelled
package appmode

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/UnendingLoop/MiniGrep/internal/transport"
	"go.uber.org/zap"
)

func RunNode(ctx context.Context, stop context.CancelFunc, nc *model.NodeConfig, logger *zap.Logger) {
	// получить экземпляр сервера
	srv := transport.NewNodeServer(nc.Address, processor.Processor{}, logger)

	Serve(ctx, stop, srv, nc.ShutdownTimeout, logger)
}

// Serve blocks until ctx is done, then shuts srv down within timeout.
// A listener failure calls stop, so the caller's context ends as well.
func Serve(ctx context.Context, stop context.CancelFunc, srv *http.Server, timeout time.Duration, logger *zap.Logger) {
	// запуск сервера
	go func() {
		logger.Info("search-node running", zap.String("address", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				logger.Info("server gracefully stopping...")
			default:
				logger.Error("server stopped", zap.Error(err))
				stop()
			}
		}
	}()

	<-ctx.Done()

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown search-node correctly", zap.String("address", srv.Addr), zap.Error(err))
	} else {
		logger.Info("search-node server is closed", zap.String("address", srv.Addr))
	}
}
