// Package transport provides a new server-entity(by ginext) for search-node with handlers to serve endpoints
package transport

import (
	"context"
	"net/http"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
	"go.uber.org/zap"
)

type TaskProcessor interface {
	ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

type handlers struct {
	proc   TaskProcessor
	logger *zap.Logger
}

func NewNodeServer(addr string, proc TaskProcessor, logger *zap.Logger) *http.Server {
	h := handlers{proc: proc, logger: logger}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveTask)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handlers) HealthCheck(ctx *ginext.Context) {
	h.logger.Debug("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h handlers) ReceiveTask(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		h.logger.Warn("failed to parse task from body", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}

	if task.TaskID == "" {
		task.TaskID = uuid.Generate().String()
	}

	h.logger.Info("received task",
		zap.String("tid", task.TaskID),
		zap.String("query", task.Query),
		zap.Bool("case_sensitive", task.IsCaseSensitive()),
		zap.Int("contents_bytes", len(task.Contents)),
	)

	res := h.proc.ProcessInput(ctx.Request.Context(), &task)
	h.logger.Info("calculated result", zap.String("tid", res.TaskID), zap.Int("matches", len(res.Output)), zap.Uint64("hash", res.HashSumm))

	ctx.JSON(http.StatusOK, res)
}
