// Package processor runs the line search for an incoming task and sends result back to transport-layer
package processor

import (
	"context"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

func (p Processor) ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Output: []string{},
	}

	select {
	case <-ctx.Done():
	default:
		result.Output = matcher.Search(task.Query, task.Contents, task.IsCaseSensitive())
	}

	// считаем общий хеш - всегда по всему Output, чтобы результат описывал сам себя
	result.HashSumm = hasher(result.Output)

	return &result
}

func hasher(input []string) uint64 {
	hs := xxhash.New()
	for _, s := range input {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n") // разделитель, чтобы ["ab"] и ["a","b"] давали разный хеш
	}
	return hs.Sum64()
}
