package processor_test

import (
	"context"
	"testing"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestProcessInput(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\nDuct tape."
	insensitive := false
	sensitive := true

	cases := []struct {
		name    string
		task    *model.SearchTask
		wantRes *model.SearchResult
		ctx     context.Context
	}{
		{
			name: "Positive - default is case sensitive",
			task: &model.SearchTask{
				TaskID:   "testTask",
				Query:    "duct",
				Contents: contents,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{"safe, fast, productive."},
				HashSumm: hasher(t, []string{"safe, fast, productive."}),
			},
			ctx: context.Background(),
		},
		{
			name: "Positive - explicit case sensitive",
			task: &model.SearchTask{
				TaskID:        "testTask",
				Query:         "Duct",
				Contents:      contents,
				CaseSensitive: &sensitive,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{"Duct tape."},
				HashSumm: hasher(t, []string{"Duct tape."}),
			},
			ctx: context.Background(),
		},
		{
			name: "Positive - ignore case",
			task: &model.SearchTask{
				TaskID:        "testTask",
				Query:         "rUsT",
				Contents:      contents,
				CaseSensitive: &insensitive,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{"Rust:", "Trust me."},
				HashSumm: hasher(t, []string{"Rust:", "Trust me."}),
			},
			ctx: context.Background(),
		},
		{
			name: "Positive - no matches",
			task: &model.SearchTask{
				TaskID:   "testTask",
				Query:    "golang",
				Contents: contents,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{},
				HashSumm: hasher(t, []string{}),
			},
			ctx: context.Background(),
		},
		{
			name: "Negative - cancelled context",
			task: &model.SearchTask{
				TaskID:   "testTask",
				Query:    "duct",
				Contents: contents,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{},
				HashSumm: hasher(t, []string{}),
			},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			test := processor.Processor{}

			res := test.ProcessInput(tt.ctx, tt.task)

			require.Equal(t, tt.wantRes, res)
		})
	}
}

func TestHashDependsOnLineBoundaries(t *testing.T) {
	p := processor.Processor{}

	joined := p.ProcessInput(context.Background(), &model.SearchTask{Query: "ab", Contents: "ab"})
	split := p.ProcessInput(context.Background(), &model.SearchTask{Query: "", Contents: "a\nb"})

	require.NotEqual(t, joined.HashSumm, split.HashSumm)
}

func TestHashAlwaysDescribesOutput(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."
	insensitive := false
	p := processor.Processor{}

	// контекст отменяется во время обработки - хеш всё равно должен совпадать с возвращённым Output
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := make([]*model.SearchResult, 0, 50)
	for i := 0; i < 50; i++ {
		if i == 25 {
			cancel()
		}
		results = append(results, p.ProcessInput(ctx, &model.SearchTask{
			Query:         "T",
			Contents:      contents,
			CaseSensitive: &insensitive,
		}))
	}

	for _, res := range results {
		require.Equal(t, hasher(t, res.Output), res.HashSumm)
	}
	require.Equal(t, []string{"Rust:", "safe, fast, productive.", "Pick three.", "Trust me."}, results[0].Output)
	require.Empty(t, results[len(results)-1].Output)
}

func hasher(t *testing.T, input []string) uint64 {
	t.Helper()
	hs := xxhash.New()
	for _, s := range input {
		_, err := hs.WriteString(s + "\n")
		require.NoError(t, err, "failed to write data to count hash")
	}

	return hs.Sum64()
}
