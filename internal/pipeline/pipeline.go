package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"mcqgen/internal/chunker"
	"mcqgen/internal/generate"
	"mcqgen/internal/mcq"
)

// ErrNoData means every chunk failed or yielded nothing. Callers report
// this to the user instead of returning an empty file.
var ErrNoData = errors.New("no mcqs generated")

// Generator produces MCQ records for one text chunk.
type Generator interface {
	Generate(ctx context.Context, chunk string, numOptions int) ([]mcq.Record, error)
}

// Options configures one pipeline run.
type Options struct {
	NumOptions int
	ChunkSize  int
	Retry      generate.RetryPolicy
}

// Run chunks the text and generates MCQs for each chunk in order,
// strictly sequentially. A chunk whose generation fails after all retry
// attempts contributes zero records; processing continues with the next
// chunk. Returns ErrNoData when no chunk produced a usable record.
func Run(ctx context.Context, log *slog.Logger, gen Generator, text string, opts Options) ([]mcq.Record, error) {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = chunker.DefaultChunkSize
	}
	if opts.NumOptions != 4 && opts.NumOptions != 5 {
		opts.NumOptions = 5
	}

	chunks := chunker.Split(text, opts.ChunkSize)
	log.Info("chunked input", "chunks", len(chunks), "tokens_estimate", chunker.EstimateTokens(text))

	var all []mcq.Record
	for i, chunk := range chunks {
		var records []mcq.Record
		err := opts.Retry.Do(ctx, func() error {
			var genErr error
			records, genErr = gen.Generate(ctx, chunk, opts.NumOptions)
			return genErr
		})
		if err != nil {
			log.Error("generation failed for chunk", "chunk", i, "error", err)
			continue
		}

		kept := 0
		for j := range records {
			if mcq.Validate(&records[j], opts.NumOptions) {
				all = append(all, records[j])
				kept++
			}
		}
		log.Info("chunk processed", "chunk", i, "records", kept, "dropped", len(records)-kept)
	}

	if len(all) == 0 {
		return nil, ErrNoData
	}
	return all, nil
}
