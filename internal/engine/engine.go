package engine

import (
	"context"

	"github.com/ytget/svd/internal/model"
)

// Extractor is what the orchestration layer needs from the media
// extraction engine. Implementations are long-running and blocking; they
// must honour ctx for cancellation.
type Extractor interface {
	// Probe runs a metadata-only extraction with the given attempt spec.
	// A nil metadata with nil error means the engine finished but found
	// nothing usable.
	Probe(ctx context.Context, url string, spec model.AttemptSpec) (*model.Metadata, error)

	// Fetch downloads the media selected by url using the given attempt
	// spec and output template, returning the on-disk path.
	Fetch(ctx context.Context, url string, spec model.AttemptSpec, outputTemplate string) (string, error)
}

// UpstreamError is a structured failure reported by the engine itself
// (extraction refused, media unavailable, bot challenge, ...) as opposed
// to the engine failing to run at all. Message is a single line.
type UpstreamError struct {
	Message string
}

// Error satisfies the error interface.
func (e *UpstreamError) Error() string {
	return e.Message
}
