package download

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/svd/internal/engine"
	"github.com/ytget/svd/internal/model"
	"github.com/ytget/svd/internal/platform"
	"github.com/ytget/svd/internal/strategy"
	"github.com/ytget/svd/pkg/logger"
)

// Artifact constants
const (
	Extension   = ".mp4"
	ContentType = "video/mp4"
	tempPrefix  = "svd-"
)

// DefaultBackoff is the pause between a blocked attempt and the next one.
const DefaultBackoff = 2 * time.Second

// User-facing messages for failures whose raw detail stays server-side.
const (
	msgNoVideo            = "No video found."
	msgExtractUnexpected  = "Extraction failed unexpectedly."
	msgDownloadUnexpected = "Download failed unexpectedly."
	msgFileMissing        = "File not found after download."
)

// Service orchestrates the two extraction phases. Extract walks the
// attempt plan until one spec yields metadata; Materialize reuses that
// winning spec to download the media so both phases see a consistent
// configuration.
type Service struct {
	engine  engine.Extractor
	tmpDir  string
	backoff time.Duration
	log     *logger.Logger
}

// NewService creates the orchestrator. Downloaded artifacts are placed
// under tmpDir; backoff <= 0 selects DefaultBackoff.
func NewService(extractor engine.Extractor, tmpDir string, backoff time.Duration) *Service {
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	return &Service{
		engine:  extractor,
		tmpDir:  tmpDir,
		backoff: backoff,
		log:     logger.Get("DOWNLOAD"),
	}
}

// Extract runs the plan's attempt specs in order against the engine's
// metadata phase. Block-classified failures move on to the next spec
// after a short backoff; any other failure terminates immediately. The
// returned spec is the one that won and must be reused for Materialize.
func (s *Service) Extract(ctx context.Context, url string, plan strategy.Plan) (*model.Metadata, model.AttemptSpec, *model.Failure) {
	var none model.AttemptSpec

	for i, spec := range plan.Attempts {
		s.log.Infof("attempt %d/%d for %s (%s)", i+1, len(plan.Attempts), url, spec.Name)

		meta, err := s.engine.Probe(ctx, url, spec)
		if err == nil {
			if meta != nil {
				return meta, spec, nil
			}
			// Engine finished clean but found nothing; the next spec may
			// still see the video.
			continue
		}

		var upstream *engine.UpstreamError
		if !errors.As(err, &upstream) {
			s.log.Errorf("unexpected engine failure for %s: %v", url, err)
			return nil, none, model.NewFailure(model.FailureInternal, msgExtractUnexpected)
		}

		s.log.Warnf("extraction attempt %d failed for %s: %s", i+1, url, upstream.Message)
		kind := model.FailureExtraction
		if looksLikeBlock(upstream.Message) {
			kind = model.FailureBlocked
		}
		if !kind.Retryable() {
			return nil, none, model.NewFailure(kind, upstream.Message)
		}
		if i == len(plan.Attempts)-1 {
			return nil, none, s.blockFailure(plan, upstream.Message)
		}
		if err := s.wait(ctx); err != nil {
			return nil, none, model.NewFailure(model.FailureInternal, msgExtractUnexpected)
		}
	}

	return nil, none, model.NewFailure(model.FailureExtraction, msgNoVideo)
}

// Materialize downloads the media with the winning spec, verifies the
// file landed on disk, and wraps it as an artifact. The caller owns the
// artifact and must Discard it once the response has been handed off.
func (s *Service) Materialize(ctx context.Context, url string, winning model.AttemptSpec, meta *model.Metadata) (*model.Artifact, *model.Failure) {
	filename := platform.SafeFilename(meta.Title) + Extension
	outputTemplate := filepath.Join(s.tmpDir, tempPrefix+uuid.NewString()+"-%(id)s.%(ext)s")

	path, err := s.engine.Fetch(ctx, url, winning, outputTemplate)
	if err != nil {
		var upstream *engine.UpstreamError
		if errors.As(err, &upstream) {
			s.log.Warnf("download failed for %s: %s", url, upstream.Message)
			return nil, model.NewFailure(model.FailureExtraction, upstream.Message)
		}
		s.log.Errorf("unexpected engine failure downloading %s: %v", url, err)
		return nil, model.NewFailure(model.FailureInternal, msgDownloadUnexpected)
	}

	// A reported-successful download without a file is a broken engine
	// postcondition, not a user error.
	if !platform.Exists(path) {
		s.log.Errorf("engine reported success for %s but %s does not exist", url, path)
		return nil, model.NewFailure(model.FailureInternal, msgFileMissing)
	}

	return &model.Artifact{
		Path:        path,
		Filename:    filename,
		ContentType: ContentType,
	}, nil
}

// blockFailure maps a terminal block onto the user-facing failure. For
// the restricted platform family the raw engine text is swapped for a
// friendlier explanation.
func (s *Service) blockFailure(plan strategy.Plan, msg string) *model.Failure {
	if plan.Restricted {
		return model.NewFailure(model.FailureBlocked, restrictedBlockMessage)
	}
	return model.NewFailure(model.FailureBlocked, msg)
}

// wait sleeps the backoff between attempts, aborting early if the request
// goes away.
func (s *Service) wait(ctx context.Context) error {
	select {
	case <-time.After(s.backoff):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
