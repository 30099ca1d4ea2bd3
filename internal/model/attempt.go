package model

import (
	"os"
	"sync"
	"time"
)

// AttemptSpec is one candidate configuration for a single call into the
// extraction engine. Specs are immutable once built; the strategy layer
// produces them in escalation order (first is the most vanilla).
type AttemptSpec struct {
	// Name identifies the attempt in logs ("vanilla", "pot-provider", ...).
	Name string

	// Headers are extra HTTP headers passed to the engine. Empty for
	// platforms where custom headers raise bot-detection risk.
	Headers map[string]string

	// CookieFile is an optional Netscape cookie jar path. Empty when no
	// jar is configured or the file does not exist.
	CookieFile string

	// ExtractorArgs carry engine extractor overrides, e.g. an alternate
	// PO-token provider endpoint.
	ExtractorArgs []string

	// Timeout is the socket timeout for engine network operations.
	Timeout time.Duration
}

// Metadata is the result of a successful metadata-only extraction.
type Metadata struct {
	ID    string
	Title string
	Ext   string
}

// Artifact is a downloaded media file owned by a single request. The
// request that created it must call Discard once streaming has finished,
// whether or not transmission succeeded.
type Artifact struct {
	Path        string
	Filename    string
	ContentType string

	discard sync.Once
}

// Discard removes the on-disk file. Safe to call more than once; only the
// first call touches the filesystem.
func (a *Artifact) Discard() error {
	var err error
	a.discard.Do(func() {
		err = os.Remove(a.Path)
	})
	return err
}
