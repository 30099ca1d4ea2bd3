package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lrstanley/go-ytdlp"
	"golang.org/x/time/rate"

	"github.com/ytget/svd/internal/model"
	"github.com/ytget/svd/pkg/logger"
)

// DownloadFormat prefers a ready mp4 container and falls back to the best
// available format.
const DownloadFormat = "best[ext=mp4]/best"

// Pacing defaults for upstream calls.
const (
	DefaultPacingRPS   = 2
	DefaultPacingBurst = 4
)

// YTDLP drives the yt-dlp binary through the go-ytdlp bindings. A shared
// pacing limiter throttles all upstream calls so concurrent requests do
// not hammer the platforms.
type YTDLP struct {
	pacer *rate.Limiter
	log   *logger.Logger
}

// NewYTDLP creates the production extractor. rps/burst bound the rate of
// engine invocations across all requests.
func NewYTDLP(rps float64, burst int) *YTDLP {
	if rps <= 0 {
		rps = DefaultPacingRPS
	}
	if burst <= 0 {
		burst = DefaultPacingBurst
	}
	return &YTDLP{
		pacer: rate.NewLimiter(rate.Limit(rps), burst),
		log:   logger.Get("ENGINE"),
	}
}

// Install makes sure a usable yt-dlp binary is available, downloading one
// if the host has none.
func Install(ctx context.Context) error {
	_, err := ytdlp.Install(ctx, nil)
	return err
}

// probeInfo is the subset of the engine's JSON dump the service cares
// about.
type probeInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Ext   string `json:"ext"`
}

// Probe implements Extractor.
func (y *YTDLP) Probe(ctx context.Context, url string, spec model.AttemptSpec) (*model.Metadata, error) {
	if err := y.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	y.log.Debugf("probing %s (attempt %s)", url, spec.Name)
	cmd := y.command(spec).
		SkipDownload().
		DumpSingleJSON()

	result, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, upstreamOrRaw(result, err)
	}

	var info probeInfo
	if err := json.Unmarshal([]byte(result.Stdout), &info); err != nil {
		return nil, fmt.Errorf("failed to decode engine metadata: %w", err)
	}
	if info.ID == "" && info.Title == "" {
		return nil, nil
	}
	return &model.Metadata{ID: info.ID, Title: info.Title, Ext: info.Ext}, nil
}

// Fetch implements Extractor.
func (y *YTDLP) Fetch(ctx context.Context, url string, spec model.AttemptSpec, outputTemplate string) (string, error) {
	if err := y.pacer.Wait(ctx); err != nil {
		return "", err
	}

	y.log.Debugf("downloading %s to %s (attempt %s)", url, outputTemplate, spec.Name)
	cmd := y.command(spec).
		ForceOverwrites().
		Format(DownloadFormat).
		Output(outputTemplate).
		PrintJSON()

	result, err := cmd.Run(ctx, url)
	if err != nil {
		return "", upstreamOrRaw(result, err)
	}

	info, err := result.GetExtractedInfo()
	if err != nil {
		return "", fmt.Errorf("failed to decode engine download info: %w", err)
	}
	if len(info) == 0 || info[0].Filename == nil || *info[0].Filename == "" {
		return "", fmt.Errorf("engine reported success but returned no filename")
	}
	return *info[0].Filename, nil
}

// command builds the flag set shared by both phases from an attempt spec,
// so the download phase sees exactly the configuration that won the
// metadata phase.
func (y *YTDLP) command(spec model.AttemptSpec) *ytdlp.Command {
	cmd := ytdlp.New().
		NoWarnings().
		NoProgress().
		NoPlaylist()

	if spec.Timeout > 0 {
		cmd = cmd.SocketTimeout(spec.Timeout.Seconds())
	}
	for key, value := range spec.Headers {
		cmd = cmd.AddHeaders(key + ":" + value)
	}
	if spec.CookieFile != "" {
		cmd = cmd.Cookies(spec.CookieFile)
	}
	for _, arg := range spec.ExtractorArgs {
		cmd = cmd.ExtractorArgs(arg)
	}
	return cmd
}

// upstreamOrRaw classifies a Run error. A non-nil result means the engine
// ran and refused: that is a structured upstream failure whose first
// useful stderr line becomes the message. A nil result means the engine
// never ran (missing binary, cancelled context) and the raw error is
// passed through as unexpected.
func upstreamOrRaw(result *ytdlp.Result, err error) error {
	if result == nil {
		return err
	}

	msg := firstErrorLine(result.Stderr)
	if msg == "" {
		msg = firstErrorLine(err.Error())
	}
	if msg == "" {
		msg = "extraction failed"
	}
	return &UpstreamError{Message: msg}
}

// firstErrorLine picks the first "ERROR:" line from engine output, or the
// first non-empty line when none is marked.
func firstErrorLine(output string) string {
	lines := strings.Split(output, "\n")
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "ERROR:") {
			return strings.TrimSpace(line)
		}
	}
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
