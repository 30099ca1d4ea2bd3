package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ytget/svd/internal/config"
	"github.com/ytget/svd/internal/download"
	"github.com/ytget/svd/internal/model"
	"github.com/ytget/svd/internal/origin"
	"github.com/ytget/svd/internal/ratelimit"
	"github.com/ytget/svd/internal/strategy"
	"github.com/ytget/svd/pkg/logger"
)

// User-facing messages owned by the HTTP layer.
const (
	msgInvalidBody       = "Request body must be JSON with a url field."
	msgUnsupportedOrigin = "URL must be from Twitter/X, Instagram, TikTok, or YouTube."
)

// Server exposes the download pipeline over HTTP.
type Server struct {
	echo      *echo.Echo
	settings  *config.Settings
	planner   *strategy.Planner
	downloads *download.Service
	limiter   *ratelimit.Limiter
	log       *logger.Logger
}

// downloadRequest is the body of POST /download.
type downloadRequest struct {
	URL string `json:"url"`
}

// New wires routes and middleware onto a fresh echo instance.
func New(settings *config.Settings, planner *strategy.Planner, downloads *download.Service, limiter *ratelimit.Limiter) *Server {
	s := &Server{
		echo:      echo.New(),
		settings:  settings,
		planner:   planner,
		downloads: downloads,
		limiter:   limiter,
		log:       logger.Get("HTTP"),
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
	}))

	s.echo.GET("/health", s.handleHealth)
	s.echo.POST("/download", s.handleDownload, RateLimit(limiter))

	// Companion frontend, when one is deployed alongside the service.
	if settings.FrontendDir != "" {
		s.echo.Static("/", settings.FrontendDir)
	}

	return s
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	s.log.Infof("listening on %s", s.settings.Addr())
	return s.echo.Start(s.settings.Addr())
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// handleDownload runs the full pipeline: origin check, attempt planning,
// metadata extraction, download, streaming. The artifact is discarded on
// every exit path once the response hand-off is over, aborted transfers
// included.
func (s *Server) handleDownload(c echo.Context) error {
	var req downloadRequest
	if err := c.Bind(&req); err != nil {
		return s.failure(c, model.NewFailure(model.FailureInvalidOrigin, msgInvalidBody))
	}
	if !origin.IsAllowed(req.URL) {
		return s.failure(c, model.NewFailure(model.FailureInvalidOrigin, msgUnsupportedOrigin))
	}

	ctx := c.Request().Context()
	plan := s.planner.PlanFor(req.URL)

	meta, winning, fail := s.downloads.Extract(ctx, req.URL, plan)
	if fail != nil {
		return s.failure(c, fail)
	}

	artifact, fail := s.downloads.Materialize(ctx, req.URL, winning, meta)
	if fail != nil {
		return s.failure(c, fail)
	}
	defer func() {
		if err := artifact.Discard(); err != nil {
			s.log.Warnf("failed to remove artifact %s: %v", artifact.Path, err)
		}
	}()

	s.log.Infof("serving %s as %q", artifact.Path, artifact.Filename)
	return c.Attachment(artifact.Path, artifact.Filename)
}

func (s *Server) failure(c echo.Context, fail *model.Failure) error {
	return c.JSON(fail.Kind.HTTPStatus(), echo.Map{"error": fail.Message})
}
