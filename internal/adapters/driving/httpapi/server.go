// Package httpapi exposes the analysis engine over HTTP as a small JSON
// API. It is an adapter: all behavior lives in the core services.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driving"
	"github.com/inklight-labs/inklight-cli/internal/logger"
)

const defaultHistoryLimit = 20

// Server wraps an echo instance with routes for analysis, corpus
// management, history and settings.
type Server struct {
	echo     *echo.Echo
	analysis driving.AnalysisService
	corpus   driving.CorpusService
	history  driving.HistoryService
	settings driving.SettingsService
}

// NewServer builds the HTTP server. Analysis is required; the other
// services may be nil, in which case their routes return 503.
func NewServer(
	analysis driving.AnalysisService,
	corpus driving.CorpusService,
	history driving.HistoryService,
	settings driving.SettingsService,
) (*Server, error) {
	if analysis == nil {
		return nil, errors.New("httpapi: analysis service is required")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = errorHandler

	s := &Server{
		echo:     e,
		analysis: analysis,
		corpus:   corpus,
		history:  history,
		settings: settings,
	}
	s.registerRoutes()
	return s, nil
}

// Start listens on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP shutdown: %v", err)
		}
	}()

	err := s.echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) registerRoutes() {
	s.echo.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := s.echo.Group("/api")
	api.POST("/analyze", s.handleAnalyze)
	api.GET("/corpus", s.handleCorpusList)
	api.POST("/corpus", s.handleCorpusAdd)
	api.DELETE("/corpus/:id", s.handleCorpusRemove)
	api.GET("/history", s.handleHistory)
	api.GET("/settings", s.handleSettingsGet)
	api.PUT("/settings", s.handleSettingsPut)
}

// errorHandler renders every error as a JSON body with a single
// "error" field, mapping domain errors to HTTP status codes.
func errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := err.Error()

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		if he.Message != nil {
			msg = fmt.Sprint(he.Message)
		}
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidConfig),
		errors.Is(err, domain.ErrUnsupportedFormat):
		code = http.StatusBadRequest
	}

	if code >= http.StatusInternalServerError {
		logger.Warn("HTTP %d %s %s: %v", code, c.Request().Method, c.Request().URL.Path, err)
	}
	if !c.Response().Committed {
		_ = c.JSON(code, map[string]string{"error": msg}) //nolint:errcheck
	}
}

type analyzeRequest struct {
	Text   string               `json:"text"`
	Title  string               `json:"title,omitempty"`
	Save   bool                 `json:"save,omitempty"`
	Corpus []domain.CorpusEntry `json:"corpus,omitempty"`
}

func (s *Server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := s.analysis.Analyze(c.Request().Context(), req.Text, driving.AnalyzeOptions{
		Title:  req.Title,
		Save:   req.Save,
		Corpus: req.Corpus,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

type corpusAddRequest struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

func (s *Server) handleCorpusAdd(c echo.Context) error {
	if s.corpus == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "corpus service not configured")
	}

	var req corpusAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	entry, err := s.corpus.Add(c.Request().Context(), req.Label, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

func (s *Server) handleCorpusList(c echo.Context) error {
	if s.corpus == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "corpus service not configured")
	}

	entries, err := s.corpus.List(c.Request().Context())
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.CorpusEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

func (s *Server) handleCorpusRemove(c echo.Context) error {
	if s.corpus == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "corpus service not configured")
	}

	if err := s.corpus.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleHistory(c echo.Context) error {
	if s.history == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "history not configured")
	}

	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	records, err := s.history.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if records == nil {
		records = []domain.AnalysisRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

func (s *Server) handleSettingsGet(c echo.Context) error {
	if s.settings == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "settings service not configured")
	}

	settings, err := s.settings.Get()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

func (s *Server) handleSettingsPut(c echo.Context) error {
	if s.settings == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "settings service not configured")
	}

	var settings domain.EngineSettings
	if err := c.Bind(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := s.settings.Save(&settings); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
