// Package server exposes document extraction over HTTP.
//
// Routes:
//
//	GET  /healthz
//	POST /v1/extract?format=json|text|html|markdown&notes=true
//
// The request body is the raw .docx package. Other zip archives, legacy
// .doc files and encrypted packages are refused with 415. Every request is
// parsed on its own, so requests are served concurrently without shared
// state.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsawler/minidock"
	"github.com/tsawler/minidock/config"
	"github.com/tsawler/minidock/format"
)

// WarningsHeader lists extraction warnings on non-JSON responses.
const WarningsHeader = "X-Minidock-Warnings"

// Server is the HTTP extraction service.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	router chi.Router
}

// New creates a Server. A nil cfg uses config.Default and a nil logger
// uses slog.Default.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{cfg: cfg, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/extract", s.handleExtract)

	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	id := RequestID(r.Context())
	logger := s.logger.With("request_id", id)

	q := r.URL.Query()
	outFormat := q.Get("format")
	if outFormat == "" {
		outFormat = s.cfg.Output.Format
	}
	if !config.ValidFormat(outFormat) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unsupported format %q", outFormat))
		return
	}

	notes := s.cfg.Output.NoteMarkers
	if v := q.Get("notes"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid notes value %q", v))
			return
		}
		notes = b
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Errorf("reading body: %w", err))
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("empty body"))
		return
	}

	if f, _ := format.DetectFromReader(bytes.NewReader(data), int64(len(data))); f != format.Unknown && !f.Supported() {
		writeError(w, http.StatusUnsupportedMediaType,
			fmt.Errorf("unsupported upload: %s (%s), expected a .docx package", f, f.Extension()))
		return
	}

	ext := minidock.FromBytes(data).Logger(logger)
	if notes {
		ext = ext.NoteMarkers()
	}

	var (
		body        string
		warnings    []minidock.Warning
		contentType string
	)
	switch outFormat {
	case config.FormatJSON:
		doc, warnings, err := ext.Document()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, newExtractResponse(id, doc, warnings)); err != nil {
			logger.Error("writing response", "error", err)
		}
		return
	case config.FormatText:
		body, warnings, err = ext.Text()
		contentType = "text/plain; charset=utf-8"
	case config.FormatHTML:
		body, warnings, err = ext.HTML()
		contentType = "text/html; charset=utf-8"
	case config.FormatMarkdown:
		body, warnings, err = ext.Markdown()
		contentType = "text/markdown; charset=utf-8"
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if len(warnings) > 0 {
		w.Header().Set(WarningsHeader, minidock.FormatWarnings(warnings))
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, body)
}

// writeJSON encodes v before touching the response, so an encoding
// failure becomes a 500 instead of a truncated 200.
func writeJSON(w http.ResponseWriter, code int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"encoding response"}`+"\n")
		return fmt.Errorf("encoding response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(append(data, '\n'))
	return nil
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
