// Command minidock extracts text and structure from .docx files.
//
// Usage:
//
//	minidock [flags] <file.docx>
//	minidock -serve :8080
//
// Flags:
//
//	-config path     YAML configuration file
//	-format f        json, text, html or markdown (default from config, else text)
//	-notes           insert note markers and append notes (text output)
//	-styles          print the resolved style table instead of content
//	-serve addr      run the HTTP extraction service
//	-log-level lvl   debug, info, warn or error
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tsawler/minidock"
	"github.com/tsawler/minidock/config"
	"github.com/tsawler/minidock/server"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "minidock: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("minidock", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML configuration file")
	format := fs.String("format", "", "output format: json, text, html or markdown")
	notes := fs.Bool("notes", false, "insert note markers and append notes")
	styles := fs.Bool("styles", false, "print the resolved style table")
	serve := fs.String("serve", "", "run the HTTP service on this address")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: minidock [flags] <file.docx>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *notes {
		cfg.Output.NoteMarkers = true
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *serve != "" {
		cfg.Server.Addr = *serve
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	if *serve != "" {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return server.New(cfg, logger).ListenAndServe(ctx)
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return errors.New("no input file")
	}
	path := fs.Arg(0)

	ext := minidock.Open(path).Logger(logger)
	if cfg.Output.NoteMarkers {
		ext = ext.NoteMarkers()
	}

	if *styles {
		doc, warnings, err := ext.Document()
		if err != nil {
			return err
		}
		logWarnings(logger, path, warnings)
		return writeStyleTable(stdout, doc.Styles)
	}

	var (
		out      string
		warnings []minidock.Warning
		err      error
	)
	switch cfg.Output.Format {
	case config.FormatJSON:
		out, warnings, err = ext.JSON()
	case config.FormatHTML:
		out, warnings, err = ext.HTML()
	case config.FormatMarkdown:
		out, warnings, err = ext.Markdown()
	default:
		out, warnings, err = ext.Text()
	}
	if err != nil {
		return err
	}
	logWarnings(logger, path, warnings)

	_, err = fmt.Fprintln(stdout, out)
	return err
}

func logWarnings(logger *slog.Logger, path string, warnings []minidock.Warning) {
	for _, w := range warnings {
		logger.Warn(w.Message, "file", path, "code", string(w.Code))
	}
}
