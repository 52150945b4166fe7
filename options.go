package minidock

import "log/slog"

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	logger        *slog.Logger
	noteMarkers   bool
	maxMemberSize int64 // 0 means archive.DefaultMaxMemberSize
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		logger:        nil, // nil means slog.Default()
		noteMarkers:   false,
		maxMemberSize: 0,
	}
}

// clone returns a copy of o.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		logger:        o.logger,
		noteMarkers:   o.noteMarkers,
		maxMemberSize: o.maxMemberSize,
	}
}

func (o ExtractOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}
