package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/probset"
)

// Ensure LoggingExtractor implements probset.Extractor.
var _ probset.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of the behavior used.
type LoggingExtractor struct {
	next   probset.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next probset.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the behavior and
// record count.
func (e *LoggingExtractor) Extract(behavior probset.Behavior, html string) (records []probset.Record, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"behavior", string(behavior),
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(behavior, html)
}
