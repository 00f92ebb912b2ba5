// Package slog provides logging decorators for probset services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/probset"
)

// Ensure LoggingPageSource implements probset.PageSource.
var _ probset.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with logging of folder listings
// and page reads.
type LoggingPageSource struct {
	next   probset.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next probset.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// ListPages delegates to the wrapped source and logs the page count.
func (s *LoggingPageSource) ListPages(ctx context.Context, folder string) (pages []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("list pages",
			"folder", folder,
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListPages(ctx, folder)
}

// ReadPage delegates to the wrapped source and logs the page being parsed.
func (s *LoggingPageSource) ReadPage(ctx context.Context, folder, page string) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("parsing page",
			"folder", folder,
			"page", page,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadPage(ctx, folder, page)
}
