package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/probset"
)

// Ensure LoggingDatasetWriter implements probset.DatasetWriter.
var _ probset.DatasetWriter = (*LoggingDatasetWriter)(nil)

// LoggingDatasetWriter wraps a DatasetWriter with logging.
type LoggingDatasetWriter struct {
	next   probset.DatasetWriter
	logger *slog.Logger
}

// NewLoggingDatasetWriter creates a new LoggingDatasetWriter.
func NewLoggingDatasetWriter(next probset.DatasetWriter, logger *slog.Logger) *LoggingDatasetWriter {
	return &LoggingDatasetWriter{next: next, logger: logger}
}

// WriteDataset delegates to the wrapped writer and logs the operation.
func (w *LoggingDatasetWriter) WriteDataset(ctx context.Context, ds *probset.Dataset) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write dataset",
			"dataset", ds.Name,
			"records", len(ds.Records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDataset(ctx, ds)
}
