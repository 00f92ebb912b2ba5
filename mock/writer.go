package mock

import (
	"context"

	"github.com/fwojciec/probset"
)

var _ probset.DatasetWriter = (*DatasetWriter)(nil)

// DatasetWriter is a mock implementation of probset.DatasetWriter.
type DatasetWriter struct {
	WriteDatasetFn func(ctx context.Context, ds *probset.Dataset) error
}

func (w *DatasetWriter) WriteDataset(ctx context.Context, ds *probset.Dataset) error {
	return w.WriteDatasetFn(ctx, ds)
}

var _ probset.DatasetService = (*DatasetService)(nil)

// DatasetService is a mock implementation of probset.DatasetService.
type DatasetService struct {
	WriteDatasetFn func(ctx context.Context, ds *probset.Dataset) error
	FindDatasetFn  func(ctx context.Context, name string) (*probset.Dataset, error)
	FindDatasetsFn func(ctx context.Context) ([]*probset.DatasetSummary, error)
}

func (s *DatasetService) WriteDataset(ctx context.Context, ds *probset.Dataset) error {
	return s.WriteDatasetFn(ctx, ds)
}

func (s *DatasetService) FindDataset(ctx context.Context, name string) (*probset.Dataset, error) {
	return s.FindDatasetFn(ctx, name)
}

func (s *DatasetService) FindDatasets(ctx context.Context) ([]*probset.DatasetSummary, error) {
	return s.FindDatasetsFn(ctx)
}
