package convert

import (
	"context"

	"github.com/fwojciec/probset"
)

// MultiWriter returns a DatasetWriter that writes each dataset to every
// writer in order. The first error stops the write.
func MultiWriter(writers ...probset.DatasetWriter) probset.DatasetWriter {
	if len(writers) == 1 {
		return writers[0]
	}
	return multiWriter(writers)
}

type multiWriter []probset.DatasetWriter

func (m multiWriter) WriteDataset(ctx context.Context, ds *probset.Dataset) error {
	for _, w := range m {
		if err := w.WriteDataset(ctx, ds); err != nil {
			return err
		}
	}
	return nil
}
