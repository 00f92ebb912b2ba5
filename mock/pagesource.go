package mock

import (
	"context"

	"github.com/fwojciec/probset"
)

var _ probset.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of probset.PageSource.
type PageSource struct {
	ListPagesFn func(ctx context.Context, folder string) ([]string, error)
	ReadPageFn  func(ctx context.Context, folder, page string) (string, error)
}

func (s *PageSource) ListPages(ctx context.Context, folder string) ([]string, error) {
	return s.ListPagesFn(ctx, folder)
}

func (s *PageSource) ReadPage(ctx context.Context, folder, page string) (string, error) {
	return s.ReadPageFn(ctx, folder, page)
}
