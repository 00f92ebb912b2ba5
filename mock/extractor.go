package mock

import "github.com/fwojciec/probset"

var _ probset.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of probset.Extractor.
type Extractor struct {
	ExtractFn func(behavior probset.Behavior, html string) ([]probset.Record, error)
}

func (e *Extractor) Extract(behavior probset.Behavior, html string) ([]probset.Record, error) {
	return e.ExtractFn(behavior, html)
}

var _ probset.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of probset.Normalizer.
type Normalizer struct {
	NormalizeFn func(s string) string
}

func (n *Normalizer) Normalize(s string) string {
	return n.NormalizeFn(s)
}
