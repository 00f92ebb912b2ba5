package probset

// Extractor turns the HTML of one page into records.
type Extractor interface {
	// Extract parses html and applies the given behavior to it.
	// Returns EMALFORMED if the page cannot be parsed and ESTRUCTURE if a
	// problem block lacks an element the behavior expects. No records are
	// returned on error.
	Extract(behavior Behavior, html string) ([]Record, error)
}

// Normalizer cleans text scraped from a page.
// Implementations must be deterministic and idempotent.
type Normalizer interface {
	Normalize(s string) string
}
