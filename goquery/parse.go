package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/probset"
	"golang.org/x/net/html"
)

// Parse builds a queryable document from raw HTML.
// Parsing is lenient: malformed markup still yields a best-effort tree.
// Returns EMALFORMED only if no tree can be built at all.
func Parse(page string) (*goquery.Document, error) {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, probset.Errorf(probset.EMALFORMED, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}
