package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/probset"
)

var _ probset.Extractor = (*Extractor)(nil)

// Selectors shared by the problem-set page layouts.
const (
	problemSelector   = ".prob_maindiv"
	bodySelector      = ".pbody"
	lineSelector      = ".left_margin"
	answerSelector    = ".answer"
	solutionSelector  = ".solution"
	resultRowSelector = ".res_row"
)

// answerPrefix precedes the answer in answer and solution regions.
const answerPrefix = "Ответ: "

// Extractor parses problem-set pages and extracts records using one of
// the probset behaviors. All extracted text passes through the normalizer.
type Extractor struct {
	normalizer probset.Normalizer
}

// NewExtractor creates a new Extractor.
func NewExtractor(normalizer probset.Normalizer) *Extractor {
	return &Extractor{normalizer: normalizer}
}

// Extract parses page and applies behavior to the resulting document.
func (e *Extractor) Extract(behavior probset.Behavior, page string) ([]probset.Record, error) {
	if err := behavior.Validate(); err != nil {
		return nil, err
	}

	doc, err := Parse(page)
	if err != nil {
		return nil, err
	}

	switch behavior {
	case probset.BehaviorDefault:
		return e.extractDefault(doc)
	case probset.BehaviorYesNo:
		return e.extractYesNo(doc)
	case probset.BehaviorTable:
		return e.extractTable(doc)
	case probset.BehaviorBasis:
		return e.extractBasis(doc)
	case probset.BehaviorPhraseConn:
		return e.extractPhraseConn(doc)
	}
	return nil, probset.Errorf(probset.EINVALID, "unknown behavior %q", string(behavior))
}

// find returns the first element matching selector inside sel.
// Returns ESTRUCTURE naming the behavior and 1-based block number if
// nothing matches.
func find(sel *goquery.Selection, selector string, behavior probset.Behavior, block int) (*goquery.Selection, error) {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, probset.Errorf(probset.ESTRUCTURE, "%s: block %d: missing %s", behavior, block+1, selector)
	}
	return found, nil
}
