// Package xtext cleans text scraped from problem pages using golang.org/x/text.
package xtext

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fwojciec/probset"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var _ probset.Normalizer = (*Normalizer)(nil)

// Rule replaces every occurrence of Old with New.
type Rule struct {
	Old string
	New string
}

// DefaultRules returns the replacement rules applied by a Normalizer
// created without WithRules. Rules run in order and later rules see the
// output of earlier ones.
func DefaultRules() []Rule {
	return []Rule{
		{Old: "\r\n", New: "\n"},
		{Old: "\r", New: "\n"},
		{Old: "\t", New: " "},
		{Old: "\u00a0", New: " "}, // no-break space
		{Old: "\u2002", New: " "}, // en space
		{Old: "\u2003", New: " "}, // em space
		{Old: "\u2007", New: " "}, // figure space
		{Old: "\u2009", New: " "}, // thin space
		{Old: "\u202f", New: " "}, // narrow no-break space
		{Old: "\u2026", New: "..."},
	}
}

var (
	spaceRunRe  = regexp.MustCompile(` {2,}`)
	lineSpaceRe = regexp.MustCompile(` *\n *`)
)

// Normalizer maps raw scraped text to cleaned text.
// It is safe for concurrent use.
type Normalizer struct {
	rules []Rule
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithRules replaces the default replacement rules.
// Rules must not produce text matched by any rule, or Normalize stops
// being idempotent.
func WithRules(rules []Rule) Option {
	return func(n *Normalizer) {
		n.rules = rules
	}
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{rules: DefaultRules()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize composes the text to NFC, drops invisible format characters
// (soft hyphens, zero-width spaces, byte-order marks), applies the
// replacement rules in order, collapses runs of spaces and trims spaces
// around line breaks and at both ends.
func (n *Normalizer) Normalize(s string) string {
	// NFC runs again after removal since a dropped format character may
	// separate a base character from its combining mark.
	t := transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.Cf)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}

	for _, r := range n.rules {
		s = strings.ReplaceAll(s, r.Old, r.New)
	}

	s = spaceRunRe.ReplaceAllString(s, " ")
	s = lineSpaceRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
