// Package fs provides file-based page sources and dataset storage.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/probset"
)

// Ensure PageSource implements probset.PageSource at compile time.
var _ probset.PageSource = (*PageSource)(nil)

// PageSource reads HTML pages from category folders below a root directory.
type PageSource struct {
	root string
}

// NewPageSource creates a new PageSource reading folders below root.
func NewPageSource(root string) *PageSource {
	return &PageSource{root: root}
}

// ListPages returns the names of the *.html files in the folder, sorted
// by name so that runs are reproducible. Hidden files and directories
// are skipped.
func (s *PageSource) ListPages(ctx context.Context, folder string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(s.root, folder)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, probset.Errorf(probset.ENOTFOUND, "folder %q not found in %s", folder, s.root)
	}
	if err != nil {
		return nil, err
	}

	// os.ReadDir returns entries sorted by filename.
	var pages []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if filepath.Ext(name) != ".html" {
			continue
		}
		pages = append(pages, name)
	}
	return pages, nil
}

// ReadPage returns the content of a page. The file is closed before
// ReadPage returns.
func (s *PageSource) ReadPage(ctx context.Context, folder, page string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if page == "" || strings.ContainsAny(page, `/\`) {
		return "", probset.Errorf(probset.EINVALID, "invalid page name %q", page)
	}

	data, err := os.ReadFile(filepath.Join(s.root, folder, page))
	if errors.Is(err, os.ErrNotExist) {
		return "", probset.Errorf(probset.ENOTFOUND, "page %q not found in folder %q", page, folder)
	}
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", probset.Errorf(probset.EMALFORMED, "page %q is not valid UTF-8", page)
	}
	return string(data), nil
}
