package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/probset"
	"github.com/fwojciec/probset/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestPageSource_ListPages(t *testing.T) {
	t.Parallel()

	t.Run("lists html files sorted by name", func(t *testing.T) {
		t.Parallel()

		// Given a folder with pages and unrelated files
		root := t.TempDir()
		dir := filepath.Join(root, "math_tasks")
		writeFile(t, filepath.Join(dir, "2nd_task.html"), "<html></html>")
		writeFile(t, filepath.Join(dir, "10th_task.html"), "<html></html>")
		writeFile(t, filepath.Join(dir, "1st_task.html"), "<html></html>")
		writeFile(t, filepath.Join(dir, "notes.txt"), "notes")
		writeFile(t, filepath.Join(dir, ".hidden.html"), "<html></html>")
		writeFile(t, filepath.Join(dir, "nested.html", "inner.html"), "<html></html>")

		// When I list the pages
		pages, err := fs.NewPageSource(root).ListPages(context.Background(), "math_tasks")

		// Then only top-level html files are returned in name order
		require.NoError(t, err)
		assert.Equal(t, []string{"10th_task.html", "1st_task.html", "2nd_task.html"}, pages)
	})

	t.Run("returns not found for missing folder", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewPageSource(t.TempDir()).ListPages(context.Background(), "missing")

		assert.Equal(t, probset.ENOTFOUND, probset.ErrorCode(err))
	})

	t.Run("returns empty list for empty folder", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0755))

		pages, err := fs.NewPageSource(root).ListPages(context.Background(), "empty")

		require.NoError(t, err)
		assert.Empty(t, pages)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewPageSource(t.TempDir()).ListPages(ctx, "math_tasks")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPageSource_ReadPage(t *testing.T) {
	t.Parallel()

	t.Run("reads page content", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "math_tasks", "1st_task.html"), "<p>Ответ: 4</p>")

		content, err := fs.NewPageSource(root).ReadPage(context.Background(), "math_tasks", "1st_task.html")

		require.NoError(t, err)
		assert.Equal(t, "<p>Ответ: 4</p>", content)
	})

	t.Run("returns not found for missing page", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "math_tasks"), 0755))

		_, err := fs.NewPageSource(root).ReadPage(context.Background(), "math_tasks", "missing.html")

		assert.Equal(t, probset.ENOTFOUND, probset.ErrorCode(err))
	})

	t.Run("rejects page names with separators", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewPageSource(t.TempDir()).ReadPage(context.Background(), "math_tasks", "../secret.html")

		assert.Equal(t, probset.EINVALID, probset.ErrorCode(err))
	})

	t.Run("rejects invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "math_tasks", "cp1251.html"), "\xcf\xf0\xe8\xe2\xe5\xf2")

		_, err := fs.NewPageSource(root).ReadPage(context.Background(), "math_tasks", "cp1251.html")

		assert.Equal(t, probset.EMALFORMED, probset.ErrorCode(err))
	})
}
