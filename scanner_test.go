package unstyle

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under root, making parent directories as needed.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func allCategories() CategorySet {
	return CategorySet{CategoryMarkup: true, CategoryStylesheet: true}
}

func TestScanCollectsByCategory(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"index.html":         "<html></html>",
		"about.htm":          "<html></html>",
		"assets/app.css":     "body {}",
		"assets/theme.scss":  ".a {}",
		"notes.txt":          "skip me",
		"src/main.go":        "package main",
		"deep/a/b/page.html": "<div></div>",
	})

	result, err := Scan(root, allCategories(), ScanOptions{})
	require.NoError(t, err)

	assert.Len(t, result.Paths(CategoryMarkup), 3)
	assert.Len(t, result.Paths(CategoryStylesheet), 2)
	assert.Equal(t, 5, result.Total())
	assert.Equal(t, 7, result.Stats.FilesDiscovered)
	assert.Equal(t, 5, result.Stats.FilesMatched)
	assert.Empty(t, result.Warnings)
}

func TestScanInvalidRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"), allCategories(), ScanOptions{})
	require.ErrorIs(t, err, ErrInvalidRoot)
}

func TestScanRootIsFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "file.html")
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

	_, err := Scan(path, allCategories(), ScanOptions{})
	require.ErrorIs(t, err, ErrInvalidRoot)
}

func TestScanEmptyTree(t *testing.T) {
	result, err := Scan(t.TempDir(), allCategories(), ScanOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total())
}

func TestScanCategorySuperset(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.html":      "x",
		"b/c.html":    "x",
		"b/style.css": "x",
		"d.scss":      "x",
	})

	markupOnly, err := Scan(root, CategorySet{CategoryMarkup: true}, ScanOptions{})
	require.NoError(t, err)
	both, err := Scan(root, allCategories(), ScanOptions{})
	require.NoError(t, err)

	// Every path from the narrower scan appears in the wider one.
	for _, path := range markupOnly.Paths(CategoryMarkup) {
		assert.Contains(t, both.Paths(CategoryMarkup), path)
	}
	assert.Empty(t, markupOnly.Paths(CategoryStylesheet))
}

func TestScanDeterministicOrdering(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"z.html":     "x",
		"a.html":     "x",
		"m/n.html":   "x",
		"b/q.html":   "x",
		"b/a/r.html": "x",
	})

	first, err := Scan(root, CategorySet{CategoryMarkup: true}, ScanOptions{})
	require.NoError(t, err)
	second, err := Scan(root, CategorySet{CategoryMarkup: true}, ScanOptions{})
	require.NoError(t, err)

	require.Equal(t, first.Paths(CategoryMarkup), second.Paths(CategoryMarkup))

	// Depth-first with lexicographic siblings: a.html, b/a/r.html, b/q.html,
	// m/n.html, z.html.
	expected := []string{
		filepath.Join(root, "a.html"),
		filepath.Join(root, "b", "a", "r.html"),
		filepath.Join(root, "b", "q.html"),
		filepath.Join(root, "m", "n.html"),
		filepath.Join(root, "z.html"),
	}
	assert.Equal(t, expected, first.Paths(CategoryMarkup))
}

func TestScanHonorsGitignore(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":             "dist/\n",
		"index.html":             "x",
		"dist/bundle.html":       "x",
		"dist/assets/bundle.css": "x",
	})

	result, err := Scan(root, allCategories(), ScanOptions{HonorGitignore: true})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "index.html")}, result.Paths(CategoryMarkup))
	assert.Empty(t, result.Paths(CategoryStylesheet))
	assert.Equal(t, 2, result.Stats.FilesSkipped)

	// Without the option the ignored files come back.
	result, err = Scan(root, allCategories(), ScanOptions{})
	require.NoError(t, err)
	assert.Len(t, result.Paths(CategoryMarkup), 2)
}

func TestScanIncludeExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/page.html":    "x",
		"src/app.css":      "x",
		"vendor/lib.css":   "x",
		"vendor/page.html": "x",
	})

	result, err := Scan(root, allCategories(), ScanOptions{Exclude: []string{"vendor/**"}})
	require.NoError(t, err)
	assert.Len(t, result.Paths(CategoryMarkup), 1)
	assert.Len(t, result.Paths(CategoryStylesheet), 1)
	assert.Equal(t, 2, result.Stats.FilesSkipped)

	result, err = Scan(root, allCategories(), ScanOptions{Include: []string{"src/**"}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "src", "page.html")}, result.Paths(CategoryMarkup))
	assert.Equal(t, []string{filepath.Join(root, "src", "app.css")}, result.Paths(CategoryStylesheet))
}

func TestScanUnreadableDirectoryIsWarning(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("permission checks bypassed when running as root")
	}

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"ok/a.html":     "x",
		"locked/b.html": "x",
	})

	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	result, err := Scan(root, allCategories(), ScanOptions{})
	require.NoError(t, err)

	// The readable subtree is still returned; the failure is a warning.
	assert.Equal(t, []string{filepath.Join(root, "ok", "a.html")}, result.Paths(CategoryMarkup))
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "locked")
}

func TestScanSymlinkLoopTerminates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"sub/page.html": "x",
	})
	require.NoError(t, os.Symlink(root, filepath.Join(root, "sub", "loop")))

	result, err := Scan(root, allCategories(), ScanOptions{})
	require.NoError(t, err)

	// The link back to the root is followed at most once per physical
	// target, so the file is not duplicated.
	assert.Equal(t, []string{filepath.Join(root, "sub", "page.html")}, result.Paths(CategoryMarkup))
}

func TestScanFollowsFileSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	root := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "real.html"), []byte("x"), 0644))
	require.NoError(t, os.Symlink(filepath.Join(outside, "real.html"), filepath.Join(root, "link.html")))

	result, err := Scan(root, CategorySet{CategoryMarkup: true}, ScanOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "link.html")}, result.Paths(CategoryMarkup))
}

func TestScanDanglingSymlinkIsWarning(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	root := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.html"), filepath.Join(root, "dangling.html")))

	result, err := Scan(root, allCategories(), ScanOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total())
	require.Len(t, result.Warnings, 1)
}
