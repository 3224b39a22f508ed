package unstyle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ErrInvalidRoot is returned when the scan root does not exist or is not a
// directory. It aborts the run before any traversal happens.
var ErrInvalidRoot = errors.New("invalid root directory")

// defaultMaxDepth bounds the descent on platforms where symlink resolution
// cannot be trusted to break cycles.
const defaultMaxDepth = 64

// ScanStats tracks file discovery statistics.
type ScanStats struct {
	FilesDiscovered int // Regular files visited during traversal
	FilesMatched    int // Files included in the result
	FilesSkipped    int // Category-matching files excluded by filtering
}

// ScanResult holds the files discovered per category, in deterministic
// depth-first order. Immutable once returned.
type ScanResult struct {
	Files    map[FileCategory][]string
	Warnings []string
	Stats    ScanStats
}

// Paths returns the discovered files for a single category.
func (r *ScanResult) Paths(c FileCategory) []string {
	return r.Files[c]
}

// Total returns the number of matched files across all categories.
func (r *ScanResult) Total() int {
	n := 0
	for _, paths := range r.Files {
		n += len(paths)
	}
	return n
}

// ScanOptions controls filtering during traversal.
type ScanOptions struct {
	Include        []string // doublestar patterns on root-relative paths; empty = everything
	Exclude        []string // doublestar patterns on root-relative paths
	HonorGitignore bool     // Skip files matched by <root>/.gitignore
	MaxDepth       int      // 0 uses defaultMaxDepth
}

// treeWalker carries traversal state for one Scan invocation.
type treeWalker struct {
	root    string
	want    CategorySet
	opts    ScanOptions
	ignorer *ignore.GitIgnore
	visited map[string]bool // resolved directory identities, guards link loops
	result  *ScanResult
}

// Scan recursively walks the directory tree rooted at root and collects
// every regular file whose category is in want. Directories that cannot be
// read are skipped with a recorded warning; only a missing or non-directory
// root is fatal. Sibling entries are visited in lexicographic order, so
// repeated runs over an unchanged tree produce the same ordering.
func Scan(root string, want CategorySet, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}

	if opts.MaxDepth <= 0 {
		opts.MaxDepth = defaultMaxDepth
	}

	w := &treeWalker{
		root:    root,
		want:    want,
		opts:    opts,
		visited: make(map[string]bool),
		result: &ScanResult{
			Files: make(map[FileCategory][]string),
		},
	}

	if opts.HonorGitignore {
		// Gracefully degrade when the root has no .gitignore.
		if gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
			w.ignorer = gi
		}
	}

	// Mark the root itself so a link back to it is not followed.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		w.visited[resolved] = true
	}

	w.walk(root, 0)
	return w.result, nil
}

func (w *treeWalker) walk(dir string, depth int) {
	if depth >= w.opts.MaxDepth {
		w.warnf("max depth reached, not descending into %s", dir)
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.warnf("skipping unreadable directory %s: %v", dir, err)
		return
	}

	// os.ReadDir returns entries sorted by name.
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.Type()&os.ModeSymlink != 0 {
			w.walkSymlink(path, depth)
			continue
		}

		if entry.IsDir() {
			if w.markVisited(path) {
				w.walk(path, depth+1)
			}
			continue
		}

		if entry.Type().IsRegular() {
			w.visitFile(path)
		}
	}
}

// walkSymlink follows a symlink at most once per physical target.
func (w *treeWalker) walkSymlink(path string, depth int) {
	info, err := os.Stat(path)
	if err != nil {
		w.warnf("skipping unresolvable link %s: %v", path, err)
		return
	}

	if info.IsDir() {
		if w.markVisited(path) {
			w.walk(path, depth+1)
		}
		return
	}

	if info.Mode().IsRegular() {
		w.visitFile(path)
	}
}

// markVisited records the physical identity of a directory and reports
// whether it is seen for the first time.
func (w *treeWalker) markVisited(dir string) bool {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		w.warnf("skipping unresolvable directory %s: %v", dir, err)
		return false
	}
	if w.visited[resolved] {
		return false
	}
	w.visited[resolved] = true
	return true
}

func (w *treeWalker) visitFile(path string) {
	w.result.Stats.FilesDiscovered++

	category := Classify(path)
	if !w.want[category] {
		return
	}

	if w.shouldSkip(path) {
		w.result.Stats.FilesSkipped++
		return
	}

	w.result.Files[category] = append(w.result.Files[category], path)
	w.result.Stats.FilesMatched++
}

// shouldSkip applies two-layer filtering to a category-matching file:
// gitignore rules first, then the include/exclude glob patterns.
func (w *treeWalker) shouldSkip(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	if w.ignorer != nil && w.ignorer.MatchesPath(rel) {
		return true
	}

	for _, pattern := range w.opts.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	if len(w.opts.Include) > 0 {
		for _, pattern := range w.opts.Include {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return false
			}
		}
		return true
	}

	return false
}

func (w *treeWalker) warnf(format string, args ...any) {
	w.result.Warnings = append(w.result.Warnings, fmt.Sprintf(format, args...))
}
