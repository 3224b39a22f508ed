package unstyle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yacobolo/unstyle/internal/menu"
)

// Options configures a Runner for one session. Root and the frozen menu
// selection are passed in explicitly; the Runner holds no ambient state.
type Options struct {
	Root      string
	Selection menu.Selection
	Scan      ScanOptions
	AssumeYes bool // Skip the y/N confirmation
	UseColors bool
}

// Outcome is the per-file processing result. A nil Err means success.
type Outcome struct {
	Path string
	Err  error
}

// Tally summarizes one operation's batch. Matched and Succeeded are kept
// apart so a partial-failure run is never reported as fully successful.
type Tally struct {
	Matched   int
	Succeeded int
	Failed    int
	Outcomes  []Outcome
}

// Report is the result of a full run.
type Report struct {
	Scan      *ScanResult
	Confirmed bool
	Tallies   map[menu.Operation]Tally
}

// Runner composes scanning, confirmation, and the file transforms. It reads
// prompts from in and writes status lines to out, so tests can inject
// buffers.
type Runner struct {
	in   *bufio.Scanner
	out  io.Writer
	opts Options
}

// NewRunner returns a Runner over the given streams.
func NewRunner(in io.Reader, out io.Writer, opts Options) *Runner {
	return &Runner{
		in:   bufio.NewScanner(in),
		out:  out,
		opts: opts,
	}
}

// Run executes the session: scan every category implied by the selection,
// present counts, ask for confirmation, then apply the transforms while
// accumulating per-file outcomes. Scanning fully completes before any file
// is mutated. Per-file errors are contained to that file's outcome; only an
// invalid root is fatal.
func (r *Runner) Run() (*Report, error) {
	want := make(CategorySet)
	if r.opts.Selection[menu.OpStripClasses] {
		want[CategoryMarkup] = true
	}
	if r.opts.Selection[menu.OpClearStylesheets] {
		want[CategoryStylesheet] = true
	}

	report := &Report{Tallies: make(map[menu.Operation]Tally)}
	if len(want) == 0 {
		fmt.Fprintln(r.out, "No operations selected.")
		return report, nil
	}

	fmt.Fprintf(r.out, "%s %s\n", RenderStyle(StyleCyan, "Scanning:", r.opts.UseColors), r.opts.Root)

	result, err := Scan(r.opts.Root, want, r.opts.Scan)
	if err != nil {
		return nil, err
	}
	report.Scan = result

	for _, warning := range result.Warnings {
		fmt.Fprintln(r.out, RenderStyle(StyleYellow, "warning: "+warning, r.opts.UseColors))
	}

	if want[CategoryMarkup] {
		fmt.Fprintf(r.out, "Found %d markup file(s).\n", len(result.Paths(CategoryMarkup)))
	}
	if want[CategoryStylesheet] {
		fmt.Fprintf(r.out, "Found %d stylesheet file(s).\n", len(result.Paths(CategoryStylesheet)))
	}
	if result.Stats.FilesSkipped > 0 {
		fmt.Fprintln(r.out, RenderStyle(StyleGray,
			fmt.Sprintf("Skipped %d ignored/excluded file(s).", result.Stats.FilesSkipped), r.opts.UseColors))
	}

	if result.Total() == 0 {
		fmt.Fprintln(r.out, "No matching files found.")
		return report, nil
	}

	if !r.confirm(fmt.Sprintf("Apply changes to %d file(s)?", result.Total())) {
		fmt.Fprintln(r.out, "Operation cancelled.")
		return report, nil
	}
	report.Confirmed = true

	if r.opts.Selection[menu.OpStripClasses] {
		report.Tallies[menu.OpStripClasses] = r.stripAll(result.Paths(CategoryMarkup))
	}
	if r.opts.Selection[menu.OpClearStylesheets] {
		report.Tallies[menu.OpClearStylesheets] = r.clearAll(result.Paths(CategoryStylesheet))
	}

	r.printTotals(report)
	return report, nil
}

// confirm asks a y/N question and blocks for a line of input. Anything
// other than an explicit yes declines.
func (r *Runner) confirm(question string) bool {
	if r.opts.AssumeYes {
		return true
	}

	fmt.Fprintf(r.out, "%s (y/N): ", question)
	if !r.in.Scan() {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(r.in.Text())) {
	case "y", "yes":
		return true
	}
	return false
}

// stripAll rewrites each markup file with its class attributes removed.
func (r *Runner) stripAll(paths []string) Tally {
	tally := Tally{Matched: len(paths)}

	for _, path := range paths {
		err := stripFile(path)
		tally.Outcomes = append(tally.Outcomes, Outcome{Path: path, Err: err})

		if err != nil {
			tally.Failed++
			fmt.Fprintln(r.out, RenderStyle(StyleRed, fmt.Sprintf("Error processing %s: %v", path, err), r.opts.UseColors))
			continue
		}
		tally.Succeeded++
		fmt.Fprintf(r.out, "%s %s\n", RenderStyle(StyleGreen, "Processed:", r.opts.UseColors), path)
	}

	return tally
}

// stripFile reads a markup file, strips class attributes, and rewrites the
// same path with its original permissions. Untouched content is not
// rewritten.
func stripFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	stripped := StripClasses(string(data))
	if stripped == string(data) {
		return nil
	}

	if err := os.WriteFile(path, []byte(stripped), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// clearAll truncates each stylesheet, reporting how many rules each clear
// discarded when the source lexes cleanly.
func (r *Runner) clearAll(paths []string) Tally {
	tally := Tally{Matched: len(paths)}

	for _, path := range paths {
		detail := ""
		if src, err := os.ReadFile(path); err == nil {
			if rules, ok := CountRules(src); ok {
				detail = fmt.Sprintf(" (%d rules)", rules)
			}
		}

		err := Clear(path)
		tally.Outcomes = append(tally.Outcomes, Outcome{Path: path, Err: err})

		if err != nil {
			tally.Failed++
			fmt.Fprintln(r.out, RenderStyle(StyleRed, fmt.Sprintf("Error clearing %s: %v", path, err), r.opts.UseColors))
			continue
		}
		tally.Succeeded++
		fmt.Fprintf(r.out, "%s %s%s\n", RenderStyle(StyleGreen, "Cleared:", r.opts.UseColors), path,
			RenderStyle(StyleGray, detail, r.opts.UseColors))
	}

	return tally
}

func (r *Runner) printTotals(report *Report) {
	fmt.Fprintln(r.out, "")

	for _, op := range menu.Operations() {
		tally, ok := report.Tallies[op]
		if !ok {
			continue
		}

		line := fmt.Sprintf("%s: %d/%d file(s) processed", op.Title(), tally.Succeeded, tally.Matched)
		if tally.Failed > 0 {
			line += fmt.Sprintf(", %d failed", tally.Failed)
			fmt.Fprintln(r.out, RenderStyle(StyleRed, line, r.opts.UseColors))
			continue
		}
		fmt.Fprintln(r.out, RenderStyle(StyleGreen, line, r.opts.UseColors))
	}
}
