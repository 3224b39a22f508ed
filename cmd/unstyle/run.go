package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/unstyle"
	"github.com/yacobolo/unstyle/internal/menu"
)

var runCmd = &cobra.Command{
	Use:   "run [root]",
	Short: "Select and apply cleanup operations to a project tree",
	Long: `Present the operation menu, scan the project root, and apply the
selected transformations after confirmation. The root may be given as an
argument or flag; otherwise it is prompted for.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.String("root", "", "Project root to scan (prompted for when omitted)")
	f.Bool("strip-classes", false, "Select class stripping without showing the menu")
	f.Bool("clear-stylesheets", false, "Select stylesheet clearing without showing the menu")
	f.BoolP("yes", "y", false, "Skip the confirmation prompt")
	f.Bool("no-input", false, "Force the line-based fallback menu")
	f.StringSlice("include", nil, "Glob patterns for files to include")
	f.StringSlice("exclude", nil, "Glob patterns for files to exclude")
	f.Bool("gitignore", true, "Honor the root's .gitignore during scanning")
	f.Int("max-depth", 0, "Maximum directory depth (0 = default bound)")
}

func runRun(_ *cobra.Command, args []string) error {
	useColors := unstyle.ShouldUseColors(getBoolWithFallback("color", "color", false))

	selection, err := collectSelection()
	if errors.Is(err, menu.ErrCancelled) {
		fmt.Println("Cancelled.")
		return nil
	}
	if err != nil {
		return err
	}
	if !selection.Any() {
		fmt.Println("No operations selected.")
		return nil
	}

	root := resolveRoot(args)
	if root == "" {
		fmt.Println("Cancelled.")
		return nil
	}

	runner := unstyle.NewRunner(os.Stdin, os.Stdout, unstyle.Options{
		Root:      root,
		Selection: selection,
		Scan:      buildScanOptions(),
		AssumeYes: getBoolWithFallback("yes", "run.yes", false),
		UseColors: useColors,
	})

	_, err = runner.Run()
	return err
}

// collectSelection returns the operation selection, either preset by flags
// for scripted use or collected interactively. The menu mode is probed once
// and never re-evaluated.
func collectSelection() (menu.Selection, error) {
	selection := make(menu.Selection)
	if getBoolWithFallback("strip-classes", "run.strip-classes", false) {
		selection[menu.OpStripClasses] = true
	}
	if getBoolWithFallback("clear-stylesheets", "run.clear-stylesheets", false) {
		selection[menu.OpClearStylesheets] = true
	}
	if selection.Any() {
		return selection, nil
	}

	mode := menu.Detect(os.Stdin, os.Stdout)
	if getBoolWithFallback("no-input", "run.no-input", false) {
		mode = menu.ModeFallback
	}

	return menu.New(mode, os.Stdin, os.Stdout).Run()
}

// resolveRoot takes the root from the positional argument or flag, falling
// back to an interactive prompt.
func resolveRoot(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return expandHome(args[0])
	}
	if root := getStringWithFallback("root", "run.root", ""); root != "" {
		return expandHome(root)
	}
	return promptForRoot(os.Stdin, os.Stdout)
}

// promptForRoot asks for a project path until an existing directory is
// given or the user gives up. Surrounding quotes (common when paths are
// dragged into a terminal) are stripped and ~ is expanded.
func promptForRoot(in io.Reader, out io.Writer) string {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "Enter the project folder path: ")
		if !scanner.Scan() {
			return ""
		}

		raw := strings.TrimSpace(scanner.Text())
		raw = trimQuotes(raw)
		if raw == "" {
			fmt.Fprintln(out, "Path cannot be empty.")
			continue
		}

		path := expandHome(raw)
		info, err := os.Stat(path)
		switch {
		case err != nil:
			fmt.Fprintf(out, "Path does not exist: %s\n", path)
		case !info.IsDir():
			fmt.Fprintf(out, "Not a directory: %s\n", path)
		default:
			return path
		}

		fmt.Fprint(out, "Try again? (y/N): ")
		if !scanner.Scan() {
			return ""
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer != "y" && answer != "yes" {
			return ""
		}
	}
}

func trimQuotes(s string) string {
	for _, quote := range []string{`"`, `'`} {
		if len(s) >= 2 && strings.HasPrefix(s, quote) && strings.HasSuffix(s, quote) {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
