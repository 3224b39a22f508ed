// Package unstyle bulk-strips styling artifacts from a project tree: it
// removes class attributes from markup files and empties stylesheet files,
// always under explicit user confirmation.
//
// # Scanning
//
// Discover markup and stylesheet files under a root:
//
//	result, err := unstyle.Scan(root, unstyle.CategorySet{
//		unstyle.CategoryMarkup:     true,
//		unstyle.CategoryStylesheet: true,
//	}, unstyle.ScanOptions{HonorGitignore: true})
//
// # Transforming
//
// StripClasses is a pure text transform; Clear truncates in place:
//
//	cleaned := unstyle.StripClasses(`<div class="row">Hi</div>`) // <div>Hi</div>
//	err := unstyle.Clear("web/styles/app.scss")
//
// # Running a session
//
// Runner ties scanning, the confirmation prompt, and the transforms
// together for the CLI:
//
//	runner := unstyle.NewRunner(os.Stdin, os.Stdout, unstyle.Options{
//		Root:      root,
//		Selection: selection,
//	})
//	report, err := runner.Run()
//
// # CLI Tool
//
// unstyle also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/unstyle/cmd/unstyle@latest
package unstyle
