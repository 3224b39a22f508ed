package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .unstyle.yaml config file",
	Long:  `Create a .unstyle.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".unstyle.yaml"); err == nil && !force {
			return fmt.Errorf(".unstyle.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".unstyle.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .unstyle.yaml")
		return nil
	},
}

const defaultConfig = `# unstyle configuration
# Docs: https://github.com/yacobolo/unstyle

# Shared settings
color: false

# Run settings
run:
  root: ""                 # project root; prompted for when empty
  strip-classes: false     # preselect the class stripping operation
  clear-stylesheets: false # preselect the stylesheet clearing operation
  yes: false               # skip the confirmation prompt
  no-input: false          # force the line-based fallback menu

# Scan settings
scan:
  gitignore: true          # honor the root's .gitignore
  max-depth: 0             # 0 = default bound
  include: []              # glob patterns, e.g. "src/**/*.html"
  exclude:                 # glob patterns applied before include
    - "node_modules/**"
    - "vendor/**"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
