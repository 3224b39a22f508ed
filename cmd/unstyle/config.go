package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/unstyle"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".unstyle.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (UNSTYLE_* prefix)
	if err := k.Load(env.Provider("UNSTYLE_", ".", func(s string) string {
		// UNSTYLE_SCAN_GITIGNORE -> scan.gitignore
		// UNSTYLE_RUN_YES -> run.yes
		// UNSTYLE_COLOR -> color
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "UNSTYLE_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildScanOptions constructs the library's ScanOptions struct from koanf state.
func buildScanOptions() unstyle.ScanOptions {
	opts := unstyle.ScanOptions{
		HonorGitignore: getBoolWithFallback("gitignore", "scan.gitignore", true),
		MaxDepth:       getIntWithFallback("max-depth", "scan.max-depth", 0),
	}

	// Handle patterns: check flag key first, then config key
	if include := k.Strings("include"); len(include) > 0 {
		opts.Include = include
	} else if include := k.Strings("scan.include"); len(include) > 0 {
		opts.Include = include
	}

	if exclude := k.Strings("exclude"); len(exclude) > 0 {
		opts.Exclude = exclude
	} else if exclude := k.Strings("scan.exclude"); len(exclude) > 0 {
		opts.Exclude = exclude
	}

	return opts
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
