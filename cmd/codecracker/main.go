// Package main provides the codecracker CLI.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kacioidarlan/code-cracker/analyzer"
	"github.com/kacioidarlan/code-cracker/config"
	"github.com/kacioidarlan/code-cracker/report"
	"github.com/kacioidarlan/code-cracker/rules"
)

// errIssuesFound makes the process exit non-zero without printing an error.
var errIssuesFound = errors.New("error diagnostics reported")

var rootCmd = &cobra.Command{
	Use:           "codecracker",
	Short:         "codecracker - static analysis for C#",
	Long:          `codecracker parses C# sources with tree-sitter and runs style, design and maintainability rules over them.`,
	SilenceErrors: true,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [paths...]",
	Short: "Analyze C# files and directories",
	Long: `Analyze C# files and directories.

Directories are walked for *.cs files; include and exclude patterns from the
configuration file filter what is found.

Examples:
  codecracker analyze                       # Analyze the current directory
  codecracker analyze src --format json     # JSON output
  codecracker analyze --lang-version 5 .    # Rules gated on newer C# are skipped`,
	RunE:         runAnalyze,
	SilenceUsage: true,
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in rules",
	RunE:  runRules,
}

var (
	configPath  string
	langVersion string
	formatFlag  string
	verbose     bool
	rulesJSON   bool
)

func init() {
	analyzeCmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "Path to the configuration file")
	analyzeCmd.Flags().StringVar(&langVersion, "lang-version", "", "C# language version (overrides the configuration)")
	analyzeCmd.Flags().StringVar(&formatFlag, "format", "text", "Output format: text or json")
	analyzeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(rulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if langVersion != "" {
		cfg.LanguageVersion = langVersion
	}

	if len(args) == 0 {
		args = []string{"."}
	}
	paths, err := collectFiles(args, cfg)
	if err != nil {
		return err
	}
	logger.Debug("collected files", slog.Int("count", len(paths)))

	host, err := analyzer.NewHost(rules.All(), analyzer.WithConfig(cfg), analyzer.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	files, err := host.LoadFiles(ctx, paths)
	if err != nil {
		return err
	}
	diags, err := host.Analyze(ctx, files)
	if err != nil {
		return fmt.Errorf("analyzing: %w", err)
	}

	out, err := report.Render(format, diags)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return err
	}
	if format == report.FormatNameJSON {
		fmt.Fprintln(cmd.OutOrStdout())
	}

	if analyzer.HasErrors(diags) {
		return errIssuesFound
	}
	return nil
}

// collectFiles expands directories into the *.cs files below them that the
// configuration selects. Explicit file arguments are always kept.
func collectFiles(args []string, cfg *config.Config) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		err = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() || !strings.EqualFold(filepath.Ext(path), ".cs") {
				return nil
			}

			relPath, err := filepath.Rel(arg, path)
			if err != nil {
				return fmt.Errorf("getting relative path: %w", err)
			}
			if cfg.MatchPath(relPath) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", arg, err)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func runRules(cmd *cobra.Command, args []string) error {
	var descriptors []analyzer.Descriptor
	for _, r := range rules.All() {
		descriptors = append(descriptors, r.Descriptor())
	}

	if rulesJSON {
		data, err := json.MarshalIndent(descriptors, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), report.FormatRules(descriptors))
	return nil
}
