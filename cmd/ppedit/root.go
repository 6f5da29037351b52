package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/joshuapare/ppkit/internal/logger"
	"github.com/joshuapare/ppkit/pkg/pptable"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	strict  bool
)

var rootCmd = &cobra.Command{
	Use:   "ppedit",
	Short: "Inspect and edit soft PowerPlay tables in registry exports",
	Long: `ppedit reads a .reg export holding a PP_PhmSoftPowerPlayTable value,
shows its clock states, voltages and power limits, and writes edited values
back without moving or resizing any table.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format (logs become JSON too)")
	rootCmd.PersistentFlags().
		BoolVar(&strict, "strict", false, "Reject exports containing malformed hex tokens")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogging() {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	}
	logger.Init(logger.Options{Enabled: true, Writer: os.Stderr, Level: level, JSON: jsonOut})
}

// openDoc loads an export honoring --strict.
func openDoc(path string) (*pptable.Document, error) {
	printVerbose("Opening export: %s\n", path)
	doc, err := pptable.Open(path, pptable.Options{Strict: strict})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return doc, nil
}

// saveDoc writes doc to out, or back to in when out is empty.
func saveDoc(doc *pptable.Document, in, out string) (string, error) {
	target := out
	if target == "" {
		target = in
	}
	if err := doc.Save(target); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", target, err)
	}
	return target, nil
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func withUnit(v uint64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%d %s", v, unit)
}
