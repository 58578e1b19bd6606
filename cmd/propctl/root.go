package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/propkit/internal/config"
	"github.com/joshuapare/propkit/internal/logger"
	"github.com/joshuapare/propkit/internal/writer"
	"github.com/joshuapare/propkit/pkg/properties"
)

var (
	// Global flags
	verbose        bool
	quiet          bool
	jsonOut        bool
	configPath     string
	separator      string
	inputEncoding  string
	outputEncoding string
	keepLatin1     bool

	// cfg holds config file defaults with flag overrides applied.
	cfg = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "propctl",
	Short: "Inspect, edit and convert Java .properties files",
	Long: `propctl reads, edits and converts Java .properties files. Edits only
re-render the entries they touch; comments, blank lines, spacing and
continuation lines elsewhere in the file are written back unchanged.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setup(cmd) },
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with default settings")
	rootCmd.PersistentFlags().
		StringVarP(&separator, "separator", "s", "=", `Key-value separator for rewritten entries`)
	rootCmd.PersistentFlags().
		StringVar(&inputEncoding, "input-encoding", "ISO-8859-1", "Encoding of input files (ISO-8859-1, UTF-8)")
	rootCmd.PersistentFlags().
		StringVar(&outputEncoding, "output-encoding", "", "Encoding of output files (ISO-8859-1, UTF-8; default: same as input)")
	rootCmd.PersistentFlags().
		BoolVar(&keepLatin1, "keep-latin1", false, "Write printable Latin-1 characters without \\u escapes")
}

// setup loads the config file, applies explicitly set flags over it and
// initializes logging.
func setup(cmd *cobra.Command) error {
	logger.Init(logger.Options{Enabled: verbose && !quiet, Level: slog.LevelDebug})

	cfg = config.New()
	if configPath != "" {
		if err := cfg.Load(configPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.Debug("loaded config", "path", configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("separator") {
		cfg.Separator = separator
	}
	if flags.Changed("input-encoding") {
		cfg.InputEncoding = inputEncoding
	}
	if flags.Changed("output-encoding") {
		cfg.OutputEncoding = outputEncoding
	}
	if flags.Changed("keep-latin1") {
		cfg.KeepLatin1 = keepLatin1
	}
	return cfg.Validate()
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// isStdio reports whether path names standard input or output.
func isStdio(path string) bool {
	return path == "" || path == "-"
}

// openInput opens path for reading, or standard input for "" and "-".
func openInput(path string) (io.ReadCloser, error) {
	if isStdio(path) {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// writeOutput writes buf to path atomically, or to standard output for ""
// and "-".
func writeOutput(path string, buf []byte) error {
	return writer.For(path, os.Stdout).WriteDocument(buf)
}

// loadFile parses the .properties file at path ("-" for standard input).
func loadFile(path string) (*properties.File, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer in.Close()

	f, err := properties.Load(in, cfg.ParseOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", displayName(path), err)
	}
	logger.Debug("loaded properties", "path", displayName(path), "keys", f.Len())
	return f, nil
}

// saveFile renders f with the configured options and writes it back to
// path, keeping the previous contents in path.bak when backup is set.
func saveFile(path string, f *properties.File, backup bool) error {
	var buf bytes.Buffer
	if err := f.Dump(&buf, cfg.DumpOptions()); err != nil {
		return fmt.Errorf("failed to render %s: %w", displayName(path), err)
	}
	if backup && !isStdio(path) {
		old, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s for backup: %w", path, err)
		}
		bak := &writer.FileWriter{Path: path + ".bak"}
		if err := bak.WriteDocument(old); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		printVerbose("Backup created: %s.bak\n", path)
	}
	if err := writeOutput(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", displayName(path), err)
	}
	logger.Debug("wrote properties", "path", displayName(path), "bytes", buf.Len())
	return nil
}

func displayName(path string) string {
	if isStdio(path) {
		return "-"
	}
	return path
}
