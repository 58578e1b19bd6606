package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/propkit/pkg/properties"
)

var (
	fmtCheck bool
	fmtWrite bool
)

func init() {
	cmd := newFmtCmd()
	cmd.Flags().BoolVar(&fmtCheck, "check", false, "Exit non-zero if the file is not normalized")
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file in place")
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Normalize the entries of a .properties file",
		Long: `The fmt command re-renders every entry with the configured separator and
escaping and drops shadowed duplicate definitions. Comments and blank lines
are kept. Without --write the result is printed to standard output.

Example:
  propctl fmt app.properties
  propctl fmt -s ": " --write app.properties
  propctl fmt --check app.properties`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
	return cmd
}

var errNotFormatted = errors.New("file is not normalized")

func runFmt(args []string) error {
	path := args[0]

	f, err := loadFile(path)
	if err != nil {
		return err
	}
	if err := f.Check(); err != nil {
		return err
	}
	before := f.Render(cfg.DumpOptions())

	if err := normalize(f); err != nil {
		return err
	}
	after := f.Render(cfg.DumpOptions())

	switch {
	case fmtCheck:
		if before == after {
			printVerbose("%s is normalized\n", path)
			return nil
		}
		fmt.Print(unifiedDiff(path, before, after))
		return fmt.Errorf("%s: %w", path, errNotFormatted)
	case fmtWrite:
		if before == after {
			return nil
		}
		return saveFile(path, f, false)
	default:
		return saveFile("-", f, false)
	}
}

// normalize re-renders every live entry, which also removes the shadowed
// definitions of repeated keys.
func normalize(f *properties.File) error {
	for _, p := range f.Pairs() {
		if err := f.Set(p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}
