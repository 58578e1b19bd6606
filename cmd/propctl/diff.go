package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/propkit/pkg/properties"
)

var diffFormat string

func init() {
	cmd := newDiffCmd()
	cmd.Flags().StringVar(&diffFormat, "format", "text", "Output format (text, unified)")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compare two .properties files",
		Long: `The diff command compares the live keys of two .properties files and
lists added, removed and modified keys. --format unified compares the files
line by line instead.

Example:
  propctl diff before.properties after.properties
  propctl diff before.properties after.properties --json
  propctl diff before.properties after.properties --format unified`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

// KeyDiff describes one key that differs between two files.
type KeyDiff struct {
	Key      string `json:"key"`
	Action   string `json:"action"` // "added", "removed", "modified"
	OldValue string `json:"old_value,omitempty"`
	NewValue string `json:"new_value,omitempty"`
}

func runDiff(args []string) error {
	path1, path2 := args[0], args[1]

	printVerbose("Comparing %s and %s...\n", path1, path2)

	f1, err := loadFile(path1)
	if err != nil {
		return err
	}
	f2, err := loadFile(path2)
	if err != nil {
		return err
	}

	switch diffFormat {
	case "text":
	case "unified":
		opts := cfg.DumpOptions()
		fmt.Print(unifiedDiff(path1, f1.Render(opts), f2.Render(opts)))
		return nil
	default:
		return fmt.Errorf("unknown format %q", diffFormat)
	}

	diffs := diffKeys(f1, f2)
	if jsonOut {
		return printJSON(diffs)
	}
	if len(diffs) == 0 {
		printInfo("No differences\n")
		return nil
	}
	for _, d := range diffs {
		switch d.Action {
		case "added":
			fmt.Printf("+ %s=%s\n", d.Key, d.NewValue)
		case "removed":
			fmt.Printf("- %s=%s\n", d.Key, d.OldValue)
		default:
			fmt.Printf("~ %s: %s -> %s\n", d.Key, d.OldValue, d.NewValue)
		}
	}
	return nil
}

// diffKeys lists removed and modified keys in the order of a, followed by
// added keys in the order of b.
func diffKeys(a, b *properties.File) []KeyDiff {
	diffs := []KeyDiff{}
	for k, old := range a.All() {
		v, ok := b.Lookup(k)
		switch {
		case !ok:
			diffs = append(diffs, KeyDiff{Key: k, Action: "removed", OldValue: old})
		case v != old:
			diffs = append(diffs, KeyDiff{Key: k, Action: "modified", OldValue: old, NewValue: v})
		}
	}
	for k, v := range b.All() {
		if !a.Has(k) {
			diffs = append(diffs, KeyDiff{Key: k, Action: "added", NewValue: v})
		}
	}
	return diffs
}
