package main

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/joshuapare/propkit/pkg/properties"
)

// Flags shared by the commands that rewrite a file in place.
type editFlags struct {
	diff   bool
	backup bool
	dryRun bool
}

// commitEdit writes f back to path unless dry-run is set, printing a
// unified diff against before when requested.
func commitEdit(path, before string, f *properties.File, fl editFlags) error {
	after := f.Render(cfg.DumpOptions())
	if fl.diff || fl.dryRun {
		if d := unifiedDiff(path, before, after); d != "" {
			fmt.Fprint(os.Stdout, d)
		}
	}
	if fl.dryRun {
		printVerbose("Dry run, %s not modified\n", path)
		return nil
	}
	return saveFile(path, f, fl.backup)
}

// unifiedDiff returns a unified diff of two renderings of path, or "" when
// they are equal.
func unifiedDiff(path, before, after string) string {
	if before == after {
		return ""
	}
	d, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
	if err != nil {
		// Only writer errors are possible and a strings.Builder has none.
		return ""
	}
	return d
}
