package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/joshuapare/propkit/pkg/types"
)

var (
	deleteMissingOK bool
	deleteFlags     editFlags
)

func init() {
	cmd := newDeleteCmd()
	cmd.Flags().BoolVar(&deleteMissingOK, "missing-ok", false, "Succeed when a key is not defined")
	cmd.Flags().BoolVar(&deleteFlags.diff, "diff", false, "Print a unified diff of the change")
	cmd.Flags().BoolVar(&deleteFlags.dryRun, "dry-run", false, "Print the diff without writing the file")
	cmd.Flags().BoolVar(&deleteFlags.backup, "backup", false, "Keep the previous file as <file>.bak")
	rootCmd.AddCommand(cmd)
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <file> <key>...",
		Aliases: []string{"rm"},
		Short:   "Delete keys",
		Long: `The delete command removes every definition of the given keys. Comments
and blank lines around them are kept.

Example:
  propctl delete app.properties legacy.flag
  propctl delete app.properties a b c --missing-ok --diff`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	path, keys := args[0], args[1:]

	printVerbose("Opening %s\n", path)
	f, err := loadFile(path)
	if err != nil {
		return err
	}
	before := f.Render(cfg.DumpOptions())

	deleted := make([]string, 0, len(keys))
	for _, key := range keys {
		err := f.Delete(key)
		if errors.Is(err, types.ErrKeyNotFound) && deleteMissingOK {
			printVerbose("Key %q not defined, skipping\n", key)
			continue
		}
		if err != nil {
			return err
		}
		deleted = append(deleted, key)
	}

	if len(deleted) > 0 {
		if err := commitEdit(path, before, f, deleteFlags); err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"deleted": deleted,
		})
	}
	printInfo("Deleted %d key(s) from %s\n", len(deleted), path)
	return nil
}
