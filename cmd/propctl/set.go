package main

import (
	"github.com/spf13/cobra"
)

var (
	setIfChanged bool
	setFlags     editFlags
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().BoolVar(&setIfChanged, "if-changed", false, "Leave the file untouched when the value is already set")
	cmd.Flags().BoolVar(&setFlags.diff, "diff", false, "Print a unified diff of the change")
	cmd.Flags().BoolVar(&setFlags.dryRun, "dry-run", false, "Print the diff without writing the file")
	cmd.Flags().BoolVar(&setFlags.backup, "backup", false, "Keep the previous file as <file>.bak")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <key> <value>",
		Short: "Set the value of a key",
		Long: `The set command sets a key in place. An existing key keeps its position and
its earlier duplicate definitions are removed; a new key is appended at the
end. Every other line is written back exactly as it was read.

Example:
  propctl set app.properties server.port 8081
  propctl set app.properties greeting "héllo wörld" --keep-latin1
  propctl set app.properties db.url jdbc:h2:mem --diff --dry-run`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path, key, value := args[0], args[1], args[2]

	printVerbose("Opening %s\n", path)
	f, err := loadFile(path)
	if err != nil {
		return err
	}
	before := f.Render(cfg.DumpOptions())

	changed := true
	if setIfChanged {
		changed, err = f.SetIfChanged(key, value)
	} else {
		err = f.Set(key, value)
	}
	if err != nil {
		return err
	}

	if changed {
		if err := commitEdit(path, before, f, setFlags); err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"key":     key,
			"value":   value,
			"changed": changed,
		})
	}
	if changed {
		printInfo("Set %s in %s\n", key, path)
	} else {
		printInfo("%s already set in %s\n", key, path)
	}
	return nil
}
