package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	setOutput string
	setDryRun bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVarP(&setOutput, "output", "o", "", "Write to this file instead of editing in place")
	cmd.Flags().BoolVar(&setDryRun, "dry-run", false, "Show the change without saving")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <field> <value>",
		Short: "Assign a single field",
		Long: `The set command assigns one named field and saves the export. Values
are decimal, or hex with a 0x prefix. Clocks are in MHz and voltages in mV.

Example:
  ppedit set card.reg sclk[7].clock_mhz 1400
  ppedit set card.reg tdp 150 -o card-150w.reg
  ppedit set card.reg vddc[7].voltage 1150 --dry-run`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func runSet(args []string) error {
	path, field := args[0], args[1]
	value, err := strconv.ParseUint(args[2], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[2], err)
	}

	doc, err := openDoc(path)
	if err != nil {
		return err
	}
	old, err := doc.Table.Get(field)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", field, err)
	}
	if err := doc.Table.Set(field, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", field, err)
	}

	if setDryRun {
		if _, err := doc.Table.Encode(); err != nil {
			return err
		}
		if jsonOut {
			return printJSON(map[string]any{
				"file":    path,
				"field":   field,
				"old":     old,
				"new":     value,
				"changes": doc.Table.Changes(),
				"dry_run": true,
			})
		}
		printInfo("Would set %s: %d -> %d (%d byte range(s) changed)\n",
			field, old, value, len(doc.Table.Changes()))
		return nil
	}

	target, err := saveDoc(doc, path, setOutput)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]any{
			"file":  target,
			"field": field,
			"old":   old,
			"new":   value,
		})
	}
	printVerbose("Changed ranges: %v\n", doc.Table.Changes())
	printInfo("✓ Set %s: %d -> %d in %s\n", field, old, value, target)
	return nil
}
