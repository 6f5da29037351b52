package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ppkit/internal/plan"
)

var (
	applyOutput string
	applyDryRun bool
)

func init() {
	cmd := newApplyCmd()
	cmd.Flags().StringVarP(&applyOutput, "output", "o", "", "Write to this file instead of editing in place")
	cmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Validate the plan without saving")
	rootCmd.AddCommand(cmd)
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file> <plan.yaml>",
		Short: "Apply a YAML edit plan",
		Long: `The apply command assigns every field listed in a YAML plan, in order,
and saves the export once. If any edit fails nothing is written.

Plan format:
  description: mild overclock
  edits:
    - field: sclk[7].clock_mhz
      value: 1400
    - field: power_control_limit
      value: 75

Example:
  ppedit apply card.reg oc.yaml
  ppedit apply card.reg oc.yaml -o card-oc.reg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args)
		},
	}
}

func runApply(args []string) error {
	path, planPath := args[0], args[1]

	p, err := plan.LoadFile(planPath)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	doc, err := openDoc(path)
	if err != nil {
		return err
	}
	if p.Description != "" {
		printVerbose("Plan: %s\n", p.Description)
	}
	n, err := p.Apply(doc.Table)
	if err != nil {
		return err
	}
	if applyDryRun {
		if _, err := doc.Table.Encode(); err != nil {
			return err
		}
		if jsonOut {
			return printJSON(map[string]any{
				"file":    path,
				"applied": n,
				"changes": doc.Table.Changes(),
				"dry_run": true,
			})
		}
		printInfo("Plan OK: %d edit(s), %d byte range(s) would change\n", n, len(doc.Table.Changes()))
		return nil
	}

	target, err := saveDoc(doc, path, applyOutput)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]any{
			"file":    target,
			"applied": n,
			"changes": doc.Table.Changes(),
		})
	}
	printInfo("✓ Applied %d edit(s) to %s\n", n, target)
	return nil
}
