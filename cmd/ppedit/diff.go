package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/ppkit/pkg/pptable"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare the payloads of two exports",
		Long: `The diff command compares two exports field by field and reports the
raw byte ranges that differ.

Example:
  ppedit diff stock.reg tuned.reg
  ppedit diff stock.reg tuned.reg --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
}

type FieldDiff struct {
	Field string `json:"field"`
	Old   uint64 `json:"old"`
	New   uint64 `json:"new"`
	Unit  string `json:"unit,omitempty"`
}

type DiffResult struct {
	Fields []FieldDiff      `json:"fields"`
	Ranges []pptable.Change `json:"ranges"`
}

func runDiff(args []string) error {
	a, err := openDoc(args[0])
	if err != nil {
		return err
	}
	b, err := openDoc(args[1])
	if err != nil {
		return err
	}

	res := DiffResult{
		Fields: diffFields(a.Table, b.Table),
		Ranges: pptable.DiffPayloads(a.Table.Payload(), b.Table.Payload()),
	}
	if jsonOut {
		return printJSON(res)
	}

	if len(res.Ranges) == 0 {
		printInfo("No differences\n")
		return nil
	}
	for _, f := range res.Fields {
		printInfo("~ %s: %s -> %s\n", f.Field, withUnit(f.Old, f.Unit), withUnit(f.New, f.Unit))
	}
	printInfo("\n%d byte range(s) differ:\n", len(res.Ranges))
	for _, r := range res.Ranges {
		printInfo("  0x%04X +%d\n", r.Offset, r.Length)
	}
	return nil
}

// diffFields compares the named fields present in both tables.
func diffFields(a, b *pptable.Table) []FieldDiff {
	newer := make(map[string]pptable.Field)
	for _, f := range b.Fields() {
		newer[f.Name] = f
	}
	var out []FieldDiff
	for _, f := range a.Fields() {
		g, ok := newer[f.Name]
		if !ok || g.Value == f.Value {
			continue
		}
		out = append(out, FieldDiff{Field: f.Name, Old: f.Value, New: g.Value, Unit: f.Unit})
	}
	return out
}
