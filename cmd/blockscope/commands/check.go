package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/lyraproj/issue/issue"
	"github.com/spf13/cobra"

	"github.com/BTechSCALE/blockly/binding"
)

func newCheckCmd(opts *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report unresolved references, shadowed and unused declarations",
		Long: `check binds every reference in the workspace and prints a diagnostic for each
unresolved reference, each declaration shadowing another one in scope and each
declaration nothing refers to. It fails when a reference is unresolved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, d, err := opts.load(cmd, args[0])
			if err != nil {
				return err
			}
			reported := d.Binder().Check(ws, args[0])
			out := cmd.OutOrStdout()
			for _, r := range reported {
				c := color.New(color.FgYellow)
				if r.Severity() == issue.SEVERITY_ERROR {
					c = color.New(color.FgRed)
				}
				c.Fprintf(out, "%s: %s\n", r.Code(), r.Error())
			}
			if n := len(binding.Unresolved(reported)); n > 0 {
				return fmt.Errorf("%d unresolved reference(s)", n)
			}
			color.New(color.FgGreen).Fprintf(out, "%s: all references resolved\n", args[0])
			return nil
		},
	}
}
