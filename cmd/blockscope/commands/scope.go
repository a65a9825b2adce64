package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BTechSCALE/blockly/block"
)

func newScopeCmd(opts *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "scope <file> <block-id>",
		Short: "Show the blocks and declarations in scope of a block",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := opts.load(cmd, args[0])
			if err != nil {
				return err
			}
			b, err := lookup(ws, args[1])
			if err != nil {
				return err
			}
			w := opts.cfg.Walker()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "walk (%s):\n", w.Ascent())
			for _, n := range w.Walk(b, false) {
				fmt.Fprintf(out, "  %v\n", n)
			}
			fmt.Fprintln(out, "declarations:")
			for _, d := range w.Query(b, nil) {
				fmt.Fprintf(out, "  %s %s [%s] from %v\n", d.Type, d.Name, d.Dist, d.Block)
			}
			if b.IsReference() {
				if d, ok := b.Binding(); ok {
					fmt.Fprintf(out, "binding: %s -> %v\n", d.Name, d.Block)
				} else {
					fmt.Fprintf(out, "binding: %s unresolved\n", b.FieldValue(block.FieldVar))
				}
			}
			return nil
		},
	}
}
