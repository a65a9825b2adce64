package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newOptionsCmd(opts *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "options <file> <block-id>",
		Short: "List the variable names a reference block's dropdown offers",
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
			if !b.IsReference() {
				return fmt.Errorf("%v is not a variable reference", b)
			}
			for _, name := range opts.cfg.Walker().VariableOptions(b) {
				fmt.Fprintln(cmd.OutOrStdout(), strconv.Quote(name))
			}
			return nil
		},
	}
}
