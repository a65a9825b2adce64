package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BTechSCALE/blockly/printer"
)

func newDumpCmd(opts *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the workspace tree with resolved bindings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := opts.load(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), printer.Print(ws))
			return nil
		},
	}
}
