// Command blockscope inspects variable scopes of block workspaces stored as YAML.
package main

import (
	"fmt"
	"os"

	"github.com/BTechSCALE/blockly/cmd/blockscope/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blockscope:", err)
		os.Exit(1)
	}
}
