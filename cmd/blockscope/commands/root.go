package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/BTechSCALE/blockly/binding"
	"github.com/BTechSCALE/blockly/block"
	"github.com/BTechSCALE/blockly/config"
	"github.com/BTechSCALE/blockly/loader"
	"github.com/BTechSCALE/blockly/logger"
	"github.com/BTechSCALE/blockly/scope"
)

type settings struct {
	ascent   string
	logLevel string
	noColor  bool
	envFiles []string

	cfg config.Config
}

// NewRootCommand builds the blockscope command tree.
func NewRootCommand() *cobra.Command {
	opts := &settings{}
	root := &cobra.Command{
		Use:   "blockscope",
		Short: "Inspect variable scopes of block workspaces",
		Long: `blockscope loads a block workspace from a YAML file, binds every variable
reference to the declaration in scope and reports what it finds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ascent, "ascent", "", "scope ascent: enclosing or lexical (default: "+config.EnvAscent+" or enclosing)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (default: "+config.EnvLogLevel+" or warn)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.StringSliceVar(&opts.envFiles, "env-file", nil, "env files to read settings from (default: .env when present)")

	root.AddCommand(
		newCheckCmd(opts),
		newScopeCmd(opts),
		newOptionsCmd(opts),
		newDumpCmd(opts),
	)
	return root
}

// resolve merges .env files, the environment and flags into opts.cfg.
func (o *settings) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.envFiles...)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("ascent") {
		if cfg.Ascent, err = scope.ParseAscent(o.ascent); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("log-level") {
		if cfg.LogLevel, err = logger.ParseLogLevel(o.logLevel); err != nil {
			return err
		}
	}
	if o.noColor {
		cfg.Color = false
	}
	color.NoColor = !cfg.Color
	logger.Default().SetLevel(cfg.LogLevel)
	logger.Default().SetColor(cfg.Color)
	o.cfg = cfg
	return nil
}

// load reads a workspace and binds it under the configured settings.
func (o *settings) load(cmd *cobra.Command, path string) (*block.Workspace, *binding.Dispatcher, error) {
	ws, err := loader.LoadFile(path)
	if err != nil {
		for _, r := range loader.Issues(err) {
			color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), r.Error())
		}
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	d := o.cfg.Dispatcher(ws)
	d.Attach()
	d.Settle()
	logger.Debug("loaded %s: %d blocks", path, ws.Len())
	return ws, d, nil
}

func lookup(ws *block.Workspace, id string) (*block.Block, error) {
	b := ws.Block(id)
	if b == nil {
		return nil, fmt.Errorf("no block with id %q", id)
	}
	return b, nil
}
