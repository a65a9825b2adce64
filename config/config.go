// Package config gathers the settings of the blockscope tools from .env files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/BTechSCALE/blockly/binding"
	"github.com/BTechSCALE/blockly/block"
	"github.com/BTechSCALE/blockly/logger"
	"github.com/BTechSCALE/blockly/scope"
)

const (
	EnvAscent        = "BLOCKSCOPE_ASCENT"
	EnvLogLevel      = "BLOCKSCOPE_LOG_LEVEL"
	EnvColor         = "BLOCKSCOPE_COLOR"
	EnvFollowRenames = "BLOCKSCOPE_FOLLOW_RENAMES"

	// DefaultEnvFile is read when present and no other file is named.
	DefaultEnvFile = ".env"
)

type Config struct {
	Ascent        scope.Ascent
	LogLevel      logger.LogLevel
	Color         bool
	FollowRenames bool
}

func Default() Config {
	return Config{
		Ascent:        scope.AscentEnclosing,
		LogLevel:      logger.LogLevelWarn,
		Color:         true,
		FollowRenames: true,
	}
}

// Load starts from Default and applies the named .env files, then the process environment,
// which wins over the files. Without names, DefaultEnvFile is used if it exists.
func Load(envFiles ...string) (Config, error) {
	vars := map[string]string{}
	if len(envFiles) == 0 {
		read, err := godotenv.Read(DefaultEnvFile)
		switch {
		case err == nil:
			vars = read
		case !errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("read %s: %w", DefaultEnvFile, err)
		}
	} else {
		read, err := godotenv.Read(envFiles...)
		if err != nil {
			return Config{}, fmt.Errorf("read env files: %w", err)
		}
		vars = read
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
	return FromLookup(lookup)
}

// FromLookup builds a Config from Default and the variables lookup finds.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var errs []error
	if v, ok := lookup(EnvAscent); ok && v != "" {
		a, err := scope.ParseAscent(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvAscent, err))
		}
		cfg.Ascent = a
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		l, err := logger.ParseLogLevel(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvLogLevel, err))
		}
		cfg.LogLevel = l
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvColor, err))
		} else {
			cfg.Color = b
		}
	}
	if v, ok := lookup(EnvFollowRenames); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvFollowRenames, err))
		} else {
			cfg.FollowRenames = b
		}
	}
	return cfg, errors.Join(errs...)
}

func (c Config) Walker() *scope.Walker {
	return scope.NewWalker(scope.WithAscent(c.Ascent))
}

func (c Config) Logger() *logger.DefaultLogger {
	l := logger.NewLogger(os.Stderr, c.LogLevel)
	l.SetColor(c.Color)
	return l
}

// Dispatcher builds a dispatcher for ws wired with the configured walker, logger and rename
// policy.
func (c Config) Dispatcher(ws *block.Workspace) *binding.Dispatcher {
	return binding.NewDispatcher(ws,
		binding.WithWalker(c.Walker()),
		binding.WithLogger(c.Logger()),
		binding.WithFollowRenames(c.FollowRenames),
	)
}
