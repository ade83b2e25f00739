package app

import (
	"context"

	"go.uber.org/zap"

	"fixme/internal/logging"
	"fixme/internal/setting"
	"fixme/internal/shell"
)

// Runner spawns a process and reports its exit code and captured stdout.
type Runner interface {
	Run(ctx context.Context, argv []string) (int, string, error)
}

// App bundles the logger, settings and process runner for the CLI.
type App struct {
	Log      *zap.Logger
	Settings *setting.Chain
	Runner   Runner
}

// defaults are the built-in values settings fall back to when no flag,
// environment variable or config file answers.
var defaults = setting.Values{
	"start_command": "",
}

// New constructs the dependency graph from cfg. The settings chain resolves
// flags first, then environment variables (FIXME_ prefix), then the YAML
// config file, then built-in defaults.
func New(cfg Config) (*App, error) {
	log, err := logging.New(cfg.Verbosity)
	if err != nil {
		return nil, err
	}

	sources := []setting.Source{
		setting.Flags{FlagSet: cfg.Flags},
		setting.Env{Prefix: "FIXME_"},
	}
	if cfg.ConfigFile != "" {
		vals, err := setting.FromYAMLFile(cfg.ConfigFile, nil)
		if err != nil {
			return nil, err
		}
		sources = append(sources, vals)
	}
	sources = append(sources, setting.Named{Label: "default", Source: defaults})

	return &App{
		Log:      log,
		Settings: setting.NewChain(sources...),
		Runner:   shell.New(log),
	}, nil
}
