package commands

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fixme/internal/app"
)

var (
	verbosity  string
	configFile string
	envFile    string

	appCtx *app.App
)

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "fixme",
		Short:        "Run and inspect the configured start command",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("loading %s: %w", envFile, err)
				}
			}

			// A dry run always logs at debug so the operator can see what
			// would have happened.
			level := verbosity
			if f := cmd.Flags().Lookup("dry-run"); f != nil && f.Changed {
				level = "debug"
			}

			a, err := app.New(app.Config{
				Verbosity:  level,
				ConfigFile: configFile,
				Flags:      cmd.Flags(),
			})
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New("a command is required")
		},
	}

	root.PersistentFlags().StringVarP(&verbosity, "verbose", "v", "error",
		"verbosity level (error, warn, info or debug)")
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML settings file")
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file loaded into the environment")

	root.AddCommand(startCmd(), statusCmd())
	return root
}
