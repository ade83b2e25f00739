package app

import "github.com/spf13/pflag"

// Config holds runtime wiring options for building the app.
type Config struct {
	Verbosity  string         // error, warn, info or debug
	ConfigFile string         // optional YAML settings file
	Flags      *pflag.FlagSet // parsed command-line flags, highest-priority source
}
