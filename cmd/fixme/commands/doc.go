// Package commands defines the fixme CLI and wires dependencies for subcommands.
//
// Commands
//
//   - start   Run the configured start command
//   - status  Show the resolved settings and where each came from
//
// # Implementation
//
// The root command loads the optional dotenv file and builds the dependency
// graph (logger, settings chain, process runner) before any subcommand runs,
// so handlers share one app context.
package commands
