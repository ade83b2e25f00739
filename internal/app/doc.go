// Package app wires application dependencies for the CLI.
//
// It builds the logger, the settings chain and the process runner from
// Config, exposing them via the App struct for commands to use.
package app
