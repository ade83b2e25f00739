// Package setting resolves configuration values through an ordered chain of
// sources.
//
// Each source either answers a key or defers to the next one, so commands can
// layer flag, environment, file and default values without caring where a
// value came from.
package setting
