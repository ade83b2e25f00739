package setting

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Source answers lookups for configuration keys. A source that does not know
// the key reports ok=false so the chain can move on.
type Source interface {
	// Name identifies the source in status output.
	Name() string
	// Lookup returns the value for key if this source knows it.
	Lookup(key string) (value string, ok bool, err error)
}

// Static always answers with a fixed value. It terminates a chain.
type Static struct {
	Value string
}

func (Static) Name() string { return "default" }

func (s Static) Lookup(string) (string, bool, error) { return s.Value, true, nil }

// Flags answers from a flag set. A defined flag answers with its current
// value, default included.
type Flags struct {
	FlagSet *pflag.FlagSet
}

func (Flags) Name() string { return "flag" }

func (f Flags) Lookup(key string) (string, bool, error) {
	if f.FlagSet == nil {
		return "", false, nil
	}
	fl := f.FlagSet.Lookup(key)
	if fl == nil {
		return "", false, nil
	}
	return fl.Value.String(), true, nil
}

// Env answers from the process environment. Keys are upper-cased and mapped
// through Prefix, so "verbosity" with prefix "FIXME_" reads FIXME_VERBOSITY.
type Env struct {
	Prefix string
}

func (Env) Name() string { return "env" }

func (e Env) Lookup(key string) (string, bool, error) {
	v, ok := os.LookupEnv(e.Prefix + strings.ToUpper(key))
	return v, ok, nil
}

// Values answers from an in-memory map.
type Values map[string]string

func (Values) Name() string { return "config" }

func (v Values) Lookup(key string) (string, bool, error) {
	val, ok := v[key]
	return val, ok, nil
}

// FromYAMLFile loads a YAML mapping into a Values source. Entries from the
// file override extra.
func FromYAMLFile(path string, extra Values) (Values, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	raw := map[string]any{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	vals := make(Values, len(raw)+len(extra))
	for k, v := range extra {
		vals[k] = v
	}
	for k, v := range raw {
		vals[k] = fmt.Sprint(v)
	}
	return vals, nil
}

// Named relabels a source in status output.
type Named struct {
	Label  string
	Source Source
}

func (n Named) Name() string { return n.Label }

func (n Named) Lookup(key string) (string, bool, error) { return n.Source.Lookup(key) }
