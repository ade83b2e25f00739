package app

import (
	"io"

	"fixme/internal/table"
)

// settingKeys are the settings the status command reports on, in display order.
var settingKeys = []string{"config", "start_command", "verbose"}

// Status resolves the known settings and renders them as a table with the
// source each value came from.
func (a *App) Status(w io.Writer) error {
	rows := make([][]string, 0, len(settingKeys))
	for _, key := range settingKeys {
		value, source, ok, err := a.Settings.Resolve(key)
		if err != nil {
			return err
		}
		if !ok {
			source = "unset"
		}
		rows = append(rows, []string{key, source, value})
	}
	table.Fprint(w, []string{"setting", "source", "value"}, rows)
	return nil
}
