package setting

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// File answers every key with the raw contents of one file. When the file is
// missing, MountHook (if set) gets a chance to make it appear before the
// source defers.
type File struct {
	Path      string
	MountHook func() error
}

func (File) Name() string { return "file" }

func (f File) Lookup(string) (string, bool, error) {
	b, err := readFile(f.Path)
	if err != nil {
		return "", false, err
	}
	if b == nil && f.MountHook != nil {
		if err := f.MountHook(); err != nil {
			return "", false, err
		}
		if b, err = readFile(f.Path); err != nil {
			return "", false, err
		}
	}
	if b == nil {
		return "", false, nil
	}
	return string(b), true, nil
}

// JSONFile answers keys out of a JSON object stored in one file.
type JSONFile struct {
	Path string
}

func (JSONFile) Name() string { return "json" }

func (j JSONFile) Lookup(key string) (string, bool, error) {
	b, err := readFile(j.Path)
	if err != nil || b == nil {
		return "", false, err
	}
	obj := map[string]any{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return "", false, fmt.Errorf("parsing %s: %w", j.Path, err)
	}
	v, ok := obj[key]
	if !ok {
		return "", false, nil
	}
	return fmt.Sprint(v), true, nil
}

// readFile reads the file at path; a missing file is not an error.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
