package norms

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/neuroscreen/internal/battery"
)

// fileTable is the TOML shape of a norms override file:
//
//	[memory-recall]
//	mean = 18.0
//	stddev = 5.0
//	invert = false
type fileEntry struct {
	Mean   *float64 `toml:"mean"`
	StdDev *float64 `toml:"stddev"`
	Invert *bool    `toml:"invert"`
}

// LoadTable reads norm overrides from a TOML file and merges them over
// the defaults. A missing file is not an error; the defaults apply.
func LoadTable(path string) (Table, error) {
	table := DefaultTable()
	if path == "" {
		return table, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, fmt.Errorf("stat norms file: %w", err)
	}

	var file map[string]fileEntry
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode norms file: %w", err)
	}

	for key, entry := range file {
		id := battery.TestID(key)
		if _, ok := battery.Get(id); !ok {
			return nil, fmt.Errorf("%w: unknown test %q in %s", ErrInvalidNorms, key, path)
		}
		p := table[id]
		if entry.Mean != nil {
			p.Mean = *entry.Mean
		}
		if entry.StdDev != nil {
			p.StdDev = *entry.StdDev
		}
		if entry.Invert != nil {
			p.Invert = *entry.Invert
		}
		table[id] = p
	}
	return table, nil
}

// DefaultTablePath is the conventional location of the norms override
// file under the XDG config home.
func DefaultTablePath() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "neuroscreen", "norms.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "neuroscreen", "norms.toml")
}
