package norms

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/neuroscreen/internal/battery"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestZScore_Basic(t *testing.T) {
	table := Table{battery.TestFluency: {Mean: 17.0, StdDev: 4.5}}

	z, err := table.ZScore(battery.TestFluency, 21.5)
	if err != nil {
		t.Fatalf("ZScore error: %v", err)
	}
	if !almostEqual(z, 1.0) {
		t.Errorf("z = %f, want 1.0", z)
	}
}

func TestZScore_Inverted(t *testing.T) {
	// Trail making: faster than average must come out positive.
	table := Table{battery.TestTrails: {Mean: 75.0, StdDev: 25.0, Invert: true}}

	z, err := table.ZScore(battery.TestTrails, 50.0)
	if err != nil {
		t.Fatalf("ZScore error: %v", err)
	}
	if !almostEqual(z, 1.0) {
		t.Errorf("z = %f, want +1.0", z)
	}

	z, _ = table.ZScore(battery.TestTrails, 100.0)
	if !almostEqual(z, -1.0) {
		t.Errorf("z for slow completion = %f, want -1.0", z)
	}
}

func TestZScore_ZeroStdDev(t *testing.T) {
	table := Table{battery.TestMemory: {Mean: 18.0, StdDev: 0}}

	_, err := table.ZScore(battery.TestMemory, 20)
	if !errors.Is(err, ErrInvalidNorms) {
		t.Fatalf("err = %v, want ErrInvalidNorms", err)
	}
}

func TestZScore_MissingEntry(t *testing.T) {
	table := Table{}

	_, err := table.ZScore(battery.TestMemory, 20)
	if !errors.Is(err, ErrInvalidNorms) {
		t.Fatalf("err = %v, want ErrInvalidNorms", err)
	}
}

func TestDefaultTable_CoversBattery(t *testing.T) {
	table := DefaultTable()
	for _, def := range battery.All() {
		p, ok := table[def.ID]
		if !ok {
			t.Errorf("no default norms for %s", def.ID)
			continue
		}
		if p.StdDev == 0 {
			t.Errorf("zero stddev for %s", def.ID)
		}
	}
}

func TestLoadTable_MissingFile(t *testing.T) {
	table, err := LoadTable(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if table[battery.TestTrails].Mean != DefaultTable()[battery.TestTrails].Mean {
		t.Error("missing file should fall back to defaults")
	}
}

func TestLoadTable_MergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "norms.toml")
	content := "[trail-making]\nmean = 90.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	p := table[battery.TestTrails]
	if !almostEqual(p.Mean, 90.0) {
		t.Errorf("Mean = %f, want 90 (overridden)", p.Mean)
	}
	if !almostEqual(p.StdDev, 25.0) {
		t.Errorf("StdDev = %f, want 25 (default kept)", p.StdDev)
	}
	if !p.Invert {
		t.Error("Invert lost during merge")
	}
}

func TestLoadTable_UnknownTest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "norms.toml")
	if err := os.WriteFile(path, []byte("[no-such-test]\nmean = 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadTable(path)
	if !errors.Is(err, ErrInvalidNorms) {
		t.Fatalf("err = %v, want ErrInvalidNorms", err)
	}
}
