package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

func TestVerifySolution(t *testing.T) {
	c := levels.MustBuiltin("intro")

	tests := []struct {
		name   string
		level  int
		moves  string
		solved bool
		steps  int
	}{
		{"first level", 1, "R", true, 1},
		{"lower case", 1, "r", true, 1},
		{"second level", 2, "RRRddlluRR", true, 10},
		{"no moves", 1, "", false, 0},
		{"blocked moves are skipped", 1, "uR", true, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := verifySolution(c, tc.level, tc.moves)
			if err != nil {
				t.Fatalf("verifySolution() failed: %v", err)
			}
			if result.Solved != tc.solved {
				t.Errorf("Solved = %v, expected %v", result.Solved, tc.solved)
			}
			if result.Steps != tc.steps {
				t.Errorf("Steps = %d, expected %d", result.Steps, tc.steps)
			}
			if !result.Solved && result.Remaining == 0 {
				t.Error("an unsolved level should report remaining boxes")
			}
		})
	}
}

func TestVerifySolutionErrors(t *testing.T) {
	c := levels.MustBuiltin("intro")

	tests := []struct {
		name  string
		level int
		moves string
	}{
		{"level zero", 0, "r"},
		{"past the end", c.Len() + 1, "r"},
		{"unknown move", 1, "rx"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := verifySolution(c, tc.level, tc.moves); err == nil {
				t.Error("verifySolution() should fail")
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in       string
		expected string
	}{
		{"~", home},
		{"~/packs", filepath.Join(home, "packs")},
		{"/abs/packs", "/abs/packs"},
		{"rel/~packs", "rel/~packs"},
	}

	for _, tc := range tests {
		if got := expandHome(tc.in); got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestOpenPack(t *testing.T) {
	dir := t.TempDir()
	pack := "title: Garden\nlevels:\n  - id: Tiny\n    map: |\n      @$.\n"
	if err := os.WriteFile(filepath.Join(dir, "garden.yaml"), []byte(pack), 0o600); err != nil {
		t.Fatal(err)
	}

	// A file named after a built-in collection must not shadow it.
	shadow := filepath.Join(t.TempDir(), "intro.yaml")
	if err := os.WriteFile(shadow, []byte(pack), 0o600); err != nil {
		t.Fatal(err)
	}

	old := flagPacksPath
	flagPacksPath = dir
	t.Cleanup(func() { flagPacksPath = old })

	tests := []struct {
		name     string
		expected string
	}{
		{"intro", "intro"},
		{"sokoban_warmup", "warmup"},
		{"garden", "garden"},
		{filepath.Join(dir, "garden.yaml"), "garden"},
		{shadow, "user_intro"},
		{"intro", "intro"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := openPack(tc.name)
			if err != nil {
				t.Fatalf("openPack() failed: %v", err)
			}
			if g.Collection().ID != tc.expected {
				t.Errorf("Collection().ID = %q, expected %q", g.Collection().ID, tc.expected)
			}
		})
	}

	if _, err := openPack(filepath.Join(dir, "missing.slc")); err == nil {
		t.Error("openPack() should fail for a missing file")
	}
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(good, []byte("gameplay:\n  tick_rate: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(broken, []byte("display: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"no flag", "", false},
		{"valid file", good, false},
		{"unparsable file", broken, true},
		{"missing file", filepath.Join(dir, "missing.yaml"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkConfig(tc.path)
			if (err != nil) != tc.wantErr {
				t.Errorf("checkConfig(%q) error = %v, wantErr %v", tc.path, err, tc.wantErr)
			}
		})
	}
}
