package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/riddle-grid/internal/games/riddle/core"
)

const sampleLevel = `
id: "01-first"
name: "First Steps"
size: {w: 6, h: 5}
cells:
  - [0, 0, 0, 0, 0, 0]
  - [0, 0, 1, 0, 0, 0]
  - [0, 0, 2, 0, 3, 0]
  - [0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0]
player: {x: 0, y: 0}
goal: {x: 5, y: 4}
gates:
  - {x: 3, y: 3, id: g1, kind: rule, riddle: r1, effect: {rule: BRICK_IS_AIR, value: true, desc: "Brick turns to air"}}
blocks:
  - {x: 1, y: 3, id: b1, type: crate}
sockets:
  - {x: 4, y: 3, id: s1, special: sw1}
specials:
  - {x: 5, y: 3, id: sw1}
`

func writeLevel(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing level file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeLevel(t, dir, "01-first.yaml", sampleLevel)

	lvl, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if lvl.ID != "01-first" || lvl.Name != "First Steps" {
		t.Errorf("id/name = %q/%q", lvl.ID, lvl.Name)
	}
	if lvl.Grid.W != 6 || lvl.Grid.H != 5 {
		t.Errorf("grid = %dx%d, want 6x5", lvl.Grid.W, lvl.Grid.H)
	}
	if len(lvl.Walls) != 3 {
		t.Fatalf("walls = %d, want 3", len(lvl.Walls))
	}
	if w := lvl.WallAt(core.C(2, 1)); w == nil || w.Type != core.WallBrick {
		t.Error("expected brick wall at (2,1)")
	}
	if w := lvl.WallAt(core.C(2, 2)); w == nil || w.Type != core.WallWood {
		t.Error("expected wood wall at (2,2)")
	}
	if w := lvl.WallAt(core.C(4, 2)); w == nil || w.Type != core.WallIron {
		t.Error("expected iron wall at (4,2)")
	}

	if lvl.Player.Cell != core.C(0, 0) {
		t.Errorf("player at %s", lvl.Player.Cell)
	}
	if lvl.Goal.Cell != core.C(5, 4) {
		t.Errorf("goal at %s", lvl.Goal.Cell)
	}

	g := lvl.GateAt(core.C(3, 3))
	if g == nil {
		t.Fatal("expected gate at (3,3)")
	}
	if g.Kind != core.GateRule || g.RiddleID != "r1" {
		t.Errorf("gate kind/riddle = %s/%s", g.Kind, g.RiddleID)
	}
	if g.Effect == nil || g.Effect.Rule != "BRICK_IS_AIR" || !g.Effect.Value {
		t.Errorf("gate effect = %+v", g.Effect)
	}
	if g.IsOpen() {
		t.Error("gates must load closed")
	}

	if p := lvl.PushableAt(core.C(1, 3)); p == nil || p.ID != "b1" {
		t.Error("expected pushable b1 at (1,3)")
	}
	s := lvl.SocketAt(core.C(4, 3))
	if s == nil || s.SpecialID != "sw1" || s.IsFilled() {
		t.Error("expected unfilled socket linked to sw1 at (4,3)")
	}
	if sp := lvl.SpecialAt(core.C(5, 3)); sp == nil || sp.IsUnlocked() {
		t.Error("expected locked special wall at (5,3)")
	}
}

func TestLoadFileRejectsBadLevels(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown wall code", `
id: bad
name: Bad
size: {w: 3, h: 2}
cells: [[0, 42, 0], [0, 0, 0]]
player: {x: 0, y: 0}
goal: {x: 2, y: 1}
`},
		{"unknown gate kind", `
id: bad
name: Bad
size: {w: 3, h: 2}
cells: [[0, 0, 0], [0, 0, 0]]
player: {x: 0, y: 0}
goal: {x: 2, y: 1}
gates: [{x: 1, y: 0, id: g1, kind: portal}]
`},
		{"player out of bounds", `
id: bad
name: Bad
size: {w: 3, h: 2}
cells: [[0, 0, 0], [0, 0, 0]]
player: {x: 9, y: 9}
goal: {x: 2, y: 1}
`},
		{"dangling socket link", `
id: bad
name: Bad
size: {w: 3, h: 2}
cells: [[0, 0, 0], [0, 0, 0]]
player: {x: 0, y: 0}
goal: {x: 2, y: 1}
sockets: [{x: 1, y: 1, id: s1, special: ghost}]
`},
		{"zero size", `
id: bad
name: Bad
size: {w: 0, h: 0}
player: {x: 0, y: 0}
goal: {x: 0, y: 0}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeLevel(t, dir, "bad.yaml", tt.content)
			if _, err := NewLoader(dir).LoadFile(path); err == nil {
				t.Error("expected a load error")
			}
		})
	}
}

func TestLoadAllSortsAndLoadByID(t *testing.T) {
	dir := t.TempDir()
	second := `
id: "02-second"
name: "Second"
size: {w: 3, h: 2}
cells: [[0, 0, 0], [0, 0, 0]]
player: {x: 0, y: 0}
goal: {x: 2, y: 1}
`
	writeLevel(t, dir, "z-file.yaml", second)
	writeLevel(t, dir, "a-file.yaml", sampleLevel)
	writeLevel(t, dir, "notes.txt", "not a level")

	loader := NewLoader(dir)
	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("loaded %d levels, want 2", len(all))
	}
	// Sorted by level ID, not by file name.
	if all[0].ID != "01-first" || all[1].ID != "02-second" {
		t.Errorf("order = %s, %s", all[0].ID, all[1].ID)
	}

	lvl, err := loader.LoadByID("02-second")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Second" {
		t.Errorf("LoadByID name = %q", lvl.Name)
	}
	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("LoadByID with unknown id should fail")
	}
}
