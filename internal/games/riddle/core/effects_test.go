package core

import (
	"math/rand"
	"testing"
)

func TestDispatcherAppliesEffect(t *testing.T) {
	s := NewStore()
	d := NewDispatcher(s)

	changed, err := d.ApplyEffect(Effect{
		Rule:        "BRICK_IS_AIR",
		Value:       true,
		Description: "Brick walls turn to air",
	})
	if err != nil {
		t.Fatalf("ApplyEffect failed: %v", err)
	}
	if !changed {
		t.Fatal("ApplyEffect should report a change")
	}
	if !s.Get("BRICK_IS_AIR") {
		t.Error("effect should set the rule")
	}

	h := s.History()
	if len(h) != 1 {
		t.Fatalf("history length = %d, want 1", len(h))
	}
	if h[0].Source != SourceRiddle {
		t.Errorf("source = %q, want %q", h[0].Source, SourceRiddle)
	}
	if h[0].Note != "Brick walls turn to air" {
		t.Errorf("note = %q, want the effect description", h[0].Note)
	}
}

func TestDispatcherRejectsUnknownRule(t *testing.T) {
	s := NewStore()
	d := NewDispatcher(s)

	if _, err := d.ApplyEffect(Effect{Rule: "GRANITE_IS_AIR", Value: true}); err == nil {
		t.Error("unknown rule effect should be rejected")
	}
}

func TestWallMutatorTransform(t *testing.T) {
	lvl := testLevel()
	lvl.Walls = []*Wall{
		{Cell: C(2, 2), Type: WallIron},
		{Cell: C(3, 2), Type: WallIron},
		{Cell: C(4, 2), Type: WallWood},
	}
	s := NewStore()
	m := NewWallMutator(lvl, rand.New(rand.NewSource(1)))
	m.Attach(s)

	mustSet(t, s, TransformRule(WallIron, WallGold), true)

	var iron, gold, wood int
	for _, w := range lvl.Walls {
		switch w.Type {
		case WallIron:
			iron++
		case WallGold:
			gold++
		case WallWood:
			wood++
		}
	}
	if iron != 0 || gold != 2 || wood != 1 {
		t.Errorf("after IRON_TO_GOLD: iron=%d gold=%d wood=%d, want 0/2/1", iron, gold, wood)
	}
}

func TestWallMutatorTransformIsEdgeTriggered(t *testing.T) {
	lvl := testLevel()
	lvl.Walls = []*Wall{{Cell: C(2, 2), Type: WallIron}}
	s := NewStore()
	m := NewWallMutator(lvl, rand.New(rand.NewSource(1)))
	m.Attach(s)

	mustSet(t, s, TransformRule(WallIron, WallGold), true)
	if lvl.Walls[0].Type != WallGold {
		t.Fatal("activation should transform the wall")
	}

	// New iron walls appearing later are untouched: the rule fired once.
	lvl.Walls = append(lvl.Walls, &Wall{Cell: C(3, 3), Type: WallIron})
	mustSet(t, s, RuleWallIsAir, true) // Unrelated change, must not re-fire
	if lvl.Walls[1].Type != WallIron {
		t.Error("transform must not re-apply on unrelated changes")
	}

	// Deactivation is inert too.
	mustSet(t, s, TransformRule(WallIron, WallGold), false)
	if lvl.Walls[1].Type != WallIron {
		t.Error("deactivation must not transform")
	}
}

func TestWallMutatorShuffle(t *testing.T) {
	lvl := testLevel()
	lvl.Walls = []*Wall{
		{Cell: C(2, 2), Type: WallWood},
		{Cell: C(3, 2), Type: WallWood},
		{Cell: C(4, 2), Type: WallIron},
	}
	s := NewStore()
	m := NewWallMutator(lvl, rand.New(rand.NewSource(42)))
	m.Attach(s)

	ironBefore := lvl.Walls[2].Cell
	mustSet(t, s, ShuffleRule(WallWood), true)

	// Walls stay in bounds, keep types, never overlap.
	seen := make(map[Coord]bool)
	for _, w := range lvl.Walls {
		if !lvl.Grid.InBounds(w.Cell) {
			t.Errorf("wall shuffled out of bounds: %s", w.Cell)
		}
		if seen[w.Cell] {
			t.Errorf("two walls at %s after shuffle", w.Cell)
		}
		seen[w.Cell] = true
	}
	if lvl.Walls[2].Cell != ironBefore {
		t.Error("shuffle of wood must not move iron walls")
	}
	if lvl.Walls[2].Type != WallIron || lvl.Walls[0].Type != WallWood {
		t.Error("shuffle must not change wall types")
	}
}
