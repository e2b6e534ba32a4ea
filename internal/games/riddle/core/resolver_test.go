package core

import "testing"

// testLevel builds a 10x8 level with a player at (1,1) and a goal at (8,6).
func testLevel() *Level {
	return &Level{
		ID:     "test",
		Name:   "Test",
		Grid:   NewGrid(10, 8, 1, C(0, 0)),
		Player: &Player{Cell: C(1, 1)},
		Goal:   &Goal{Cell: C(8, 6)},
	}
}

func TestResolveBoundsInvariant(t *testing.T) {
	lvl := testLevel()
	rules := NewStore()
	r := NewResolver(lvl, rules)

	// Even ghost mode never escapes the grid.
	if _, err := rules.Set(RulePlayerIsGhost, true, SourceLevel); err != nil {
		t.Fatalf("Set(PLAYER_IS_GHOST) failed: %v", err)
	}

	targets := []Coord{
		C(-1, 0), C(0, -1), C(10, 0), C(0, 8), C(-5, -5), C(99, 99),
	}
	for _, to := range targets {
		out := r.Resolve(C(0, 0), to, MoverPlayer)
		if out.Kind != OutcomeBlocked || out.Reason != ReasonOutOfBounds {
			t.Errorf("Resolve to %s = %s/%s, want blocked/out_of_bounds",
				to, out.Kind, out.Reason)
		}
	}
}

func TestResolveWallAndAirRules(t *testing.T) {
	lvl := testLevel()
	lvl.Walls = []*Wall{{Cell: C(1, 2), Type: WallBrick}}
	rules := NewStore()
	r := NewResolver(lvl, rules)

	out := r.Resolve(C(1, 1), C(1, 2), MoverPlayer)
	if out.Kind != OutcomeBlocked || out.Reason != ReasonWall {
		t.Fatalf("brick wall: got %s/%s, want blocked/wall", out.Kind, out.Reason)
	}

	// Type-specific air rule turns the identical call into a move.
	if _, err := rules.Set(IsAirRule(WallBrick), true, SourceRiddle); err != nil {
		t.Fatalf("Set(BRICK_IS_AIR) failed: %v", err)
	}
	out = r.Resolve(C(1, 1), C(1, 2), MoverPlayer)
	if out.Kind != OutcomeMove {
		t.Fatalf("brick wall with BRICK_IS_AIR: got %s, want move", out.Kind)
	}
}

func TestResolveWallTypeIndependence(t *testing.T) {
	lvl := testLevel()
	lvl.Walls = []*Wall{
		{Cell: C(2, 1), Type: WallIron},
		{Cell: C(1, 2), Type: WallWood},
	}
	rules := NewStore()
	r := NewResolver(lvl, rules)

	if _, err := rules.Set(IsAirRule(WallWood), true, SourceRiddle); err != nil {
		t.Fatalf("Set(WOOD_IS_AIR) failed: %v", err)
	}

	if out := r.Resolve(C(1, 1), C(2, 1), MoverPlayer); out.Kind != OutcomeBlocked {
		t.Errorf("WOOD_IS_AIR must not open iron walls: got %s", out.Kind)
	}
	if out := r.Resolve(C(1, 1), C(1, 2), MoverPlayer); out.Kind != OutcomeMove {
		t.Errorf("WOOD_IS_AIR must open wood walls: got %s", out.Kind)
	}
}

func TestResolveUniversalAirRule(t *testing.T) {
	lvl := testLevel()
	lvl.Walls = []*Wall{{Cell: C(1, 2), Type: WallSteel}}
	rules := NewStore()
	r := NewResolver(lvl, rules)

	if _, err := rules.Set(RuleWallIsAir, true, SourceRiddle); err != nil {
		t.Fatalf("Set(WALL_IS_AIR) failed: %v", err)
	}
	if out := r.Resolve(C(1, 1), C(1, 2), MoverPlayer); out.Kind != OutcomeMove {
		t.Errorf("WALL_IS_AIR must open every wall type: got %s", out.Kind)
	}
}

func TestResolveGate(t *testing.T) {
	lvl := testLevel()
	gate := &Gate{Cell: C(1, 2), ID: "g1", Kind: GateBarrier}
	lvl.Gates = []*Gate{gate}
	rules := NewStore()
	r := NewResolver(lvl, rules)

	out := r.Resolve(C(1, 1), C(1, 2), MoverPlayer)
	if out.Kind != OutcomeGate || out.Gate != gate {
		t.Fatalf("closed gate: got %s, want gate_encountered", out.Kind)
	}

	// Opening is idempotent and permanent.
	if !gate.Open() {
		t.Error("first Open() should report a change")
	}
	if gate.Open() {
		t.Error("second Open() must be a no-op")
	}
	if out := r.Resolve(C(1, 1), C(1, 2), MoverPlayer); out.Kind != OutcomeMove {
		t.Errorf("open gate: got %s, want move", out.Kind)
	}
}

func TestResolveGlobalGateRule(t *testing.T) {
	lvl := testLevel()
	lvl.Gates = []*Gate{{Cell: C(1, 2), ID: "g1", Kind: GateBarrier}}
	rules := NewStore()
	r := NewResolver(lvl, rules)

	if _, err := rules.Set(RuleGateIsOpen, true, SourceRiddle); err != nil {
		t.Fatalf("Set(GATE_IS_OPEN) failed: %v", err)
	}
	if out := r.Resolve(C(1, 1), C(1, 2), MoverPlayer); out.Kind != OutcomeMove {
		t.Errorf("GATE_IS_OPEN: got %s, want move", out.Kind)
	}
}

func TestResolveWin(t *testing.T) {
	lvl := testLevel()
	lvl.Goal.Cell = C(1, 2)
	rules := NewStore()
	r := NewResolver(lvl, rules)

	out := r.Resolve(C(1, 1), C(1, 2), MoverPlayer)
	if out.Kind != OutcomeWin || out.Goal != lvl.Goal {
		t.Fatalf("goal cell: got %s, want win", out.Kind)
	}

	// FRIEND_IS_GOAL defaults to true; clearing it demotes the win to a move.
	if _, err := rules.Set(RuleFriendIsGoal, false, SourceRiddle); err != nil {
		t.Fatalf("Set(FRIEND_IS_GOAL) failed: %v", err)
	}
	if out := r.Resolve(C(1, 1), C(1, 2), MoverPlayer); out.Kind != OutcomeMove {
		t.Errorf("goal without FRIEND_IS_GOAL: got %s, want move", out.Kind)
	}
}

func TestResolveGhostSupremacy(t *testing.T) {
	lvl := testLevel()
	lvl.Walls = []*Wall{{Cell: C(2, 1), Type: WallIron}}
	lvl.Gates = []*Gate{{Cell: C(1, 2), ID: "g1", Kind: GateBarrier}}
	lvl.Pushables = []*Pushable{
		{Cell: C(3, 3), ID: "p1"},
		{Cell: C(4, 3), ID: "p2"},
	}
	lvl.Specials = []*SpecialWall{{Cell: C(5, 5), ID: "sw1"}}
	rules := NewStore()
	r := NewResolver(lvl, rules)

	if _, err := rules.Set(RulePlayerIsGhost, true, SourceRiddle); err != nil {
		t.Fatalf("Set(PLAYER_IS_GHOST) failed: %v", err)
	}

	cases := []struct {
		name     string
		from, to Coord
	}{
		{"through wall", C(1, 1), C(2, 1)},
		{"through gate", C(1, 1), C(1, 2)},
		{"through chained pushables", C(2, 3), C(3, 3)},
		{"through locked special wall", C(4, 5), C(5, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := r.Resolve(tc.from, tc.to, MoverPlayer)
			if out.Kind != OutcomeMove {
				t.Errorf("ghost %s -> %s: got %s/%s, want move",
					tc.from, tc.to, out.Kind, out.Reason)
			}
		})
	}

	// Ghosts still win.
	out := r.Resolve(C(8, 5), C(8, 6), MoverPlayer)
	if out.Kind != OutcomeWin {
		t.Errorf("ghost onto goal: got %s, want win", out.Kind)
	}
}

func TestResolvePushOutcome(t *testing.T) {
	lvl := testLevel()
	lvl.Player.Cell = C(5, 5)
	p := &Pushable{Cell: C(6, 5), ID: "p1"}
	lvl.Pushables = []*Pushable{p}
	rules := NewStore()
	r := NewResolver(lvl, rules)

	out := r.Resolve(C(5, 5), C(6, 5), MoverPlayer)
	if out.Kind != OutcomePush {
		t.Fatalf("push: got %s/%s, want push", out.Kind, out.Reason)
	}
	if out.Pushable != p {
		t.Error("push outcome should reference the pushable")
	}
	if out.Dir != DirRight {
		t.Errorf("push direction = %s, want Right", out.Dir)
	}
	if out.PushTarget != C(7, 5) {
		t.Errorf("push target = %s, want (7,5)", out.PushTarget)
	}
}

func TestResolvePushDisabled(t *testing.T) {
	lvl := testLevel()
	lvl.Pushables = []*Pushable{{Cell: C(2, 1), ID: "p1"}}
	rules := NewStore()
	r := NewResolver(lvl, rules)

	if _, err := rules.Set(RulePushDisabled, true, SourceRiddle); err != nil {
		t.Fatalf("Set(PUSH_IS_DISABLED) failed: %v", err)
	}
	out := r.Resolve(C(1, 1), C(2, 1), MoverPlayer)
	if out.Kind != OutcomeBlocked || out.Reason != ReasonPushDisabled {
		t.Errorf("got %s/%s, want blocked/push_disabled", out.Kind, out.Reason)
	}
}

func TestResolvePushChainRejected(t *testing.T) {
	lvl := testLevel()
	lvl.Pushables = []*Pushable{
		{Cell: C(3, 3), ID: "p1"},
		{Cell: C(4, 3), ID: "p2"},
	}
	rules := NewStore()
	r := NewResolver(lvl, rules)

	out := r.Resolve(C(2, 3), C(3, 3), MoverPlayer)
	if out.Kind != OutcomeBlocked || out.Reason != ReasonPushFailed {
		t.Errorf("chained push: got %s/%s, want blocked/push_failed", out.Kind, out.Reason)
	}
}

func TestResolveScenarioBrickIsAir(t *testing.T) {
	// Spec scenario: empty rule store, brick wall at (1,2).
	lvl := testLevel()
	lvl.Walls = []*Wall{{Cell: C(1, 2), Type: WallBrick}}
	rules := NewStore()
	r := NewResolver(lvl, rules)

	if out := r.Resolve(C(1, 1), C(1, 2), MoverPlayer); out.Reason != ReasonWall {
		t.Fatalf("before rule: got %s/%s, want blocked/wall", out.Kind, out.Reason)
	}
	if _, err := rules.Set("BRICK_IS_AIR", true, SourceRiddle); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if out := r.Resolve(C(1, 1), C(1, 2), MoverPlayer); out.Kind != OutcomeMove {
		t.Fatalf("after rule: got %s, want move", out.Kind)
	}
}
