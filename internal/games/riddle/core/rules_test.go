package core

import (
	"errors"
	"testing"
)

func TestStoreDefaults(t *testing.T) {
	s := NewStore()

	if !s.Get(RuleFriendIsGoal) {
		t.Error("FRIEND_IS_GOAL should default to true")
	}
	for _, id := range []RuleID{
		RuleWallIsAir, RuleGateIsOpen, RulePushDisabled,
		RulePlayerIsGhost, RulePlayerIsFast, RulePlayerIsSlow,
	} {
		if s.Get(id) {
			t.Errorf("%s should default to false", id)
		}
	}
}

func TestStoreGetUnknownIsFalse(t *testing.T) {
	s := NewStore()
	// Reads never fail, whatever the identifier.
	if s.Get("NO_SUCH_RULE") {
		t.Error("unknown rule should read false")
	}
	if s.Get("") {
		t.Error("empty rule id should read false")
	}
}

func TestStoreSetRejectsUnknown(t *testing.T) {
	s := NewStore()
	changed, err := s.Set("BRCIK_IS_AIR", true, SourceRiddle) // Typo on purpose
	if !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("Set with typo: err = %v, want ErrUnknownRule", err)
	}
	if changed {
		t.Error("rejected Set must not report a change")
	}
	if len(s.History()) != 0 {
		t.Error("rejected Set must not record history")
	}
}

func TestStoreSetIsCaseInsensitive(t *testing.T) {
	s := NewStore()
	if _, err := s.Set("brick_is_air", true, SourceRiddle); err != nil {
		t.Fatalf("lowercase Set failed: %v", err)
	}
	if !s.Get("BRICK_IS_AIR") || !s.Get("Brick_Is_Air") {
		t.Error("rule ids should match case-insensitively")
	}
}

func TestStoreSetNoOpOnUnchangedValue(t *testing.T) {
	s := NewStore()
	changed, err := s.Set(RuleWallIsAir, false, SourceRiddle)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if changed {
		t.Error("setting a rule to its current value must not report a change")
	}
	if len(s.History()) != 0 {
		t.Error("no-op Set must not record history")
	}
}

func TestStoreHistoryAndUndo(t *testing.T) {
	s := NewStore()

	if s.UndoLast() {
		t.Error("UndoLast on empty history should return false")
	}

	if _, err := s.Set(RuleGateIsOpen, true, SourceRiddle); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	h := s.History()
	if len(h) != 1 {
		t.Fatalf("history length = %d, want 1", len(h))
	}
	if h[0].Rule != RuleGateIsOpen || h[0].Previous || !h[0].New {
		t.Errorf("history record = %+v, want GATE_IS_OPEN false->true", h[0])
	}
	if h[0].Source != SourceRiddle {
		t.Errorf("history source = %q, want %q", h[0].Source, SourceRiddle)
	}

	// Spec scenario: undo after a single set restores false and empties history.
	if !s.UndoLast() {
		t.Fatal("UndoLast should succeed")
	}
	if s.Get(RuleGateIsOpen) {
		t.Error("undo should restore GATE_IS_OPEN to false")
	}
	if len(s.History()) != 0 {
		t.Error("undo should empty the history")
	}
}

func TestStoreToggle(t *testing.T) {
	s := NewStore()
	v, err := s.Toggle(RulePlayerIsGhost, SourceRiddle)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !v || !s.Get(RulePlayerIsGhost) {
		t.Error("first toggle should turn the rule on")
	}
	v, err = s.Toggle(RulePlayerIsGhost, SourceRiddle)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if v || s.Get(RulePlayerIsGhost) {
		t.Error("second toggle should turn the rule off")
	}
	if _, err := s.Toggle("NOT_A_RULE", SourceRiddle); !errors.Is(err, ErrUnknownRule) {
		t.Errorf("Toggle unknown: err = %v, want ErrUnknownRule", err)
	}
}

func TestStoreReset(t *testing.T) {
	s := NewStore()
	mustSet(t, s, RuleWallIsAir, true)
	mustSet(t, s, RuleFriendIsGoal, false)

	var notified []RuleID
	s.Subscribe(func(ch Change) {
		if ch.Source == SourceReset {
			notified = append(notified, ch.Rule)
		}
	})

	s.Reset()

	if s.Get(RuleWallIsAir) {
		t.Error("Reset should clear WALL_IS_AIR")
	}
	if !s.Get(RuleFriendIsGoal) {
		t.Error("Reset should restore FRIEND_IS_GOAL to true")
	}
	if len(s.History()) != 0 {
		t.Error("Reset should clear history")
	}
	if len(notified) != 2 {
		t.Errorf("Reset notified %d changes, want 2 (%v)", len(notified), notified)
	}
}

func TestStoreObservers(t *testing.T) {
	s := NewStore()

	var generic, specific int
	s.Subscribe(func(Change) { generic++ })
	s.SubscribeRule(RuleGateIsOpen, func(Change) { specific++ })

	mustSet(t, s, RuleWallIsAir, true)
	mustSet(t, s, RuleGateIsOpen, true)

	if generic != 2 {
		t.Errorf("generic observer fired %d times, want 2", generic)
	}
	if specific != 1 {
		t.Errorf("rule-specific observer fired %d times, want 1", specific)
	}
}

func TestVocabularyFamilies(t *testing.T) {
	tests := []struct {
		id   RuleID
		kind RuleKind
	}{
		{IsAirRule(WallBrick), KindContinuous},
		{RuleWallIsAir, KindContinuous},
		{RulePlayerIsGhost, KindContinuous},
		{ShuffleRule(WallWood), KindTriggered},
		{TransformRule(WallIron, WallGold), KindTriggered},
	}
	for _, tt := range tests {
		if got := tt.id.Kind(); got != tt.kind {
			t.Errorf("%s kind = %v, want %v", tt.id, got, tt.kind)
		}
	}

	if id := IsAirRule(WallEmerald); id != "EMERALD_IS_AIR" {
		t.Errorf("IsAirRule(emerald) = %s", id)
	}
	if id := TransformRule(WallBrick, WallQuartz); id != "BRICK_TO_QUARTZ" {
		t.Errorf("TransformRule = %s", id)
	}

	if _, ok := ParseIsAir(RuleWallIsAir); ok {
		t.Error("WALL_IS_AIR is the universal rule, not a family member")
	}
	if typ, ok := ParseShuffle("LAPIS_SHUFFLE"); !ok || typ != WallLapis {
		t.Errorf("ParseShuffle(LAPIS_SHUFFLE) = %v, %v", typ, ok)
	}
	if _, _, ok := ParseTransform("IRON_TO_PLASTIC"); ok {
		t.Error("transform to an unknown type must not parse")
	}
}

func mustSet(t *testing.T, s *Store, id RuleID, v bool) {
	t.Helper()
	if _, err := s.Set(id, v, SourceRiddle); err != nil {
		t.Fatalf("Set(%s) failed: %v", id, err)
	}
}
