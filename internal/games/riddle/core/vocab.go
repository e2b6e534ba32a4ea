package core

import "strings"

// RuleID names a boolean rule. Identifiers are matched case-insensitively by
// uppercasing; the canonical form is upper snake case.
type RuleID string

// Base semantic rules.
const (
	// RuleWallIsAir makes every wall passable regardless of type.
	RuleWallIsAir RuleID = "WALL_IS_AIR"
	// RuleGateIsOpen treats every gate as open without opening it.
	RuleGateIsOpen RuleID = "GATE_IS_OPEN"
	// RulePushDisabled forbids pushing blocks.
	RulePushDisabled RuleID = "PUSH_IS_DISABLED"
	// RulePlayerIsGhost lets the player pass through walls, gates and
	// pushables (without relocating them).
	RulePlayerIsGhost RuleID = "PLAYER_IS_GHOST"
	// RulePlayerIsFast and RulePlayerIsSlow scale input repeat speed.
	// The core only stores the flags; pacing is a presentation concern.
	RulePlayerIsFast RuleID = "PLAYER_IS_FAST"
	RulePlayerIsSlow RuleID = "PLAYER_IS_SLOW"
	// RuleFriendIsGoal makes reaching the friend win the level.
	// The only rule whose default is true.
	RuleFriendIsGoal RuleID = "FRIEND_IS_GOAL"
)

// Normalize returns the canonical form of a rule identifier.
func (id RuleID) Normalize() RuleID {
	return RuleID(strings.ToUpper(strings.TrimSpace(string(id))))
}

func typeTag(t WallType) string {
	return strings.ToUpper(string(t))
}

// IsAirRule returns the per-type is-air rule id, e.g. BRICK_IS_AIR.
func IsAirRule(t WallType) RuleID {
	return RuleID(typeTag(t) + "_IS_AIR")
}

// ShuffleRule returns the per-type shuffle rule id, e.g. WOOD_SHUFFLE.
func ShuffleRule(t WallType) RuleID {
	return RuleID(typeTag(t) + "_SHUFFLE")
}

// TransformRule returns the transform rule id, e.g. IRON_TO_GOLD.
func TransformRule(from, to WallType) RuleID {
	return RuleID(typeTag(from) + "_TO_" + typeTag(to))
}

// ParseIsAir reports whether id is a per-type is-air rule and for which type.
// The universal WALL_IS_AIR is not part of the family.
func ParseIsAir(id RuleID) (WallType, bool) {
	s := string(id.Normalize())
	tag, ok := strings.CutSuffix(s, "_IS_AIR")
	if !ok || s == string(RuleWallIsAir) {
		return "", false
	}
	return ParseWallType(strings.ToLower(tag))
}

// ParseShuffle reports whether id is a shuffle rule and for which type.
func ParseShuffle(id RuleID) (WallType, bool) {
	s := string(id.Normalize())
	tag, ok := strings.CutSuffix(s, "_SHUFFLE")
	if !ok {
		return "", false
	}
	return ParseWallType(strings.ToLower(tag))
}

// ParseTransform reports whether id is a transform rule and between which
// types. Both sides must name known wall types.
func ParseTransform(id RuleID) (from, to WallType, ok bool) {
	s := string(id.Normalize())
	a, b, found := strings.Cut(s, "_TO_")
	if !found {
		return "", "", false
	}
	from, ok = ParseWallType(strings.ToLower(a))
	if !ok {
		return "", "", false
	}
	to, ok = ParseWallType(strings.ToLower(b))
	if !ok {
		return "", "", false
	}
	return from, to, true
}

// RuleKind classifies how a rule takes effect.
type RuleKind int

const (
	// KindContinuous rules are consulted on every resolution (is-air,
	// ghost, push disabled, gate open, speed, friend-is-goal).
	KindContinuous RuleKind = iota
	// KindTriggered rules fire once at the moment they become active
	// (transform, shuffle) and are inert afterwards.
	KindTriggered
)

// Kind classifies a rule id. Unknown ids classify as continuous, matching
// the read side where unknown rules simply read false.
func (id RuleID) Kind() RuleKind {
	if _, ok := ParseShuffle(id); ok {
		return KindTriggered
	}
	if _, _, ok := ParseTransform(id); ok {
		return KindTriggered
	}
	return KindContinuous
}

// Vocabulary returns every valid rule id: the base rules plus the is-air,
// shuffle and transform families over all wall types.
func Vocabulary() []RuleID {
	ids := []RuleID{
		RuleWallIsAir, RuleGateIsOpen, RulePushDisabled,
		RulePlayerIsGhost, RulePlayerIsFast, RulePlayerIsSlow,
		RuleFriendIsGoal,
	}
	types := WallTypes()
	for _, t := range types {
		ids = append(ids, IsAirRule(t), ShuffleRule(t))
	}
	for _, from := range types {
		for _, to := range types {
			if from != to {
				ids = append(ids, TransformRule(from, to))
			}
		}
	}
	return ids
}
