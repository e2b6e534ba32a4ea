package core

// PushDecision is the result of asking whether a pushable can move one cell.
type PushDecision struct {
	Allowed bool
	Target  Coord
	Reason  BlockReason // Set when not allowed
}

// Pusher decides and commits pushable relocations. CommitPush is the only
// place a pushable's cell mutates; the no-overlap invariant is maintained by
// construction here, never re-validated elsewhere.
type Pusher struct {
	level *Level
	rules *Store
}

// NewPusher creates a pusher over a level and rule store.
func NewPusher(level *Level, rules *Store) *Pusher {
	return &Pusher{level: level, rules: rules}
}

// CanPush reports whether the pushable at cell can move one step in the
// given direction. The target must be in bounds, not a wall (unless its air
// rule is active), not a closed gate (unless GATE_IS_OPEN), and not another
// pushable. Pushes never chain: a blocked pushable fails the push, it does
// not propagate.
func (p *Pusher) CanPush(cell Coord, d Dir) PushDecision {
	target := cell.Step(d)

	if !p.level.Grid.InBounds(target) {
		return PushDecision{Target: target, Reason: ReasonOutOfBounds}
	}
	if w := p.level.WallAt(target); w != nil {
		if !p.rules.Get(RuleWallIsAir) && !p.rules.Get(IsAirRule(w.Type)) {
			return PushDecision{Target: target, Reason: ReasonWall}
		}
	}
	if sp := p.level.SpecialAt(target); sp != nil && !sp.IsUnlocked() {
		if !p.rules.Get(RuleWallIsAir) {
			return PushDecision{Target: target, Reason: ReasonWall}
		}
	}
	if g := p.level.GateAt(target); g != nil && !g.IsOpen() && !p.rules.Get(RuleGateIsOpen) {
		return PushDecision{Target: target, Reason: ReasonGate}
	}
	if p.level.PushableAt(target) != nil {
		return PushDecision{Target: target, Reason: ReasonOccupied}
	}
	return PushDecision{Allowed: true, Target: target}
}

// CommitPush relocates the pushable to the target cell and returns the new
// cell. Callers must have obtained the target from CanPush.
func (p *Pusher) CommitPush(pushable *Pushable, target Coord) Coord {
	pushable.Cell = target
	return pushable.Cell
}
