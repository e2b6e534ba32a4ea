package core

// MoverKind identifies who is attempting a move. Only the player triggers
// push resolution; other movers treat pushables as plain obstacles.
type MoverKind int

const (
	MoverPlayer MoverKind = iota
	MoverOther
)

// BlockReason explains a blocked outcome.
type BlockReason string

const (
	ReasonOutOfBounds  BlockReason = "out_of_bounds"
	ReasonWall         BlockReason = "wall"
	ReasonGate         BlockReason = "gate"
	ReasonOccupied     BlockReason = "occupied"
	ReasonPushDisabled BlockReason = "push_disabled"
	ReasonPushFailed   BlockReason = "push_failed"
)

// OutcomeKind classifies an attempted move.
type OutcomeKind int

const (
	OutcomeMove OutcomeKind = iota
	OutcomePush
	OutcomeBlocked
	OutcomeGate
	OutcomeWin
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMove:
		return "move"
	case OutcomePush:
		return "push"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeGate:
		return "gate_encountered"
	case OutcomeWin:
		return "win"
	default:
		return "unknown"
	}
}

// Outcome is the resolver's classification of an attempted move. Blocked
// moves, failed pushes and gate encounters are normal vocabulary here, not
// errors.
type Outcome struct {
	Kind   OutcomeKind
	Reason BlockReason // Set for OutcomeBlocked

	Gate *Gate // Set for OutcomeGate

	Pushable   *Pushable // Set for OutcomePush
	Dir        Dir       // Set for OutcomePush
	PushTarget Coord     // Set for OutcomePush

	Goal *Goal // Set for OutcomeWin

	// Unlocked lists special walls unlocked as a consequence of a
	// committed push. Filled in by the session, never by Resolve.
	Unlocked []*SpecialWall
}

func blocked(reason BlockReason) Outcome {
	return Outcome{Kind: OutcomeBlocked, Reason: reason}
}

// Resolver classifies move attempts against the entity registries and the
// rule store. Resolve is a pure query: no outcome mutates any entity.
type Resolver struct {
	level  *Level
	rules  *Store
	pusher *Pusher
}

// NewResolver creates a resolver over a level and rule store.
func NewResolver(level *Level, rules *Store) *Resolver {
	return &Resolver{
		level:  level,
		rules:  rules,
		pusher: NewPusher(level, rules),
	}
}

// Resolve classifies the attempt to move from one cell to an adjacent cell.
// Checks run in fixed priority order; the first match wins.
func (r *Resolver) Resolve(from, to Coord, mover MoverKind) Outcome {
	// 1. Bounds, regardless of rule state.
	if !r.level.Grid.InBounds(to) {
		return blocked(ReasonOutOfBounds)
	}

	// 2. Ghost override: walls, gates and pushables stop mattering.
	ghost := r.rules.Get(RulePlayerIsGhost)

	// 3. Wall collision, unless a universal or type-specific air rule is
	// active. Locked special walls block like walls; they carry no type,
	// so only the universal rule or ghost lets the player through.
	if !ghost {
		if w := r.level.WallAt(to); w != nil {
			if !r.rules.Get(RuleWallIsAir) && !r.rules.Get(IsAirRule(w.Type)) {
				return blocked(ReasonWall)
			}
		}
		if sp := r.level.SpecialAt(to); sp != nil && !sp.IsUnlocked() {
			if !r.rules.Get(RuleWallIsAir) {
				return blocked(ReasonWall)
			}
		}
	}

	// 4. Closed gate, unless the global open rule is active.
	if !ghost {
		if g := r.level.GateAt(to); g != nil && !g.IsOpen() && !r.rules.Get(RuleGateIsOpen) {
			return Outcome{Kind: OutcomeGate, Gate: g}
		}
	}

	// 5. Win check.
	if r.level.Goal != nil && r.level.Goal.Cell == to && r.rules.Get(RuleFriendIsGoal) {
		return Outcome{Kind: OutcomeWin, Goal: r.level.Goal}
	}

	// 6. Pushable collision. Ghosts pass through without relocating.
	if !ghost {
		if p := r.level.PushableAt(to); p != nil && mover == MoverPlayer {
			if r.rules.Get(RulePushDisabled) {
				return blocked(ReasonPushDisabled)
			}
			d, ok := DirFromDelta(to.X-from.X, to.Y-from.Y)
			if !ok {
				return blocked(ReasonPushFailed)
			}
			dec := r.pusher.CanPush(p.Cell, d)
			if !dec.Allowed {
				return blocked(ReasonPushFailed)
			}
			return Outcome{
				Kind:       OutcomePush,
				Pushable:   p,
				Dir:        d,
				PushTarget: dec.Target,
			}
		}
	}

	// 7. Default: plain move.
	return Outcome{Kind: OutcomeMove}
}
