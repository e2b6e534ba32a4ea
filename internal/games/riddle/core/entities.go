package core

// WallType tags a wall with the rule family that affects it.
// The set is small and closed per level-authoring format, but the rest of
// the engine treats it as an open vocabulary: adding a type here is enough,
// no resolver change is needed.
type WallType string

const (
	WallBrick   WallType = "brick"
	WallWood    WallType = "wood"
	WallIron    WallType = "iron"
	WallSteel   WallType = "steel"
	WallEmerald WallType = "emerald"
	WallGold    WallType = "gold"
	WallDiamond WallType = "diamond"
	WallLapis   WallType = "lapis"
	WallQuartz  WallType = "quartz"
)

// WallTypes returns all known wall types in a stable order.
func WallTypes() []WallType {
	return []WallType{
		WallBrick, WallWood, WallIron, WallSteel,
		WallEmerald, WallGold, WallDiamond, WallLapis, WallQuartz,
	}
}

// ParseWallType parses a wall type name. The bool is false for unknown names.
func ParseWallType(s string) (WallType, bool) {
	for _, t := range WallTypes() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Wall is a static obstacle. Its type and cell only mutate at runtime while
// a transform or shuffle rule fires.
type Wall struct {
	Cell Coord
	Type WallType
}

// GateKind distinguishes how a gate is presented and what answering it grants.
type GateKind string

const (
	// GateBarrier opens on a correct riddle answer and grants nothing else.
	GateBarrier GateKind = "barrier"
	// GateRule opens on a correct answer and additionally grants its linked
	// rule effect.
	GateRule GateKind = "rule"
	// GateChoice opens on any selection; each choice carries its own effect.
	GateChoice GateKind = "choice"
)

// Gate is a conditionally passable cell. It is created closed and opens
// exactly once, irreversibly.
type Gate struct {
	Cell     Coord
	ID       string
	Kind     GateKind
	RiddleID string  // Preferred riddle; empty means any of the gate's kind
	Effect   *Effect // Rule effect granted on success (rule gates)

	open bool
}

// IsOpen returns whether the gate has been opened.
func (g *Gate) IsOpen() bool {
	return g.open
}

// Open opens the gate. Opening an already-open gate is a no-op; the return
// value reports whether the state changed.
func (g *Gate) Open() bool {
	if g.open {
		return false
	}
	g.open = true
	return true
}

// Pushable is a movable block relocated one cell at a time by player contact.
// Its cell mutates only through Pusher.CommitPush.
type Pushable struct {
	Cell      Coord
	ID        string
	BlockType string
}

// Socket is a pressure plate filled exactly once when a pushable lands on it.
type Socket struct {
	Cell      Coord
	ID        string
	SpecialID string // Linked special wall; empty means all-filled fallback

	filled bool
}

// IsFilled returns whether a pushable has landed on this socket.
func (s *Socket) IsFilled() bool {
	return s.filled
}

// SpecialWall is a lock paired with one or more sockets. While locked it
// blocks like a wall; unlocking removes it from collision consideration for
// the remainder of the level.
type SpecialWall struct {
	Cell Coord
	ID   string

	unlocked bool
}

// IsUnlocked returns whether the special wall has been unlocked.
func (w *SpecialWall) IsUnlocked() bool {
	return w.unlocked
}

// Player is the single mover of a level.
type Player struct {
	Cell Coord
}

// Goal is the friend/goal entity; reaching it wins the level while the
// FRIEND_IS_GOAL rule (default true) is active.
type Goal struct {
	Cell Coord
}
