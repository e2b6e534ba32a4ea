package core

import (
	"errors"
	"fmt"
)

// Level configuration errors, surfaced at load time and fatal to starting
// the level.
var (
	ErrNoPlayer      = errors.New("level has no player")
	ErrNoGoal        = errors.New("level has no goal")
	ErrOutOfBounds   = errors.New("entity cell out of bounds")
	ErrCellConflict  = errors.New("two walls occupy the same cell")
	ErrDanglingLink  = errors.New("socket links to unknown special wall")
	ErrUnknownEffect = errors.New("gate effect names an unknown rule")
)

// Level holds the entity registries for one level session. Registries are
// populated once at load and queried on every resolution; they are replaced
// wholesale on restart or advance.
type Level struct {
	ID   string
	Name string
	Grid Grid

	Walls     []*Wall
	Gates     []*Gate
	Pushables []*Pushable
	Sockets   []*Socket
	Specials  []*SpecialWall
	Player    *Player
	Goal      *Goal
}

// Validate checks the registries against the level invariants. A non-nil
// error is a configuration error: the level must not be started.
func (l *Level) Validate() error {
	if l.Player == nil {
		return ErrNoPlayer
	}
	if l.Goal == nil {
		return ErrNoGoal
	}

	check := func(what string, c Coord) error {
		if !l.Grid.InBounds(c) {
			return fmt.Errorf("%w: %s at %s", ErrOutOfBounds, what, c)
		}
		return nil
	}
	if err := check("player", l.Player.Cell); err != nil {
		return err
	}
	if err := check("goal", l.Goal.Cell); err != nil {
		return err
	}

	seen := make(map[Coord]bool, len(l.Walls))
	for _, w := range l.Walls {
		if err := check("wall", w.Cell); err != nil {
			return err
		}
		if seen[w.Cell] {
			return fmt.Errorf("%w: %s", ErrCellConflict, w.Cell)
		}
		seen[w.Cell] = true
	}
	for _, g := range l.Gates {
		if err := check("gate "+g.ID, g.Cell); err != nil {
			return err
		}
	}
	for _, p := range l.Pushables {
		if err := check("pushable "+p.ID, p.Cell); err != nil {
			return err
		}
	}
	for _, sp := range l.Specials {
		if err := check("special wall "+sp.ID, sp.Cell); err != nil {
			return err
		}
	}
	for _, s := range l.Sockets {
		if err := check("socket "+s.ID, s.Cell); err != nil {
			return err
		}
		if s.SpecialID != "" && l.SpecialByID(s.SpecialID) == nil {
			return fmt.Errorf("%w: socket %s -> %s", ErrDanglingLink, s.ID, s.SpecialID)
		}
	}
	return nil
}

// Clone returns a deep copy of the level with all mutable runtime state
// (gate open flags, socket fills, unlocks) at its initial value. Restart
// and level advance start sessions from clones so the loaded template
// stays pristine.
func (l *Level) Clone() *Level {
	c := &Level{
		ID:   l.ID,
		Name: l.Name,
		Grid: l.Grid,
	}
	for _, w := range l.Walls {
		c.Walls = append(c.Walls, &Wall{Cell: w.Cell, Type: w.Type})
	}
	for _, g := range l.Gates {
		ng := &Gate{Cell: g.Cell, ID: g.ID, Kind: g.Kind, RiddleID: g.RiddleID}
		if g.Effect != nil {
			e := *g.Effect
			ng.Effect = &e
		}
		c.Gates = append(c.Gates, ng)
	}
	for _, p := range l.Pushables {
		c.Pushables = append(c.Pushables, &Pushable{Cell: p.Cell, ID: p.ID, BlockType: p.BlockType})
	}
	for _, s := range l.Sockets {
		c.Sockets = append(c.Sockets, &Socket{Cell: s.Cell, ID: s.ID, SpecialID: s.SpecialID})
	}
	for _, sp := range l.Specials {
		c.Specials = append(c.Specials, &SpecialWall{Cell: sp.Cell, ID: sp.ID})
	}
	if l.Player != nil {
		c.Player = &Player{Cell: l.Player.Cell}
	}
	if l.Goal != nil {
		c.Goal = &Goal{Cell: l.Goal.Cell}
	}
	return c
}

// WallAt returns the wall occupying a cell, or nil.
func (l *Level) WallAt(c Coord) *Wall {
	for _, w := range l.Walls {
		if w.Cell == c {
			return w
		}
	}
	return nil
}

// GateAt returns the gate occupying a cell, or nil.
func (l *Level) GateAt(c Coord) *Gate {
	for _, g := range l.Gates {
		if g.Cell == c {
			return g
		}
	}
	return nil
}

// PushableAt returns the pushable occupying a cell, or nil.
func (l *Level) PushableAt(c Coord) *Pushable {
	for _, p := range l.Pushables {
		if p.Cell == c {
			return p
		}
	}
	return nil
}

// SocketAt returns the socket at a cell, or nil.
func (l *Level) SocketAt(c Coord) *Socket {
	for _, s := range l.Sockets {
		if s.Cell == c {
			return s
		}
	}
	return nil
}

// SpecialAt returns the special wall at a cell, or nil. Unlocked special
// walls are still returned; collision code checks IsUnlocked.
func (l *Level) SpecialAt(c Coord) *SpecialWall {
	for _, w := range l.Specials {
		if w.Cell == c {
			return w
		}
	}
	return nil
}

// SpecialByID returns the special wall with the given id, or nil.
func (l *Level) SpecialByID(id string) *SpecialWall {
	for _, w := range l.Specials {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// FreeCells returns all cells with no entity on them, ordered row by row.
// Used by shuffle rules to pick relocation targets.
func (l *Level) FreeCells() []Coord {
	free := make([]Coord, 0, l.Grid.CellCount())
	for y := 0; y < l.Grid.H; y++ {
		for x := 0; x < l.Grid.W; x++ {
			c := C(x, y)
			if l.isFree(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

func (l *Level) isFree(c Coord) bool {
	if l.WallAt(c) != nil || l.GateAt(c) != nil || l.PushableAt(c) != nil {
		return false
	}
	if l.SocketAt(c) != nil || l.SpecialAt(c) != nil {
		return false
	}
	if l.Player != nil && l.Player.Cell == c {
		return false
	}
	if l.Goal != nil && l.Goal.Cell == c {
		return false
	}
	return true
}
