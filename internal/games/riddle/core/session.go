package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrResolutionPending is returned by Step while a previous outcome has not
// been settled. The session owns this single-slot token so that callers
// animating a move cannot overlap resolutions.
var ErrResolutionPending = errors.New("resolution pending")

// Session owns the mutable state of one level run: the entity registries,
// the rule store and the resolution pipeline. Sessions are single-threaded;
// all operations are synchronous.
type Session struct {
	level      *Level
	rules      *Store
	resolver   *Resolver
	pusher     *Pusher
	linker     *Linker
	dispatcher *Dispatcher
	mutator    *WallMutator

	pending bool
	moves   int
	won     bool
}

// NewSession validates the level and wires the resolution pipeline. The seed
// drives shuffle-rule relocations. A non-nil error is a configuration error;
// the level must not be started.
func NewSession(level *Level, seed int64) (*Session, error) {
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", level.ID, err)
	}

	rules := NewStore()
	for _, g := range level.Gates {
		if g.Effect != nil && !rules.Known(g.Effect.Rule) {
			return nil, fmt.Errorf("level %s: %w: gate %s grants %q",
				level.ID, ErrUnknownEffect, g.ID, g.Effect.Rule)
		}
	}

	s := &Session{
		level:      level,
		rules:      rules,
		resolver:   NewResolver(level, rules),
		pusher:     NewPusher(level, rules),
		linker:     NewLinker(level),
		dispatcher: NewDispatcher(rules),
		mutator:    NewWallMutator(level, rand.New(rand.NewSource(seed))),
	}
	s.mutator.Attach(rules)
	return s, nil
}

// Level returns the session's entity registries.
func (s *Session) Level() *Level {
	return s.level
}

// Rules returns the session's rule store.
func (s *Session) Rules() *Store {
	return s.rules
}

// Step resolves one discrete move of the player in the given direction and
// commits its side effects: the player's cell on move/push/win, the
// pushable's cell and any socket/unlock consequences on push. Blocked moves
// and gate encounters commit nothing.
//
// Every accepted Step leaves the session pending until Settle is called;
// a Step while pending returns ErrResolutionPending.
func (s *Session) Step(d Dir) (Outcome, error) {
	if s.pending {
		return Outcome{}, ErrResolutionPending
	}

	from := s.level.Player.Cell
	to := from.Step(d)
	out := s.resolver.Resolve(from, to, MoverPlayer)

	switch out.Kind {
	case OutcomeMove:
		s.level.Player.Cell = to
		s.moves++
	case OutcomeWin:
		s.level.Player.Cell = to
		s.moves++
		s.won = true
	case OutcomePush:
		s.pusher.CommitPush(out.Pushable, out.PushTarget)
		out.Unlocked = s.linker.OnPushableRelocated(out.Pushable, out.PushTarget)
		s.level.Player.Cell = to
		s.moves++
	}

	s.pending = true
	return out, nil
}

// Settle releases the pending-resolution token. Callers invoke it once the
// presentation of the last outcome (animation, bump, modal) has finished.
func (s *Session) Settle() {
	s.pending = false
}

// Pending reports whether an outcome is awaiting Settle.
func (s *Session) Pending() bool {
	return s.pending
}

// ApplyEffect forwards a riddle-granted effect to the dispatcher.
func (s *Session) ApplyEffect(e Effect) (bool, error) {
	return s.dispatcher.ApplyEffect(e)
}

// Moves returns the number of committed moves.
func (s *Session) Moves() int {
	return s.moves
}

// Won reports whether the goal has been reached.
func (s *Session) Won() bool {
	return s.won
}
