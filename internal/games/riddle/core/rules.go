package core

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrUnknownRule is returned by Store.Set for identifiers outside the
// vocabulary. This strictness applies to writes only: unknown ids read as
// false so that typos cannot silently become new rules.
var ErrUnknownRule = errors.New("unknown rule")

// Well-known change sources.
const (
	SourceLevel  = "level"
	SourceRiddle = "riddle"
	SourceReset  = "reset"
	SourceUndo   = "undo"
)

// Change records one rule mutation.
type Change struct {
	Rule     RuleID
	Previous bool
	New      bool
	At       time.Time
	Source   string
	Note     string // Effect description, when granted by a riddle
}

// Observer receives rule changes synchronously, in mutation order.
type Observer func(Change)

// Store is the per-session table of named boolean rules. A rule not present
// reads as false; only identifiers from the vocabulary may be written.
type Store struct {
	known     map[RuleID]bool // id -> default value
	values    map[RuleID]bool
	history   []Change
	observers []Observer
	perRule   map[RuleID][]Observer
	now       func() time.Time
}

// NewStore creates a store primed with the full rule vocabulary at default
// values (all false except FRIEND_IS_GOAL).
func NewStore() *Store {
	s := &Store{
		known:   make(map[RuleID]bool),
		values:  make(map[RuleID]bool),
		perRule: make(map[RuleID][]Observer),
		now:     time.Now,
	}
	for _, id := range Vocabulary() {
		s.known[id] = false
	}
	s.known[RuleFriendIsGoal] = true
	s.values[RuleFriendIsGoal] = true
	return s
}

// Known reports whether the identifier is part of the vocabulary.
func (s *Store) Known(id RuleID) bool {
	_, ok := s.known[id.Normalize()]
	return ok
}

// Get returns the current value of a rule. Unknown identifiers read false.
func (s *Store) Get(id RuleID) bool {
	return s.values[id.Normalize()]
}

// Set assigns a rule value. It no-ops and returns false when the value is
// unchanged; otherwise it records a history entry and notifies observers.
// Unknown identifiers are rejected with ErrUnknownRule and no mutation.
func (s *Store) Set(id RuleID, value bool, source string) (bool, error) {
	return s.set(id, value, source, "")
}

// SetWithNote is Set with an attached description, shown by the
// notification layer when a riddle grants the change.
func (s *Store) SetWithNote(id RuleID, value bool, source, note string) (bool, error) {
	return s.set(id, value, source, note)
}

func (s *Store) set(id RuleID, value bool, source, note string) (bool, error) {
	id = id.Normalize()
	if _, ok := s.known[id]; !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownRule, id)
	}
	prev := s.values[id]
	if prev == value {
		return false, nil
	}
	s.values[id] = value
	ch := Change{
		Rule:     id,
		Previous: prev,
		New:      value,
		At:       s.now(),
		Source:   source,
		Note:     note,
	}
	s.history = append(s.history, ch)
	s.notify(ch)
	return true, nil
}

// Toggle flips a rule and returns its new value.
func (s *Store) Toggle(id RuleID, source string) (bool, error) {
	id = id.Normalize()
	next := !s.values[id]
	if _, err := s.set(id, next, source, ""); err != nil {
		return false, err
	}
	return next, nil
}

// Reset restores every rule to its default and clears history. Observers are
// notified once per rule whose value actually changes.
func (s *Store) Reset() {
	var changed []Change
	for id, def := range s.known {
		if s.values[id] != def {
			changed = append(changed, Change{
				Rule:     id,
				Previous: s.values[id],
				New:      def,
				At:       s.now(),
				Source:   SourceReset,
			})
		}
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i].Rule < changed[j].Rule })

	s.values = make(map[RuleID]bool)
	for id, def := range s.known {
		if def {
			s.values[id] = true
		}
	}
	s.history = nil
	for _, ch := range changed {
		s.notify(ch)
	}
}

// UndoLast reverts the most recent change and pops it from history.
// Returns false when history is empty.
func (s *Store) UndoLast() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.values[last.Rule] = last.Previous
	s.notify(Change{
		Rule:     last.Rule,
		Previous: last.New,
		New:      last.Previous,
		At:       s.now(),
		Source:   SourceUndo,
	})
	return true
}

// History returns the recorded changes, oldest first.
func (s *Store) History() []Change {
	out := make([]Change, len(s.history))
	copy(out, s.history)
	return out
}

// Active returns the ids of all rules currently true, sorted.
func (s *Store) Active() []RuleID {
	var ids []RuleID
	for id, v := range s.values {
		if v {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Subscribe registers an observer for every rule change.
func (s *Store) Subscribe(fn Observer) {
	s.observers = append(s.observers, fn)
}

// SubscribeRule registers an observer for changes to one rule.
func (s *Store) SubscribeRule(id RuleID, fn Observer) {
	id = id.Normalize()
	s.perRule[id] = append(s.perRule[id], fn)
}

func (s *Store) notify(ch Change) {
	for _, fn := range s.observers {
		fn(ch)
	}
	for _, fn := range s.perRule[ch.Rule] {
		fn(ch)
	}
}
