package core

import "math/rand"

// Effect is the payload granted by solving a riddle: a rule assignment plus
// a description for the notification layer. The dispatcher is shape-agnostic;
// it never parses the rule id.
type Effect struct {
	Rule        RuleID `yaml:"rule"`
	Value       bool   `yaml:"value"`
	Description string `yaml:"desc"`
}

// Dispatcher translates abstract effects into rule store mutations.
type Dispatcher struct {
	store *Store
}

// NewDispatcher creates a dispatcher over a rule store.
func NewDispatcher(store *Store) *Dispatcher {
	return &Dispatcher{store: store}
}

// ApplyEffect sets the effect's rule with source "riddle". Unknown rule ids
// are rejected; a false return with nil error means the value was already
// current.
func (d *Dispatcher) ApplyEffect(e Effect) (bool, error) {
	return d.store.SetWithNote(e.Rule, e.Value, SourceRiddle, e.Description)
}

// WallMutator applies the edge-triggered rule families to the wall registry.
// Transform and shuffle rules are not evaluated by the resolver; they fire
// once, at the moment the rule becomes active, via the store's change
// notification channel.
type WallMutator struct {
	level *Level
	rng   *rand.Rand
}

// NewWallMutator creates a mutator over a level. The RNG drives shuffle
// relocation targets; pass a seeded source for deterministic replays.
func NewWallMutator(level *Level, rng *rand.Rand) *WallMutator {
	return &WallMutator{level: level, rng: rng}
}

// Attach subscribes the mutator to the store's change notifications.
func (m *WallMutator) Attach(store *Store) {
	store.Subscribe(m.onChange)
}

func (m *WallMutator) onChange(ch Change) {
	// Only activation triggers; deactivation and undo are inert.
	if !ch.New {
		return
	}
	if from, to, ok := ParseTransform(ch.Rule); ok {
		m.transform(from, to)
		return
	}
	if t, ok := ParseShuffle(ch.Rule); ok {
		m.shuffle(t)
	}
}

// transform rewrites every wall of type from to type to.
func (m *WallMutator) transform(from, to WallType) {
	for _, w := range m.level.Walls {
		if w.Type == from {
			w.Type = to
		}
	}
}

// shuffle relocates every wall of the given type to a random free cell.
// Walls stay put when the level runs out of free cells.
func (m *WallMutator) shuffle(t WallType) {
	free := m.level.FreeCells()
	for _, w := range m.level.Walls {
		if w.Type != t {
			continue
		}
		if len(free) == 0 {
			return
		}
		i := m.rng.Intn(len(free))
		w.Cell, free[i] = free[i], w.Cell
	}
}
