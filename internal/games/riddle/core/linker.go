package core

// Linker reacts to pushable relocations: it fills sockets and unlocks the
// special walls they control. Both transitions are irreversible.
type Linker struct {
	level *Level
}

// NewLinker creates a linker over a level.
func NewLinker(level *Level) *Linker {
	return &Linker{level: level}
}

// OnPushableRelocated is called after a committed push. If the pushable
// landed on an unfilled socket, the socket fills; a socket with an explicit
// link unlocks its special wall immediately, regardless of other sockets.
// Sockets without a link fall back to unlocking every special wall once all
// sockets in the level are filled (for levels authored without per-socket
// links). Returns the special walls unlocked by this relocation.
func (k *Linker) OnPushableRelocated(p *Pushable, at Coord) []*SpecialWall {
	s := k.level.SocketAt(at)
	if s == nil || s.filled {
		return nil
	}
	s.filled = true

	if s.SpecialID != "" {
		w := k.level.SpecialByID(s.SpecialID)
		if w == nil || w.unlocked {
			return nil
		}
		w.unlocked = true
		return []*SpecialWall{w}
	}

	for _, other := range k.level.Sockets {
		if !other.filled {
			return nil
		}
	}
	var unlocked []*SpecialWall
	for _, w := range k.level.Specials {
		if !w.unlocked {
			w.unlocked = true
			unlocked = append(unlocked, w)
		}
	}
	return unlocked
}
