package config

// PaceManager turns the timing config plus the player speed rules into
// the effective held-key repeat interval.
type PaceManager struct {
	timing TimingConfig
}

// NewPaceManager creates a pace manager from the timing config.
func NewPaceManager(timing TimingConfig) *PaceManager {
	if timing.MoveRepeatTicks <= 0 {
		timing.MoveRepeatTicks = 4
	}
	if timing.FastFactor <= 0 {
		timing.FastFactor = 2
	}
	if timing.SlowFactor <= 0 {
		timing.SlowFactor = 2
	}
	return &PaceManager{timing: timing}
}

// RepeatTicks returns how many ticks must pass between accepted moves
// while a direction key is held. Fast divides the base interval, slow
// multiplies it; with both rules active they cancel against each other.
func (p *PaceManager) RepeatTicks(fast, slow bool) int {
	ticks := p.timing.MoveRepeatTicks
	if fast {
		ticks /= p.timing.FastFactor
	}
	if slow {
		ticks *= p.timing.SlowFactor
	}
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// TickRate returns the configured simulation ticks per second.
func (p *PaceManager) TickRate() int {
	if p.timing.TickRate <= 0 {
		return 30
	}
	return p.timing.TickRate
}
