package riddle

import (
	sim "github.com/vovakirdan/riddle-grid/internal/games/riddle/core"
	"github.com/vovakirdan/riddle-grid/internal/games/riddle/riddles"
)

// Prompt is a riddle waiting for the player's answer. While a prompt is
// open the session stays pending and movement input is ignored; the
// platform renders the prompt as a modal and feeds the answer back through
// AnswerPrompt, ChoosePromptOption or DismissPrompt.
type Prompt struct {
	GateID   string
	Kind     sim.GateKind
	Question string
	Choices  []string // Option texts; only set for choice gates
	Attempts int      // Wrong answers so far

	gate   *sim.Gate
	riddle riddles.Riddle
}

// PendingPrompt returns the open prompt, or nil.
func (g *Game) PendingPrompt() *Prompt {
	return g.prompt
}

// AnswerPrompt submits a typed answer for a barrier or rule gate. A correct
// answer opens the gate, applies the gate's rule effect if it has one, and
// closes the prompt. A wrong answer keeps the prompt open and bumps its
// attempt count.
func (g *Game) AnswerPrompt(answer string) bool {
	p := g.prompt
	if p == nil || p.Kind == sim.GateChoice {
		return false
	}

	if !p.riddle.Accepts(answer) {
		p.Attempts++
		return false
	}

	p.gate.Open()
	if p.gate.Kind == sim.GateRule && p.gate.Effect != nil {
		g.applyEffect(*p.gate.Effect)
	}
	g.stats.RiddlesSolved++
	g.closePrompt()
	return true
}

// ChoosePromptOption selects an option of a choice gate. Any choice opens
// the gate; the chosen option's effect is applied.
func (g *Game) ChoosePromptOption(i int) bool {
	p := g.prompt
	if p == nil || p.Kind != sim.GateChoice {
		return false
	}
	if i < 0 || i >= len(p.riddle.Choices) {
		return false
	}

	p.gate.Open()
	if effect := p.riddle.Choices[i].Effect; effect != nil {
		g.applyEffect(*effect)
	}
	g.stats.RiddlesSolved++
	g.closePrompt()
	return true
}

// DismissPrompt closes the prompt without answering. The gate stays closed;
// the player may bump it again later.
func (g *Game) DismissPrompt() {
	if g.prompt == nil {
		return
	}
	g.closePrompt()
}

func (g *Game) closePrompt() {
	g.prompt = nil
	if g.session != nil {
		g.session.Settle()
	}
}

// openPrompt builds a prompt for a closed gate the player just bumped. When
// the bank has no riddle to ask, the gate degrades to opening for free.
func (g *Game) openPrompt(gate *sim.Gate) {
	r, _, err := g.bank.Pick(gate.RiddleID, string(gate.Kind), g.rng)
	if err != nil {
		gate.Open()
		g.pushToast("The gate creaks open on its own")
		g.session.Settle()
		return
	}

	p := &Prompt{
		GateID:   gate.ID,
		Kind:     gate.Kind,
		Question: r.Question,
		gate:     gate,
		riddle:   r,
	}
	for _, c := range r.Choices {
		p.Choices = append(p.Choices, c.Text)
	}
	g.prompt = p
}

func (g *Game) applyEffect(e sim.Effect) {
	if _, err := g.session.ApplyEffect(e); err != nil {
		g.pushToast("Nothing happens")
	}
}
