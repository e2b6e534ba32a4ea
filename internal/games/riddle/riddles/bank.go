// Package riddles provides the riddle bank: the questions gates ask and the
// effects their answers grant. The core never sees this package; it only
// learns that gates open and effects apply.
package riddles

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/riddle-grid/internal/games/riddle/core"
)

// Choice is one selectable option of a choice riddle.
type Choice struct {
	Text   string       `yaml:"text"`
	Effect *core.Effect `yaml:"effect,omitempty"`
}

// Riddle is a single challenge. Barrier and rule riddles take a typed
// answer; choice riddles present options that always succeed.
type Riddle struct {
	ID       string   `yaml:"id"`
	Category string   `yaml:"category"` // Matches the gate kind
	Question string   `yaml:"question"`
	Answers  []string `yaml:"answers,omitempty"`
	Choices  []Choice `yaml:"choices,omitempty"`
}

// Accepts reports whether the given answer is correct. Matching is
// case-insensitive and ignores surrounding whitespace.
func (r Riddle) Accepts(answer string) bool {
	got := strings.ToLower(strings.TrimSpace(answer))
	for _, a := range r.Answers {
		if strings.ToLower(strings.TrimSpace(a)) == got {
			return true
		}
	}
	return false
}

// Bank holds all loaded riddles grouped by category.
type Bank struct {
	riddles []Riddle
	byID    map[string]int
}

type yamlBank struct {
	Riddles []Riddle `yaml:"riddles"`
}

// Load reads a riddle bank from a YAML file.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading riddles %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a YAML riddle bank. Duplicate ids and riddles without a
// question are configuration errors.
func Parse(data []byte) (*Bank, error) {
	var yb yamlBank
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	b := &Bank{byID: make(map[string]int, len(yb.Riddles))}
	for i, r := range yb.Riddles {
		if r.ID == "" || r.Question == "" {
			return nil, fmt.Errorf("riddle %d: id and question are required", i)
		}
		if _, dup := b.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate riddle id %q", r.ID)
		}
		if len(r.Answers) == 0 && len(r.Choices) == 0 {
			return nil, fmt.Errorf("riddle %q has neither answers nor choices", r.ID)
		}
		b.byID[r.ID] = len(b.riddles)
		b.riddles = append(b.riddles, r)
	}
	return b, nil
}

// Len returns the number of riddles in the bank.
func (b *Bank) Len() int {
	return len(b.riddles)
}

// ByID returns the riddle with the given id.
func (b *Bank) ByID(id string) (Riddle, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Riddle{}, false
	}
	return b.riddles[i], true
}

// Category returns all riddles of a category, in bank order.
func (b *Bank) Category(cat string) []Riddle {
	var out []Riddle
	for _, r := range b.riddles {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

// Pick selects a riddle for a gate. A non-empty id is looked up first; when
// it is missing, Pick degrades to a random riddle of the same category and
// reports exact=false so the caller can log the substitution. An empty
// category pool is an error: a gate must always have a riddle to ask.
func (b *Bank) Pick(id, category string, rng *rand.Rand) (r Riddle, exact bool, err error) {
	if id != "" {
		if r, ok := b.ByID(id); ok {
			return r, true, nil
		}
	}
	pool := b.Category(category)
	if len(pool) == 0 {
		return Riddle{}, false, fmt.Errorf("no riddles in category %q", category)
	}
	return pool[rng.Intn(len(pool))], id == "", nil
}
