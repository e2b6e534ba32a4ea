// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/riddle-grid/internal/games/riddle/core"
)

// Wall codes used by the cell matrix. 0 is an empty cell.
var wallCodes = map[int]core.WallType{
	1: core.WallBrick,
	2: core.WallWood,
	3: core.WallIron,
	4: core.WallSteel,
	5: core.WallEmerald,
	6: core.WallGold,
	7: core.WallDiamond,
	8: core.WallLapis,
	9: core.WallQuartz,
}

// YAMLLevel represents the YAML structure for a level file: a matrix of
// small integers for walls plus positional entity lists.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	CellSize int               `yaml:"cell_size,omitempty"`
	Cells    [][]int           `yaml:"cells"`
	Player   YAMLPos           `yaml:"player"`
	Goal     YAMLPos           `yaml:"goal"`
	Gates    []YAMLGate        `yaml:"gates,omitempty"`
	Blocks   []YAMLBlock       `yaml:"blocks,omitempty"`
	Sockets  []YAMLSocket      `yaml:"sockets,omitempty"`
	Specials []YAMLPosID       `yaml:"specials,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions in cells.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPos is a bare cell position.
type YAMLPos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// YAMLPosID is a cell position with an identifier.
type YAMLPosID struct {
	X  int    `yaml:"x"`
	Y  int    `yaml:"y"`
	ID string `yaml:"id"`
}

// YAMLGate represents a gate entry.
type YAMLGate struct {
	X      int          `yaml:"x"`
	Y      int          `yaml:"y"`
	ID     string       `yaml:"id"`
	Kind   string       `yaml:"kind"`
	Riddle string       `yaml:"riddle,omitempty"`
	Effect *core.Effect `yaml:"effect,omitempty"`
}

// YAMLBlock represents a pushable block entry.
type YAMLBlock struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	ID   string `yaml:"id"`
	Type string `yaml:"type,omitempty"`
}

// YAMLSocket represents a socket entry, optionally linked to a special wall.
type YAMLSocket struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	ID      string `yaml:"id"`
	Special string `yaml:"special,omitempty"`
}

// ParseYAML parses a YAML level file into core registries. The returned
// level is not yet validated; callers run core validation before starting it.
func ParseYAML(data []byte) (*core.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.Size.W <= 0 || yl.Size.H <= 0 {
		return nil, fmt.Errorf("level %s: invalid size %dx%d", yl.ID, yl.Size.W, yl.Size.H)
	}

	cellSize := yl.CellSize
	if cellSize <= 0 {
		cellSize = 1
	}

	lvl := &core.Level{
		ID:   yl.ID,
		Name: yl.Name,
		Grid: core.NewGrid(yl.Size.W, yl.Size.H, cellSize, core.C(0, 0)),
	}

	for y, row := range yl.Cells {
		for x, code := range row {
			if code == 0 {
				continue
			}
			typ, ok := wallCodes[code]
			if !ok {
				return nil, fmt.Errorf("level %s: unknown wall code %d at (%d,%d)", yl.ID, code, x, y)
			}
			lvl.Walls = append(lvl.Walls, &core.Wall{Cell: core.C(x, y), Type: typ})
		}
	}

	lvl.Player = &core.Player{Cell: core.C(yl.Player.X, yl.Player.Y)}
	lvl.Goal = &core.Goal{Cell: core.C(yl.Goal.X, yl.Goal.Y)}

	for _, g := range yl.Gates {
		kind := core.GateKind(g.Kind)
		switch kind {
		case core.GateBarrier, core.GateRule, core.GateChoice:
		default:
			return nil, fmt.Errorf("level %s: gate %s has unknown kind %q", yl.ID, g.ID, g.Kind)
		}
		lvl.Gates = append(lvl.Gates, &core.Gate{
			Cell:     core.C(g.X, g.Y),
			ID:       g.ID,
			Kind:     kind,
			RiddleID: g.Riddle,
			Effect:   g.Effect,
		})
	}
	for _, b := range yl.Blocks {
		lvl.Pushables = append(lvl.Pushables, &core.Pushable{
			Cell:      core.C(b.X, b.Y),
			ID:        b.ID,
			BlockType: b.Type,
		})
	}
	for _, sp := range yl.Specials {
		lvl.Specials = append(lvl.Specials, &core.SpecialWall{
			Cell: core.C(sp.X, sp.Y),
			ID:   sp.ID,
		})
	}
	for _, s := range yl.Sockets {
		lvl.Sockets = append(lvl.Sockets, &core.Socket{
			Cell:      core.C(s.X, s.Y),
			ID:        s.ID,
			SpecialID: s.Special,
		})
	}

	return lvl, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
