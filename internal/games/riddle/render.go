package riddle

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/riddle-grid/internal/core"
	sim "github.com/vovakirdan/riddle-grid/internal/games/riddle/core"
)

// Board placement on the screen buffer. Cells render two columns wide to
// compensate for terminal glyph aspect.
const (
	boardLeft = 2
	boardTop  = 3
	cellWidth = 2
)

var wallColors = map[sim.WallType]core.Color{
	sim.WallBrick:   core.ColorRed,
	sim.WallWood:    core.ColorYellow,
	sim.WallIron:    core.ColorGray,
	sim.WallSteel:   core.ColorWhite,
	sim.WallEmerald: core.ColorGreen,
	sim.WallGold:    core.ColorBrightYellow,
	sim.WallDiamond: core.ColorBrightCyan,
	sim.WallLapis:   core.ColorBlue,
	sim.WallQuartz:  core.ColorBrightWhite,
}

var gateColors = map[sim.GateKind]core.Color{
	sim.GateBarrier: core.ColorBrightYellow,
	sim.GateRule:    core.ColorBrightCyan,
	sim.GateChoice:  core.ColorBrightMagenta,
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.loadErr != nil {
		dst.DrawTextCentered(dst.Height()/2, "Cannot start: "+g.loadErr.Error())
		return
	}
	if g.session == nil {
		return
	}

	g.drawHUD(dst)
	g.drawBoard(dst)
	g.drawToasts(dst)

	switch {
	case g.state.GameOver && g.state.Won:
		g.drawOverlay(dst, "You found every friend!",
			fmt.Sprintf("%d moves, %d riddles solved", g.State().Score, g.stats.RiddlesSolved),
			"R to play again, Q to quit")
	case g.levelDone:
		g.drawOverlay(dst, "Level complete!",
			fmt.Sprintf("%d moves", g.session.Moves()),
			"Enter for the next level")
	case g.state.Paused:
		g.drawOverlay(dst, "PAUSED", "", "P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	lvl := g.session.Level()
	title := fmt.Sprintf("RIDDLE GRID  %s", lvl.Name)
	dst.DrawTextColored(boardLeft, 0, title, core.ColorBrightWhite)

	status := fmt.Sprintf("Moves: %d   Riddles: %d", g.State().Score, g.stats.RiddlesSolved)
	dst.DrawText(boardLeft, 1, status)

	if active := g.activeRuleLine(); active != "" {
		dst.DrawTextColored(boardLeft, 2, active, core.ColorBrightYellow)
	}
}

// activeRuleLine lists the rules toggled away from their defaults.
func (g *Game) activeRuleLine() string {
	var parts []string
	for _, id := range g.session.Rules().Active() {
		if id == sim.RuleFriendIsGoal {
			continue // Default-on; only worth showing when off
		}
		parts = append(parts, string(id))
	}
	if !g.session.Rules().Get(sim.RuleFriendIsGoal) {
		parts = append(parts, "FRIEND_IS_GOAL off")
	}
	if len(parts) == 0 {
		return ""
	}
	return "Rules: " + strings.Join(parts, ", ")
}

func (g *Game) drawBoard(dst *core.Screen) {
	lvl := g.session.Level()
	rules := g.session.Rules()

	cell := func(c sim.Coord) (int, int) {
		sx, sy := lvl.Grid.CellToScreen(c)
		return boardLeft + sx*cellWidth, boardTop + sy
	}

	for _, s := range lvl.Sockets {
		x, y := cell(s.Cell)
		if s.IsFilled() {
			dst.SetCell(x, y, core.Cell{Rune: '●', Color: core.ColorBrightGreen})
		} else {
			dst.SetCell(x, y, core.Cell{Rune: '○', Color: core.ColorGray})
		}
	}

	for _, sw := range lvl.Specials {
		if sw.IsUnlocked() {
			continue
		}
		x, y := cell(sw.Cell)
		dst.SetCell(x, y, core.Cell{Rune: '▒', Color: core.ColorGray})
		dst.SetCell(x+1, y, core.Cell{Rune: '▒', Color: core.ColorGray})
	}

	for _, gt := range lvl.Gates {
		x, y := cell(gt.Cell)
		if gt.IsOpen() {
			dst.SetCell(x, y, core.Cell{Rune: '·', Color: core.ColorGray})
		} else {
			dst.SetCell(x, y, core.Cell{Rune: '?', Color: gateColors[gt.Kind]})
		}
	}

	for _, w := range lvl.Walls {
		x, y := cell(w.Cell)
		r, color := '█', wallColors[w.Type]
		if rules.Get(sim.RuleWallIsAir) || rules.Get(sim.IsAirRule(w.Type)) {
			// Passable walls stay faintly visible.
			r, color = '░', core.ColorGray
		}
		dst.SetCell(x, y, core.Cell{Rune: r, Color: color})
		dst.SetCell(x+1, y, core.Cell{Rune: r, Color: color})
	}

	for _, p := range lvl.Pushables {
		x, y := cell(p.Cell)
		dst.SetCell(x, y, core.Cell{Rune: '□', Color: core.ColorOrange})
	}

	gx, gy := cell(lvl.Goal.Cell)
	dst.SetCell(gx, gy, core.Cell{Rune: '♥', Color: core.ColorBrightMagenta})

	px, py := cell(lvl.Player.Cell)
	playerColor := core.ColorBrightWhite
	if rules.Get(sim.RulePlayerIsGhost) {
		playerColor = core.ColorCyan
	}
	dst.SetCell(px, py, core.Cell{Rune: '@', Color: playerColor})
}

func (g *Game) drawToasts(dst *core.Screen) {
	y := dst.Height() - 1
	for i := len(g.toasts) - 1; i >= 0 && y > boardTop; i-- {
		dst.DrawTextColored(boardLeft, y, g.toasts[i].text, core.ColorBrightCyan)
		y--
	}
}

func (g *Game) drawOverlay(dst *core.Screen, lines ...string) {
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	box := core.NewRect(0, 0, w+6, len(lines)+4).Centered(dst.Width(), dst.Height())
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	y := box.Y + 2
	for _, l := range lines {
		if l == "" {
			y++
			continue
		}
		x := box.X + (box.W-len(l))/2
		dst.DrawText(x, y, l)
		y++
	}
}
