package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Glyphs used on the play field. Every grid cell is drawn cellWidth runes
// wide when the terminal allows it, so cells look roughly square.
const (
	glyphSnake    = '█'
	glyphFruit    = '●'
	glyphObstacle = '▒'
	hudHeight     = 1
	borderSize    = 2
)

// Layout is where the play field lands on a screen of a given size.
type Layout struct {
	OriginX   int // Screen column of grid cell (0, 0)
	OriginY   int // Screen row of grid cell (0, 0)
	CellWidth int // Runes per grid cell, 1 or 2
	Fits      bool
}

// LayoutFor centres a grid inside a width x height screen, below the HUD.
// Fits is false when even one rune per cell does not fit.
func LayoutFor(g engine.Grid, width, height int) Layout {
	if height < g.Rows+hudHeight+borderSize {
		return Layout{}
	}
	cw := 2
	if width < g.Cols*cw+borderSize {
		cw = 1
	}
	if width < g.Cols*cw+borderSize {
		return Layout{}
	}
	boxW := g.Cols*cw + borderSize
	return Layout{
		OriginX:   (width-boxW)/2 + 1,
		OriginY:   hudHeight + 1,
		CellWidth: cw,
		Fits:      true,
	}
}

// MinSize is the smallest screen that can show grid g.
func MinSize(g engine.Grid) (width, height int) {
	return g.Cols + borderSize, g.Rows + hudHeight + borderSize
}

// Draw renders a snapshot into the screen: HUD, then the screen for the
// current state.
func Draw(s *core.Screen, snap engine.Snapshot) {
	s.Clear()

	layout := LayoutFor(snap.Grid, s.Width(), s.Height())
	if !layout.Fits {
		drawTooSmall(s, snap.Grid)
		return
	}

	drawHUD(s, snap)

	switch snap.State {
	case engine.StateTitle:
		drawTitle(s)
	case engine.StatePlaying:
		drawField(s, snap, layout)
	case engine.StatePaused:
		drawField(s, snap, layout)
		drawPause(s, snap.Grid, layout)
	case engine.StateGameOver:
		drawGameOver(s, snap)
	}
}

func drawHUD(s *core.Screen, snap engine.Snapshot) {
	s.DrawHLine(0, 0, s.Width(), ' ', core.ColorDefault)
	s.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)

	hint := "SPACE to pause"
	if snap.State == engine.StatePaused {
		hint = "SPACE to resume"
	}
	s.DrawTextRight(0, 1, hint, core.ColorWhite)
}

func drawTitle(s *core.Screen) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-3, "S N A K E", core.ColorBrightGreen)
	s.DrawTextCentered(mid-1, "Press any key or click to start", core.ColorYellow)
	s.DrawTextCentered(mid+1, "Keys: W (up), A (left), S (down), D (right)", core.ColorWhite)
	s.DrawTextCentered(mid+2, "Arrow keys work too. SPACE pauses.", core.ColorWhite)
}

func drawField(s *core.Screen, snap engine.Snapshot, l Layout) {
	g := snap.Grid
	s.DrawBox(l.OriginX-1, l.OriginY-1, g.Cols*l.CellWidth+borderSize, g.Rows+borderSize, core.ColorGray)

	for _, p := range snap.Obstacles {
		drawCell(s, l, p, glyphObstacle, core.ColorGreen)
	}
	if snap.HasFruit {
		drawCell(s, l, snap.Fruit, glyphFruit, core.ColorRed)
	}
	// Body first so the head wins if anything overlaps.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		color := core.ColorBlue
		if i == 0 {
			color = core.ColorBrightBlue
		}
		drawCell(s, l, snap.Snake[i], glyphSnake, color)
	}
}

func drawCell(s *core.Screen, l Layout, p engine.Point, r rune, c core.Color) {
	x := l.OriginX + p.X*l.CellWidth
	y := l.OriginY + p.Y
	for i := range l.CellWidth {
		// Round glyphs look better as a single rune followed by a space.
		if r == glyphFruit && i > 0 {
			s.SetCell(x+i, y, ' ', c)
			continue
		}
		s.SetCell(x+i, y, r, c)
	}
}

func drawPause(s *core.Screen, g engine.Grid, l Layout) {
	y := l.OriginY + g.Rows/2
	s.DrawTextCentered(y, " PAUSE ", core.ColorWhite)
}

func drawGameOver(s *core.Screen, snap engine.Snapshot) {
	y := max(s.Height()/2-5, hudHeight+1)
	s.DrawTextCentered(y, "GAME OVER", core.ColorWhite)
	y++
	if snap.LastCause != engine.CauseNone {
		s.DrawTextCentered(y, snap.LastCause.String(), core.ColorGray)
	}
	y += 2

	s.DrawTextCentered(y, fmt.Sprintf("TOP %d SCORES:", snap.BestLimit), core.ColorYellow)
	y++
	for i, score := range snap.BestScores {
		s.DrawTextCentered(y+i, fmt.Sprintf("%d. %d", i+1, score), core.ColorYellow)
	}
	y += len(snap.BestScores) + 1

	s.DrawTextCentered(y, "Press any key or click to restart", core.ColorWhite)
}

func drawTooSmall(s *core.Screen, g engine.Grid) {
	w, h := MinSize(g)
	mid := s.Height() / 2
	s.DrawTextCentered(mid-1, "Terminal too small", core.ColorYellow)
	s.DrawTextCentered(mid, fmt.Sprintf("need %dx%d, have %dx%d", w, h, s.Width(), s.Height()), core.ColorWhite)
}
