// Package engine implements the Snake simulation: a four-state machine
// (title, playing, paused, game over) driving a tick-based update of a
// fixed-size toroidal grid. It has no terminal or rendering dependencies;
// the platform layer feeds it intents and elapsed time and draws snapshots.
package engine

import "fmt"

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell offset for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid is the fixed play field of Cols x Rows cells.
type Grid struct {
	Cols int
	Rows int
}

// GridFromBoard derives the grid from a logical board size in pixels: the
// top bar is reserved for the HUD and the rest is divided into square tiles.
func GridFromBoard(width, height, tile, topBar int) Grid {
	if tile <= 0 {
		return Grid{}
	}
	return Grid{
		Cols: width / tile,
		Rows: (height - topBar) / tile,
	}
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// Center returns the middle cell (rounded down).
func (g Grid) Center() Point {
	return Point{X: g.Cols / 2, Y: g.Rows / 2}
}

// Wrap maps a point that stepped off one edge onto the opposite edge.
// Only single-cell overshoots occur during movement, but any offset is
// folded back into range.
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrap(p.X, g.Cols), Y: wrap(p.Y, g.Rows)}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func (g Grid) validate() error {
	if g.Cols <= 0 || g.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, g.Cols, g.Rows)
	}
	if g.Cells() < 2 {
		return fmt.Errorf("%w: %dx%d leaves no room for fruit", ErrInvalidGrid, g.Cols, g.Rows)
	}
	return nil
}
