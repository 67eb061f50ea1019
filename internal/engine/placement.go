package engine

// freeCells counts cells not covered by the snake, obstacles or the fruit.
// The snake never holds duplicates and the other occupants are disjoint
// from it, so plain subtraction is exact.
func (e *Engine) freeCells() int {
	n := e.grid.Cells() - len(e.snake) - len(e.obstacles)
	if e.hasFruit {
		n--
	}
	return n
}

// isFree reports whether p is empty.
func (e *Engine) isFree(p Point) bool {
	if e.hasFruit && p == e.fruit {
		return false
	}
	return !e.blocked[p] && !e.isSnakeAt(p)
}

// sample draws uniformly random cells until an empty one turns up. It
// returns false without sampling when the board is full.
func (e *Engine) sample() (Point, bool) {
	if e.freeCells() <= 0 {
		return Point{}, false
	}
	for {
		p := Point{
			X: e.rng.Intn(e.grid.Cols),
			Y: e.rng.Intn(e.grid.Rows),
		}
		if e.isFree(p) {
			return p, true
		}
	}
}

// placeFruit picks a cell for the fruit, away from the snake and obstacles.
// The current fruit, if any, is treated as occupied; callers relocating it
// clear hasFruit first.
func (e *Engine) placeFruit() (Point, bool) {
	p, ok := e.sample()
	if !ok {
		e.logger.Warn("no free cell for fruit", "snake", len(e.snake), "obstacles", len(e.obstacles))
	}
	return p, ok
}

// placeObstacles appends count obstacles, each on a cell free of the snake,
// the fruit and every earlier obstacle (including ones from this batch).
// It returns false if the board filled up before all were placed.
func (e *Engine) placeObstacles(count int) bool {
	for range count {
		p, ok := e.sample()
		if !ok {
			e.logger.Warn("no free cell for obstacle", "snake", len(e.snake), "obstacles", len(e.obstacles))
			return false
		}
		e.obstacles = append(e.obstacles, p)
		e.blocked[p] = true
	}
	return true
}
