package board

import (
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

// Cell is one grid position. Neighbors is 0 for mine cells.
type Cell struct {
	Mine      bool
	Revealed  bool
	Flagged   bool
	Neighbors uint8
}

// Board owns the grid and all game rules. It is mutated only by Reveal,
// ToggleFlag and RevealAll, and assumes a single owner goroutine.
type Board struct {
	params   Params
	cells    []Cell // flat, indexed y*Width+x
	hidden   int    // safe cells not yet revealed
	gameOver bool
	win      bool
}

// New places mines and computes neighbor counts before returning. The
// caller provides the random source, so a fixed seed yields a fixed layout.
func New(params Params, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		params: params,
		cells:  make([]Cell, params.Width*params.Height),
		hidden: params.Width*params.Height - params.MineCount,
	}
	b.placeMines(r)
	b.countNeighbors()
	return b, nil
}

func (b *Board) placeMines(r *rand.Rand) {
	/*
	 * Write down every cell index, then draw MineCount of them without
	 * replacement by swapping each pick out of the candidate range.
	 */
	candidates := make([]int, len(b.cells))
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range b.params.MineCount {
		i := r.IntN(k)
		b.cells[candidates[i]].Mine = true
		k--
		candidates[i] = candidates[k]
	}
}

func (b *Board) countNeighbors() {
	for i := range b.cells {
		if b.cells[i].Mine {
			continue
		}
		x, y := i%b.params.Width, i/b.params.Width
		var n uint8
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if b.mineAt(x+dx, y+dy) {
					n++
				}
			}
		}
		b.cells[i].Neighbors = n
	}
}

func (b *Board) mineAt(x, y int) bool {
	return b.params.InBounds(x, y) && b.cells[y*b.params.Width+x].Mine
}

// Reveal opens the cell at x, y. Out-of-bounds coordinates, already
// revealed cells, flagged cells and any call after game over are silently
// ignored.
func (b *Board) Reveal(x, y int) {
	if b.gameOver || !b.params.InBounds(x, y) {
		return
	}
	i := y*b.params.Width + x
	if b.cells[i].Revealed || b.cells[i].Flagged {
		return
	}
	b.cells[i].Revealed = true
	if b.cells[i].Mine {
		b.gameOver = true
		b.win = false
		return
	}
	b.hidden--
	if b.cells[i].Neighbors == 0 {
		b.floodReveal(i)
	}
	if b.hidden == 0 {
		b.gameOver = true
		b.win = true
	}
}

/*
 * Flood reveal expands from a zero-neighbor cell over the 8-neighborhood
 * with an explicit worklist, so the call stack does not grow with the
 * size of the empty region. Flagged cells are barriers. A zero region
 * cannot border a mine: every cell next to a mine counts it.
 */
func (b *Board) floodReveal(start int) {
	todo := []int{start}
	for len(todo) > 0 {
		i := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		x, y := i%b.params.Width, i/b.params.Width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if !b.params.InBounds(nx, ny) {
					continue
				}
				j := ny*b.params.Width + nx
				c := &b.cells[j]
				if c.Revealed || c.Flagged {
					continue
				}
				if c.Mine {
					Log.Error("flood reveal reached a mine",
						"x", nx, "y", ny, "seed", b.params.Seed())
					panic(AssertionError{"mine reached by flood reveal"})
				}
				c.Revealed = true
				b.hidden--
				if c.Neighbors == 0 {
					todo = append(todo, j)
				}
			}
		}
	}
}

// ToggleFlag inverts the flag on an in-bounds, unrevealed cell and is a
// no-op otherwise.
func (b *Board) ToggleFlag(x, y int) {
	if b.gameOver || !b.params.InBounds(x, y) {
		return
	}
	i := y*b.params.Width + x
	if b.cells[i].Revealed {
		return
	}
	b.cells[i].Flagged = !b.cells[i].Flagged
}

// RevealAll marks every cell revealed regardless of flags and mines. It is
// a display operation for the post-loss board and never re-evaluates the
// outcome.
func (b *Board) RevealAll() {
	for i := range b.cells {
		b.cells[i].Revealed = true
	}
}

// CheckWin reports whether every non-mine cell is revealed. Reveal keeps a
// running count instead; this full scan is the brute-force equivalent.
func (b *Board) CheckWin() bool {
	for i := range b.cells {
		if !b.cells[i].Mine && !b.cells[i].Revealed {
			return false
		}
	}
	return true
}

func (b *Board) Width() int     { return b.params.Width }
func (b *Board) Height() int    { return b.params.Height }
func (b *Board) MineCount() int { return b.params.MineCount }
func (b *Board) GameOver() bool { return b.gameOver }
func (b *Board) Win() bool      { return b.win }
func (b *Board) Params() Params { return b.params }
