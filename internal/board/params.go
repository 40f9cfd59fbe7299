package board

import (
	"fmt"
	"strings"
)

type Params struct {
	Width, Height, MineCount int
}

var (
	Beginner     = Params{Width: 9, Height: 9, MineCount: 10}
	Intermediate = Params{Width: 16, Height: 16, MineCount: 40}
	Expert       = Params{Width: 25, Height: 25, MineCount: 99}
)

var (
	ErrBadDimensions = fmt.Errorf("board dimensions must be positive")
	ErrBadMineCount  = fmt.Errorf("mine count must be non-negative and less than the number of cells")
	ErrBadDifficulty = fmt.Errorf("difficulty must be one of 'beginner', 'intermediate', 'expert'")
)

// Validate guards construction: a mine count equal to or above the cell
// count would make placement impossible to satisfy.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrBadDimensions, p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount >= p.Width*p.Height {
		return fmt.Errorf("%w (got %d mines on %dx%d)",
			ErrBadMineCount, p.MineCount, p.Width, p.Height)
	}
	return nil
}

func (p Params) InBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*Params, error) {
	p := &Params{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

func ParseDifficulty(name string) (Params, error) {
	switch strings.ToLower(name) {
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "expert":
		return Expert, nil
	default:
		return Params{}, fmt.Errorf("%w (got %q)", ErrBadDifficulty, name)
	}
}
