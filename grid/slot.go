package grid

import "fmt"

type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// A Slot is a maximal run of at least two fillable cells in one direction.
// It is a comparable value type; two slots are the same variable iff all
// four fields match.
type Slot struct {
	Row    int
	Col    int
	Dir    Direction
	Length int
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d %s %d)", s.Row, s.Col, s.Dir, s.Length)
}

// Cell returns the coordinates of the k-th cell of the slot.
func (s Slot) Cell(k int) (row, col int) {
	if s.Dir == Across {
		return s.Row, s.Col + k
	}
	return s.Row + k, s.Col
}
