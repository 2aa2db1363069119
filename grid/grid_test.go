package grid

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func parse(t *testing.T, structure string) *Grid {
	t.Helper()
	g, err := Parse(strings.NewReader(structure))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return g
}

func TestParseSingleRow(t *testing.T) {
	is := is.New(t)
	g := parse(t, "___")
	is.Equal(g.Height, 1)
	is.Equal(g.Width, 3)
	is.Equal(g.Slots(), []Slot{{Row: 0, Col: 0, Dir: Across, Length: 3}})
}

func TestParseErrors(t *testing.T) {
	is := is.New(t)
	_, err := Parse(strings.NewReader(""))
	is.True(err == ErrEmptyStructure)

	// Blocked-only grid, and a grid whose only runs are single cells.
	_, err = Parse(strings.NewReader("xxx\nxxx"))
	is.True(err == ErrNoSlots)
	_, err = Parse(strings.NewReader("_x_\nxxx"))
	is.True(err == ErrNoSlots)
}

func TestShortLinesArePaddedBlocked(t *testing.T) {
	is := is.New(t)
	g := parse(t, "___\n_")
	is.Equal(g.Width, 3)
	is.True(!g.Fillable(1, 1))
	is.True(!g.Fillable(1, 2))
}

func TestCrossingSlots(t *testing.T) {
	is := is.New(t)
	g := parse(t, "___\n_xx\n_xx")

	across := Slot{Row: 0, Col: 0, Dir: Across, Length: 3}
	down := Slot{Row: 0, Col: 0, Dir: Down, Length: 3}
	is.Equal(len(g.Slots()), 2)

	ov, ok := g.Overlap(across, down)
	is.True(ok)
	is.Equal(ov, Overlap{I: 0, J: 0})

	// Symmetric with indices swapped.
	ov, ok = g.Overlap(down, across)
	is.True(ok)
	is.Equal(ov, Overlap{I: 0, J: 0})

	is.Equal(g.Neighbors(across), []Slot{down})
	is.Equal(g.Degree(down), 1)
}

func TestOverlapIndices(t *testing.T) {
	is := is.New(t)
	// Down slot in column 1, across slot in row 1; they cross at (1,1),
	// which is cell 1 of both.
	g := parse(t, "x_x\n___\nx_x")

	across := Slot{Row: 1, Col: 0, Dir: Across, Length: 3}
	down := Slot{Row: 0, Col: 1, Dir: Down, Length: 3}
	ov, ok := g.Overlap(across, down)
	is.True(ok)
	is.Equal(ov, Overlap{I: 1, J: 1})
}

func TestNonIntersectingSlots(t *testing.T) {
	is := is.New(t)
	g := parse(t, "___\nxxx\n___")
	is.Equal(len(g.Slots()), 2)
	a := g.Slots()[0]
	b := g.Slots()[1]
	_, ok := g.Overlap(a, b)
	is.True(!ok)
	is.Equal(g.Degree(a), 0)
}

func TestSlotCells(t *testing.T) {
	is := is.New(t)
	s := Slot{Row: 2, Col: 3, Dir: Down, Length: 4}
	r, c := s.Cell(0)
	is.Equal([2]int{r, c}, [2]int{2, 3})
	r, c = s.Cell(3)
	is.Equal([2]int{r, c}, [2]int{5, 3})

	s = Slot{Row: 2, Col: 3, Dir: Across, Length: 4}
	r, c = s.Cell(3)
	is.Equal([2]int{r, c}, [2]int{2, 6})
}
