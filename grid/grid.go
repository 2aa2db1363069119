package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/crossfill/crossfill/cache"
	"github.com/crossfill/crossfill/config"
)

// FillableRune marks a fillable cell in a structure file. Any other rune is
// a blocked cell.
const FillableRune = '_'

var (
	ErrEmptyStructure = errors.New("structure contains no rows")
	ErrNoSlots        = errors.New("structure contains no slots")
)

// An Overlap is a cell shared by two intersecting slots: character I of the
// first slot's word must equal character J of the second slot's word.
type Overlap struct {
	I int
	J int
}

// A Grid is the immutable structure of a puzzle: which cells are fillable,
// the slots to be filled, and the overlap relation between every pair of
// intersecting slots. It is computed once and read-only afterwards.
type Grid struct {
	Height int
	Width  int

	fillable  [][]bool
	slots     []Slot
	overlaps  map[[2]Slot]Overlap
	neighbors map[Slot][]Slot
}

// Parse reads a structure description: one line per row, FillableRune for a
// fillable cell, anything else blocked. The grid is as wide as the longest
// line; shorter lines are padded with blocked cells.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyStructure
	}

	g := &Grid{Height: len(rows)}
	for _, row := range rows {
		if len(row) > g.Width {
			g.Width = len(row)
		}
	}
	g.fillable = make([][]bool, g.Height)
	for i, row := range rows {
		g.fillable[i] = make([]bool, g.Width)
		for j, r := range row {
			g.fillable[i][j] = r == FillableRune
		}
	}

	g.findSlots()
	if len(g.slots) == 0 {
		return nil, ErrNoSlots
	}
	g.computeOverlaps()
	log.Debug().Int("height", g.Height).Int("width", g.Width).
		Int("slots", len(g.slots)).Msg("parsed structure")
	return g, nil
}

// Load reads and parses the structure file at path, through the global
// object cache.
func Load(cfg *config.Config, path string) (*Grid, error) {
	obj, err := cache.Load(cfg, "structure:"+path, func(cfg *config.Config, key string) (any, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Parse(f)
	})
	if err != nil {
		return nil, fmt.Errorf("loading structure %s: %w", path, err)
	}
	return obj.(*Grid), nil
}

// findSlots scans every row for across runs and every column for down runs.
// A run must span at least two cells to count as a slot; a lone fillable
// cell is covered by the crossing direction.
func (g *Grid) findSlots() {
	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			if !g.fillable[i][j] {
				continue
			}
			// Head cell of an across run?
			if j == 0 || !g.fillable[i][j-1] {
				length := 1
				for k := j + 1; k < g.Width && g.fillable[i][k]; k++ {
					length++
				}
				if length > 1 {
					g.slots = append(g.slots, Slot{Row: i, Col: j, Dir: Across, Length: length})
				}
			}
			// Head cell of a down run?
			if i == 0 || !g.fillable[i-1][j] {
				length := 1
				for k := i + 1; k < g.Height && g.fillable[k][j]; k++ {
					length++
				}
				if length > 1 {
					g.slots = append(g.slots, Slot{Row: i, Col: j, Dir: Down, Length: length})
				}
			}
		}
	}
}

// computeOverlaps builds the symmetric overlap relation and the per-slot
// neighbor lists. Cells covered by two slots yield an overlap in both
// orders, with the character indices swapped.
func (g *Grid) computeOverlaps() {
	type occupant struct {
		slot Slot
		idx  int
	}
	cellSlots := make(map[[2]int][]occupant)
	for _, s := range g.slots {
		for k := 0; k < s.Length; k++ {
			row, col := s.Cell(k)
			cellSlots[[2]int{row, col}] = append(cellSlots[[2]int{row, col}], occupant{s, k})
		}
	}

	g.overlaps = make(map[[2]Slot]Overlap)
	g.neighbors = make(map[Slot][]Slot)
	for _, occs := range cellSlots {
		// An across and a down slot can share at most one cell, and two
		// parallel slots never share a cell, so occs has at most two entries.
		if len(occs) != 2 {
			continue
		}
		x, y := occs[0], occs[1]
		g.overlaps[[2]Slot{x.slot, y.slot}] = Overlap{I: x.idx, J: y.idx}
		g.overlaps[[2]Slot{y.slot, x.slot}] = Overlap{I: y.idx, J: x.idx}
		g.neighbors[x.slot] = append(g.neighbors[x.slot], y.slot)
		g.neighbors[y.slot] = append(g.neighbors[y.slot], x.slot)
	}
}

// Slots returns every slot in the grid, in row/column scan order.
func (g *Grid) Slots() []Slot {
	return g.slots
}

// Fillable reports whether the cell at (row, col) accepts a letter.
func (g *Grid) Fillable(row, col int) bool {
	return g.fillable[row][col]
}

// Overlap returns the shared-cell indices between x and y, or false if the
// slots do not intersect.
func (g *Grid) Overlap(x, y Slot) (Overlap, bool) {
	ov, ok := g.overlaps[[2]Slot{x, y}]
	return ov, ok
}

// Neighbors returns every slot that shares a cell with x.
func (g *Grid) Neighbors(x Slot) []Slot {
	return g.neighbors[x]
}

// Degree is the number of slots intersecting x.
func (g *Grid) Degree(x Slot) int {
	return len(g.neighbors[x])
}
