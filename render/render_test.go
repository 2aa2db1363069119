package render

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/crossfill/crossfill/grid"
	"github.com/crossfill/crossfill/solver"
)

func testGrid(t *testing.T) (*grid.Grid, solver.Assignment) {
	t.Helper()
	g, err := grid.Parse(strings.NewReader("___\n_xx\n_xx"))
	if err != nil {
		t.Fatal(err)
	}
	a := solver.Assignment{
		{Row: 0, Col: 0, Dir: grid.Across, Length: 3}: "CAT",
		{Row: 0, Col: 0, Dir: grid.Down, Length: 3}:   "CAR",
	}
	return g, a
}

func TestText(t *testing.T) {
	is := is.New(t)
	g, a := testGrid(t)
	is.Equal(Text(g, a), "CAT\nA██\nR██\n")
}

func TestTextPartialAssignment(t *testing.T) {
	is := is.New(t)
	g, a := testGrid(t)
	delete(a, grid.Slot{Row: 0, Col: 0, Dir: grid.Down, Length: 3})
	is.Equal(Text(g, a), "CAT\n ██\n ██\n")
}

func TestLetters(t *testing.T) {
	is := is.New(t)
	g, a := testGrid(t)
	letters := Letters(g, a)
	is.Equal(letters[0], []rune("CAT"))
	is.Equal(letters[1][0], 'A')
	is.Equal(letters[2][0], 'R')
	is.Equal(letters[1][1], rune(0))
}

func TestSavePNG(t *testing.T) {
	is := is.New(t)
	g, a := testGrid(t)
	path := filepath.Join(t.TempDir(), "out.png")
	is.NoErr(SavePNG(g, a, path))

	f, err := os.Open(path)
	is.NoErr(err)
	defer f.Close()
	img, err := png.Decode(f)
	is.NoErr(err)
	is.Equal(img.Bounds().Dx(), 300)
	is.Equal(img.Bounds().Dy(), 300)
}
