package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/crossfill/crossfill/grid"
	"github.com/crossfill/crossfill/solver"
)

const (
	cellSize   = 100
	cellBorder = 2
)

// basicfont.Face7x13 glyph box. Letters are rasterized at this size and
// scaled up into the cell.
const (
	glyphW      = 7
	glyphH      = 13
	glyphAscent = 11
	glyphScale  = 7
)

// SavePNG writes the filled grid as a PNG: white cells with black letters on
// a black canvas.
func SavePNG(g *grid.Grid, a solver.Assignment, filename string) error {
	letters := Letters(g, a)

	canvas := image.NewRGBA(image.Rect(0, 0, g.Width*cellSize, g.Height*cellSize))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)

	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			if !g.Fillable(i, j) {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder,
				i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder,
				(i+1)*cellSize-cellBorder,
			)
			draw.Draw(canvas, cell, image.White, image.Point{}, draw.Src)
			if letters[i][j] != 0 {
				drawLetter(canvas, cell, letters[i][j])
			}
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, canvas)
}

// drawLetter rasterizes one rune with the basic fixed font and scales it
// with nearest-neighbor into the center of the cell.
func drawLetter(canvas *image.RGBA, cell image.Rectangle, r rune) {
	small := image.NewRGBA(image.Rect(0, 0, glyphW, glyphH))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, glyphAscent),
	}
	d.DrawString(string(r))

	w := glyphW * glyphScale
	h := glyphH * glyphScale
	target := image.Rect(
		cell.Min.X+(cell.Dx()-w)/2,
		cell.Min.Y+(cell.Dy()-h)/2,
		cell.Min.X+(cell.Dx()-w)/2+w,
		cell.Min.Y+(cell.Dy()-h)/2+h,
	)
	xdraw.NearestNeighbor.Scale(canvas, target, small, small.Bounds(), xdraw.Over, nil)
}
