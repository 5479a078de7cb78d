package tui

import (
	"strings"

	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/view"
)

// Braille patterns, 2x4 dots per cell:
// 1 4
// 2 5
// 3 6
// 7 8
// Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-cell raster. Cell (col,row) packs a 2x4 sub-pixel
// block, so the drawable area is (Width*2) x (Height*4) sub-pixels.
type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
}

// Set lights the sub-pixel at (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// FillCircle lights a filled disc of sub-pixels.
func (c *Canvas) FillCircle(cx, cy, r int) {
	if r < 1 {
		c.Set(cx, cy)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

// PlotBodies projects world-space bodies through cam onto the canvas.
// The camera's screen size must match the canvas sub-pixel dimensions.
func (c *Canvas) PlotBodies(bodies []*body.Body, cam *view.Camera) {
	c.Clear()
	for _, b := range bodies {
		p := cam.WorldToScreen(b.Pos)
		r := int(b.Radius * cam.Zoom / 4)
		if r > 6 {
			r = 6
		}
		c.FillCircle(int(p[0]), int(p[1]), r)
	}
}

func (c *Canvas) String() string {
	rows := make([]string, len(c.grid))
	for i, row := range c.grid {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}
