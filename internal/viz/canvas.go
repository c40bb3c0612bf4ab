package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille sub-pixel canvas. Each character cell additionally
// carries a sign so lobes of opposite wavefunction phase render in
// different colors. A cell touched by both signs keeps the last writer.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Signs         [][]int8
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Signs:  make([][]int8, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Signs[i] = make([]int8, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set sets a pixel at (x, y) in sub-pixel coordinates. The canvas size
// in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	c.SetSigned(x, y, 0)
}

// SetSigned sets a pixel and tags its cell with the wavefunction sign.
func (c *Canvas) SetSigned(x, y int, sign int8) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if sign != 0 {
		c.Signs[row][col] = sign
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Signs[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Styled renders the canvas with sign-colored cells. Runs of cells with
// the same sign are styled together to keep the escape-sequence count
// down.
func (c *Canvas) Styled(pos, neg lipgloss.Style) string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		col := 0
		for col < c.Width {
			sign := c.Signs[row][col]
			end := col
			for end < c.Width && c.Signs[row][end] == sign {
				end++
			}
			run := string(c.Grid[row][col:end])
			switch {
			case sign > 0:
				b.WriteString(pos.Render(run))
			case sign < 0:
				b.WriteString(neg.Render(run))
			default:
				b.WriteString(run)
			}
			col = end
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
