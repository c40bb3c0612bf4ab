package export

import (
	"fmt"
	"strings"

	"github.com/TurbulentGoat/orbitals/internal/viz"
)

// CanvasToSVG converts a braille canvas to SVG, one circle per lit
// sub-pixel. Cells keep their sign coloring: posColor and negColor are
// CSS colors for the two wavefunction phases.
func CanvasToSVG(canvas *viz.Canvas, scale float64, posColor, negColor string) string {
	if canvas == nil {
		return ""
	}
	if posColor == "" {
		posColor = "#ff5f5f"
	}
	if negColor == "" {
		negColor = "#5f87ff"
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			fill := "#cccccc"
			switch {
			case canvas.Signs[row][col] > 0:
				fill = posColor
			case canvas.Signs[row][col] < 0:
				fill = negColor
			}

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
					}
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// RadialToSVG plots a radial distribution curve P(r) as an SVG path.
func RadialToSVG(rs, ps []float64, width, height int, strokeColor string) string {
	if len(rs) < 2 || len(rs) != len(ps) {
		return ""
	}

	maxP := ps[0]
	for _, p := range ps {
		if p > maxP {
			maxP = p
		}
	}
	if maxP == 0 {
		maxP = 1
	}
	rmax := rs[len(rs)-1]

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	pad := 0.05
	for i := range rs {
		x := (pad + (1-2*pad)*rs[i]/rmax) * float64(width)
		y := float64(height) * (1 - pad - (1-2*pad)*ps[i]/maxP)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
