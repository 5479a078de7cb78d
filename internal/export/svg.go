// Package export renders a world snapshot to a standalone SVG, mainly
// for inspecting the end state of headless runs.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbitlab/internal/body"
)

// WorldSVG draws every body as a filled circle, auto-framed to the
// populated region with 10% padding. Returns "" for an empty world.
func WorldSVG(bodies []*body.Body, width, height int) string {
	if len(bodies) == 0 {
		return ""
	}

	minX, maxX := bodies[0].Pos.X(), bodies[0].Pos.X()
	minY, maxY := bodies[0].Pos.Y(), bodies[0].Pos.Y()
	for _, b := range bodies {
		minX = min(minX, b.Pos.X()-b.Radius)
		maxX = max(maxX, b.Pos.X()+b.Radius)
		minY = min(minY, b.Pos.Y()-b.Radius)
		maxY = max(maxY, b.Pos.Y()+b.Radius)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	// Uniform scale so circles stay circles.
	scale := min(float64(width)/rangeX, float64(height)/rangeY)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a14"/>
`, width, height, width, height))

	for _, b := range bodies {
		x := (b.Pos.X() - minX) * scale
		y := (b.Pos.Y() - minY) * scale
		r := b.Radius * scale
		if r < 0.5 {
			r = 0.5
		}
		c := b.Style.Color
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#%02x%02x%02x"/>
`, x, y, r, c.R, c.G, c.B))
		if b.Name != "" {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="10" fill="#b4b4c8" text-anchor="middle">%s</text>
`, x, y-r-4, b.Name))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
