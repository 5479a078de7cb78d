package export

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/orbitlab/internal/body"
)

func TestWorldSVGEmpty(t *testing.T) {
	if got := WorldSVG(nil, 800, 600); got != "" {
		t.Errorf("empty world produced %d bytes of SVG", len(got))
	}
}

func TestWorldSVGContainsBodies(t *testing.T) {
	sun, err := body.New(100000, mgl64.Vec2{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	sun.Name = "Sol"
	planet, err := body.New(5, mgl64.Vec2{200, 0})
	if err != nil {
		t.Fatal(err)
	}

	svg := WorldSVG([]*body.Body{sun, planet}, 800, 600)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("circles = %d, want 2", got)
	}
	if !strings.Contains(svg, ">Sol</text>") {
		t.Error("named body has no label")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated document")
	}
}

func TestWorldSVGSingleBody(t *testing.T) {
	b, err := body.New(10, mgl64.Vec2{50, 50})
	if err != nil {
		t.Fatal(err)
	}
	svg := WorldSVG([]*body.Body{b}, 400, 400)
	if !strings.Contains(svg, "<circle") {
		t.Error("single body not drawn")
	}
}
