// Package holo renders the "hologram" shapes: rotating 3D point clouds
// projected onto a character grid for the terminal surface.
package holo

import (
	"math"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Spec describes which shape the 3D surface should display and the
// caption under it.
type Spec struct {
	Type string
	Text string
}

// shapes maps type names to point cloud generators.
var shapes = map[string]func() []point{
	"cube":    cubePoints,
	"pyramid": pyramidPoints,
	"sphere":  spherePoints,
	"torus":   torusPoints,
	"dna":     dnaPoints,
	"star":    starPoints,
}

// Known reports whether name is a registered shape type.
func Known(name string) bool {
	_, ok := shapes[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Types returns the sorted shape type names.
func Types() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type point struct {
	x, y, z float64
}

// shading ramps from far to near.
var shading = []rune(".:-=+*#%@")

// Renderer produces animation frames for one shape spec.
type Renderer struct {
	spec   Spec
	points []point
}

// NewRenderer builds a renderer for spec. The caller must have
// validated the type against Known.
func NewRenderer(spec Spec) *Renderer {
	gen, ok := shapes[strings.ToLower(spec.Type)]
	if !ok {
		gen = cubePoints
	}
	return &Renderer{spec: spec, points: gen()}
}

// Frame renders the shape at animation time t (seconds) into a w x h
// grid and returns the rows, caption line included. Pure: same inputs,
// same frame.
func (r *Renderer) Frame(t float64, w, h int) []string {
	if w < 8 || h < 4 {
		return []string{r.spec.Type}
	}

	gridH := h
	if r.spec.Text != "" {
		gridH = h - 2
	}

	grid := make([][]rune, gridH)
	depth := make([][]float64, gridH)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", w))
		depth[i] = make([]float64, w)
		for j := range depth[i] {
			depth[i][j] = math.Inf(1)
		}
	}

	ay := t * 0.9
	ax := t * 0.45
	scale := float64(min(w/2, gridH)) * 0.85
	const camera = 3.0

	for _, p := range r.points {
		x, y, z := rotateY(p.x, p.y, p.z, ay)
		x, y, z = rotateX(x, y, z, ax)

		// Perspective divide; terminal cells are ~twice as tall as wide.
		persp := camera / (camera + z)
		sx := int(math.Round(float64(w)/2 + x*scale*persp))
		sy := int(math.Round(float64(gridH)/2 - y*scale*persp*0.5))
		if sx < 0 || sx >= w || sy < 0 || sy >= gridH {
			continue
		}
		if z >= depth[sy][sx] {
			continue
		}
		depth[sy][sx] = z

		// Nearer points pick brighter glyphs.
		shade := int((1 - (z+1.2)/2.4) * float64(len(shading)-1))
		if shade < 0 {
			shade = 0
		}
		if shade >= len(shading) {
			shade = len(shading) - 1
		}
		grid[sy][sx] = shading[shade]
	}

	rows := make([]string, 0, h)
	for _, row := range grid {
		rows = append(rows, string(row))
	}

	if r.spec.Text != "" {
		rows = append(rows, "", center(r.spec.Text, w))
	}
	return rows
}

// center pads text to the middle of a w-cell row, accounting for wide
// runes.
func center(text string, w int) string {
	tw := runewidth.StringWidth(text)
	if tw >= w {
		return runewidth.Truncate(text, w, "…")
	}
	pad := (w - tw) / 2
	return strings.Repeat(" ", pad) + text
}

func rotateY(x, y, z, a float64) (float64, float64, float64) {
	sin, cos := math.Sin(a), math.Cos(a)
	return x*cos + z*sin, y, -x*sin + z*cos
}

func rotateX(x, y, z, a float64) (float64, float64, float64) {
	sin, cos := math.Sin(a), math.Cos(a)
	return x, y*cos - z*sin, y*sin + z*cos
}

// Shape generators. All fit inside the unit-ish cube so the projection
// math can share one scale.

func cubePoints() []point {
	var pts []point
	const steps = 12
	corners := [][3]float64{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		a, b := corners[e[0]], corners[e[1]]
		for i := 0; i <= steps; i++ {
			f := float64(i) / steps
			pts = append(pts, point{
				x: (a[0] + (b[0]-a[0])*f) * 0.7,
				y: (a[1] + (b[1]-a[1])*f) * 0.7,
				z: (a[2] + (b[2]-a[2])*f) * 0.7,
			})
		}
	}
	return pts
}

func pyramidPoints() []point {
	var pts []point
	const steps = 14
	apex := [3]float64{0, 1, 0}
	base := [][3]float64{
		{-1, -0.7, -1}, {1, -0.7, -1}, {1, -0.7, 1}, {-1, -0.7, 1},
	}
	for i, b := range base {
		next := base[(i+1)%len(base)]
		for s := 0; s <= steps; s++ {
			f := float64(s) / steps
			pts = append(pts,
				point{(b[0] + (next[0]-b[0])*f) * 0.7, b[1] * 0.7, (b[2] + (next[2]-b[2])*f) * 0.7},
				point{(b[0] + (apex[0]-b[0])*f) * 0.7, (b[1] + (apex[1]-b[1])*f) * 0.7, (b[2] + (apex[2]-b[2])*f) * 0.7},
			)
		}
	}
	return pts
}

func spherePoints() []point {
	var pts []point
	const lats, longs = 8, 16
	for i := 1; i < lats; i++ {
		phi := math.Pi * float64(i) / lats
		for j := 0; j < longs; j++ {
			theta := 2 * math.Pi * float64(j) / longs
			pts = append(pts, point{
				x: 0.85 * math.Sin(phi) * math.Cos(theta),
				y: 0.85 * math.Cos(phi),
				z: 0.85 * math.Sin(phi) * math.Sin(theta),
			})
		}
	}
	return pts
}

func torusPoints() []point {
	var pts []point
	const major, minor = 24, 10
	const R, r = 0.65, 0.3
	for i := 0; i < major; i++ {
		u := 2 * math.Pi * float64(i) / major
		for j := 0; j < minor; j++ {
			v := 2 * math.Pi * float64(j) / minor
			pts = append(pts, point{
				x: (R + r*math.Cos(v)) * math.Cos(u),
				y: r * math.Sin(v),
				z: (R + r*math.Cos(v)) * math.Sin(u),
			})
		}
	}
	return pts
}

func dnaPoints() []point {
	var pts []point
	const turns = 2.5
	const steps = 60
	for i := 0; i <= steps; i++ {
		f := float64(i) / steps
		a := 2 * math.Pi * turns * f
		y := 2*f - 1
		pts = append(pts,
			point{0.5 * math.Cos(a), y * 0.9, 0.5 * math.Sin(a)},
			point{0.5 * math.Cos(a+math.Pi), y * 0.9, 0.5 * math.Sin(a+math.Pi)},
		)
		// Rungs every few steps.
		if i%6 == 0 {
			for s := 1; s < 5; s++ {
				g := float64(s) / 5
				pts = append(pts, point{
					x: 0.5 * math.Cos(a) * (1 - 2*g),
					y: y * 0.9,
					z: 0.5 * math.Sin(a) * (1 - 2*g),
				})
			}
		}
	}
	return pts
}

func starPoints() []point {
	var pts []point
	const arms = 5
	const steps = 10
	for i := 0; i < arms*2; i++ {
		a := math.Pi * float64(i) / arms
		outer := 0.9
		if i%2 == 1 {
			outer = 0.38
		}
		na := math.Pi * float64(i+1) / arms
		nouter := 0.9
		if (i+1)%2 == 1 {
			nouter = 0.38
		}
		x0, y0 := outer*math.Cos(a), outer*math.Sin(a)
		x1, y1 := nouter*math.Cos(na), nouter*math.Sin(na)
		for s := 0; s <= steps; s++ {
			f := float64(s) / steps
			pts = append(pts, point{x0 + (x1-x0)*f, y0 + (y1-y0)*f, 0})
		}
	}
	return pts
}
