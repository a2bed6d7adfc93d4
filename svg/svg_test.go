// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, doc string) *SVG {
	t.Helper()
	sv := NewSVG()
	require.NoError(t, sv.ReadXML(strings.NewReader(doc)))
	return sv
}

// firstPath returns the first path leaf under the root.
func firstPath(sv *SVG) *Path {
	var p *Path
	WalkDown(sv.Root, func(n Node) bool {
		if pp, ok := n.(*Path); ok {
			p = pp
			return Break
		}
		return Continue
	})
	return p
}

func ops(pd PathData) string {
	var b strings.Builder
	for _, c := range pd {
		b.WriteByte(c.Op)
	}
	return b.String()
}

func TestMissingViewBox(t *testing.T) {
	sv := NewSVG()
	err := sv.ReadXML(strings.NewReader(`<svg width="24" height="24"></svg>`))
	assert.ErrorIs(t, err, ErrNoViewBox)
	assert.NotEmpty(t, sv.Diagnostics())
}

func TestParseRoot(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24" width="48px" height="48px"></svg>`)
	assert.Equal(t, float32(24), sv.ViewBox.Size.X)
	assert.Equal(t, float32(24), sv.ViewBox.Size.Y)
	assert.Equal(t, float32(48), sv.BaseWidth)
	assert.Equal(t, float32(48), sv.BaseHeight)
	assert.Equal(t, float32(2), sv.ScaleFactor)
}

func TestRectToPath(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<rect x="1" y="2" width="10" height="5"/>
	</svg>`)
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.Equal(t, "MLLLZ", ops(p.Data))
	assert.Equal(t, []float32{1, 2}, p.Data[0].Args)
	assert.Equal(t, []float32{11, 2}, p.Data[1].Args)
	assert.Equal(t, []float32{11, 7}, p.Data[2].Args)
	assert.Equal(t, []float32{1, 7}, p.Data[3].Args)
}

func TestRoundedRectToPath(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<rect x="0" y="0" width="10" height="10" rx="2"/>
	</svg>`)
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.Equal(t, "MLALALALAZ", ops(p.Data))
}

func TestCircleToPath(t *testing.T) {
	sv := load(t, `<svg viewBox="-10 -10 20 20">
		<circle cx="0" cy="0" r="5"/>
	</svg>`)
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.Equal(t, "Maa", ops(p.Data))
	assert.Equal(t, []float32{-5, 0}, p.Data[0].Args)

	// the two arcs together must trace the full circle: check the
	// enclosed area and that the rightmost point is reached
	pts := samplePath(t, p.Data)
	area := polygonArea(pts)
	assert.InDelta(t, math.Pi*25, area, 0.05)
	maxX := pts[0][0]
	for _, pt := range pts {
		if pt[0] > maxX {
			maxX = pt[0]
		}
	}
	assert.InDelta(t, 5, maxX, 0.01)
}

func TestEllipseDegenerate(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<ellipse cx="5" cy="5" rx="0" ry="3"/>
	</svg>`)
	assert.Nil(t, firstPath(sv))
}

func TestPolygonToPath(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<polygon points="0,0 10,0 5,8"/>
	</svg>`)
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.Equal(t, "MllZ", ops(p.Data))
	assert.Equal(t, []float32{10, 0}, p.Data[1].Args)
	assert.Equal(t, []float32{-5, 8}, p.Data[2].Args)
}

func TestPolylineOddCount(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<polyline points="0,0 10,0 5"/>
	</svg>`)
	assert.Nil(t, firstPath(sv))
	assert.NotEmpty(t, sv.Diagnostics())
}

func TestUnsupportedElement(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<text id="label">hi</text>
		<rect width="4" height="4"/>
	</svg>`)
	assert.Contains(t, sv.Diagnostics(), "unsupported element <text>")
	assert.Nil(t, sv.NodeByID("label"))
	require.NoError(t, sv.Process())
}

func TestUnknownElement(t *testing.T) {
	// tags outside the SVG vocabulary are reported distinctly from the
	// recognized-but-unsupported ones
	sv := load(t, `<svg viewBox="0 0 24 24">
		<bogus id="b"/>
		<rect width="4" height="4"/>
	</svg>`)
	assert.Contains(t, sv.Diagnostics(), "unknown element <bogus>")
	assert.Nil(t, sv.NodeByID("b"))
	require.NoError(t, sv.Process())
}

func TestMetadataSkippedQuietly(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<title>icon</title>
		<desc>a square</desc>
		<rect width="4" height="4"/>
	</svg>`)
	assert.Empty(t, sv.Diagnostics())
}

func TestTransformWrapsShape(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<rect width="4" height="4" transform="translate(3,4)"/>
	</svg>`)
	require.Len(t, sv.Root.Children, 1)
	g, ok := sv.Root.Children[0].(*Group)
	require.True(t, ok)
	assert.Equal(t, float32(3), g.Transform.X0)
	assert.Equal(t, float32(4), g.Transform.Y0)
	_, ok = g.Children[0].(*Path)
	assert.True(t, ok)
}

func TestValidateNoLeaf(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24"><g></g></svg>`)
	assert.ErrorIs(t, sv.Process(), ErrNoLeaf)
}

func TestDuplicateID(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<rect id="a" width="1" height="1"/>
		<circle id="a" cx="5" cy="5" r="2"/>
	</svg>`)
	assert.Contains(t, sv.Diagnostics(), `duplicate id "a"`)
	n := sv.NodeByID("a")
	require.NotNil(t, n)
	p := n.(*Path)
	assert.Equal(t, "Maa", ops(p.Data)) // the later definition
}

func TestSourceLines(t *testing.T) {
	sv := load(t, "<svg viewBox=\"0 0 24 24\">\n<bogus/>\n</svg>")
	logs := sv.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, 2, logs[0].Line)
}

// samplePath walks move/line/arc commands and returns points along the
// outline, with arcs sampled through the endpoint parameterization.
func samplePath(t *testing.T, pd PathData) [][2]float64 {
	t.Helper()
	var pts [][2]float64
	var cx, cy float64
	for _, c := range pd {
		switch c.Op {
		case 'M':
			cx, cy = float64(c.Args[0]), float64(c.Args[1])
			pts = append(pts, [2]float64{cx, cy})
		case 'L':
			cx, cy = float64(c.Args[0]), float64(c.Args[1])
			pts = append(pts, [2]float64{cx, cy})
		case 'l':
			cx += float64(c.Args[0])
			cy += float64(c.Args[1])
			pts = append(pts, [2]float64{cx, cy})
		case 'a':
			ex := cx + float64(c.Args[5])
			ey := cy + float64(c.Args[6])
			pts = append(pts, arcPoints(cx, cy, float64(c.Args[0]), float64(c.Args[1]),
				c.Args[3] != 0, c.Args[4] != 0, ex, ey)...)
			cx, cy = ex, ey
		case 'A':
			ex := float64(c.Args[5])
			ey := float64(c.Args[6])
			pts = append(pts, arcPoints(cx, cy, float64(c.Args[0]), float64(c.Args[1]),
				c.Args[3] != 0, c.Args[4] != 0, ex, ey)...)
			cx, cy = ex, ey
		case 'Z', 'z':
		default:
			t.Fatalf("unexpected op %q in sampled path", c.Op)
		}
	}
	return pts
}

// arcPoints samples an unrotated elliptical arc from (x1,y1) to
// (x2,y2) per the SVG endpoint-to-center conversion.
func arcPoints(x1, y1, rx, ry float64, largeArc, sweep bool, x2, y2 float64) [][2]float64 {
	x1p := (x1 - x2) / 2
	y1p := (y1 - y2) / 2
	lam := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lam > 1 {
		s := math.Sqrt(lam)
		rx *= s
		ry *= s
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := math.Sqrt(math.Max(0, num/den))
	if largeArc == sweep {
		co = -co
	}
	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx
	cx := cxp + (x1+x2)/2
	cy := cyp + (y1+y2)/2
	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	dtheta := theta2 - theta1
	if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	} else if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	}
	const n = 64
	out := make([][2]float64, 0, n)
	for i := 1; i <= n; i++ {
		th := theta1 + dtheta*float64(i)/n
		out = append(out, [2]float64{cx + rx*math.Cos(th), cy + ry*math.Sin(th)})
	}
	return out
}

// polygonArea returns the absolute shoelace area of the point loop.
func polygonArea(pts [][2]float64) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return math.Abs(a / 2)
}
