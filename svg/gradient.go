// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"slices"

	"github.com/vdtool/svg2vector/math32"
)

// GradientStop is one (offset, color, opacity) sample defining a
// gradient's color ramp.
type GradientStop struct {
	// Offset is in [0, 1]. Within a gradient, offsets are
	// non-decreasing: out-of-order values are raised to the
	// previous maximum during parsing.
	Offset float32

	// Color is the stop color in SVG color syntax.
	Color string

	// Opacity is the stop opacity in [0, 1].
	Opacity float32
}

// Gradient holds a linear or radial color gradient definition.
// The name is the id for url(#id) lookup.
type Gradient struct {
	NodeBase

	// Radial selects a radial gradient; otherwise linear.
	Radial bool

	// Start and End are the linear gradient axis endpoints (x1,y1)
	// and (x2,y2).
	Start math32.Vector2
	End   math32.Vector2

	// Center and Radius are the radial gradient geometry.
	Center math32.Vector2
	Radius float32

	// UserSpace is true for gradientUnits="userSpaceOnUse";
	// otherwise coordinates are fractions of the object bounding box.
	UserSpace bool

	// Transform is the gradientTransform, if any.
	Transform math32.Matrix2

	// Stops is the ordered color ramp.
	Stops []GradientStop

	// Href is the bare id of another gradient to inherit stops from,
	// empty once resolved (or if never set).
	Href string
}

// NewGradient returns a new linear [Gradient] with an identity
// transform and the SVG default axis (0,0)-(1,0).
func NewGradient() *Gradient {
	return &Gradient{
		End:       math32.Vec2(1, 0),
		Transform: math32.Identity2(),
	}
}

// GradientTypeName returns the SVG-style type name of the gradient:
// linearGradient or radialGradient.
func (g *Gradient) GradientTypeName() string {
	if g.Radial {
		return "radialGradient"
	}
	return "linearGradient"
}

func (g *Gradient) SVGName() string { return g.GradientTypeName() }

func (g *Gradient) DeepCopy() Node {
	cp := &Gradient{}
	cp.copyFrom(&g.NodeBase)
	cp.Radial = g.Radial
	cp.Start = g.Start
	cp.End = g.End
	cp.Center = g.Center
	cp.Radius = g.Radius
	cp.UserSpace = g.UserSpace
	cp.Transform = g.Transform
	cp.Stops = slices.Clone(g.Stops)
	cp.Href = g.Href
	cp.copyChildrenFrom(cp, &g.NodeBase)
	return cp
}

// AddStop appends a stop, clamping the offset to [0, 1] and raising it
// to the previous maximum to keep offsets non-decreasing, per the SVG
// gradient rules.
func (g *Gradient) AddStop(offset float32, color string, opacity float32) {
	offset = math32.Clamp(offset, 0, 1)
	if n := len(g.Stops); n > 0 && offset < g.Stops[n-1].Offset {
		offset = g.Stops[n-1].Offset
	}
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: color, Opacity: opacity})
}
