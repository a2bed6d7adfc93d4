// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "slices"

// Path is a leaf shape: a path-command sequence plus the presentation
// attributes that control how it is painted. All other shape elements
// (rect, circle, ellipse, line, polygon, polyline) are converted into
// a Path during tree construction.
type Path struct {
	NodeBase

	// Data is the path-command sequence, owned by this node and
	// immutable after extraction.
	Data PathData

	// FillGradient and StrokeGradient are set when fill/stroke refer
	// to a gradient by url(#id), after reference resolution.
	FillGradient   *Gradient
	StrokeGradient *Gradient
}

func (g *Path) SVGName() string { return "path" }

func (g *Path) DeepCopy() Node {
	cp := &Path{}
	cp.copyFrom(&g.NodeBase)
	cp.Data = slices.Clone(g.Data)
	cp.FillGradient = g.FillGradient
	cp.StrokeGradient = g.StrokeGradient
	cp.copyChildrenFrom(cp, &g.NodeBase)
	return cp
}
