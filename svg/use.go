// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/vdtool/svg2vector/math32"

// Use is a symbolic reference to another element by id. During
// reference resolution it is replaced in the tree by a transformed
// deep copy of its target.
type Use struct {
	NodeBase

	// Href is the bare target id from the href/xlink:href attribute.
	Href string

	// Pos is the x/y offset applied to the referenced content,
	// after Transform.
	Pos math32.Vector2

	// Transform is the transform attribute of the use element itself.
	Transform math32.Matrix2
}

// NewUse returns a Use with an identity transform.
func NewUse() *Use {
	return &Use{Transform: math32.Identity2()}
}

func (g *Use) SVGName() string { return "use" }

func (g *Use) DeepCopy() Node {
	cp := &Use{}
	cp.copyFrom(&g.NodeBase)
	cp.Href = g.Href
	cp.Pos = g.Pos
	cp.Transform = g.Transform
	cp.copyChildrenFrom(cp, &g.NodeBase)
	return cp
}
