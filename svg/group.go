// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/vdtool/svg2vector/math32"

// Group groups together SVG elements. It provides a common transform
// for all group elements and shared presentation properties.
type Group struct {
	NodeBase

	// Transform is the affine transform applied to everything
	// within the group.
	Transform math32.Matrix2
}

// NewGroup returns a new [Group] with an identity transform.
func NewGroup() *Group {
	return &Group{Transform: math32.Identity2()}
}

func (g *Group) SVGName() string { return "g" }

func (g *Group) DeepCopy() Node {
	cp := NewGroup()
	cp.copyFrom(&g.NodeBase)
	cp.Transform = g.Transform
	cp.copyChildrenFrom(cp, &g.NodeBase)
	return cp
}
