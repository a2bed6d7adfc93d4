// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// ClipPath is a group-like container of clip geometry. A node that
// references it by clip-path/mask is spliced under an independent deep
// copy during substitution, so per-use state such as Affected is never
// shared between referencing sites.
type ClipPath struct {
	NodeBase

	// Affected are the nodes this clip path copy restricts, filled in
	// during clip-path substitution. They are also children, painted
	// after the clip geometry.
	Affected []Node
}

func (g *ClipPath) SVGName() string { return "clipPath" }

func (g *ClipPath) DeepCopy() Node {
	cp := &ClipPath{}
	cp.copyFrom(&g.NodeBase)
	cp.copyChildrenFrom(cp, &g.NodeBase)
	// Affected is per-use state and intentionally not copied.
	return cp
}

// ClipData returns the path-command data of the clip geometry
// children, in order.
func (g *ClipPath) ClipData() []PathData {
	var ds []PathData
	for _, k := range g.Children {
		if g.isAffected(k) {
			continue
		}
		WalkDown(k, func(n Node) bool {
			if p, ok := n.(*Path); ok {
				ds = append(ds, p.Data)
			}
			return Continue
		})
	}
	return ds
}

func (g *ClipPath) isAffected(n Node) bool {
	for _, a := range g.Affected {
		if a == n {
			return true
		}
	}
	return false
}

// AddAffected registers n as a node clipped by this copy and makes it
// a child, painted after the clip geometry.
func (g *ClipPath) AddAffected(n Node) {
	g.Affected = append(g.Affected, n)
	g.AddChild(g, n)
}

// SubstituteClipPaths splices a deep copy of the referenced clip path
// in place of each node carrying a clip-path or mask reference, with
// the node re-parented under the copy as its affected content. Each
// referencing site gets its own copy. Broken references are logged and
// the node is left unclipped.
func (sv *SVG) SubstituteClipPaths() {
	for _, cr := range sv.clipPathAffected {
		id := NameFromURL(cr.value)
		if id == "" {
			sv.logf(cr.line, "clip-path: unsupported value %q", cr.value)
			continue
		}
		src, ok := sv.NodeByID(id).(*ClipPath)
		if !ok {
			sv.logf(cr.line, "clip-path: reference to undefined id %q", id)
			continue
		}
		cp := src.DeepCopy().(*ClipPath)
		cr.group.ReplaceChild(cr.group, cr.node, cp)
		cp.AddAffected(cr.node)
	}
}
