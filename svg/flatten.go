// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Flatten collapses redundant group structure after resolution and
// substitution. Empty groups are dropped, single-child groups with an
// identity transform are elided, and chains of translation-only groups
// are merged into one. Groups carrying scale, skew, or rotation are
// preserved as-is so the transform survives into the output. The root
// group is never elided.
func (sv *SVG) Flatten() {
	sv.flattenGroup(sv.Root)
}

func (sv *SVG) flattenGroup(g *Group) {
	kept := make([]Node, 0, len(g.Children))
	for _, k := range g.Children {
		switch c := k.(type) {
		case *Group:
			sv.flattenGroup(c)
			if len(c.Children) == 0 {
				continue
			}
			kept = append(kept, sv.collapse(g, c))
		case *ClipPath:
			sv.flattenClipPath(c)
			kept = append(kept, c)
		default:
			kept = append(kept, k)
		}
	}
	g.Children = kept
}

// flattenClipPath flattens the group structure inside a clip path
// without eliding or dropping its direct children: the affected-node
// bookkeeping points at them.
func (sv *SVG) flattenClipPath(cp *ClipPath) {
	for _, k := range cp.Children {
		if c, ok := k.(*Group); ok {
			sv.flattenGroup(c)
		}
	}
}

// collapse merges single-child group chains under c while the combined
// transform stays a pure translation (or identity), then elides c
// itself if it contributes no transform and wraps a single child. The
// returned node replaces c in parent.
func (sv *SVG) collapse(parent *Group, c *Group) Node {
	for len(c.Children) == 1 {
		cg, ok := c.Children[0].(*Group)
		if !ok {
			break
		}
		mergeable := c.Transform.IsIdentity() || cg.Transform.IsIdentity() ||
			(c.Transform.IsTranslationOnly() && cg.Transform.IsTranslationOnly())
		if !mergeable {
			break
		}
		c.Transform = c.Transform.Mul(cg.Transform)
		// the inner group's properties are more specific
		for name, val := range cg.Properties {
			c.SetProperty(name, val)
		}
		c.Children = cg.Children
		for _, k := range c.Children {
			k.AsNodeBase().Parent = c
		}
	}
	if c.Transform.IsIdentity() && len(c.Children) == 1 {
		child := c.Children[0]
		nb := child.AsNodeBase()
		for name, val := range c.Properties {
			if !nb.HasProperty(name) {
				nb.SetProperty(name, val)
			}
		}
		nb.Parent = parent
		return child
	}
	return c
}
