// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"maps"
	"strings"
)

// Node is the interface for all nodes in an SVG document tree.
type Node interface {
	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to all the base-level data structures and methods
	// without requiring interface methods.
	AsNodeBase() *NodeBase

	// SVGName returns the SVG element name (e.g., "g", "path").
	SVGName() string

	// DeepCopy returns a fresh copy of this node and its entire
	// subtree, with no state shared with the original. The copy's
	// Parent is nil.
	DeepCopy() Node
}

// NodeBase is the base type for all elements within an SVG tree.
// It contains the core functionality shared by the node variants.
type NodeBase struct {
	// Name is the element id, used for url(#id) reference targeting
	// and diagnostics. It may be empty.
	Name string

	// Class contains user-defined class name(s) used for attaching
	// CSS styles to elements. Multiple class names are separated
	// by spaces per the CSS standard.
	Class string

	// Line is the 1-based source line of the element, for diagnostics.
	Line int

	// Properties are the presentation attributes (fill, stroke,
	// fill-rule, opacity, ...) set on this element, either directly
	// or through style cascading. Unset means inherit/default.
	Properties map[string]string

	// Parent is the parent of this node. Every node has exactly one
	// parent except the root.
	Parent Node

	// Children is the ordered child list. Insertion order is
	// significant: later children paint on top.
	Children []Node
}

func (g *NodeBase) AsNodeBase() *NodeBase { return g }
func (g *NodeBase) SVGName() string       { return "base" }

// Property returns the named presentation attribute, or "" if unset.
func (g *NodeBase) Property(name string) string {
	return g.Properties[name]
}

// HasProperty reports whether the named presentation attribute is set.
func (g *NodeBase) HasProperty(name string) bool {
	_, has := g.Properties[name]
	return has
}

// SetProperty sets the named presentation attribute.
func (g *NodeBase) SetProperty(name, value string) {
	if g.Properties == nil {
		g.Properties = make(map[string]string)
	}
	g.Properties[name] = value
}

// DeleteProperty removes the named presentation attribute.
func (g *NodeBase) DeleteProperty(name string) {
	delete(g.Properties, name)
}

// Classes returns the space-separated class names on this node.
func (g *NodeBase) Classes() []string {
	if g.Class == "" {
		return nil
	}
	return strings.Fields(g.Class)
}

// AddChild appends child to this node's children and sets its parent.
func (g *NodeBase) AddChild(self, child Node) {
	child.AsNodeBase().Parent = self
	g.Children = append(g.Children, child)
}

// IndexOfChild returns the index of the given child, or -1.
func (g *NodeBase) IndexOfChild(child Node) int {
	for i, k := range g.Children {
		if k == child {
			return i
		}
	}
	return -1
}

// ReplaceChild replaces old with nw in the child list, preserving
// position, and updates parent links. It reports whether old was found.
func (g *NodeBase) ReplaceChild(self, old, nw Node) bool {
	i := g.IndexOfChild(old)
	if i < 0 {
		return false
	}
	g.Children[i] = nw
	nw.AsNodeBase().Parent = self
	old.AsNodeBase().Parent = nil
	return true
}

// copyFrom copies the base fields from fm, excluding tree links.
func (g *NodeBase) copyFrom(fm *NodeBase) {
	g.Name = fm.Name
	g.Class = fm.Class
	g.Line = fm.Line
	if fm.Properties != nil {
		g.Properties = maps.Clone(fm.Properties)
	}
}

// copyChildrenFrom deep-copies fm's children onto self.
func (g *NodeBase) copyChildrenFrom(self Node, fm *NodeBase) {
	for _, k := range fm.Children {
		g.AddChild(self, k.DeepCopy())
	}
}

// Walk traversal return values: Continue traverses into children,
// Break stops traversing this branch.
const (
	Continue = true
	Break    = false
)

// WalkDown calls fun on n and then, if fun returns [Continue], on
// each of its children in order, recursively (pre-order traversal).
func WalkDown(n Node, fun func(n Node) bool) {
	if !fun(n) {
		return
	}
	for _, k := range n.AsNodeBase().Children {
		WalkDown(k, fun)
	}
}
