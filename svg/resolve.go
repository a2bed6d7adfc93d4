// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"sort"
	"strings"
)

// ResolveReferences resolves all symbolic references (use href and
// gradient href) against the id index.
// Resolution runs to a fixed point: each pass resolves every pending
// node whose target exists and is itself fully resolved; when a pass
// makes no progress, the remaining references are reported as cycles
// or broken references and resolution stops.
func (sv *SVG) ResolveReferences() {
	for len(sv.pendingUses) > 0 || len(sv.pendingGradients) > 0 {
		progress := false
		for u := range sv.pendingUses {
			if sv.resolveUse(u) {
				delete(sv.pendingUses, u)
				progress = true
			}
		}
		for gr := range sv.pendingGradients {
			if sv.resolveGradient(gr) {
				delete(sv.pendingGradients, gr)
				progress = true
			}
		}
		if !progress {
			sv.reportUnresolved()
			break
		}
	}
}

// resolveUse attempts to resolve one use node. On success the use is
// replaced in the tree by a group transforming a deep copy of the
// target content: the use's own transform first, then its x/y offset.
func (sv *SVG) resolveUse(u *Use) bool {
	tgt := sv.NodeByID(u.Href)
	if tgt == nil || !sv.isResolved(tgt) {
		return false
	}
	g := NewGroup()
	g.copyFrom(&u.NodeBase)
	g.Transform = u.Transform.Translate(u.Pos.X, u.Pos.Y)
	cp := tgt.DeepCopy()
	g.AddChild(g, cp)
	if par := u.Parent; par != nil {
		par.AsNodeBase().ReplaceChild(par, u, g)
	}
	if u.Name != "" {
		sv.ids[u.Name] = g // the use is no longer in the tree
	}
	// the replacement nodes are independent; their class tags must
	// cascade too
	sv.registerClasses(g)
	WalkDown(cp, func(k Node) bool {
		sv.registerClasses(k)
		return Continue
	})
	return true
}

// resolveGradient attempts to resolve one gradient href, inheriting
// the target's stops when this gradient declares none of its own.
func (sv *SVG) resolveGradient(gr *Gradient) bool {
	tgt := sv.NodeByID(gr.Href)
	if tgt == nil || !sv.isResolved(tgt) {
		return false
	}
	tg, ok := tgt.(*Gradient)
	if !ok {
		sv.logf(gr.Line, "gradient %q: href target %q is a <%s>, not a gradient",
			gr.Name, gr.Href, tgt.SVGName())
		return true // resolved to a dead end; do not keep retrying
	}
	if len(gr.Stops) == 0 {
		gr.Stops = append(gr.Stops, tg.Stops...)
	}
	gr.Href = ""
	return true
}

// isResolved reports whether n and its whole subtree carry no
// pending references.
func (sv *SVG) isResolved(n Node) bool {
	ok := true
	WalkDown(n, func(k Node) bool {
		switch x := k.(type) {
		case *Use:
			if _, pend := sv.pendingUses[x]; pend {
				ok = false
				return Break
			}
		case *Gradient:
			if _, pend := sv.pendingGradients[x]; pend {
				ok = false
				return Break
			}
		}
		return Continue
	})
	return ok
}

// reportUnresolved runs after a stalled pass: it builds the directed
// id graph of the remaining references and reports each distinct
// cycle once, naming the full id chain and the source line of each
// hop. Dead-end chains are reported as broken references instead.
func (sv *SVG) reportUnresolved() {
	type edge struct {
		target string
		line   int
	}
	edges := map[string]edge{}
	names := []string{}
	addEdge := func(id, target string, line int) {
		if id == "" {
			return
		}
		if _, has := edges[id]; !has {
			names = append(names, id)
		}
		edges[id] = edge{target: target, line: line}
	}
	for u := range sv.pendingUses {
		addEdge(u.Name, u.Href, u.Line)
	}
	for gr := range sv.pendingGradients {
		addEdge(gr.Name, gr.Href, gr.Line)
	}
	sort.Strings(names) // deterministic report order

	reported := map[string]bool{}
	for _, start := range names {
		if reported[start] {
			continue
		}
		chain := []string{}
		seen := map[string]int{}
		id := start
		for {
			at, has := edges[id]
			if !has {
				// chain ends at an id with no unresolved outgoing
				// reference: the last hop is broken, not circular
				last := chain[len(chain)-1]
				sv.logf(edges[last].line, "unresolved reference from %q to %q", last, id)
				break
			}
			if pos, back := seen[id]; back {
				cyc := chain[pos:]
				for _, cid := range cyc {
					reported[cid] = true
				}
				sv.logf(at.line, "circular reference: %s", formatCycle(cyc, edges[cyc[len(cyc)-1]].target))
				break
			}
			seen[id] = len(chain)
			chain = append(chain, id)
			reported[id] = true
			id = at.target
		}
	}

	// anonymous pending nodes cannot participate in id cycles; report
	// them as broken references directly
	for u := range sv.pendingUses {
		if u.Name == "" {
			sv.logf(u.Line, "unresolved use reference to %q", u.Href)
		}
	}
	for gr := range sv.pendingGradients {
		if gr.Name == "" {
			sv.logf(gr.Line, "unresolved gradient reference to %q", gr.Href)
		}
	}
}

func formatCycle(ids []string, closing string) string {
	return strings.Join(append(append([]string{}, ids...), closing), " -> ")
}

// bindGradientPaints links fill/stroke url(#id) properties on path
// leaves to their resolved gradient nodes. It runs after the style
// cascade so that class-declared gradient paints bind too.
func (sv *SVG) bindGradientPaints() {
	WalkDown(sv.Root, func(n Node) bool {
		p, ok := n.(*Path)
		if !ok {
			return Continue
		}
		p.FillGradient = sv.gradientFor(p, "fill")
		p.StrokeGradient = sv.gradientFor(p, "stroke")
		return Continue
	})
}

func (sv *SVG) gradientFor(p *Path, prop string) *Gradient {
	ref := NameFromURL(p.Property(prop))
	if ref == "" {
		return nil
	}
	tgt := sv.NodeByID(ref)
	if tgt == nil {
		sv.logf(p.Line, "%s: reference to missing id %q", prop, ref)
		p.DeleteProperty(prop)
		return nil
	}
	gr, ok := tgt.(*Gradient)
	if !ok {
		sv.logf(p.Line, "%s: id %q is a <%s>, not a gradient", prop, ref, tgt.SVGName())
		p.DeleteProperty(prop)
		return nil
	}
	return gr
}
