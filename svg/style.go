// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"github.com/aymerick/douceur/parser"

	"github.com/vdtool/svg2vector/xmltree"
)

// parseStyleSheet parses the text of a style element into the
// document's style-class table. Multiple comma-separated selectors in
// one block all receive the block's declarations. Redeclaring a class
// accumulates: the new declarations are prepended, so earlier, more
// specific assignments stay visible first.
func (sv *SVG) parseStyleSheet(el *xmltree.Element) {
	sheet, err := parser.Parse(el.Text)
	if err != nil {
		sv.logf(el.Line, "style: parse error: %v", err)
		return
	}
	for _, rule := range sheet.Rules {
		if len(rule.Declarations) == 0 {
			continue
		}
		var decls strings.Builder
		for _, d := range rule.Declarations {
			decls.WriteString(d.Property)
			decls.WriteByte(':')
			decls.WriteString(d.Value)
			decls.WriteByte(';')
		}
		for _, sel := range rule.Selectors {
			sel = strings.TrimSpace(sel)
			cl := strings.TrimPrefix(sel, ".")
			if cl == sel || cl == "" {
				sv.logf(el.Line, "style: unsupported selector %q", sel)
				continue
			}
			if prev, has := sv.styleClasses[cl]; has {
				sv.styleClasses[cl] = decls.String() + prev
			} else {
				sv.styleClasses[cl] = decls.String()
				sv.styleOrder = append(sv.styleOrder, cl)
			}
		}
	}
}

// ApplyStyles cascades each class's declarations onto the nodes using
// that class, as if they were inline presentation attributes. Inline
// attributes and earlier declarations win over later ones.
// Unrecognized declarations are dropped; opacity folds into the fill
// alpha channel; clip-path/mask declarations are redirected into the
// clip-path association table.
func (sv *SVG) ApplyStyles() {
	for _, cl := range sv.styleOrder {
		decls := sv.styleClasses[cl]
		nodes := sv.styleAffected[cl]
		for _, n := range nodes {
			sv.applyClassDecls(n, decls)
		}
	}
}

// applyClassDecls applies one class's serialized declarations to one
// node. Declarations are applied first-wins, so the prepended newest
// block takes effect only where nothing more specific is set.
func (sv *SVG) applyClassDecls(n Node, decls string) {
	nb := n.AsNodeBase()
	applied := map[string]bool{}
	for _, decl := range strings.Split(decls, ";") {
		name, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if applied[name] {
			continue
		}
		applied[name] = true
		switch {
		case name == "clip-path" || name == "mask":
			group, ok := n.AsNodeBase().Parent.(*Group)
			if !ok {
				continue
			}
			sv.addClipRef(n, group, value, nb.Line)
		case name == "opacity":
			// the target format has no group-level alpha; approximate
			// through the fill alpha channel
			if !nb.HasProperty("fill-opacity") {
				nb.SetProperty("fill-opacity", value)
			}
		default:
			if _, ok := presentationAttrs[name]; !ok {
				continue
			}
			if !nb.HasProperty(name) {
				nb.SetProperty(name, value)
			}
		}
	}
}
