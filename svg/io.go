// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/vdtool/svg2vector/math32"
	"github.com/vdtool/svg2vector/xmltree"
)

// presentation attributes carried through to the output; everything
// else on a shape is dropped
var presentationAttrs = map[string]struct{}{
	"fill":              {},
	"fill-rule":         {},
	"fill-opacity":      {},
	"opacity":           {},
	"stroke":            {},
	"stroke-opacity":    {},
	"stroke-width":      {},
	"stroke-linecap":    {},
	"stroke-linejoin":   {},
	"stroke-miterlimit": {},
}

// elements rejected with a diagnostic; their children are still
// traversed in case they contain supported nested content
var unsupportedTags = map[string]struct{}{
	"animate":          {},
	"animateMotion":    {},
	"animateTransform": {},
	"filter":           {},
	"font":             {},
	"foreignObject":    {},
	"image":            {},
	"marker":           {},
	"pattern":          {},
	"script":           {},
	"set":              {},
	"switch":           {},
	"symbol":           {},
	"text":             {},
	"textPath":         {},
	"tspan":            {},
	"view":             {},
}

// skipped without a diagnostic
var metadataTags = map[string]struct{}{
	"title":    {},
	"desc":     {},
	"metadata": {},
}

// dimensionPattern extracts the numeric part of a width/height value
// with an optional unit suffix (px, dp, pt, mm, ...).
var dimensionPattern = regexp.MustCompile(`^\s*([+-]?\d+(\.\d+)?)\s*([a-zA-Z%]*)\s*$`)

// OpenXML opens XML-formatted SVG input from the given file and
// builds the document tree. The pipeline phases are run separately;
// see [SVG.Process].
func (sv *SVG) OpenXML(fname string) error {
	fp, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	if sv.Name == "" {
		sv.Name = fname
	}
	return sv.ReadXML(fp)
}

// ReadXML reads XML-formatted SVG input from the reader and builds
// the document tree in a single pre-order pass, extracting shape
// geometry and recording pending references and style associations
// as it goes.
func (sv *SVG) ReadXML(r io.Reader) error {
	root, err := xmltree.Decode(r)
	if err != nil {
		return err
	}
	return sv.FromXMLTree(root)
}

// FromXMLTree builds the document tree from an already-parsed
// attributed XML tree.
func (sv *SVG) FromXMLTree(root *xmltree.Element) error {
	if root.Name != "svg" {
		return fmt.Errorf("svg: root element is <%s>, not <svg>", root.Name)
	}
	if err := sv.parseRoot(root); err != nil {
		return err
	}
	for _, k := range root.Children {
		sv.buildNode(sv.Root, k)
	}
	return nil
}

// parseRoot handles the svg element itself: the required viewBox and
// the physical width/height.
func (sv *SVG) parseRoot(el *xmltree.Element) error {
	vbs := el.Attr("viewBox")
	if vbs == "" {
		sv.logf(el.Line, "missing viewBox attribute on svg element")
		return ErrNoViewBox
	}
	if err := sv.ViewBox.SetString(vbs); err != nil {
		sv.logf(el.Line, "%v", err)
		return ErrNoViewBox
	}
	if w, ok := parseDimension(el.Attr("width")); ok {
		sv.BaseWidth = w
	}
	if h, ok := parseDimension(el.Attr("height")); ok {
		sv.BaseHeight = h
	}
	if sv.ViewBox.Size.X > 0 {
		sv.ScaleFactor = sv.BaseWidth / sv.ViewBox.Size.X
	}
	sv.parseNodeAttrs(&sv.Root.NodeBase, el)
	return nil
}

// parseDimension parses a width/height value with an optional unit
// suffix. The unit is ignored; all units are treated alike.
func parseDimension(val string) (float32, bool) {
	if val == "" {
		return 0, false
	}
	m := dimensionPattern.FindStringSubmatch(val)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// buildNode dispatches one element into the tree under parent.
func (sv *SVG) buildNode(parent *Group, el *xmltree.Element) {
	switch {
	case el.Name == "g" || el.Name == "svg":
		g := NewGroup()
		sv.parseNodeAttrs(&g.NodeBase, el)
		sv.parseTransform(&g.Transform, el)
		parent.AddChild(parent, g)
		sv.registerClasses(g)
		sv.noteClipRef(g, parent, el)
		for _, k := range el.Children {
			sv.buildNode(g, k)
		}

	case el.Name == "defs":
		for _, k := range el.Children {
			sv.buildNode(sv.Defs, k)
		}

	case el.Name == "use":
		sv.buildUse(parent, el)

	case el.Name == "path":
		p := &Path{}
		sv.parseNodeAttrs(&p.NodeBase, el)
		d := el.Attr("d")
		data, err := ParsePathData(d)
		if err != nil {
			sv.logf(el.Line, "path: invalid d attribute: %v", err)
		}
		p.Data = data
		sv.addShape(parent, p, el)

	case el.Name == "rect" || el.Name == "circle" || el.Name == "ellipse" ||
		el.Name == "line" || el.Name == "polygon" || el.Name == "polyline":
		p := &Path{}
		sv.parseNodeAttrs(&p.NodeBase, el)
		ok := false
		switch el.Name {
		case "rect":
			ok = extractRect(sv, p, el)
		case "circle":
			ok = extractCircle(sv, p, el)
		case "ellipse":
			ok = extractEllipse(sv, p, el)
		case "line":
			ok = extractLine(sv, p, el)
		case "polygon":
			ok = extractPoly(sv, p, el, true)
		case "polyline":
			ok = extractPoly(sv, p, el, false)
		}
		if ok {
			sv.addShape(parent, p, el)
		} else if p.Name != "" {
			// keep the id resolvable even when no path was emitted
			sv.indexID(p, p.Name, el.Line)
		}

	case el.Name == "linearGradient" || el.Name == "radialGradient":
		sv.buildGradient(el)

	case el.Name == "clipPath" || el.Name == "mask":
		sv.buildClipPath(el)

	case el.Name == "style":
		sv.parseStyleSheet(el)

	default:
		if _, meta := metadataTags[el.Name]; !meta {
			if _, known := unsupportedTags[el.Name]; known {
				sv.logf(el.Line, "unsupported element <%s>", el.Name)
			} else {
				sv.logf(el.Line, "unknown element <%s>", el.Name)
			}
			if id := el.Attr("id"); id != "" {
				sv.ignoredIDs[id] = struct{}{}
			}
		}
		for _, k := range el.Children {
			sv.buildNode(parent, k)
		}
	}
}

// addShape attaches a path leaf under parent, wrapping it in a group
// when the element carries its own transform, and records its id,
// classes and clip references.
func (sv *SVG) addShape(parent *Group, p *Path, el *xmltree.Element) {
	encl := parent
	if ts := el.Attr("transform"); ts != "" {
		g := NewGroup()
		sv.parseTransform(&g.Transform, el)
		parent.AddChild(parent, g)
		encl = g
	}
	encl.AddChild(encl, p)
	sv.indexID(p, p.Name, el.Line)
	sv.registerClasses(p)
	sv.noteClipRef(p, encl, el)
}

// buildUse records a use element for later fixed-point resolution.
func (sv *SVG) buildUse(parent *Group, el *xmltree.Element) {
	u := NewUse()
	sv.parseNodeAttrs(&u.NodeBase, el)
	u.Href = refName(el.Attr("href"))
	if u.Href == "" {
		sv.logf(el.Line, "use: missing or non-local href")
		return
	}
	x, _ := shapeAttr(sv, el, "x", 0)
	y, _ := shapeAttr(sv, el, "y", 0)
	u.Pos = math32.Vec2(x, y)
	sv.parseTransform(&u.Transform, el)
	parent.AddChild(parent, u)
	sv.indexID(u, u.Name, el.Line)
	sv.registerClasses(u)
	sv.noteClipRef(u, parent, el)
	sv.pendingUses[u] = struct{}{}
}

// buildGradient parses a gradient definition, including its stops,
// into the Defs group.
func (sv *SVG) buildGradient(el *xmltree.Element) {
	gr := NewGradient()
	sv.parseNodeAttrs(&gr.NodeBase, el)
	gr.Radial = el.Name == "radialGradient"
	gr.UserSpace = el.Attr("gradientUnits") == "userSpaceOnUse"
	if ts := el.Attr("gradientTransform"); ts != "" {
		if err := gr.Transform.SetString(ts); err != nil {
			sv.logf(el.Line, "%s: invalid gradientTransform: %v", el.Name, err)
		}
	}
	if gr.Radial {
		cx, _ := fractionAttr(sv, el, "cx", 0.5)
		cy, _ := fractionAttr(sv, el, "cy", 0.5)
		gr.Center = math32.Vec2(cx, cy)
		gr.Radius, _ = fractionAttr(sv, el, "r", 0.5)
	} else {
		x1, _ := fractionAttr(sv, el, "x1", 0)
		y1, _ := fractionAttr(sv, el, "y1", 0)
		x2, _ := fractionAttr(sv, el, "x2", 1)
		y2, _ := fractionAttr(sv, el, "y2", 0)
		gr.Start = math32.Vec2(x1, y1)
		gr.End = math32.Vec2(x2, y2)
	}
	for _, k := range el.Children {
		if k.Name != "stop" {
			continue
		}
		sv.parseStop(gr, k)
	}
	if href := refName(el.Attr("href")); href != "" {
		gr.Href = href
		sv.pendingGradients[gr] = struct{}{}
	}
	sv.Defs.AddChild(sv.Defs, gr)
	sv.indexID(gr, gr.Name, el.Line)
}

// parseStop parses one gradient stop, honoring style-attribute
// declarations as well as direct attributes.
func (sv *SVG) parseStop(gr *Gradient, el *xmltree.Element) {
	props := map[string]string{}
	for _, at := range el.Attrs {
		props[at.Name] = at.Value
	}
	if style := el.Attr("style"); style != "" {
		for name, value := range parseInlineStyle(style) {
			props[name] = value
		}
	}
	offset := float32(0)
	if os := props["offset"]; os != "" {
		f, ok := parseFraction(os)
		if !ok {
			sv.logf(el.Line, "stop: invalid offset %q", os)
		} else {
			offset = f
		}
	}
	opacity := float32(1)
	if op := props["stop-opacity"]; op != "" {
		f, err := strconv.ParseFloat(op, 32)
		if err != nil {
			sv.logf(el.Line, "stop: invalid stop-opacity %q", op)
		} else {
			opacity = float32(f)
		}
	}
	color := props["stop-color"]
	if color == "" {
		color = "#000000"
	}
	gr.AddStop(offset, color, opacity)
}

// buildClipPath parses a clipPath (or mask, treated alike) definition
// into the Defs group.
func (sv *SVG) buildClipPath(el *xmltree.Element) {
	cp := &ClipPath{}
	sv.parseNodeAttrs(&cp.NodeBase, el)
	grp := NewGroup() // carrier for nested construction
	for _, k := range el.Children {
		sv.buildNode(grp, k)
	}
	for _, k := range grp.Children {
		cp.AddChild(cp, k)
	}
	sv.Defs.AddChild(sv.Defs, cp)
	sv.indexID(cp, cp.Name, el.Line)
}

// parseNodeAttrs handles the attributes shared by all elements:
// id, class, inline style, and the recognized presentation attributes.
func (sv *SVG) parseNodeAttrs(nb *NodeBase, el *xmltree.Element) {
	nb.Line = el.Line
	nb.Name = el.Attr("id")
	nb.Class = el.Attr("class")
	for _, at := range el.Attrs {
		if _, ok := presentationAttrs[at.Name]; ok {
			nb.SetProperty(at.Name, at.Value)
		}
	}
	if style := el.Attr("style"); style != "" {
		for name, value := range parseInlineStyle(style) {
			if _, ok := presentationAttrs[name]; ok {
				nb.SetProperty(name, value)
			}
		}
	}
}

// parseTransform parses the transform attribute into dst, logging a
// diagnostic and leaving dst untouched on failure.
func (sv *SVG) parseTransform(dst *math32.Matrix2, el *xmltree.Element) {
	ts := el.Attr("transform")
	if ts == "" {
		return
	}
	var m math32.Matrix2
	if err := m.SetString(ts); err != nil {
		sv.logf(el.Line, "%s: invalid transform %q: %v", el.Name, ts, err)
		return
	}
	*dst = m
}

// noteClipRef records a clip-path or mask reference on n for later
// substitution, whether it came from an attribute or from an inline
// style declaration. The enclosing group is where the substitution
// splices.
func (sv *SVG) noteClipRef(n Node, group *Group, el *xmltree.Element) {
	val := el.Attr("clip-path")
	if val == "" {
		val = el.Attr("mask")
	}
	if val == "" {
		if style := el.Attr("style"); style != "" {
			decls := parseInlineStyle(style)
			val = decls["clip-path"]
			if val == "" {
				val = decls["mask"]
			}
		}
	}
	if val == "" || val == "none" {
		return
	}
	sv.addClipRef(n, group, val, el.Line)
}

// addClipRef appends one entry to the clip-path-affected table.
func (sv *SVG) addClipRef(n Node, group *Group, value string, line int) {
	sv.clipPathAffected = append(sv.clipPathAffected, clipRef{node: n, group: group, value: value, line: line})
}

// shapeAttr parses a numeric shape attribute, returning the default
// when absent. An unparsable value logs a per-attribute diagnostic
// and reports failure, causing the shape to be skipped.
func shapeAttr(sv *SVG, el *xmltree.Element, name string, def float32) (float32, bool) {
	val := el.Attr(name)
	if val == "" {
		return def, true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 32)
	if err != nil {
		sv.logf(el.Line, "%s: invalid %s attribute %q", el.Name, name, val)
		return 0, false
	}
	return float32(f), true
}

// fractionAttr parses a numeric attribute that may carry a percent
// suffix, mapping "50%" to 0.5.
func fractionAttr(sv *SVG, el *xmltree.Element, name string, def float32) (float32, bool) {
	val := el.Attr(name)
	if val == "" {
		return def, true
	}
	f, ok := parseFraction(val)
	if !ok {
		sv.logf(el.Line, "%s: invalid %s attribute %q", el.Name, name, val)
		return def, false
	}
	return f, true
}

func parseFraction(val string) (float32, bool) {
	val = strings.TrimSpace(val)
	pct := strings.HasSuffix(val, "%")
	val = strings.TrimSuffix(val, "%")
	f, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return 0, false
	}
	if pct {
		f /= 100
	}
	return float32(f), true
}

// parseInlineStyle splits a style attribute value into its
// declarations.
func parseInlineStyle(style string) map[string]string {
	out := map[string]string{}
	for _, decl := range strings.Split(style, ";") {
		name, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		out[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return out
}
