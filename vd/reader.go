// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vd

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/vdtool/svg2vector/xmltree"
)

// Tree is a vector drawable document loaded back from its XML form,
// for inspection. It is the reverse direction of [Write] and performs
// no conversion.
type Tree struct {
	// BaseWidth and BaseHeight are the intrinsic size in dp. The unit
	// suffix is required but otherwise ignored.
	BaseWidth  float32
	BaseHeight float32

	// PortWidth and PortHeight are the viewport size in drawing units.
	PortWidth  float32
	PortHeight float32

	RootAlpha float32
	RootTint  string

	Root *TreeGroup
}

// TreeElement is one element of a loaded drawable: a [TreeGroup] or a
// [TreePath].
type TreeElement interface {
	ElementName() string
}

// TreeGroup is a group element with its transform attributes and
// ordered children.
type TreeGroup struct {
	Name       string
	TranslateX float32
	TranslateY float32
	ScaleX     float32
	ScaleY     float32
	Rotation   float32
	PivotX     float32
	PivotY     float32
	Children   []TreeElement
}

func (g *TreeGroup) ElementName() string { return "group" }

// TreePath is a path or clip-path element.
type TreePath struct {
	Name        string
	Data        string
	FillColor   string
	StrokeColor string
	StrokeWidth float32
	FillAlpha   float32
	StrokeAlpha float32

	// Clip marks a clip-path element; clip paths carry no paint.
	Clip bool
}

func (p *TreePath) ElementName() string {
	if p.Clip {
		return "clip-path"
	}
	return "path"
}

// sizePattern matches a dimension value with a required unit suffix
// (24dp, 16px, ...). Unitless values are viewport, not size, values.
var sizePattern = regexp.MustCompile(`^\s*(\d+(\.\d+)*)\s*([a-zA-Z]+)\s*$`)

// Read loads a vector drawable XML document into a [Tree].
func Read(r io.Reader) (*Tree, error) {
	root, err := xmltree.Decode(r)
	if err != nil {
		return nil, err
	}
	if root.Name != "vector" {
		return nil, fmt.Errorf("vd: root element is <%s>, not <vector>", root.Name)
	}
	t := &Tree{
		BaseWidth:  1,
		BaseHeight: 1,
		PortWidth:  1,
		PortHeight: 1,
		RootAlpha:  1,
		Root:       &TreeGroup{ScaleX: 1, ScaleY: 1},
	}
	t.parseRoot(root)
	parseTreeChildren(t.Root, root)
	return t, nil
}

// ReadFile loads the vector drawable XML document in the named file.
func ReadFile(filename string) (*Tree, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Read(fp)
}

func (t *Tree) parseRoot(el *xmltree.Element) {
	for _, at := range el.Attrs {
		switch at.Name {
		case "width":
			if m := sizePattern.FindStringSubmatch(at.Value); m != nil {
				t.BaseWidth = parseFloat(m[1], t.BaseWidth)
			}
		case "height":
			if m := sizePattern.FindStringSubmatch(at.Value); m != nil {
				t.BaseHeight = parseFloat(m[1], t.BaseHeight)
			}
		case "viewportWidth":
			t.PortWidth = parseFloat(at.Value, t.PortWidth)
		case "viewportHeight":
			t.PortHeight = parseFloat(at.Value, t.PortHeight)
		case "alpha":
			t.RootAlpha = parseFloat(at.Value, t.RootAlpha)
		case "tint":
			if len(at.Value) > 0 && at.Value[0] == '#' {
				t.RootTint = at.Value
			}
		}
	}
}

func parseTreeChildren(g *TreeGroup, el *xmltree.Element) {
	for _, k := range el.Children {
		switch k.Name {
		case "group":
			ng := parseTreeGroup(k)
			g.Children = append(g.Children, ng)
			parseTreeChildren(ng, k)
		case "path":
			g.Children = append(g.Children, parseTreePath(k, false))
		case "clip-path":
			g.Children = append(g.Children, parseTreePath(k, true))
		}
	}
}

func parseTreeGroup(el *xmltree.Element) *TreeGroup {
	return &TreeGroup{
		Name:       el.Attr("name"),
		TranslateX: parseFloat(el.Attr("translateX"), 0),
		TranslateY: parseFloat(el.Attr("translateY"), 0),
		ScaleX:     parseFloat(el.Attr("scaleX"), 1),
		ScaleY:     parseFloat(el.Attr("scaleY"), 1),
		Rotation:   parseFloat(el.Attr("rotation"), 0),
		PivotX:     parseFloat(el.Attr("pivotX"), 0),
		PivotY:     parseFloat(el.Attr("pivotY"), 0),
	}
}

func parseTreePath(el *xmltree.Element, clip bool) *TreePath {
	return &TreePath{
		Name:        el.Attr("name"),
		Data:        el.Attr("pathData"),
		FillColor:   el.Attr("fillColor"),
		StrokeColor: el.Attr("strokeColor"),
		StrokeWidth: parseFloat(el.Attr("strokeWidth"), 0),
		FillAlpha:   parseFloat(el.Attr("fillAlpha"), 1),
		StrokeAlpha: parseFloat(el.Attr("strokeAlpha"), 1),
		Clip:        clip,
	}
}

func parseFloat(val string, def float32) float32 {
	if val == "" {
		return def
	}
	f, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return def
	}
	return float32(f)
}
