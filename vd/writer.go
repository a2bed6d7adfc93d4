// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vd is the vector drawable output boundary: it serializes a
// processed [svg.SVG] document to the Android vector drawable XML
// format, exposes the result as a flat path+paint sequence for direct
// rendering, and can load an existing drawable back for inspection.
package vd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vdtool/svg2vector/math32"
	"github.com/vdtool/svg2vector/svg"
)

const (
	androidNS = "http://schemas.android.com/apk/res/android"
	aaptNS    = "http://schemas.android.com/aapt"

	indent = "    "
)

// Write serializes a processed document as a vector drawable XML
// document. The document must have been run through [svg.SVG.Process];
// Write does not validate.
func Write(w io.Writer, sv *svg.SVG) error {
	pw := &printer{w: w, sv: sv}
	pw.printf(`<vector xmlns:android=%q`, androidNS)
	if hasGradients(sv) {
		pw.printf("\n%sxmlns:aapt=%q", indent+indent, aaptNS)
	}
	pw.printf("\n%sandroid:width=\"%sdp\"", indent+indent, fmtFloat(sv.BaseWidth))
	pw.printf("\n%sandroid:height=\"%sdp\"", indent+indent, fmtFloat(sv.BaseHeight))
	pw.printf("\n%sandroid:viewportWidth=%q", indent+indent, fmtFloat(sv.ViewBox.Size.X))
	pw.printf("\n%sandroid:viewportHeight=%q", indent+indent, fmtFloat(sv.ViewBox.Size.Y))
	alpha := sv.Root.Property("opacity")
	if alpha == "" {
		alpha = sv.Root.Property("fill-opacity")
	}
	if alpha != "" {
		pw.printf("\n%sandroid:alpha=%q", indent+indent, alpha)
	}
	pw.printf(">\n")
	if sv.ViewBox.Min.X != 0 || sv.ViewBox.Min.Y != 0 {
		// the drawable viewport has no origin; shift content instead
		pw.printf("%s<group android:translateX=%q android:translateY=%q>\n",
			indent, fmtFloat(-sv.ViewBox.Min.X), fmtFloat(-sv.ViewBox.Min.Y))
		pw.children(sv.Root, 2)
		pw.printf("%s</group>\n", indent)
	} else {
		pw.children(sv.Root, 1)
	}
	pw.printf("</vector>\n")
	return pw.err
}

// WriteFile serializes the document to the named file.
func WriteFile(filename string, sv *svg.SVG) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(fp, sv); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

type printer struct {
	w   io.Writer
	sv  *svg.SVG
	err error
}

func (pw *printer) printf(format string, args ...any) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, format, args...)
}

func (pw *printer) children(g *svg.Group, depth int) {
	for _, k := range g.Children {
		pw.node(k, depth)
	}
}

func (pw *printer) node(n svg.Node, depth int) {
	pre := strings.Repeat(indent, depth)
	switch x := n.(type) {
	case *svg.Group:
		pw.printf("%s<group%s>\n", pre, groupAttrs(x.Transform))
		pw.children(x, depth+1)
		pw.printf("%s</group>\n", pre)
	case *svg.Path:
		pw.path(x, depth)
	case *svg.ClipPath:
		pw.printf("%s<group>\n", pre)
		for _, pd := range x.ClipData() {
			pw.printf("%s%s<clip-path android:pathData=%q/>\n", pre, indent, pd.String())
		}
		for _, k := range x.Affected {
			pw.node(k, depth+1)
		}
		pw.printf("%s</group>\n", pre)
	}
}

// groupAttrs renders a group transform as vector drawable group
// attributes. Translation and scale map directly; rotation is emitted
// in degrees about the default pivot. Defaults are omitted.
func groupAttrs(m math32.Matrix2) string {
	var b strings.Builder
	attr := func(name string, v, def float32) {
		if v == def {
			return
		}
		fmt.Fprintf(&b, " android:%s=%q", name, fmtFloat(v))
	}
	tr := m.ExtractTranslation()
	attr("translateX", tr.X, 0)
	attr("translateY", tr.Y, 0)
	if !m.IsTranslationOnly() {
		scx, scy := m.ExtractScale()
		attr("scaleX", scx, 1)
		attr("scaleY", scy, 1)
		attr("rotation", math32.RadToDeg(m.ExtractRot()), 0)
	}
	return b.String()
}

func (pw *printer) path(p *svg.Path, depth int) {
	pre := strings.Repeat(indent, depth)
	pw.printf("%s<path\n", pre)
	pw.printf("%s%sandroid:pathData=%q", pre, indent, p.Data.String())

	if p.FillGradient == nil {
		pw.colorAttr(pre, "fillColor", p.Property("fill"), "#FF000000")
	}
	pw.colorAttr(pre, "strokeColor", p.Property("stroke"), "")
	if sw := p.Property("stroke-width"); sw != "" {
		pw.printf("\n%s%sandroid:strokeWidth=%q", pre, indent, sw)
	}
	pw.alphaAttr(p, pre, "fillAlpha", "fill-opacity")
	pw.alphaAttr(p, pre, "strokeAlpha", "stroke-opacity")
	if fr := p.Property("fill-rule"); fr == "evenodd" {
		pw.printf("\n%s%sandroid:fillType=%q", pre, indent, "evenOdd")
	}
	if lc := p.Property("stroke-linecap"); lc != "" {
		pw.printf("\n%s%sandroid:strokeLineCap=%q", pre, indent, lc)
	}
	if lj := p.Property("stroke-linejoin"); lj != "" {
		pw.printf("\n%s%sandroid:strokeLineJoin=%q", pre, indent, lj)
	}
	if ml := p.Property("stroke-miterlimit"); ml != "" {
		pw.printf("\n%s%sandroid:strokeMiterLimit=%q", pre, indent, ml)
	}

	if p.FillGradient == nil && p.StrokeGradient == nil {
		pw.printf("/>\n")
		return
	}
	pw.printf(">\n")
	if p.FillGradient != nil {
		pw.gradient(p.FillGradient, "android:fillColor", depth+1)
	}
	if p.StrokeGradient != nil {
		pw.gradient(p.StrokeGradient, "android:strokeColor", depth+1)
	}
	pw.printf("%s</path>\n", pre)
}

// colorAttr writes one color attribute, converting the SVG value. A
// conversion failure is a per-attribute diagnostic: the attribute is
// skipped and the default, if any, applies.
func (pw *printer) colorAttr(pre, name, val, def string) {
	if val == "" {
		if def != "" {
			pw.printf("\n%s%sandroid:%s=%q", pre, indent, name, def)
		}
		return
	}
	c, err := Color(val)
	if err != nil {
		if def != "" {
			pw.printf("\n%s%sandroid:%s=%q", pre, indent, name, def)
		}
		return
	}
	if c == "#00000000" && name == "strokeColor" {
		return
	}
	pw.printf("\n%s%sandroid:%s=%q", pre, indent, name, c)
}

func (pw *printer) alphaAttr(p *svg.Path, pre, name, prop string) {
	val := p.Property(prop)
	if val == "" {
		return
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 32)
	if err != nil {
		return
	}
	if strings.HasSuffix(val, "%") {
		f /= 100
	}
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	pw.printf("\n%s%sandroid:%s=%q", pre, indent, name, fmtFloat(float32(f)))
}

// gradient writes an aapt:attr substitute for a color attribute.
func (pw *printer) gradient(gr *svg.Gradient, attr string, depth int) {
	pre := strings.Repeat(indent, depth)
	pw.printf("%s<aapt:attr name=%q>\n", pre, attr)
	pw.printf("%s%s<gradient", pre, indent)
	if gr.Radial {
		pw.printf("\n%s%s%sandroid:type=%q", pre, indent, indent, "radial")
		pw.printf("\n%s%s%sandroid:centerX=%q", pre, indent, indent, fmtFloat(pw.userX(gr, gr.Center.X)))
		pw.printf("\n%s%s%sandroid:centerY=%q", pre, indent, indent, fmtFloat(pw.userY(gr, gr.Center.Y)))
		pw.printf("\n%s%s%sandroid:gradientRadius=%q", pre, indent, indent, fmtFloat(pw.userX(gr, gr.Radius)))
	} else {
		pw.printf("\n%s%s%sandroid:startX=%q", pre, indent, indent, fmtFloat(pw.userX(gr, gr.Start.X)))
		pw.printf("\n%s%s%sandroid:startY=%q", pre, indent, indent, fmtFloat(pw.userY(gr, gr.Start.Y)))
		pw.printf("\n%s%s%sandroid:endX=%q", pre, indent, indent, fmtFloat(pw.userX(gr, gr.End.X)))
		pw.printf("\n%s%s%sandroid:endY=%q", pre, indent, indent, fmtFloat(pw.userY(gr, gr.End.Y)))
	}
	pw.printf(">\n")
	for _, st := range gr.Stops {
		c, err := Color(st.Color)
		if err != nil {
			c = "#FF000000"
		}
		c = withAlpha(c, st.Opacity)
		pw.printf("%s%s%s<item android:offset=%q android:color=%q/>\n",
			pre, indent, indent, fmtFloat(st.Offset), c)
	}
	pw.printf("%s%s</gradient>\n", pre, indent)
	pw.printf("%s</aapt:attr>\n", pre)
}

// userX/userY convert a gradient coordinate to user space: fractional
// (objectBoundingBox) coordinates scale by the viewport, which
// approximates the bounding box after flattening.
func (pw *printer) userX(gr *svg.Gradient, v float32) float32 {
	if gr.UserSpace {
		return v
	}
	return v * pw.sv.ViewBox.Size.X
}

func (pw *printer) userY(gr *svg.Gradient, v float32) float32 {
	if gr.UserSpace {
		return v
	}
	return v * pw.sv.ViewBox.Size.Y
}

// withAlpha folds a stop opacity into an #RRGGBB or #AARRGGBB color.
func withAlpha(c string, opacity float32) string {
	if opacity >= 1 || !strings.HasPrefix(c, "#") {
		return c
	}
	a := int(opacity*255 + 0.5)
	switch len(c) {
	case 7:
		return fmt.Sprintf("#%02x%s", a, c[1:])
	case 9:
		// scale the existing alpha
		prev, err := strconv.ParseUint(c[1:3], 16, 8)
		if err != nil {
			return c
		}
		return fmt.Sprintf("#%02x%s", int(float32(prev)*opacity+0.5), c[3:])
	}
	return c
}

func hasGradients(sv *svg.SVG) bool {
	found := false
	svg.WalkDown(sv.Root, func(n svg.Node) bool {
		if p, ok := n.(*svg.Path); ok && (p.FillGradient != nil || p.StrokeGradient != nil) {
			found = true
			return svg.Break
		}
		return svg.Continue
	})
	return found
}

func fmtFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
