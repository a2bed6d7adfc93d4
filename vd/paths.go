// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vd

import (
	"strconv"
	"strings"

	"github.com/vdtool/svg2vector/svg"
)

// Paint describes how one path is painted, with SVG values already
// converted to drawable form.
type Paint struct {
	FillColor   string
	StrokeColor string
	StrokeWidth float32
	FillAlpha   float32
	StrokeAlpha float32
	EvenOdd     bool
}

// PathSpec is one entry of the flattened path sequence: the path data
// string plus its paint.
type PathSpec struct {
	Data  string
	Paint Paint
}

// Paths returns the processed document as an ordered path+paint
// sequence, one entry per path leaf in paint order, for callers
// rendering directly instead of consuming the XML form. Group
// transforms are not applied to the data; they are reported by the
// tree structure, which this flat form deliberately ignores.
func Paths(sv *svg.SVG) []PathSpec {
	var out []PathSpec
	svg.WalkDown(sv.Root, func(n svg.Node) bool {
		p, ok := n.(*svg.Path)
		if !ok || p.Data.IsEmpty() {
			return svg.Continue
		}
		out = append(out, PathSpec{Data: p.Data.String(), Paint: paintOf(p)})
		return svg.Continue
	})
	return out
}

func paintOf(p *svg.Path) Paint {
	pa := Paint{
		FillColor:   "#FF000000",
		FillAlpha:   1,
		StrokeAlpha: 1,
	}
	if fc, err := Color(p.Property("fill")); err == nil && p.HasProperty("fill") {
		pa.FillColor = fc
	}
	if sc, err := Color(p.Property("stroke")); err == nil && p.HasProperty("stroke") {
		pa.StrokeColor = sc
	}
	pa.StrokeWidth = floatProp(p, "stroke-width", 0)
	pa.FillAlpha = floatProp(p, "fill-opacity", 1)
	pa.StrokeAlpha = floatProp(p, "stroke-opacity", 1)
	pa.EvenOdd = p.Property("fill-rule") == "evenodd"
	return pa
}

func floatProp(p *svg.Path, name string, def float32) float32 {
	val := p.Property(name)
	if val == "" {
		return def
	}
	pct := strings.HasSuffix(val, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 32)
	if err != nil {
		return def
	}
	if pct {
		f /= 100
	}
	return float32(f)
}
