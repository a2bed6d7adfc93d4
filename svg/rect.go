// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/vdtool/svg2vector/math32"
	"github.com/vdtool/svg2vector/xmltree"
)

// extractRect converts a rect element into path data on p.
// It reports whether any path was emitted.
func extractRect(sv *SVG, p *Path, el *xmltree.Element) bool {
	if p.Property("opacity") == "0" {
		return false
	}
	x, ok := shapeAttr(sv, el, "x", 0)
	y, ok2 := shapeAttr(sv, el, "y", 0)
	w, ok3 := shapeAttr(sv, el, "width", 0)
	h, ok4 := shapeAttr(sv, el, "height", 0)
	if !ok || !ok2 || !ok3 || !ok4 {
		return false
	}
	rx, ok := shapeAttr(sv, el, "rx", 0)
	ry, ok2 := shapeAttr(sv, el, "ry", 0)
	if !ok || !ok2 {
		return false
	}

	var pb PathBuilder
	if rx <= 0 && ry <= 0 {
		pb.MoveTo(x, y).
			LineTo(x+w, y).
			LineTo(x+w, y+h).
			LineTo(x, y+h).
			Close()
	} else {
		// one radius defaults to the other; both clamp to half a side
		if rx <= 0 {
			rx = ry
		}
		if ry <= 0 {
			ry = rx
		}
		rx = math32.Min(rx, w/2)
		ry = math32.Min(ry, h/2)
		pb.MoveTo(x+rx, y).
			LineTo(x+w-rx, y).
			ArcTo(rx, ry, 0, false, true, x+w, y+ry).
			LineTo(x+w, y+h-ry).
			ArcTo(rx, ry, 0, false, true, x+w-rx, y+h).
			LineTo(x+rx, y+h).
			ArcTo(rx, ry, 0, false, true, x, y+h-ry).
			LineTo(x, y+ry).
			ArcTo(rx, ry, 0, false, true, x+rx, y).
			Close()
	}
	p.Data = pb.Data()
	return true
}
