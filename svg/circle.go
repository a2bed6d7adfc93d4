// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/vdtool/svg2vector/xmltree"

// extractCircle converts a circle element into path data on p: two
// 180 degree relative arcs forming the full circle, starting at the
// leftmost point.
func extractCircle(sv *SVG, p *Path, el *xmltree.Element) bool {
	cx, ok := shapeAttr(sv, el, "cx", 0)
	cy, ok2 := shapeAttr(sv, el, "cy", 0)
	r, ok3 := shapeAttr(sv, el, "r", 0)
	if !ok || !ok2 || !ok3 {
		return false
	}

	var pb PathBuilder
	pb.MoveTo(cx-r, cy).
		ArcToRel(r, r, 0, true, true, 2*r, 0).
		ArcToRel(r, r, 0, true, true, -2*r, 0)
	p.Data = pb.Data()
	return true
}
