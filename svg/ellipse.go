// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/vdtool/svg2vector/xmltree"

// extractEllipse converts an ellipse element into path data on p: two
// 180 degree relative arcs, emitted only if both radii are positive.
func extractEllipse(sv *SVG, p *Path, el *xmltree.Element) bool {
	cx, ok := shapeAttr(sv, el, "cx", 0)
	cy, ok2 := shapeAttr(sv, el, "cy", 0)
	rx, ok3 := shapeAttr(sv, el, "rx", 0)
	ry, ok4 := shapeAttr(sv, el, "ry", 0)
	if !ok || !ok2 || !ok3 || !ok4 {
		return false
	}
	if rx <= 0 || ry <= 0 {
		return false
	}

	var pb PathBuilder
	pb.MoveTo(cx-rx, cy).
		ArcToRel(rx, ry, 0, true, true, 2*rx, 0).
		ArcToRel(rx, ry, 0, true, true, -2*rx, 0).
		Close()
	p.Data = pb.Data()
	return true
}
