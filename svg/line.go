// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/vdtool/svg2vector/xmltree"

// extractLine converts a line element into path data on p: a single
// absolute move plus line.
func extractLine(sv *SVG, p *Path, el *xmltree.Element) bool {
	x1, ok := shapeAttr(sv, el, "x1", 0)
	y1, ok2 := shapeAttr(sv, el, "y1", 0)
	x2, ok3 := shapeAttr(sv, el, "x2", 0)
	y2, ok4 := shapeAttr(sv, el, "y2", 0)
	if !ok || !ok2 || !ok3 || !ok4 {
		return false
	}

	var pb PathBuilder
	pb.MoveTo(x1, y1).LineTo(x2, y2)
	p.Data = pb.Data()
	return true
}
