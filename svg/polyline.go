// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/vdtool/svg2vector/math32"
	"github.com/vdtool/svg2vector/xmltree"
)

// extractPoly converts a polygon or polyline element into path data
// on p. The first coordinate pair is an absolute move; each subsequent
// pair is a line relative to the previous point. A polygon closes the
// path, a polyline does not.
func extractPoly(sv *SVG, p *Path, el *xmltree.Element, closed bool) bool {
	pstr := el.Attr("points")
	pts, err := math32.ReadPoints(pstr)
	if err != nil {
		sv.logf(el.Line, "%s: invalid points attribute %q: %v", el.Name, pstr, err)
		return false
	}
	if len(pts)%2 != 0 {
		sv.logf(el.Line, "%s: odd number of coordinates in points attribute", el.Name)
		return false
	}
	if len(pts) < 4 {
		return false
	}

	var pb PathBuilder
	pb.MoveTo(pts[0], pts[1])
	for i := 2; i < len(pts); i += 2 {
		pb.LineToRel(pts[i]-pts[i-2], pts[i+1]-pts[i-1])
	}
	if closed {
		pb.Close()
	}
	p.Data = pb.Data()
	return true
}
