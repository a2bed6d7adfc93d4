// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"github.com/vdtool/svg2vector/math32"
)

// ViewBox defines the coordinate system for the drawing: the origin
// offset and the size of the viewport in user units.
type ViewBox struct {
	// Min is the offset or starting point of the viewport.
	Min math32.Vector2

	// Size is the size of the viewport.
	Size math32.Vector2
}

// SetString sets the viewbox from a standard SVG viewBox attribute
// value: four numbers min-x, min-y, width, height.
func (vb *ViewBox) SetString(str string) error {
	pts, err := math32.ReadPoints(str)
	if err != nil {
		return fmt.Errorf("svg: invalid viewBox %q: %w", str, err)
	}
	if len(pts) != 4 {
		return fmt.Errorf("svg: viewBox %q must have 4 numbers, got %d", str, len(pts))
	}
	vb.Min = math32.Vec2(pts[0], pts[1])
	vb.Size = math32.Vec2(pts[2], pts[3])
	return nil
}

func (vb ViewBox) String() string {
	return fmt.Sprintf("%g %g %g %g", vb.Min.X, vb.Min.Y, vb.Size.X, vb.Size.Y)
}
