// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// PathCommand is one command of a path-command sequence: the command
// letter as written (lower case means relative to the current point)
// and its numeric arguments.
type PathCommand struct {
	Op   byte
	Args []float32
}

// PathData is an ordered path-command sequence. It is immutable once
// extracted from a shape.
type PathData []PathCommand

// IsEmpty reports whether there are no commands.
func (pd PathData) IsEmpty() bool { return len(pd) == 0 }

// String returns the sequence in SVG/vector-drawable pathData syntax.
func (pd PathData) String() string {
	var b strings.Builder
	for _, c := range pd {
		b.WriteByte(c.Op)
		for i, a := range c.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatFloat(float64(a), 'g', -1, 32))
		}
	}
	return b.String()
}

// PathBuilder accumulates path commands for shape-to-path conversion.
// Each command is available in absolute or relative-to-current-point
// form.
type PathBuilder struct {
	data PathData
}

// Data returns the accumulated command sequence.
func (pb *PathBuilder) Data() PathData { return pb.data }

func (pb *PathBuilder) add(op byte, args ...float32) *PathBuilder {
	pb.data = append(pb.data, PathCommand{Op: op, Args: args})
	return pb
}

// MoveTo starts a new subpath at the absolute point (x, y).
func (pb *PathBuilder) MoveTo(x, y float32) *PathBuilder { return pb.add('M', x, y) }

// MoveToRel starts a new subpath offset (dx, dy) from the current point.
func (pb *PathBuilder) MoveToRel(dx, dy float32) *PathBuilder { return pb.add('m', dx, dy) }

// LineTo draws a line to the absolute point (x, y).
func (pb *PathBuilder) LineTo(x, y float32) *PathBuilder { return pb.add('L', x, y) }

// LineToRel draws a line offset (dx, dy) from the current point.
func (pb *PathBuilder) LineToRel(dx, dy float32) *PathBuilder { return pb.add('l', dx, dy) }

// HorizontalTo draws a horizontal line to the absolute x coordinate.
func (pb *PathBuilder) HorizontalTo(x float32) *PathBuilder { return pb.add('H', x) }

// HorizontalToRel draws a horizontal line dx from the current point.
func (pb *PathBuilder) HorizontalToRel(dx float32) *PathBuilder { return pb.add('h', dx) }

// VerticalTo draws a vertical line to the absolute y coordinate.
func (pb *PathBuilder) VerticalTo(y float32) *PathBuilder { return pb.add('V', y) }

// VerticalToRel draws a vertical line dy from the current point.
func (pb *PathBuilder) VerticalToRel(dy float32) *PathBuilder { return pb.add('v', dy) }

// ArcTo draws an elliptical arc with radii (rx, ry) and the given
// x-axis rotation in degrees to the absolute point (x, y).
func (pb *PathBuilder) ArcTo(rx, ry, rot float32, largeArc, sweep bool, x, y float32) *PathBuilder {
	return pb.add('A', rx, ry, rot, boolArg(largeArc), boolArg(sweep), x, y)
}

// ArcToRel draws an elliptical arc to the point offset (dx, dy) from
// the current point.
func (pb *PathBuilder) ArcToRel(rx, ry, rot float32, largeArc, sweep bool, dx, dy float32) *PathBuilder {
	return pb.add('a', rx, ry, rot, boolArg(largeArc), boolArg(sweep), dx, dy)
}

// Close closes the current subpath.
func (pb *PathBuilder) Close() *PathBuilder { return pb.add('Z') }

func boolArg(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// ParsePathData parses SVG path data syntax (the d attribute) into a
// command sequence. Unknown command letters are an error; argument
// counts are otherwise taken as written.
func ParsePathData(d string) (PathData, error) {
	var pd PathData
	var cur *PathCommand
	num := -1 // start index of the number being scanned
	flush := func(end int) error {
		if num < 0 {
			return nil
		}
		f, err := strconv.ParseFloat(d[num:end], 32)
		num = -1
		if err != nil {
			return fmt.Errorf("svg: path data: %w", err)
		}
		if cur == nil {
			return fmt.Errorf("svg: path data: number before any command")
		}
		cur.Args = append(cur.Args, float32(f))
		return nil
	}
	for i := 0; i < len(d); i++ {
		c := d[i]
		switch {
		case c >= '0' && c <= '9' || c == '.':
			if num < 0 {
				num = i
			}
		case c == 'e' || c == 'E':
			if num < 0 {
				return nil, fmt.Errorf("svg: path data: unknown command %q", c)
			}
		case c == '-' || c == '+':
			// a sign begins a new number unless it follows an exponent
			if num >= 0 && (d[i-1] == 'e' || d[i-1] == 'E') {
				continue
			}
			if err := flush(i); err != nil {
				return nil, err
			}
			num = i
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r':
			if err := flush(i); err != nil {
				return nil, err
			}
		default:
			if !isPathCommand(c) {
				return nil, fmt.Errorf("svg: path data: unknown command %q", c)
			}
			if err := flush(i); err != nil {
				return nil, err
			}
			pd = append(pd, PathCommand{Op: c})
			cur = &pd[len(pd)-1]
		}
	}
	if err := flush(len(d)); err != nil {
		return nil, err
	}
	return pd, nil
}

func isPathCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}
