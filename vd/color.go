// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vd

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color converts an SVG color value to the #RRGGBB or #AARRGGBB form
// used by vector drawables. Accepted inputs: hex colors (#rgb,
// #rrggbb; #rgba and #rrggbbaa are reordered from RGBA to ARGB),
// "none", "currentColor", rgb()/rgba() functional notation with
// integer or percentage components, and the CSS/SVG color keywords.
func Color(val string) (string, error) {
	color := strings.TrimSpace(val)

	if strings.HasPrefix(color, "#") {
		// vector drawables put alpha first
		switch len(color) {
		case 5:
			return "#" + color[4:] + color[1:4], nil
		case 9:
			return "#" + color[7:] + color[1:7], nil
		}
		return color, nil
	}

	switch color {
	case "none", "transparent":
		return "#00000000", nil
	case "currentColor":
		// no paint context to resolve against; the initial value of
		// the currentColor property is black
		return "#000000", nil
	}

	if rgb, ok := strings.CutPrefix(color, "rgb("); ok && strings.HasSuffix(rgb, ")") {
		comps, err := colorComponents(strings.TrimSuffix(rgb, ")"), 3)
		if err != nil {
			return "", fmt.Errorf("vd: invalid color %q: %w", val, err)
		}
		return fmt.Sprintf("#%02x%02x%02x", comps[0], comps[1], comps[2]), nil
	}
	if rgba, ok := strings.CutPrefix(color, "rgba("); ok && strings.HasSuffix(rgba, ")") {
		parts := strings.Split(strings.TrimSuffix(rgba, ")"), ",")
		if len(parts) != 4 {
			return "", fmt.Errorf("vd: invalid color %q: expected 4 components, got %d", val, len(parts))
		}
		comps, err := colorComponents(strings.Join(parts[:3], ","), 3)
		if err != nil {
			return "", fmt.Errorf("vd: invalid color %q: %w", val, err)
		}
		a, err := alphaComponent(parts[3])
		if err != nil {
			return "", fmt.Errorf("vd: invalid color %q: %w", val, err)
		}
		// RGBA to ARGB
		return fmt.Sprintf("#%02x%02x%02x%02x", a, comps[0], comps[1], comps[2]), nil
	}

	kw := strings.ToLower(color)
	if c, ok := colornames.Map[kw]; ok {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
	}
	if kw == "rebeccapurple" { // CSS Color 4 addition, absent from the SVG 1.1 table
		return "#663399", nil
	}
	return "", fmt.Errorf("vd: unrecognized color %q", val)
}

// colorComponents parses exactly want comma-separated color components,
// each an integer 0-255 or a percentage, clamped to range.
func colorComponents(list string, want int) ([]int, error) {
	parts := strings.Split(list, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d components, got %d", want, len(parts))
	}
	comps := make([]int, want)
	for i, part := range parts {
		part = strings.TrimSpace(part)
		var c int
		if pct, ok := strings.CutSuffix(part, "%"); ok {
			f, err := strconv.ParseFloat(pct, 32)
			if err != nil {
				return nil, err
			}
			c = int(f*255/100 + 0.5)
		} else {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, err
			}
			c = n
		}
		comps[i] = min(255, max(0, c))
	}
	return comps, nil
}

// alphaComponent parses the rgba() alpha: the CSS 0-1 number (or
// percentage) form scales to 255; values above 1 are taken as an
// already-scaled 0-255 component.
func alphaComponent(part string) (int, error) {
	part = strings.TrimSpace(part)
	pct, isPct := strings.CutSuffix(part, "%")
	f, err := strconv.ParseFloat(pct, 32)
	if err != nil {
		return 0, err
	}
	switch {
	case isPct:
		f = f * 255 / 100
	case f <= 1:
		f = f * 255
	}
	return min(255, max(0, int(f+0.5))), nil
}
