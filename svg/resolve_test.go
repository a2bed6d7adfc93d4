// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUse(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<defs><rect id="r" width="4" height="4"/></defs>
		<use href="#r" x="3" y="4"/>
	</svg>`)
	sv.ResolveReferences()
	assert.Empty(t, sv.Diagnostics())
	require.Len(t, sv.Root.Children, 1)
	g, ok := sv.Root.Children[0].(*Group)
	require.True(t, ok, "use must be replaced by a group")
	assert.Equal(t, float32(3), g.Transform.X0)
	assert.Equal(t, float32(4), g.Transform.Y0)
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.Equal(t, "MLLLZ", ops(p.Data))
}

func TestResolveUseTransform(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<defs><rect id="r" width="4" height="4"/></defs>
		<use href="#r" x="3" y="4" transform="scale(2)"/>
	</svg>`)
	sv.ResolveReferences()
	assert.Empty(t, sv.Diagnostics())
	require.Len(t, sv.Root.Children, 1)
	g, ok := sv.Root.Children[0].(*Group)
	require.True(t, ok, "use must be replaced by a group")
	// x/y acts as a translate appended after the transform, so the
	// scale applies to the offset too
	assert.Equal(t, float32(2), g.Transform.XX)
	assert.Equal(t, float32(2), g.Transform.YY)
	assert.Equal(t, float32(6), g.Transform.X0)
	assert.Equal(t, float32(8), g.Transform.Y0)
}

func TestResolveUseCopyIsIndependent(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<defs><rect id="r" width="4" height="4" fill="#ff0000"/></defs>
		<use href="#r"/>
		<use href="#r"/>
	</svg>`)
	sv.ResolveReferences()
	var paths []*Path
	WalkDown(sv.Root, func(n Node) bool {
		if p, ok := n.(*Path); ok {
			paths = append(paths, p)
		}
		return Continue
	})
	require.Len(t, paths, 2)
	paths[0].SetProperty("fill", "#00ff00")
	assert.Equal(t, "#ff0000", paths[1].Property("fill"))
}

func TestResolveUseChain(t *testing.T) {
	// b references a; the outer use references b and must wait until
	// b's own reference has been resolved
	sv := load(t, `<svg viewBox="0 0 24 24">
		<defs>
			<rect id="a" width="4" height="4"/>
			<use id="b" href="#a" x="1" y="1"/>
		</defs>
		<use href="#b" x="2" y="2"/>
	</svg>`)
	sv.ResolveReferences()
	assert.Empty(t, sv.Diagnostics())
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.Equal(t, "MLLLZ", ops(p.Data))
}

func TestResolveCycle(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<use id="a" href="#b"/>
		<use id="b" href="#a"/>
	</svg>`)
	sv.ResolveReferences()
	d := sv.Diagnostics()
	assert.Contains(t, d, "circular reference")
	assert.Contains(t, d, "a -> b -> a")
}

func TestResolveBrokenReference(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<use id="u" href="#ghost"/>
	</svg>`)
	sv.ResolveReferences()
	assert.Contains(t, sv.Diagnostics(), `unresolved reference from "u" to "ghost"`)
}

func TestGradientStopInheritance(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<defs>
			<linearGradient id="base">
				<stop offset="0" stop-color="#ff0000"/>
				<stop offset="1" stop-color="#0000ff"/>
			</linearGradient>
			<linearGradient id="child" href="#base" x1="0" y1="0" x2="0" y2="1"/>
		</defs>
		<rect fill="url(#child)" width="4" height="4"/>
	</svg>`)
	sv.ResolveReferences()
	sv.bindGradientPaints()
	assert.Empty(t, sv.Diagnostics())
	gr, ok := sv.NodeByID("child").(*Gradient)
	require.True(t, ok)
	require.Len(t, gr.Stops, 2)
	assert.Equal(t, "#ff0000", gr.Stops[0].Color)

	p := firstPath(sv)
	require.NotNil(t, p)
	assert.Same(t, gr, p.FillGradient)
}

func TestGradientMissingPaintRef(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<rect fill="url(#nope)" width="4" height="4"/>
	</svg>`)
	sv.ResolveReferences()
	sv.bindGradientPaints()
	assert.Contains(t, sv.Diagnostics(), `fill: reference to missing id "nope"`)
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.False(t, p.HasProperty("fill"))
	assert.Nil(t, p.FillGradient)
}

func TestGradientStopOffsetsNonDecreasing(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<defs>
			<linearGradient id="lg">
				<stop offset="50%" stop-color="#ff0000"/>
				<stop offset="0.2" stop-color="#00ff00"/>
				<stop offset="1" stop-color="#0000ff"/>
			</linearGradient>
		</defs>
		<rect fill="url(#lg)" width="4" height="4"/>
	</svg>`)
	gr, ok := sv.NodeByID("lg").(*Gradient)
	require.True(t, ok)
	require.Len(t, gr.Stops, 3)
	assert.Equal(t, float32(0.5), gr.Stops[0].Offset)
	assert.Equal(t, float32(0.5), gr.Stops[1].Offset) // raised to the previous max
	assert.Equal(t, float32(1), gr.Stops[2].Offset)
}

func TestClipPathSubstitution(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<defs><clipPath id="cp"><rect width="10" height="10"/></clipPath></defs>
		<rect clip-path="url(#cp)" width="4" height="4"/>
	</svg>`)
	require.NoError(t, sv.Process())
	var cp *ClipPath
	WalkDown(sv.Root, func(n Node) bool {
		if c, ok := n.(*ClipPath); ok {
			cp = c
			return Break
		}
		return Continue
	})
	require.NotNil(t, cp, "the clipped node must be wrapped in a clip path copy")
	require.Len(t, cp.Affected, 1)
	_, ok := cp.Affected[0].(*Path)
	assert.True(t, ok)
	assert.Len(t, cp.ClipData(), 1)
}

func TestClipPathPerUseCopies(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<defs><clipPath id="cp"><rect width="10" height="10"/></clipPath></defs>
		<rect clip-path="url(#cp)" width="4" height="4"/>
		<circle clip-path="url(#cp)" cx="5" cy="5" r="2"/>
	</svg>`)
	require.NoError(t, sv.Process())
	var cps []*ClipPath
	WalkDown(sv.Root, func(n Node) bool {
		if c, ok := n.(*ClipPath); ok {
			cps = append(cps, c)
		}
		return Continue
	})
	require.Len(t, cps, 2)
	assert.NotSame(t, cps[0], cps[1])
	require.Len(t, cps[0].Affected, 1)
	require.Len(t, cps[1].Affected, 1)
	assert.NotSame(t, cps[0].Affected[0], cps[1].Affected[0])
}

func TestClipPathBrokenReference(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<rect clip-path="url(#nope)" width="4" height="4"/>
	</svg>`)
	require.NoError(t, sv.Process())
	assert.Contains(t, sv.Diagnostics(), `clip-path: reference to undefined id "nope"`)
	p := firstPath(sv)
	require.NotNil(t, p, "the node stays in the tree, unclipped")
}
