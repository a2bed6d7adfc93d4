// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleClassCascade(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<style>.red { fill: #ff0000; }</style>
		<rect class="red" width="4" height="4"/>
	</svg>`)
	sv.ApplyStyles()
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.Equal(t, "#ff0000", p.Property("fill"))
}

func TestStyleClassCascadeOnGroup(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<style>.red { fill: #ff0000; }</style>
		<g class="red"><rect width="4" height="4"/></g>
	</svg>`)
	sv.ApplyStyles()
	require.Len(t, sv.Root.Children, 1)
	g, ok := sv.Root.Children[0].(*Group)
	require.True(t, ok)
	assert.Equal(t, "#ff0000", g.Property("fill"))
}

func TestStyleGradientPaintBinds(t *testing.T) {
	// a gradient paint introduced by the cascade must still bind to
	// the gradient node
	sv := load(t, `<svg viewBox="0 0 24 24">
		<style>.gr { fill: url(#lg); }</style>
		<defs>
			<linearGradient id="lg">
				<stop offset="0" stop-color="#ff0000"/>
				<stop offset="1" stop-color="#0000ff"/>
			</linearGradient>
		</defs>
		<rect class="gr" width="4" height="4"/>
	</svg>`)
	require.NoError(t, sv.Process())
	assert.Empty(t, sv.Diagnostics())
	p := firstPath(sv)
	require.NotNil(t, p)
	require.NotNil(t, p.FillGradient)
	assert.Equal(t, "#ff0000", p.FillGradient.Stops[0].Color)
}

func TestStyleInlineWins(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<style>.red { fill: #ff0000; stroke: #000000; }</style>
		<rect class="red" fill="#00ff00" width="4" height="4"/>
	</svg>`)
	sv.ApplyStyles()
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.Equal(t, "#00ff00", p.Property("fill"))
	assert.Equal(t, "#000000", p.Property("stroke"))
}

func TestStyleRedeclarationAccumulates(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<style>
			.a { fill: red; }
			.a { fill: blue; stroke: black; }
		</style>
		<rect class="a" width="4" height="4"/>
	</svg>`)
	sv.ApplyStyles()
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.Equal(t, "blue", p.Property("fill"), "the later block overrides")
	assert.Equal(t, "black", p.Property("stroke"))
}

func TestStyleCommaSelectors(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<style>.a, .b { stroke: black; }</style>
		<rect class="a" width="4" height="4"/>
		<rect class="b" width="4" height="4"/>
	</svg>`)
	sv.ApplyStyles()
	WalkDown(sv.Root, func(n Node) bool {
		if p, ok := n.(*Path); ok {
			assert.Equal(t, "black", p.Property("stroke"))
		}
		return Continue
	})
}

func TestStyleUnrecognizedDropped(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<style>.x { font-size: 10px; fill: #ff0000; }</style>
		<rect class="x" width="4" height="4"/>
	</svg>`)
	sv.ApplyStyles()
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.False(t, p.HasProperty("font-size"))
	assert.Equal(t, "#ff0000", p.Property("fill"))
}

func TestStyleOpacityFoldsIntoFillOpacity(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<style>.o { opacity: 0.5; }</style>
		<rect class="o" width="4" height="4"/>
	</svg>`)
	sv.ApplyStyles()
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.Equal(t, "0.5", p.Property("fill-opacity"))
}

func TestStyleClipPathDeclaration(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<defs><clipPath id="cp"><rect width="10" height="10"/></clipPath></defs>
		<style>.c { clip-path: url(#cp); }</style>
		<rect class="c" width="4" height="4"/>
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
	require.NotNil(t, cp, "a class clip-path declaration must clip its users")
	assert.Len(t, cp.Affected, 1)
}

func TestStyleAppliesToUseCopies(t *testing.T) {
	sv := load(t, `<svg viewBox="0 0 24 24">
		<style>.red { fill: #ff0000; }</style>
		<defs><rect id="r" class="red" width="4" height="4"/></defs>
		<use href="#r"/>
	</svg>`)
	sv.ResolveReferences()
	sv.ApplyStyles()
	p := firstPath(sv)
	require.NotNil(t, p)
	assert.Equal(t, "#ff0000", p.Property("fill"))
}
