// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xmltree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	root, err := Decode(strings.NewReader(`<svg viewBox="0 0 24 24">
<g id="a">
<rect width="4"/>
</g>
<style>.x { fill: red; }</style>
</svg>`))
	require.NoError(t, err)
	assert.Equal(t, "svg", root.Name)
	assert.Equal(t, "0 0 24 24", root.Attr("viewBox"))
	assert.False(t, root.HasAttr("width"))
	require.Len(t, root.Children, 2)

	g := root.Children[0]
	assert.Equal(t, "g", g.Name)
	assert.Equal(t, "a", g.Attr("id"))
	assert.Equal(t, 2, g.Line)
	require.Len(t, g.Children, 1)
	assert.Equal(t, 3, g.Children[0].Line)

	style := root.Children[1]
	assert.Equal(t, "style", style.Name)
	assert.Contains(t, style.Text, ".x { fill: red; }")
}

func TestDecodeNamespacePrefixDropped(t *testing.T) {
	root, err := Decode(strings.NewReader(
		`<svg xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="#r"/></svg>`))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "#r", root.Children[0].Attr("href"))
}

func TestDecodeLenient(t *testing.T) {
	// unclosed element and an HTML entity: the decoder must not choke
	root, err := Decode(strings.NewReader(`<svg><desc>a &nbsp; b</desc><g></svg>`))
	require.NoError(t, err)
	assert.Equal(t, "svg", root.Name)
}

func TestDecodeNoRoot(t *testing.T) {
	_, err := Decode(strings.NewReader("   "))
	assert.Error(t, err)
}
