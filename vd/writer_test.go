// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdtool/svg2vector/svg"
)

func convert(t *testing.T, doc string) string {
	t.Helper()
	sv := svg.NewSVG()
	require.NoError(t, sv.ReadXML(strings.NewReader(doc)))
	require.NoError(t, sv.Process())
	var b strings.Builder
	require.NoError(t, Write(&b, sv))
	return b.String()
}

func TestWriteBasic(t *testing.T) {
	out := convert(t, `<svg viewBox="0 0 24 24" width="24" height="24">
		<rect width="10" height="10" fill="#ff0000"/>
	</svg>`)
	assert.Contains(t, out, `<vector xmlns:android="http://schemas.android.com/apk/res/android"`)
	assert.Contains(t, out, `android:width="24dp"`)
	assert.Contains(t, out, `android:height="24dp"`)
	assert.Contains(t, out, `android:viewportWidth="24"`)
	assert.Contains(t, out, `android:viewportHeight="24"`)
	assert.Contains(t, out, `android:pathData="M0,0L10,0L10,10L0,10Z"`)
	assert.Contains(t, out, `android:fillColor="#ff0000"`)
	assert.NotContains(t, out, "aapt", "no gradients, no aapt namespace")
}

func TestWriteDefaultFill(t *testing.T) {
	out := convert(t, `<svg viewBox="0 0 24 24">
		<rect width="10" height="10"/>
	</svg>`)
	assert.Contains(t, out, `android:fillColor="#FF000000"`)
}

func TestWriteGroupTransform(t *testing.T) {
	out := convert(t, `<svg viewBox="0 0 24 24">
		<g transform="translate(3,4)">
			<rect width="4" height="4"/>
			<circle cx="2" cy="2" r="1"/>
		</g>
	</svg>`)
	assert.Contains(t, out, `<group android:translateX="3" android:translateY="4">`)
}

func TestWriteScaleGroup(t *testing.T) {
	out := convert(t, `<svg viewBox="0 0 24 24">
		<g transform="scale(2,3)">
			<rect width="4" height="4"/>
			<rect x="5" width="4" height="4"/>
		</g>
	</svg>`)
	assert.Contains(t, out, `android:scaleX="2"`)
	assert.Contains(t, out, `android:scaleY="3"`)
}

func TestWriteViewBoxOrigin(t *testing.T) {
	out := convert(t, `<svg viewBox="-12 -12 24 24">
		<circle cx="0" cy="0" r="5"/>
	</svg>`)
	assert.Contains(t, out, `android:translateX="12"`)
	assert.Contains(t, out, `android:translateY="12"`)
}

func TestWriteStrokeAttrs(t *testing.T) {
	out := convert(t, `<svg viewBox="0 0 24 24">
		<rect width="10" height="10" fill="none" stroke="blue"
			stroke-width="2" stroke-linecap="round" stroke-linejoin="bevel"
			fill-rule="evenodd"/>
	</svg>`)
	assert.Contains(t, out, `android:strokeColor="#0000ff"`)
	assert.Contains(t, out, `android:strokeWidth="2"`)
	assert.Contains(t, out, `android:strokeLineCap="round"`)
	assert.Contains(t, out, `android:strokeLineJoin="bevel"`)
	assert.Contains(t, out, `android:fillType="evenOdd"`)
	assert.Contains(t, out, `android:fillColor="#00000000"`)
}

func TestWriteGradient(t *testing.T) {
	out := convert(t, `<svg viewBox="0 0 24 24">
		<defs>
			<linearGradient id="lg" x1="0" y1="0" x2="1" y2="0">
				<stop offset="0" stop-color="#ff0000"/>
				<stop offset="1" stop-color="#0000ff" stop-opacity="0.5"/>
			</linearGradient>
		</defs>
		<rect width="10" height="10" fill="url(#lg)"/>
	</svg>`)
	assert.Contains(t, out, `xmlns:aapt="http://schemas.android.com/aapt"`)
	assert.Contains(t, out, `<aapt:attr name="android:fillColor">`)
	assert.Contains(t, out, `android:startX="0"`)
	assert.Contains(t, out, `android:endX="24"`, "fractional coords scale to the viewport")
	assert.Contains(t, out, `android:offset="0"`)
	assert.Contains(t, out, `android:color="#ff0000"`)
	assert.Contains(t, out, `android:color="#800000ff"`, "stop opacity folds into the color")
	assert.NotContains(t, out, `android:fillColor="#`, "gradient replaces the flat fill")
}

func TestWriteClipPath(t *testing.T) {
	out := convert(t, `<svg viewBox="0 0 24 24">
		<defs><clipPath id="cp"><rect width="10" height="10"/></clipPath></defs>
		<circle clip-path="url(#cp)" cx="5" cy="5" r="5"/>
	</svg>`)
	assert.Contains(t, out, `<clip-path android:pathData="M0,0L10,0L10,10L0,10Z"/>`)
	idx := strings.Index(out, "<clip-path")
	require.GreaterOrEqual(t, idx, 0)
	assert.Contains(t, out[idx:], "M0,5", "the clipped circle paints after the clip")
}

func TestPaths(t *testing.T) {
	sv := svg.NewSVG()
	require.NoError(t, sv.ReadXML(strings.NewReader(`<svg viewBox="0 0 24 24">
		<rect width="10" height="10" fill="rgb(0,255,0)" fill-opacity="0.5"/>
		<rect x="12" width="4" height="4" stroke="black" stroke-width="2"/>
	</svg>`)))
	require.NoError(t, sv.Process())
	ps := Paths(sv)
	require.Len(t, ps, 2)
	assert.Equal(t, "M0,0L10,0L10,10L0,10Z", ps[0].Data)
	assert.Equal(t, "#00ff00", ps[0].Paint.FillColor)
	assert.Equal(t, float32(0.5), ps[0].Paint.FillAlpha)
	assert.Equal(t, "#000000", ps[1].Paint.StrokeColor)
	assert.Equal(t, float32(2), ps[1].Paint.StrokeWidth)
}
