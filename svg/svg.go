// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"errors"
	"fmt"
	"strings"
)

// Structural errors abort output entirely; everything else accumulates
// in the document diagnostics log and conversion proceeds best-effort.
var (
	// ErrNoViewBox indicates the svg element has no usable viewBox.
	ErrNoViewBox = errors.New("svg: missing or invalid viewBox attribute")

	// ErrNoLeaf indicates the document contains no path-bearing leaf
	// nodes after the pipeline has run.
	ErrNoLeaf = errors.New("svg: no path data in document")
)

// Diagnostic is one logged error or warning with the source line it
// originated from. Diagnostics are non-fatal.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

// clipRef records one node carrying a clip-path or mask reference,
// with its enclosing group and the raw attribute value, for later
// substitution.
type clipRef struct {
	node  Node
	group *Group
	value string
	line  int
}

// SVG is one SVG document being converted. It owns the node tree and
// all per-document side tables. A fresh SVG is created per input and
// never shared between conversions.
type SVG struct {
	// Name is the name of the SVG, e.g. the filename if loaded.
	Name string

	// Root is the root group of the document tree.
	Root *Group

	// Defs holds definition-only content (defs children, gradients,
	// clip paths). It is indexed for reference lookup but not painted.
	Defs *Group

	// ViewBox defines the drawing coordinate system. It is required:
	// absence is a hard parse error.
	ViewBox ViewBox

	// BaseWidth and BaseHeight are the physical output size parsed
	// from the width/height attributes, defaulting to 1.
	BaseWidth  float32
	BaseHeight float32

	// ScaleFactor is the ratio of base size to viewport size.
	ScaleFactor float32

	// ids indexes element id to node. Duplicate ids are tolerated by
	// last-write-wins, with a logged warning.
	ids map[string]Node

	// ignoredIDs are ids found on unsupported elements; they are
	// excluded from reference targets.
	ignoredIDs map[string]struct{}

	// pendingUses and pendingGradients are the nodes whose symbolic
	// reference has not yet been resolved.
	pendingUses      map[*Use]struct{}
	pendingGradients map[*Gradient]struct{}

	// styleClasses maps a CSS class name to its serialized
	// declarations. Redeclarations accumulate with the newest
	// declarations prepended.
	styleClasses map[string]string

	// styleOrder keeps class declaration order for deterministic
	// cascading.
	styleOrder []string

	// styleAffected maps a class name to the nodes using it.
	styleAffected map[string][]Node

	// clipPathAffected records nodes carrying clip-path/mask
	// references, in document order.
	clipPathAffected []clipRef

	// logs is the ordered error/warning log.
	logs []Diagnostic
}

// NewSVG returns a new empty SVG document.
func NewSVG() *SVG {
	sv := &SVG{
		Root:             NewGroup(),
		Defs:             NewGroup(),
		BaseWidth:        1,
		BaseHeight:       1,
		ScaleFactor:      1,
		ids:              make(map[string]Node),
		ignoredIDs:       make(map[string]struct{}),
		pendingUses:      make(map[*Use]struct{}),
		pendingGradients: make(map[*Gradient]struct{}),
		styleClasses:     make(map[string]string),
		styleAffected:    make(map[string][]Node),
	}
	sv.Root.Name = "svg"
	sv.Defs.Name = "defs"
	return sv
}

// logf appends a diagnostic with the given source line to the
// document log.
func (sv *SVG) logf(line int, format string, args ...any) {
	sv.logs = append(sv.logs, Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)})
}

// Logs returns the ordered diagnostics accumulated so far.
func (sv *SVG) Logs() []Diagnostic {
	return sv.logs
}

// Diagnostics returns all logged errors and warnings joined by
// newlines. An empty string signals a clean conversion.
func (sv *SVG) Diagnostics() string {
	if len(sv.logs) == 0 {
		return ""
	}
	strs := make([]string, len(sv.logs))
	for i, d := range sv.logs {
		strs[i] = d.String()
	}
	return strings.Join(strs, "\n")
}

// indexID registers the id for a node. Last write wins on duplicates,
// with a warning.
func (sv *SVG) indexID(n Node, id string, line int) {
	if id == "" {
		return
	}
	if _, dup := sv.ids[id]; dup {
		sv.logf(line, "duplicate id %q; the later definition is used", id)
	}
	sv.ids[id] = n
}

// NodeByID returns the node registered under the given id, or nil.
// Ids on unsupported elements are excluded.
func (sv *SVG) NodeByID(id string) Node {
	if _, ign := sv.ignoredIDs[id]; ign {
		return nil
	}
	return sv.ids[id]
}

// registerClasses records n in the style-affected set for each of its
// class names.
func (sv *SVG) registerClasses(n Node) {
	for _, cl := range n.AsNodeBase().Classes() {
		sv.styleAffected[cl] = append(sv.styleAffected[cl], n)
	}
}

// Process runs the document pipeline after tree construction:
// reference resolution, style cascading, gradient paint binding,
// clip-path substitution, flattening, and validation. The returned
// error is a structural error; everything recoverable lands in
// [SVG.Diagnostics].
func (sv *SVG) Process() error {
	sv.ResolveReferences()
	sv.ApplyStyles()
	sv.bindGradientPaints()
	sv.SubstituteClipPaths()
	sv.Flatten()
	return sv.Validate()
}

// Validate rejects documents that cannot produce output: a degenerate
// viewport or no path-bearing leaf nodes.
func (sv *SVG) Validate() error {
	if sv.ViewBox.Size.X <= 0 || sv.ViewBox.Size.Y <= 0 {
		return ErrNoViewBox
	}
	found := false
	WalkDown(sv.Root, func(n Node) bool {
		if p, ok := n.(*Path); ok && !p.Data.IsEmpty() {
			found = true
			return Break
		}
		return Continue
	})
	if !found {
		return ErrNoLeaf
	}
	return nil
}
