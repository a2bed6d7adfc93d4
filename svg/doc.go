// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg parses SVG documents into a tree of path-bearing nodes
// and runs the resolution pipeline that readies them for vector
// drawable output: use and gradient reference resolution, CSS class
// cascading, clip-path substitution, and group flattening. Basic
// shapes are converted to path data at ingest, so the processed tree
// contains only groups, paths, gradients, and clip paths.
package svg
