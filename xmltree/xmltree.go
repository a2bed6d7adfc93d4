// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xmltree decodes an XML document into a read-only attributed
// element tree, keeping the source line number of each element for
// diagnostics. It performs no interpretation of the content.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

// Attr is one attribute name/value pair on an [Element].
// Namespace prefixes are dropped: xlink:href is stored as href.
type Attr struct {
	Name  string
	Value string
}

// Element is one element of the decoded tree: its name, attributes,
// ordered children, any direct character data, and the 1-based line
// number of its start tag in the source.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
	Line     int
}

// Attr returns the value of the named attribute, or "" if it is absent.
func (e *Element) Attr(name string) string {
	for _, at := range e.Attrs {
		if at.Name == name {
			return at.Value
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	for _, at := range e.Attrs {
		if at.Name == name {
			return true
		}
	}
	return false
}

// Decode reads an XML document and returns its root element.
// The decoder is lenient: non-strict parsing, HTML entities and
// auto-closing, and charset-label aware reading.
func Decode(r io.Reader) (*Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	lc := lineCounter{data: data}
	var root *Element
	var stack []*Element
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("xmltree: %w", err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			el := &Element{
				Name: se.Name.Local,
				Line: lc.lineAt(decoder.InputOffset()),
			}
			for _, at := range se.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: at.Name.Local, Value: at.Value})
			}
			if len(stack) > 0 {
				par := stack[len(stack)-1]
				par.Children = append(par.Children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(se)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("xmltree: no root element found")
	}
	return root, nil
}

// DecodeFile reads and decodes the XML document in the given file.
func DecodeFile(filename string) (*Element, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Decode(fp)
}

// lineCounter converts decoder byte offsets to 1-based line numbers,
// scanning each region of the input only once. Offsets must be
// non-decreasing across calls.
type lineCounter struct {
	data []byte
	off  int64
	line int
}

func (lc *lineCounter) lineAt(off int64) int {
	if off > int64(len(lc.data)) {
		off = int64(len(lc.data))
	}
	for ; lc.off < off; lc.off++ {
		if lc.data[lc.off] == '\n' {
			lc.line++
		}
	}
	return lc.line + 1
}
