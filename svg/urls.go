// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "strings"

// NameFromURL returns just the name referred to in a url(#name)
// value, with or without the trailing delimiter. If it is not a
// url(#) format then it returns an empty string.
func NameFromURL(url string) string {
	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, "url(#") {
		return ""
	}
	ref := strings.TrimPrefix(url, "url(#")
	if i := strings.IndexByte(ref, ')'); i >= 0 {
		ref = ref[:i]
	}
	return strings.TrimSpace(ref)
}

// NameToURL returns the name as a url reference: url(#name).
func NameToURL(nm string) string {
	return "url(#" + nm + ")"
}

// refName returns the bare id from an href value of the form "#id",
// or "" if it is not a local reference.
func refName(href string) string {
	if !strings.HasPrefix(href, "#") {
		return ""
	}
	return strings.TrimPrefix(href, "#")
}
