// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"sync"

	selcss "github.com/ericchiang/css"
	"golang.org/x/net/html"
)

var (
	selectorsMu sync.Mutex
	selectors   = map[string]*selcss.Selector{}
)

// compile returns the compiled selector, caching it by source.
func compile(selector string) (*selcss.Selector, error) {
	selectorsMu.Lock()
	defer selectorsMu.Unlock()
	if sel, ok := selectors[selector]; ok {
		return sel, nil
	}
	sel, err := selcss.Parse(selector)
	if err != nil {
		return nil, err
	}
	selectors[selector] = sel
	return sel, nil
}

// CheckSelector returns the error parsing the CSS selector, if any.
func CheckSelector(selector string) error {
	_, err := compile(selector)
	return err
}

// Query returns the descendants of root matching the CSS selector,
// in document order. root itself is never returned. Type selectors
// must be standard tag names: custom element tags such as
// "app-data-chip" do not parse, so use [FindAll] with [Tag] for those.
func Query(root *html.Node, selector string) ([]*html.Node, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	var out []*html.Node
	for _, n := range sel.Select(root) {
		if n != root {
			out = append(out, n)
		}
	}
	return out, nil
}

// Matches returns whether n matches the CSS selector within root.
func Matches(root, n *html.Node, selector string) bool {
	nodes, err := Query(root, selector)
	if err != nil {
		return false
	}
	for _, m := range nodes {
		if m == n {
			return true
		}
	}
	return false
}
