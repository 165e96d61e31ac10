// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"strings"

	"cogentcore.org/richsync/base/errors"
	"golang.org/x/net/html"
)

// ParseFragment parses the given markup as the content of the given
// context element, returning the detached top-level nodes.
func ParseFragment(markup string, context *html.Node) ([]*html.Node, error) {
	if context == nil || context.Type != html.ElementNode {
		context = NewElement("div")
	}
	return html.ParseFragment(strings.NewReader(markup), context)
}

// InnerHTML returns the markup of the children of n.
func InnerHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		errors.Log(html.Render(&b, c))
	}
	return b.String()
}

// OuterHTML returns the markup of n itself.
func OuterHTML(n *html.Node) string {
	var b strings.Builder
	errors.Log(html.Render(&b, n))
	return b.String()
}

// SetInnerHTML replaces the children of n with the nodes parsed from
// the given markup.
func SetInnerHTML(n *html.Node, markup string) error {
	nodes, err := ParseFragment(markup, n)
	if err != nil {
		return err
	}
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nil
}
