// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dom provides the node and range model used to talk about
// the content of an editing surface. Documents are [html.Node] trees;
// positions in them are [Point] values, selections are [Range] values,
// and [Bookmark] and [Handle] keep positions across surface mutations.
package dom

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewElement returns a new detached element node with the given tag and attributes.
func NewElement(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag)), Attr: attrs}
}

// NewText returns a new detached text node.
func NewText(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// IsElement returns whether n is an element with one of the given tags.
// With no tags, it returns whether n is an element at all.
func IsElement(n *html.Node, tags ...string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	return len(tags) == 0 || slices.Contains(tags, n.Data)
}

// IsText returns whether n is a text node.
func IsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// blockTags are the element tags that start a new line of content.
var blockTags = []string{
	"address", "blockquote", "div", "dl", "dd", "dt", "h1", "h2", "h3", "h4", "h5", "h6",
	"hr", "li", "ol", "p", "pre", "table", "tr", "ul",
}

// IsBlock returns whether n is a block-level element.
func IsBlock(n *html.Node) bool {
	return IsElement(n, blockTags...)
}

// ElementOf returns n if it is an element, and otherwise its parent.
func ElementOf(n *html.Node) *html.Node {
	if n == nil || n.Type == html.ElementNode {
		return n
	}
	return n.Parent
}

// Contains returns whether n is root or a descendant of root.
func Contains(root, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// Closest returns the nearest inclusive ancestor of n that is strictly
// inside root and matches, or nil if there is none or n is not in root.
func Closest(root, n *html.Node, match func(n *html.Node) bool) *html.Node {
	var found *html.Node
	for ; n != nil; n = n.Parent {
		if n == root {
			return found
		}
		if found == nil && match(n) {
			found = n
		}
	}
	return nil
}

// Tag returns a match function for [Closest] matching elements with the given tags.
func Tag(tags ...string) func(n *html.Node) bool {
	return func(n *html.Node) bool {
		return IsElement(n, tags...)
	}
}

// ChildIndex returns the index of n among its siblings.
func ChildIndex(n *html.Node) int {
	i := 0
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		i++
	}
	return i
}

// ChildAt returns the i-th child of n, or nil if out of range.
func ChildAt(n *html.Node, i int) *html.Node {
	if i < 0 {
		return nil
	}
	c := n.FirstChild
	for ; c != nil && i > 0; c = c.NextSibling {
		i--
	}
	return c
}

// NumChildren returns the number of children of n.
func NumChildren(n *html.Node) int {
	i := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		i++
	}
	return i
}

// Children returns the children of n as a slice.
func Children(n *html.Node) []*html.Node {
	var cs []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cs = append(cs, c)
	}
	return cs
}

// Len returns the length of n as a range boundary container: the byte
// length of its data for text nodes and its number of children otherwise.
func Len(n *html.Node) int {
	if IsText(n) {
		return len(n.Data)
	}
	return NumChildren(n)
}

// Path returns the child indexes leading from root to n.
// It returns false if n is not root or a descendant of it.
func Path(root, n *html.Node) ([]int, bool) {
	var path []int
	for ; n != root; n = n.Parent {
		if n == nil {
			return nil, false
		}
		path = append(path, ChildIndex(n))
	}
	slices.Reverse(path)
	return path, true
}

// NodeAt returns the node at the given path from root, or nil.
func NodeAt(root *html.Node, path []int) *html.Node {
	n := root
	for _, i := range path {
		n = ChildAt(n, i)
		if n == nil {
			return nil
		}
	}
	return n
}

// Remove detaches n from its parent.
func Remove(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// InsertAt inserts the detached node n as the i-th child of parent,
// appending when i is past the end.
func InsertAt(parent *html.Node, i int, n *html.Node) {
	parent.InsertBefore(n, ChildAt(parent, i))
}

// Unwrap replaces n with its children and returns the first and last
// of them, which are nil if n had no children.
func Unwrap(n *html.Node) (first, last *html.Node) {
	parent := n.Parent
	if parent == nil {
		return nil, nil
	}
	first, last = n.FirstChild, n.LastChild
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
	return
}

// Wrap moves the given consecutive siblings into the detached element
// el, which takes the place of the first of them.
func Wrap(el *html.Node, nodes ...*html.Node) {
	if len(nodes) == 0 || nodes[0].Parent == nil {
		return
	}
	nodes[0].Parent.InsertBefore(el, nodes[0])
	for _, n := range nodes {
		n.Parent.RemoveChild(n)
		el.AppendChild(n)
	}
}

// SplitText splits the text node n at the given byte offset,
// leaving the head in n and returning a new node holding the tail,
// inserted right after n.
func SplitText(n *html.Node, offset int) *html.Node {
	tail := NewText(n.Data[offset:])
	n.Data = n.Data[:offset]
	n.Parent.InsertBefore(tail, n.NextSibling)
	return tail
}

// TextContent returns the concatenated text of n and its descendants.
func TextContent(n *html.Node) string {
	if IsText(n) {
		return n.Data
	}
	var b strings.Builder
	Walk(n, func(c *html.Node) bool {
		if IsText(c) {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}

// Walk calls fn for n and its descendants in document order,
// skipping the descendants of any node for which fn returns false.
func Walk(n *html.Node, fn func(n *html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		Walk(c, fn)
		c = next
	}
}

// FindAll returns the descendants of root for which match returns
// true, in document order. root itself is never returned.
func FindAll(root *html.Node, match func(n *html.Node) bool) []*html.Node {
	var out []*html.Node
	Walk(root, func(n *html.Node) bool {
		if n != root && match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Attr returns the value of the given attribute of n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the given attribute of n, adding it if needed.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr removes the given attribute of n, if present.
func RemoveAttr(n *html.Node, key string) {
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
		return a.Key == key
	})
}
