// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paste

import (
	"fmt"
	"log/slog"

	"cogentcore.org/richsync/base/errors"
	"cogentcore.org/richsync/dom"
	"golang.org/x/net/html"
)

// Rule is a repair applied to the markup after a mutation batch.
type Rule struct {

	// Name identifies the rule in logs.
	Name string

	// Selector is the CSS selector of candidate elements.
	Selector string

	// Match, if set, further filters the candidates.
	Match func(n *html.Node) bool

	// Fix repairs one matching element.
	Fix func(n *html.Node)

	// Heuristic marks a rule that works around an artifact whose
	// cause is not known; it may miss or be unnecessary.
	Heuristic bool
}

// unwrap is a [Rule.Fix] replacing an element by its children.
func unwrap(n *html.Node) {
	dom.Unwrap(n)
}

// isEmpty is a [Rule.Match] for elements with no content.
func isEmpty(n *html.Node) bool {
	return n.FirstChild == nil
}

// DefaultRules returns the standard repair rules.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:      "stray font wrapper",
			Selector:  "font",
			Fix:       unwrap,
			Heuristic: true,
		},
		{
			Name:     "empty inline format",
			Selector: "b, strong, i, em, u, span",
			Match:    isEmpty,
			Fix:      dom.Remove,
		},
	}
}

// Watcher applies repair rules after each mutation batch.
type Watcher struct {
	Rules []Rule
}

// NewWatcher returns a watcher with [DefaultRules].
func NewWatcher() *Watcher {
	w := &Watcher{Rules: DefaultRules()}
	errors.Must(w.Validate())
	return w
}

// Validate returns the joined errors of rules whose selector
// does not parse.
func (w *Watcher) Validate() error {
	var errs []error
	for _, r := range w.Rules {
		if err := dom.CheckSelector(r.Selector); err != nil {
			errs = append(errs, fmt.Errorf("paste: rule %s: %w", r.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Batch applies each rule to the first element under root it matches,
// and returns the number of repairs made.
func (w *Watcher) Batch(root *html.Node) int {
	n := 0
	for _, r := range w.Rules {
		if r.apply(root) {
			n++
		}
	}
	return n
}

func (r *Rule) apply(root *html.Node) bool {
	nodes, err := dom.Query(root, r.Selector)
	if err != nil {
		slog.Debug("paste: skipping rule", "rule", r.Name, "err", err)
		return false
	}
	for _, n := range nodes {
		if r.Match != nil && !r.Match(n) {
			continue
		}
		r.Fix(n)
		slog.Debug("paste: repaired markup", "rule", r.Name, "heuristic", r.Heuristic)
		return true
	}
	if r.Heuristic {
		slog.Debug("paste: heuristic repair found nothing", "rule", r.Name)
	}
	return false
}
