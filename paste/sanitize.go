// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paste

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer removes unsafe content from markup.
type Sanitizer interface {
	Sanitize(markup string) string
}

// NewSanitizer returns a sanitizer for user generated markup that also
// keeps chip elements with the given tag and their binding attributes,
// and text alignment styles.
func NewSanitizer(chipTag string) *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	if chipTag != "" {
		p.AllowElements(chipTag)
		p.AllowAttrs("source", "lookup").OnElements(chipTag)
	}
	p.AllowStyles("text-align").MatchingEnum("left", "center", "right", "justify").Globally()
	return p
}
