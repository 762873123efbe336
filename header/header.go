// © 2026 UIED technology team. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package header detects and renders copyright header blocks.
package header

import (
	"bytes"
	"fmt"
	"text/template"
)

// Info holds the fields a header template is rendered with.
type Info struct {
	FileName    string
	Description string
	Year        int
}

// Detect reports whether any marker occurs within the first window bytes
// of content. Bounding the search avoids false positives from marker-like
// text deep inside unrelated file content.
func Detect(content []byte, markers []string, window int) bool {
	if window > 0 && len(content) > window {
		content = content[:window]
	}
	for _, m := range markers {
		if bytes.Contains(content, []byte(m)) {
			return true
		}
	}
	return false
}

// Render fills a header template with info. It is a pure function;
// the result is the exact block that gets prepended to a file.
func Render(tmpl string, info Info) (string, error) {
	t, err := template.New("header").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("header: parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, info); err != nil {
		return "", fmt.Errorf("header: render template: %w", err)
	}
	return buf.String(), nil
}
