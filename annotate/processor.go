// © 2026 UIED technology team. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package annotate

import (
	"bytes"
	"path/filepath"

	"go.fsuied.com/annotate/header"
)

// Process handles a single candidate file: read, detect, render, prepend,
// write back. The returned Result never carries an error for the Skipped
// and Excluded outcomes.
func (a *Annotator) Process(path, description string) Result {
	if a.Config.IsExcluded(path) {
		return Result{Path: path, Outcome: Excluded}
	}

	content, err := a.FS.ReadFile(path)
	if err != nil {
		return Result{Path: path, Outcome: Failed, Err: err}
	}

	if header.Detect(content, a.Config.Markers, a.Config.Window) {
		return Result{Path: path, Outcome: Skipped}
	}

	info, err := a.FS.Stat(path)
	if err != nil {
		return Result{Path: path, Outcome: Failed, Err: err}
	}

	hdr, err := header.Render(a.Config.Template(filepath.Ext(path)), header.Info{
		FileName:    filepath.Base(path),
		Description: description,
		Year:        info.ModTime().Year(),
	})
	if err != nil {
		return Result{Path: path, Outcome: Failed, Err: err}
	}

	if a.DryRun {
		return Result{Path: path, Outcome: Annotated, Header: hdr}
	}

	var buf bytes.Buffer
	buf.WriteString(hdr)
	buf.Write(content)

	if err := a.FS.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return Result{Path: path, Outcome: Failed, Err: err}
	}
	return Result{Path: path, Outcome: Annotated, Header: hdr}
}
