// © 2026 UIED technology team. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package annotate walks directory groups and prepends a copyright header
// to source files that lack one.
//
// Each file is handled independently: a failure to process one file is
// recorded and the walk continues with the next. Files that already carry
// a header marker are left byte-identical, so a second run over the same
// tree modifies nothing.
package annotate

import (
	"fmt"

	"go.fsuied.com/annotate/config"
	"go.fsuied.com/annotate/fsx"
)

// Outcome classifies what happened to a single file.
type Outcome int

const (
	// Annotated means a header was prepended (or would be, in dry-run mode).
	Annotated Outcome = iota
	// Skipped means the file already carries a header marker.
	Skipped
	// Excluded means the file matched the exclusion list.
	Excluded
	// Failed means the file could not be processed.
	Failed
)

// String returns a short human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Annotated:
		return "annotated"
	case Skipped:
		return "skipped"
	case Excluded:
		return "excluded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is the per-file report of a walk.
type Result struct {
	// Path of the file, relative to the annotator's filesystem root.
	Path string
	// Outcome of processing.
	Outcome Outcome
	// Header is the rendered block, set when Outcome is Annotated.
	Header string
	// Err is the underlying error, set when Outcome is Failed.
	Err error
}

// Summary accumulates the results of walking one directory group.
type Summary struct {
	// Results in visit order.
	Results []Result
	// Annotated counts files that were (or would be) modified.
	Annotated int
	// Skipped counts files that already had a header.
	Skipped int
	// Failed counts files that could not be processed.
	Failed int
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	switch r.Outcome {
	case Annotated:
		s.Annotated++
	case Skipped:
		s.Skipped++
	case Failed:
		s.Failed++
	}
}

// Annotator runs the annotation pipeline over a filesystem.
type Annotator struct {
	// FS is the tree to operate on.
	FS fsx.Filesystem
	// Config is the immutable run configuration.
	Config *config.Config
	// DryRun reports what would change without writing anything.
	DryRun bool
}
