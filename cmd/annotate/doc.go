// © 2026 UIED technology team. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

/*
Annotate prepends a copyright header to project source files.

It walks the configured directory groups under the project root, skipping
excluded subtrees (node_modules, dist, build, .git), and checks every file
whose extension the group accepts. If the file does not already carry a
header marker within its leading bytes, a header block rendered from the
group's template is prepended and the file is rewritten in place.

Files that cannot be read or written are reported and skipped; the run
continues with the next file. Running the tool twice over the same tree
changes nothing on the second run.

The tool is configured through an optional .annotate.txtar archive in the
project root (or a file given with -config). The archive is a txtar archive
and can contain the following files:

  - groups.yaml: the directory groups (dir, description, extensions), the
    excluded directory names and the marker search window.
  - markers.json: a JSON array of substrings that identify an existing
    header.
  - exclusions.json: a JSON array of file path suffixes to exclude from
    processing.
  - template.{ext}: a header template for a specific file extension
    (e.g. template.css); template.default applies to everything else.

Without a configuration archive, embedded defaults matching the UIED
project layout (admin/src, frontend/src, backend/src) are used.
*/
package main

import (
	_ "embed"

	"go.fsuied.com/annotate/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
