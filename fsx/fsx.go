// © 2026 UIED technology team. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package fsx abstracts the filesystem operations the annotator performs,
// so the same pipeline runs against the real project tree and against an
// in-memory tree in tests.
package fsx

import "os"

// Filesystem is the set of operations the annotator needs.
// Paths are relative to the filesystem's root.
type Filesystem interface {
	// Exists reports whether the path exists.
	Exists(path string) (bool, error)
	// Stat returns file metadata.
	Stat(name string) (os.FileInfo, error)
	// ReadDir lists a directory.
	ReadDir(dirname string) ([]os.FileInfo, error)
	// ReadFile returns the entire content of a file.
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the entire content of a file.
	WriteFile(path string, data []byte, perm os.FileMode) error
}
