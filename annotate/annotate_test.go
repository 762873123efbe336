// © 2026 UIED technology team. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package annotate

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
	"testing"

	"go.fsuied.com/annotate/config"
	"go.fsuied.com/annotate/fsx"
	"go.fsuied.com/annotate/testutil"
)

// frontend returns the frontend/src group of the embedded defaults.
func frontend(t *testing.T) config.Group {
	t.Helper()
	for _, g := range config.Default().Groups {
		if g.Dir == "frontend/src" {
			return g
		}
	}
	t.Fatal("embedded defaults must contain the frontend/src group")
	return config.Group{}
}

func newAnnotator(fs fsx.Filesystem) *Annotator {
	return &Annotator{FS: fs, Config: config.Default()}
}

func write(t *testing.T, fs fsx.Filesystem, path, content string) {
	t.Helper()
	if err := fs.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): %v", path, err)
	}
}

func read(t *testing.T, fs fsx.Filesystem, path string) string {
	t.Helper()
	b, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", path, err)
	}
	return string(b)
}

func TestAnnotateFileWithoutHeader(t *testing.T) {
	fs := fsx.NewMemory()
	const original = "export const x = 1;"
	write(t, fs, "frontend/src/widget.tsx", original)

	a := newAnnotator(fs)
	sum, err := a.Walk(context.Background(), frontend(t))
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, sum.Annotated, 1)
	testutil.AssertEqual(t, sum.Results[0].Outcome, Annotated)

	got := read(t, fs, "frontend/src/widget.tsx")
	if !strings.HasPrefix(got, "/**") {
		t.Fatalf("content must start with the header block, got: %q", got)
	}
	if !strings.Contains(got, "@file widget.tsx") {
		t.Fatalf("header must contain the file name, got: %q", got)
	}
	if !strings.Contains(got, frontend(t).Description) {
		t.Fatalf("header must contain the group description, got: %q", got)
	}
	// The original content is preserved verbatim after the header.
	if !strings.HasSuffix(got, original) {
		t.Fatalf("content must end with the original bytes, got: %q", got)
	}
	testutil.AssertEqual(t, got, sum.Results[0].Header+original)
}

func TestSkipFileWithMarker(t *testing.T) {
	fs := fsx.NewMemory()
	const original = "/* @copyright 2026 UIED */\nbody { color: red; }\n"
	write(t, fs, "frontend/src/styles.css", original)

	a := newAnnotator(fs)
	sum, err := a.Walk(context.Background(), frontend(t))
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, sum.Annotated, 0)
	testutil.AssertEqual(t, sum.Skipped, 1)
	testutil.AssertEqual(t, sum.Results[0].Outcome, Skipped)

	// Byte-identical content.
	testutil.AssertEqual(t, read(t, fs, "frontend/src/styles.css"), original)
}

func TestSecondRunModifiesNothing(t *testing.T) {
	fs := fsx.NewMemory()
	write(t, fs, "frontend/src/widget.tsx", "export const x = 1;")
	write(t, fs, "frontend/src/styles.css", "body {}\n")
	write(t, fs, "frontend/src/pages/index.ts", "console.log(1);\n")

	a := newAnnotator(fs)
	ctx := context.Background()
	group := frontend(t)

	first, err := a.Walk(ctx, group)
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, first.Annotated, 3)

	after := map[string]string{}
	for _, r := range first.Results {
		after[r.Path] = read(t, fs, r.Path)
	}

	second, err := a.Walk(ctx, group)
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, second.Annotated, 0)
	testutil.AssertEqual(t, second.Skipped, 3)

	for path, want := range after {
		testutil.AssertEqual(t, read(t, fs, path), want)
	}
}

func TestExcludedSubtreeIsNeverRead(t *testing.T) {
	fs := fsx.NewMemory()
	write(t, fs, "frontend/src/app.ts", "const a = 1;\n")
	write(t, fs, "frontend/src/node_modules/pkg/index.ts", "const b = 2;\n")
	write(t, fs, "frontend/src/dist/bundle.ts", "const c = 3;\n")

	rec := &recordingFS{Filesystem: fs}
	a := newAnnotator(rec)
	sum, err := a.Walk(context.Background(), frontend(t))
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, sum.Annotated, 1)

	for _, path := range rec.reads {
		if strings.Contains(path, "node_modules") || strings.Contains(path, "dist") {
			t.Fatalf("file under an excluded subtree was read: %q", path)
		}
	}
	testutil.AssertEqual(t, read(t, fs, "frontend/src/node_modules/pkg/index.ts"), "const b = 2;\n")
	testutil.AssertEqual(t, read(t, fs, "frontend/src/dist/bundle.ts"), "const c = 3;\n")
}

func TestUnacceptedExtensionIsNotModified(t *testing.T) {
	fs := fsx.NewMemory()
	write(t, fs, "frontend/src/readme.md", "# readme\n")

	a := newAnnotator(fs)
	sum, err := a.Walk(context.Background(), frontend(t))
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, len(sum.Results), 0)
	testutil.AssertEqual(t, read(t, fs, "frontend/src/readme.md"), "# readme\n")
}

func TestUnreadableFileDoesNotAbortWalk(t *testing.T) {
	fs := fsx.NewMemory()
	write(t, fs, "frontend/src/broken.ts", "const a = 1;\n")
	write(t, fs, "frontend/src/fine.ts", "const b = 2;\n")

	failing := &failingFS{Filesystem: fs, failPath: "frontend/src/broken.ts"}
	a := newAnnotator(failing)
	sum, err := a.Walk(context.Background(), frontend(t))
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, sum.Failed, 1)
	testutil.AssertEqual(t, sum.Annotated, 1)

	var failed Result
	for _, r := range sum.Results {
		if r.Outcome == Failed {
			failed = r
		}
	}
	testutil.AssertEqual(t, failed.Path, "frontend/src/broken.ts")
	if !errors.Is(failed.Err, errPermission) {
		t.Fatalf("want errPermission, got %v", failed.Err)
	}

	// The file after the failing one was still annotated.
	if !strings.HasPrefix(read(t, fs, "frontend/src/fine.ts"), "/**") {
		t.Fatal("subsequent file must still be processed")
	}
}

func TestExclusionListSkipsFile(t *testing.T) {
	fs := fsx.NewMemory()
	write(t, fs, "frontend/src/generated.ts", "const g = 1;\n")

	cfg := config.Default()
	a := &Annotator{FS: fs, Config: withExclusions(cfg, "generated.ts")}
	sum, err := a.Walk(context.Background(), frontend(t))
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, sum.Annotated, 0)
	testutil.AssertEqual(t, sum.Results[0].Outcome, Excluded)
	testutil.AssertEqual(t, read(t, fs, "frontend/src/generated.ts"), "const g = 1;\n")
}

func TestDryRunWritesNothing(t *testing.T) {
	fs := fsx.NewMemory()
	const original = "export const x = 1;"
	write(t, fs, "frontend/src/widget.tsx", original)

	a := newAnnotator(fs)
	a.DryRun = true
	sum, err := a.Walk(context.Background(), frontend(t))
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, sum.Annotated, 1)
	if sum.Results[0].Header == "" {
		t.Fatal("dry-run result must carry the rendered header")
	}
	testutil.AssertEqual(t, read(t, fs, "frontend/src/widget.tsx"), original)
}

func TestWalkOrderIsDeterministic(t *testing.T) {
	fs := fsx.NewMemory()
	for _, path := range []string{
		"frontend/src/z.ts",
		"frontend/src/a.ts",
		"frontend/src/sub/m.ts",
		"frontend/src/b/n.ts",
	} {
		write(t, fs, path, "x\n")
	}

	a := newAnnotator(fs)
	sum, err := a.Walk(context.Background(), frontend(t))
	testutil.AssertEqual(t, err, nil)

	var paths []string
	for _, r := range sum.Results {
		paths = append(paths, r.Path)
	}
	want := append([]string(nil), paths...)
	sort.Strings(want)
	testutil.AssertEqual(t, paths, want)
}

func TestEnumerationFailureAbortsWalk(t *testing.T) {
	a := newAnnotator(&brokenDirFS{Filesystem: fsx.NewMemory()})
	if _, err := a.Walk(context.Background(), frontend(t)); !errors.Is(err, errEnumeration) {
		t.Fatalf("want errEnumeration, got %v", err)
	}
}

func withExclusions(cfg *config.Config, exclusions ...string) *config.Config {
	out := *cfg
	out.Exclusions = exclusions
	return &out
}

var (
	errPermission  = errors.New("permission denied")
	errEnumeration = errors.New("enumeration failed")
)

// brokenDirFS fails every directory listing.
type brokenDirFS struct {
	fsx.Filesystem
}

func (b *brokenDirFS) ReadDir(dirname string) ([]os.FileInfo, error) {
	return nil, errEnumeration
}

// failingFS simulates an unreadable file.
type failingFS struct {
	fsx.Filesystem
	failPath string
}

func (f *failingFS) ReadFile(path string) ([]byte, error) {
	if path == f.failPath {
		return nil, errPermission
	}
	return f.Filesystem.ReadFile(path)
}

// recordingFS records every file read.
type recordingFS struct {
	fsx.Filesystem
	reads []string
}

func (r *recordingFS) ReadFile(path string) ([]byte, error) {
	r.reads = append(r.reads, path)
	return r.Filesystem.ReadFile(path)
}
