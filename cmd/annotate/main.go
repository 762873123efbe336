// © 2026 UIED technology team. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"go.fsuied.com/annotate/annotate"
	"go.fsuied.com/annotate/cli"
	"go.fsuied.com/annotate/config"
	"go.fsuied.com/annotate/fsx"
)

func main() { cli.Main(new(app)) }

// configName is the configuration archive looked up in the project root
// when -config is not given.
const configName = ".annotate.txtar"

type app struct {
	root       string
	configPath string
	dry        bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.root, "root", ".", "Project `directory` to annotate.")
	fs.StringVar(&a.configPath, "config", "", "Path to a configuration txtar `file` (default: "+configName+" in the project root, if present).")
	fs.BoolVar(&a.dry, "dry", false, "Print the files that would be annotated, without making changes.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	tree := fsx.NewOS(a.root)
	ann := &annotate.Annotator{FS: tree, Config: cfg, DryRun: a.dry}
	g := glyphsFor(env)

	fmt.Fprintf(env.Stdout, "%s Adding copyright headers...\n\n", g.start)

	var total int
	for _, group := range cfg.Groups {
		ok, err := tree.Exists(group.Dir)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		fmt.Fprintf(env.Stdout, "%s Processing %s...\n", g.group, group.Dir)
		sum, err := ann.Walk(ctx, group)
		if err != nil {
			return err
		}
		a.report(env.Stdout, tree, g, sum)
		fmt.Fprintf(env.Stdout, "   %d file(s) annotated\n\n", sum.Annotated)
		total += sum.Annotated
	}

	fmt.Fprintf(env.Stdout, "%s Done! Annotated %d file(s).\n", g.done, total)
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath != "" {
		return config.Load(a.configPath)
	}
	path := filepath.Join(a.root, configName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return config.Load(path)
}

func (a *app) report(w io.Writer, tree fsx.Filesystem, g glyphs, sum annotate.Summary) {
	for _, r := range sum.Results {
		switch r.Outcome {
		case annotate.Annotated:
			if a.dry {
				fmt.Fprintf(w, "%s would annotate %s\n", g.ok, r.Path)
				printPreview(w, tree, r)
			} else {
				fmt.Fprintf(w, "%s %s\n", g.ok, r.Path)
			}
		case annotate.Skipped:
			fmt.Fprintf(w, "%s %s (already annotated)\n", g.skip, r.Path)
		case annotate.Excluded:
			fmt.Fprintf(w, "%s %s (excluded)\n", g.skip, r.Path)
		case annotate.Failed:
			fmt.Fprintf(w, "%s %s: %v\n", g.fail, r.Path, r.Err)
		}
	}
}

// printPreview shows the lines a dry run would insert at the top of the
// file.
func printPreview(w io.Writer, tree fsx.Filesystem, r annotate.Result) {
	content, err := tree.ReadFile(r.Path)
	if err != nil {
		return
	}
	// Diff whole lines: the inserted block is always line-aligned, and a
	// character-level diff fragments it when the file opens with text
	// resembling the header.
	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToChars(string(content), r.Header+string(content))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), lines)

	var b strings.Builder
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffInsert {
			b.WriteString(d.Text)
		}
	}
	// The insertion is exactly the rendered header. If the diff scattered
	// it across fragments, print the header itself.
	block := b.String()
	if block != r.Header {
		block = r.Header
	}
	for line := range strings.SplitSeq(strings.TrimSuffix(block, "\n"), "\n") {
		fmt.Fprintf(w, "   + %s\n", line)
	}
}

// glyphs are the per-line status prefixes. Emoji on a terminal, plain
// ASCII tags when the output is redirected.
type glyphs struct {
	start, group, ok, skip, fail, done string
}

func glyphsFor(env *cli.Env) glyphs {
	if env.IsTerminal() {
		return glyphs{start: "🚀", group: "📁", ok: "✅", skip: "⏭️", fail: "❌", done: "✨"}
	}
	return glyphs{start: "==>", group: "-->", ok: "[ok]", skip: "[skip]", fail: "[fail]", done: "==>"}
}
