// © 2026 UIED technology team. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package annotate

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"

	"go.fsuied.com/annotate/config"
	"go.fsuied.com/annotate/logger"
)

// Walk recursively processes every candidate file under the group's
// directory. Subtrees named in the exclusion set are pruned without being
// read. Per-file failures are accumulated in the Summary; only a directory
// enumeration failure aborts the walk.
func (a *Annotator) Walk(ctx context.Context, group config.Group) (Summary, error) {
	var s Summary
	if err := a.walkDir(ctx, group.Dir, group, &s); err != nil {
		return s, err
	}
	return s, nil
}

func (a *Annotator) walkDir(ctx context.Context, dir string, group config.Group, s *Summary) error {
	entries, err := a.FS.ReadDir(dir)
	if err != nil {
		return err
	}
	// Deterministic visit order regardless of the backing filesystem.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if a.Config.IsExcludedDir(entry.Name()) {
				logger.Debug(ctx, "pruned directory", slog.String("path", path))
				continue
			}
			if err := a.walkDir(ctx, path, group, s); err != nil {
				return err
			}
			continue
		}

		if !group.Match(entry.Name()) {
			logger.Debug(ctx, "extension not accepted", slog.String("path", path))
			continue
		}

		s.add(a.Process(path, group.Description))
	}
	return nil
}
