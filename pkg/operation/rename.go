// Copyright 2026 the mane authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/mane-cli/mane/pkg/status"
	"github.com/mane-cli/mane/pkg/walker"
)

// 🔄 RenameTree rewrites file contents and entry names under the given
// roots in place. It runs in two phases over one immutable traversal
// snapshot per root: first every file's content, then every entry's name,
// deepest entries first. Renaming deepest-first is mandatory — renaming a
// directory before its children would invalidate every child path in the
// snapshot.
func (op *Operator) RenameTree(ctx context.Context, roots []string) (*status.Report, error) {
	if err := op.requireRules(); err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return nil, errors.Errorf("no roots provided for in-place replacement")
	}

	report := &status.Report{}
	for _, root := range roots {
		// Hidden entries must stay discoverable for rename.
		entries, err := walker.Walk(ctx, root, walker.Options{
			RespectIgnoreFiles: op.toggles.RespectIgnoreFiles,
			IncludeHidden:      true,
			ExcludeGlobs:       op.excludes,
		})
		if err != nil {
			op.record(ctx, report, status.EntryReport{Path: root, Outcome: status.OutcomeError, Err: err})
			continue
		}

		op.renameTreeContents(ctx, entries, report)
		op.renameTreeEntries(ctx, entries, report)
	}

	if report.Changed() == 0 {
		op.reporter.Warning(ctx, "no replacements were made; check if the pattern exists under the given roots")
	}

	return report, nil
}

// renameTreeContents is phase 1: rewrite file contents. Each entry is
// re-checked against the live filesystem since the snapshot may have
// drifted since the walk.
func (op *Operator) renameTreeContents(ctx context.Context, entries []walker.Entry, report *status.Report) {
	for _, e := range entries {
		info, err := os.Stat(e.Path)
		if err != nil {
			op.record(ctx, report, status.EntryReport{Path: e.Path, Outcome: status.OutcomeError, Err: errors.Errorf("stat: %w", err)})
			continue
		}
		if info.IsDir() {
			continue
		}
		op.replaceFileContent(ctx, e.Path, report)
	}
}

// renameTreeEntries is phase 2: rename entries deepest-first. Only the
// final path component is transformed; a computed destination that already
// exists is reported as a conflict and never overwritten.
func (op *Operator) renameTreeEntries(ctx context.Context, entries []walker.Entry, report *status.Report) {
	sorted := make([]walker.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := pathDepth(sorted[i].Path), pathDepth(sorted[j].Path)
		if di != dj {
			return di > dj
		}
		return len(sorted[i].Path) > len(sorted[j].Path)
	})

	for _, e := range sorted {
		op.renameEntry(ctx, e.Path, report)
	}
}

func (op *Operator) renameEntry(ctx context.Context, path string, report *status.Report) {
	// Fresh check: the entry's kind decides which toggle governs it.
	info, err := os.Lstat(path)
	if err != nil {
		op.record(ctx, report, status.EntryReport{Path: path, Outcome: status.OutcomeError, Err: errors.Errorf("stat: %w", err)})
		return
	}
	if info.IsDir() && !op.toggles.RenameDirs {
		return
	}
	if !info.IsDir() && !op.toggles.RenameFiles {
		return
	}

	name := filepath.Base(path)
	newName := op.replacer.ApplyAll(name, op.rules, op.toggles.CaseVariants)
	if newName == name {
		return
	}

	newPath := filepath.Join(filepath.Dir(path), newName)
	if _, err := os.Lstat(newPath); err == nil && newPath != path {
		op.record(ctx, report, status.EntryReport{
			Path:    path,
			Outcome: status.OutcomeSkippedConflict,
			Detail:  "target already exists: " + newPath,
		})
		return
	}

	if err := os.Rename(path, newPath); err != nil {
		op.record(ctx, report, status.EntryReport{Path: path, Outcome: status.OutcomeError, Err: errors.Errorf("renaming to %s: %w", newPath, err)})
		return
	}

	op.record(ctx, report, status.EntryReport{Path: path, Outcome: status.OutcomeRenamed, Detail: "-> " + newPath})
}

// pathDepth is the explicit ordering key for phase 2: separator count, not
// string length, so same-length siblings cannot misorder against deeper
// paths.
func pathDepth(path string) int {
	return strings.Count(filepath.Clean(path), string(filepath.Separator))
}
