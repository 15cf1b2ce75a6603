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
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"

	"github.com/mane-cli/mane/pkg/status"
	"github.com/mane-cli/mane/pkg/walker"
)

// 📦 Pair is one copy request: a source file or directory to materialize,
// transformed, at a target location. The source is never mutated.
type Pair struct {
	Source string
	Target string
}

// 📦 CopyTree materializes a transformed copy of each pair's source at its
// target. A missing source is a hard error for that pair only; the other
// pairs still attempt. Copy only creates (or overwrites files), never
// deletes, so traversal order carries no rename-style hazard.
func (op *Operator) CopyTree(ctx context.Context, pairs []Pair) (*status.Report, error) {
	if len(pairs) == 0 {
		return nil, errors.Errorf("no copy specifications provided")
	}

	report := &status.Report{}
	for _, p := range pairs {
		srcInfo, err := os.Stat(p.Source)
		if err != nil {
			op.record(ctx, report, status.EntryReport{Path: p.Source, Outcome: status.OutcomeError, Err: errors.Errorf("source path does not exist: %w", err)})
			continue
		}

		tgtInfo, tgtErr := os.Stat(p.Target)
		targetIsDir := tgtErr == nil && tgtInfo.IsDir()

		if srcInfo.IsDir() {
			if tgtErr == nil && !tgtInfo.IsDir() {
				op.record(ctx, report, status.EntryReport{
					Path:    p.Source,
					Outcome: status.OutcomeError,
					Err:     errors.Errorf("cannot copy directory %s onto file %s", p.Source, p.Target),
				})
				continue
			}
			op.copyDirectory(ctx, p.Source, p.Target, targetIsDir, report)
			continue
		}

		// A single file copied into an existing directory keeps its
		// original base name.
		dest := p.Target
		if targetIsDir {
			dest = filepath.Join(p.Target, filepath.Base(p.Source))
		}
		op.copyFile(ctx, p.Source, dest, srcInfo.Mode().Perm(), report)
	}

	return report, nil
}

// 📄 copyFile copies one file, transforming UTF-8 content and passing
// binary content through byte for byte. An existing destination file is
// overwritten (replace semantics, as conventional recursive copy does).
func (op *Operator) copyFile(ctx context.Context, src, dest string, perm os.FileMode, report *status.Report) {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		op.record(ctx, report, status.EntryReport{Path: src, Outcome: status.OutcomeError, Err: errors.Errorf("creating target directory: %w", err)})
		return
	}

	data, err := os.ReadFile(src)
	if err != nil {
		op.record(ctx, report, status.EntryReport{Path: src, Outcome: status.OutcomeError, Err: errors.Errorf("reading source file: %w", err)})
		return
	}

	if utf8.Valid(data) {
		data = []byte(op.replacer.ApplyAll(string(data), op.rules, op.toggles.CaseVariants))
	}

	if err := writeFileAtomic(dest, data, perm); err != nil {
		op.record(ctx, report, status.EntryReport{Path: src, Outcome: status.OutcomeError, Err: errors.Errorf("writing target file: %w", err)})
		return
	}

	op.record(ctx, report, status.EntryReport{Path: src, Outcome: status.OutcomeCopied, Detail: "-> " + dest})
}

// 📁 copyDirectory maps a whole source tree under the computed destination
// root, transforming each relative path component independently.
func (op *Operator) copyDirectory(ctx context.Context, src, target string, targetIsDir bool, report *status.Report) {
	// Copying into an existing directory nests the source under it; the
	// nested root's own name is subject to the directory-rename toggle.
	destRoot := target
	if targetIsDir {
		name := filepath.Base(src)
		if op.toggles.RenameDirs {
			name = op.replacer.ApplyAll(name, op.rules, op.toggles.CaseVariants)
		}
		destRoot = filepath.Join(target, name)
	}

	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		op.record(ctx, report, status.EntryReport{Path: src, Outcome: status.OutcomeError, Err: errors.Errorf("creating target directory: %w", err)})
		return
	}

	entries, err := walker.Walk(ctx, src, walker.Options{
		RespectIgnoreFiles: op.toggles.RespectIgnoreFiles,
		ExcludeGlobs:       op.excludes,
	})
	if err != nil {
		op.record(ctx, report, status.EntryReport{Path: src, Outcome: status.OutcomeError, Err: err})
		return
	}

	for _, e := range entries {
		if e.Rel == "." {
			continue
		}

		destPath := filepath.Join(destRoot, op.mapRelPath(e.Rel, e.IsDir))

		if e.IsDir {
			if err := os.MkdirAll(destPath, 0o755); err != nil {
				op.record(ctx, report, status.EntryReport{Path: e.Path, Outcome: status.OutcomeError, Err: errors.Errorf("creating directory: %w", err)})
				continue
			}
			op.record(ctx, report, status.EntryReport{Path: e.Path, Outcome: status.OutcomeCopied, Detail: "-> " + destPath})
			continue
		}

		info, err := os.Stat(e.Path)
		if err != nil {
			op.record(ctx, report, status.EntryReport{Path: e.Path, Outcome: status.OutcomeError, Err: errors.Errorf("stat: %w", err)})
			continue
		}
		op.copyFile(ctx, e.Path, destPath, info.Mode().Perm(), report)
	}
}

// 🗺️ mapRelPath transforms each component of a root-relative path. Every
// component but the last is a directory by construction; the last carries
// the traversal's own classification, so no per-component filesystem check
// is needed.
func (op *Operator) mapRelPath(rel string, isDir bool) string {
	components := strings.Split(rel, string(filepath.Separator))
	for i, component := range components {
		componentIsDir := isDir || i < len(components)-1
		if componentIsDir && !op.toggles.RenameDirs {
			continue
		}
		if !componentIsDir && !op.toggles.RenameFiles {
			continue
		}
		components[i] = op.replacer.ApplyAll(component, op.rules, op.toggles.CaseVariants)
	}
	return filepath.Join(components...)
}
