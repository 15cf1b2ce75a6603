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

// Package walker produces filesystem entry snapshots under a root,
// optionally honoring nested gitignore files and extra exclusion globs.
package walker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/denormal/go-gitignore"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📄 Entry is one filesystem entry found under a walk root. It has no
// identity beyond its path and is not valid across a rename.
type Entry struct {
	Path  string // full path, root included
	Rel   string // path relative to the walk root, "." for the root itself
	IsDir bool
}

// 🔧 Options controls which entries a walk yields
type Options struct {
	// RespectIgnoreFiles prunes entries matched by gitignore files found
	// along the traversed path (nested files override outer ones, negation
	// patterns re-include).
	RespectIgnoreFiles bool

	// IncludeHidden yields dotfile entries. In-place renaming needs this
	// on so hidden entries stay discoverable.
	IncludeHidden bool

	// ExcludeGlobs are doublestar patterns matched against the
	// root-relative path; a match excludes the entry.
	ExcludeGlobs []string
}

// 🚶 Walk traverses root and returns every admitted entry, the root itself
// included. The result is materialized before return so destructive callers
// operate on an immutable snapshot; its order is not part of the contract
// and callers must impose their own ordering before renaming anything.
// Entry-level errors (permission denied, races during traversal) are logged
// and skipped; only an unusable root is an error.
func Walk(ctx context.Context, root string, opts Options) ([]Entry, error) {
	logger := zerolog.Ctx(ctx)

	rootInfo, err := os.Stat(root)
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	var ignorer gitignore.GitIgnore
	if opts.RespectIgnoreFiles && rootInfo.IsDir() {
		ignorer, err = gitignore.NewRepository(root)
		if err != nil {
			return nil, errors.Errorf("loading ignore files under %s: %w", root, err)
		}
	}

	var entries []Entry
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn().Str("path", path).Err(err).Msg("skipping unreadable entry")
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			logger.Warn().Str("path", path).Err(err).Msg("skipping entry outside root")
			return nil
		}

		if rel != "." {
			name := d.Name()

			if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if opts.RespectIgnoreFiles {
				// The .git directory is not part of the worktree.
				if d.IsDir() && name == ".git" {
					return fs.SkipDir
				}
				if ignorer != nil {
					if match := ignorer.Relative(rel, d.IsDir()); match != nil && match.Ignore() {
						if d.IsDir() {
							return fs.SkipDir
						}
						return nil
					}
				}
			}

			if excluded(opts.ExcludeGlobs, rel, logger) {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
		}

		entries = append(entries, Entry{Path: path, Rel: rel, IsDir: d.IsDir()})
		return nil
	})
	if walkErr != nil {
		return nil, errors.Errorf("walking %s: %w", root, walkErr)
	}

	return entries, nil
}

// 🔍 excluded checks the root-relative path against the exclusion globs
func excluded(globs []string, rel string, logger *zerolog.Logger) bool {
	if len(globs) == 0 {
		return false
	}
	slashRel := filepath.ToSlash(rel)
	for _, pattern := range globs {
		matched, err := doublestar.Match(pattern, slashRel)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching exclusion pattern")
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
