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

// Package config holds the run configuration for a replacement run: the
// engine toggles and the optional rules file.
package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/mane-cli/mane/pkg/text"
)

// 🔧 Toggles is the read-only engine configuration for one run. It is
// established once before any traversal begins and threaded as a value into
// every engine call; there is no process-wide mutable state.
type Toggles struct {
	CaseVariants       bool // expand rules across case-style variants
	RenameFiles        bool // rewrite file name components
	RenameDirs         bool // rewrite directory name components
	RespectIgnoreFiles bool // prune traversal with gitignore files
	Verbose            bool // per-entry progress reporting
}

// 🏭 DefaultToggles returns the defaults: everything on except verbosity.
func DefaultToggles() Toggles {
	return Toggles{
		CaseVariants:       true,
		RenameFiles:        true,
		RenameDirs:         true,
		RespectIgnoreFiles: true,
	}
}

// 🔄 RuleEntry is one replacement rule as written in a rules file
type RuleEntry struct {
	From string `yaml:"from" hcl:"from"`
	To   string `yaml:"to" hcl:"to"`
}

// 📚 RulesFile is the schema of a .mane.yaml / .mane.hcl rules file
type RulesFile struct {
	Rules          []RuleEntry `yaml:"rules" hcl:"rule,block"`
	IgnorePatterns []string    `yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
	CaseVariants   *bool       `yaml:"case_variants,omitempty" hcl:"case_variants,optional"`
	RenameFiles    *bool       `yaml:"rename_files,omitempty" hcl:"rename_files,optional"`
	RenameDirs     *bool       `yaml:"rename_dirs,omitempty" hcl:"rename_dirs,optional"`
}

// 🔍 Validate checks that every rule has a non-empty From
func (f *RulesFile) Validate() error {
	for i, r := range f.Rules {
		if r.From == "" {
			return errors.Errorf("rule %d: from is required", i)
		}
	}
	return nil
}

// ApplyTo overlays the file's toggle settings onto t, leaving unset fields
// at their current values.
func (f *RulesFile) ApplyTo(t Toggles) Toggles {
	if f.CaseVariants != nil {
		t.CaseVariants = *f.CaseVariants
	}
	if f.RenameFiles != nil {
		t.RenameFiles = *f.RenameFiles
	}
	if f.RenameDirs != nil {
		t.RenameDirs = *f.RenameDirs
	}
	return t
}

// 🎯 Load loads a rules file from the given path
func Load(ctx context.Context, path string) (*RulesFile, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading rules file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading rules file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	f, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing rules file: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, errors.Errorf("validating rules file: %w", err)
	}

	return f, nil
}

// defaultFileNames are probed in order when no rules file is given.
var defaultFileNames = []string{".mane.yaml", ".mane.yml", ".mane.hcl"}

// 🔍 Locate returns the first default rules file present in dir, or "".
func Locate(dir string) string {
	for _, name := range defaultFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// 🔀 MergeRules builds the effective rule set: file rules first, then CLI
// rules, where a CLI rule with an already-present from evicts the file rule
// (last write wins by from).
func MergeRules(fileRules []RuleEntry, cliRules []text.Rule) (*text.RuleSet, error) {
	set := text.NewRuleSet()
	for i, r := range fileRules {
		if r.From == "" {
			return nil, errors.Errorf("rule %d: empty from string is not allowed", i)
		}
		set.Add(text.Rule{From: r.From, To: r.To})
	}
	for i, r := range cliRules {
		if r.From == "" {
			return nil, errors.Errorf("replacement %d: empty from string is not allowed", i)
		}
		set.Add(r)
	}
	return set, nil
}
