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

// Package operation provides the entry operations of mane: content
// replacement, in-place tree replace-and-rename, and copy-with-replace.
//
// Every operation runs single-threaded and synchronous. Entry-scoped
// failures become report entries and the run continues; only setup
// failures (no rules, no usable root) are returned as errors.
package operation

import (
	"gitlab.com/tozd/go/errors"

	"github.com/mane-cli/mane/pkg/config"
	"github.com/mane-cli/mane/pkg/status"
	"github.com/mane-cli/mane/pkg/text"
)

// 🔧 Options contains the collaborators and configuration for an operator
type Options struct {
	// Rules is the resolved, deduplicated rule set. May be empty for copy
	// mode; the other operations require at least one rule.
	Rules *text.RuleSet

	// Toggles is the read-only run configuration.
	Toggles config.Toggles

	// Reporter renders per-entry outcomes.
	Reporter *status.Reporter

	// ExcludeGlobs are extra traversal exclusion patterns (doublestar
	// syntax) on top of ignore-file pruning.
	ExcludeGlobs []string
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Rules == nil {
		return nil, errors.Errorf("rule set is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	return &Operator{
		rules:    opts.Rules,
		toggles:  opts.Toggles,
		reporter: opts.Reporter,
		excludes: opts.ExcludeGlobs,
		replacer: text.NewReplacer(),
	}, nil
}

// 🎮 Operator executes the entry operations
type Operator struct {
	rules    *text.RuleSet
	toggles  config.Toggles
	reporter *status.Reporter
	excludes []string
	replacer *text.Replacer
}

// requireRules guards the operations that are meaningless without rules.
func (op *Operator) requireRules() error {
	if op.rules.Len() == 0 {
		return errors.Errorf("no replacement rules specified")
	}
	return nil
}
