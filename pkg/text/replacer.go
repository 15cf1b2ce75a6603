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

// Package text implements literal string replacement with automatic
// case-variant expansion: a rule helloWorld → goodMorning also rewrites
// HelloWorld, hello_world, HELLO_WORLD and hello-world wherever those
// forms occur in the input.
package text

import (
	"strings"

	"github.com/mane-cli/mane/pkg/casing"
)

// 🔧 Replacer applies replacement rules to content. It is stateless; all
// configuration travels with each call.
type Replacer struct{}

// 🏭 NewReplacer creates a new Replacer
func NewReplacer() *Replacer {
	return &Replacer{}
}

// 📊 Result describes the effect of applying a rule set to one piece of
// content.
type Result struct {
	Original     string // content as given
	Modified     string // content after all rules
	Changed      bool   // whether any rule matched
	Replacements int    // total occurrences rewritten
}

// Apply rewrites content under a single rule. The literal From is replaced
// first. When caseVariants is set, each concrete style variant of From is
// then replaced by the same-style variant of To — but only if the variant
// differs from the literal From, is non-empty, and occurs in the original
// content. Occurrence is checked against the pristine input rather than the
// running result so one style's output can never become another style's
// trigger. The function is total; it never fails.
func (r *Replacer) Apply(content string, rule Rule, caseVariants bool) string {
	result, _ := r.applyCounted(content, rule, caseVariants)
	return result
}

// ApplyAll folds Apply over the rule set, each rule's output feeding the
// next rule's input.
func (r *Replacer) ApplyAll(content string, rules *RuleSet, caseVariants bool) string {
	return r.ApplyAllResult(content, rules, caseVariants).Modified
}

// ApplyAllResult is ApplyAll with change accounting for callers that need
// to report a no-op rule set or per-entry replacement counts.
func (r *Replacer) ApplyAllResult(content string, rules *RuleSet, caseVariants bool) Result {
	res := Result{Original: content, Modified: content}
	for _, rule := range rules.Rules() {
		modified, n := r.applyCounted(res.Modified, rule, caseVariants)
		res.Modified = modified
		res.Replacements += n
	}
	res.Changed = res.Modified != res.Original
	return res
}

func (r *Replacer) applyCounted(content string, rule Rule, caseVariants bool) (string, int) {
	// Guard against a degenerate rule; the caller boundary already rejects
	// empty From.
	if rule.From == "" {
		return content, 0
	}

	count := strings.Count(content, rule.From)
	result := strings.ReplaceAll(content, rule.From, rule.To)

	if !caseVariants {
		return result, count
	}

	for _, style := range casing.Styles() {
		fromVariant := casing.Convert(rule.From, style)

		// The literal pass already handled an identical variant, and an
		// empty variant would match everywhere.
		if fromVariant == rule.From || fromVariant == "" {
			continue
		}

		// Applicability is judged against the pristine input, not the
		// running result, so replacements cannot cascade into each
		// other's trigger conditions.
		if !strings.Contains(content, fromVariant) {
			continue
		}

		toVariant := casing.Convert(rule.To, style)
		count += strings.Count(result, fromVariant)
		result = strings.ReplaceAll(result, fromVariant, toVariant)
	}

	return result, count
}
