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

package text

// 🔄 Rule is a literal (from, to) substitution pair
type Rule struct {
	From string // literal string to replace, never empty at the caller boundary
	To   string // literal replacement
}

// 📚 RuleSet is an ordered collection of rules. Rules apply left to right,
// each rule's output feeding the next. At most one rule exists per From:
// adding a rule with an already-present From evicts the earlier rule.
type RuleSet struct {
	rules []Rule
}

// 🏭 NewRuleSet creates a rule set from the given rules, applying the
// last-write-wins override by From.
func NewRuleSet(rules ...Rule) *RuleSet {
	s := &RuleSet{}
	for _, r := range rules {
		s.Add(r)
	}
	return s
}

// Add appends a rule, evicting any earlier rule with the same From.
func (s *RuleSet) Add(r Rule) {
	kept := s.rules[:0]
	for _, existing := range s.rules {
		if existing.From != r.From {
			kept = append(kept, existing)
		}
	}
	s.rules = append(kept, r)
}

// Rules returns the rules in application order.
func (s *RuleSet) Rules() []Rule {
	return s.rules
}

// Len returns the number of rules.
func (s *RuleSet) Len() int {
	return len(s.rules)
}
