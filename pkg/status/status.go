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

// Package status collects per-entry outcomes of a replacement run and
// renders them for the user.
package status

// 📊 Outcome represents what happened to one filesystem entry
type Outcome int

const (
	OutcomeUnknown         Outcome = iota
	OutcomeUnchanged               // no rule matched the entry
	OutcomeModified                // file content rewritten in place
	OutcomeRenamed                 // entry name rewritten
	OutcomeCopied                  // entry materialized at a copy destination
	OutcomeSkippedConflict         // rename destination already occupied
	OutcomeError                   // entry-scoped failure, run continued
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeModified:
		return "modified"
	case OutcomeRenamed:
		return "renamed"
	case OutcomeCopied:
		return "copied"
	case OutcomeSkippedConflict:
		return "skipped-conflict"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 EntryReport is the outcome for a single path
type EntryReport struct {
	Path    string  // the entry's path at decision time
	Outcome Outcome // what happened
	Detail  string  // optional human-readable detail (new name, conflict target, ...)
	Err     error   // set when Outcome is OutcomeError
}

// 📚 Report is the ordered sequence of entry outcomes for one operation
type Report struct {
	entries []EntryReport
}

// Add appends an entry outcome.
func (r *Report) Add(e EntryReport) {
	r.entries = append(r.entries, e)
}

// Entries returns the outcomes in the order they were recorded.
func (r *Report) Entries() []EntryReport {
	return r.entries
}

// Changed counts entries that were modified, renamed or copied.
func (r *Report) Changed() int {
	n := 0
	for _, e := range r.entries {
		switch e.Outcome {
		case OutcomeModified, OutcomeRenamed, OutcomeCopied:
			n++
		}
	}
	return n
}

// Errs returns every entry-scoped error in recording order.
func (r *Report) Errs() []error {
	var errs []error
	for _, e := range r.entries {
		if e.Err != nil {
			errs = append(errs, e.Err)
		}
	}
	return errs
}
