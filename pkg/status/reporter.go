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

package status

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 Reporter renders entry outcomes for the user and mirrors them to the
// structured log. The console writer is kept off stdout so piped output
// (stream mode) never mixes with diagnostics. Verbose gates the chatter
// (unchanged entries, per-copy progress); outcomes that changed or failed
// something always print.
type Reporter struct {
	mu      sync.Mutex
	console io.Writer
	verbose bool
}

// 🏭 NewReporter creates a new reporter writing to the given console
func NewReporter(console io.Writer, verbose bool) *Reporter {
	if verbose {
		pterm.EnableDebugMessages()
	}
	return &Reporter{console: console, verbose: verbose}
}

// 📝 Entry reports a single entry outcome
func (r *Reporter) Entry(ctx context.Context, e EntryReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger := zerolog.Ctx(ctx)

	msg := e.Path
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", e.Path, e.Detail)
	}

	switch e.Outcome {
	case OutcomeModified:
		r.printer(pterm.Info, "📝").Println("Modified " + msg)
	case OutcomeRenamed:
		r.printer(pterm.Success, "🔄").Println("Renamed " + msg)
	case OutcomeCopied:
		if r.verbose {
			r.printer(pterm.Info, "📦").Println("Copied " + msg)
		}
	case OutcomeSkippedConflict:
		r.printer(pterm.Warning, "⏭️").Println("Skipped " + msg)
	case OutcomeError:
		r.printer(pterm.Error, "❌").Println("Failed " + msg)
		if e.Err != nil {
			r.printer(pterm.Error, "❌").Println(e.Err.Error())
		}
	default:
		if r.verbose {
			r.printer(pterm.Debug, "👍").Println("Unchanged " + msg)
		}
	}

	logger.Info().
		Str("path", e.Path).
		Str("outcome", e.Outcome.String()).
		Str("detail", e.Detail).
		Err(e.Err).
		Msg("entry outcome")
}

// ⚠️ Warning reports a run-level observation, e.g. a rule set that matched
// nothing anywhere.
func (r *Reporter) Warning(ctx context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printer(pterm.Warning, "⚠️").Println(msg)
	zerolog.Ctx(ctx).Warn().Msg(msg)
}

// 📊 Summary prints a one-line tally for the whole report
func (r *Reporter) Summary(ctx context.Context, report *Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := report.Changed()
	failed := len(report.Errs())

	fmt.Fprintf(r.console, "%s %s changed, %d failed, %d total\n",
		color.New(color.Bold, color.FgCyan).Sprint("mane"),
		color.New(color.Bold).Sprintf("%d", changed),
		failed,
		len(report.Entries()))

	zerolog.Ctx(ctx).Info().
		Int("changed", changed).
		Int("failed", failed).
		Int("total", len(report.Entries())).
		Msg("run complete")
}

func (r *Reporter) printer(base pterm.PrefixPrinter, prefix string) *pterm.PrefixPrinter {
	return base.WithWriter(r.console).WithPrefix(pterm.Prefix{Text: prefix, Style: base.Prefix.Style})
}
