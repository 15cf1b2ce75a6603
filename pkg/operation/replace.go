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
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/mane-cli/mane/pkg/status"
)

// 🔄 ReplaceContent applies the rule set to a content string
func (op *Operator) ReplaceContent(ctx context.Context, content string) string {
	return op.replacer.ApplyAll(content, op.rules, op.toggles.CaseVariants)
}

// 📄 ReplaceFiles rewrites the content of the given files in place. Paths
// that are missing or are directories are reported and skipped; files that
// do not decode as UTF-8 are never rewritten. Unchanged files are not
// written back, so their metadata stays untouched.
func (op *Operator) ReplaceFiles(ctx context.Context, paths []string) (*status.Report, error) {
	if err := op.requireRules(); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.Errorf("no input files provided for replacement")
	}

	report := &status.Report{}
	for _, path := range paths {
		op.replaceFileContent(ctx, path, report)
	}

	if report.Changed() == 0 {
		op.reporter.Warning(ctx, "no replacements were made; check if the pattern exists in the files")
	}

	return report, nil
}

// replaceFileContent handles one file for both ReplaceFiles and the content
// phase of RenameTree.
func (op *Operator) replaceFileContent(ctx context.Context, path string, report *status.Report) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(path)
	if err != nil {
		op.record(ctx, report, status.EntryReport{Path: path, Outcome: status.OutcomeError, Err: errors.Errorf("stat: %w", err)})
		return
	}
	if info.IsDir() {
		op.record(ctx, report, status.EntryReport{Path: path, Outcome: status.OutcomeUnchanged, Detail: "is a directory"})
		return
	}

	content, isText, err := readTextFile(path)
	if err != nil {
		op.record(ctx, report, status.EntryReport{Path: path, Outcome: status.OutcomeError, Err: err})
		return
	}
	if !isText {
		logger.Debug().Str("path", path).Msg("skipping binary file")
		op.record(ctx, report, status.EntryReport{Path: path, Outcome: status.OutcomeUnchanged, Detail: "binary file"})
		return
	}

	res := op.replacer.ApplyAllResult(content, op.rules, op.toggles.CaseVariants)
	if !res.Changed {
		op.record(ctx, report, status.EntryReport{Path: path, Outcome: status.OutcomeUnchanged})
		return
	}

	if err := writeFileAtomic(path, []byte(res.Modified), info.Mode().Perm()); err != nil {
		op.record(ctx, report, status.EntryReport{Path: path, Outcome: status.OutcomeError, Err: err})
		return
	}

	op.record(ctx, report, status.EntryReport{
		Path:    path,
		Outcome: status.OutcomeModified,
		Detail:  detailReplacements(res.Replacements),
	})
}

// 🚿 ReplaceStream reads all input, applies the rule set and writes the
// result. Empty input is an error; a rule set that matched nothing is
// reported as a warning so a mistyped pattern is visible.
func (op *Operator) ReplaceStream(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := op.requireRules(); err != nil {
		return err
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Errorf("reading input: %w", err)
	}
	if len(data) == 0 {
		return errors.Errorf("no input provided for replacement")
	}

	res := op.replacer.ApplyAllResult(string(data), op.rules, op.toggles.CaseVariants)
	if _, err := io.WriteString(out, res.Modified); err != nil {
		return errors.Errorf("writing output: %w", err)
	}

	if !res.Changed {
		op.reporter.Warning(ctx, "no replacements were made; check if the pattern exists in the input")
	}

	return nil
}

func (op *Operator) record(ctx context.Context, report *status.Report, e status.EntryReport) {
	report.Add(e)
	op.reporter.Entry(ctx, e)
}

func detailReplacements(n int) string {
	if n == 1 {
		return "1 replacement"
	}
	return fmt.Sprintf("%d replacements", n)
}
