package main

import (
	"context"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/mane-cli/mane/pkg/config"
	"github.com/mane-cli/mane/pkg/operation"
	"github.com/mane-cli/mane/pkg/status"
	"github.com/mane-cli/mane/pkg/text"
)

var (
	// Flags
	replaceFlags     []string
	copyFlags        []string
	configFile       string
	inPlace          bool
	includeGitIgnore bool
	noCase           bool
	noRenameFile     bool
	noRenameDir      bool
	verbose          bool
	debug            bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mane [flags] [path ...]",
		Short: "case-aware find and replace across file contents and names",
		Long: `mane rewrites literal strings across file contents, file names and
directory names, automatically propagating each rule across the
PascalCase, kebab-case, camelCase, SCREAMING_SNAKE_CASE and snake_case
variants of the same identifier.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: run,
	}

	cmd.Flags().StringArrayVarP(&replaceFlags, "replace", "r", nil, "replacement rule as FROM=TO (repeatable)")
	cmd.Flags().StringArrayVarP(&copyFlags, "copy", "c", nil, "copy sources to a target; the last value is the target (repeatable)")
	cmd.Flags().StringVar(&configFile, "config", "", "rules file path (default: .mane.yaml / .mane.hcl in the working directory)")
	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "replace in file and directory names as well as contents")
	cmd.Flags().BoolVar(&includeGitIgnore, "include-git-ignore", false, "also process entries matched by gitignore files")
	cmd.Flags().BoolVar(&noCase, "no-case", false, "disable case-variant expansion")
	cmd.Flags().BoolVar(&noRenameFile, "no-rename-file", false, "never rename files")
	cmd.Flags().BoolVar(&noRenameDir, "no-rename-dir", false, "never rename directories")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "report every entry, not just changed ones")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	return cmd
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rules, excludes, toggles, err := resolveRun(ctx)
	if err != nil {
		return err
	}

	reporter := status.NewReporter(os.Stderr, verbose)
	op, err := operation.New(operation.Options{
		Rules:        rules,
		Toggles:      toggles,
		Reporter:     reporter,
		ExcludeGlobs: excludes,
	})
	if err != nil {
		return err
	}

	switch {
	case len(copyFlags) > 0:
		pairs, err := parseCopyFlags(copyFlags)
		if err != nil {
			return err
		}
		report, err := op.CopyTree(ctx, pairs)
		if err != nil {
			return err
		}
		reporter.Summary(ctx, report)

	case inPlace:
		roots := args
		if len(roots) == 0 {
			roots = []string{"."}
		}
		report, err := op.RenameTree(ctx, roots)
		if err != nil {
			return err
		}
		reporter.Summary(ctx, report)

	case len(args) > 0:
		report, err := op.ReplaceFiles(ctx, args)
		if err != nil {
			return err
		}
		reporter.Summary(ctx, report)

	case stdinIsPiped():
		return op.ReplaceStream(ctx, os.Stdin, os.Stdout)

	default:
		return errors.Errorf("no replacement target specified; provide files, --copy, or standard input")
	}

	return nil
}

// resolveRun builds the effective rule set, exclusion globs and toggles
// from the rules file (if any) overlaid with the command line.
func resolveRun(ctx context.Context) (*text.RuleSet, []string, config.Toggles, error) {
	toggles := config.DefaultToggles()

	var fileRules []config.RuleEntry
	var excludes []string

	path := configFile
	if path == "" {
		path = config.Locate(".")
	}
	if path != "" {
		f, err := config.Load(ctx, path)
		if err != nil {
			return nil, nil, toggles, err
		}
		fileRules = f.Rules
		excludes = f.IgnorePatterns
		toggles = f.ApplyTo(toggles)
	}

	if noCase {
		toggles.CaseVariants = false
	}
	if noRenameFile {
		toggles.RenameFiles = false
	}
	if noRenameDir {
		toggles.RenameDirs = false
	}
	toggles.RespectIgnoreFiles = !includeGitIgnore
	toggles.Verbose = verbose

	cliRules, err := parseReplaceFlags(replaceFlags)
	if err != nil {
		return nil, nil, toggles, err
	}

	rules, err := config.MergeRules(fileRules, cliRules)
	if err != nil {
		return nil, nil, toggles, err
	}

	// Copy mode works without rules; every other mode needs at least one.
	if rules.Len() == 0 && len(copyFlags) == 0 {
		return nil, nil, toggles, errors.Errorf("no replacement rules specified; use -r/--replace FROM=TO")
	}

	return rules, excludes, toggles, nil
}

// parseReplaceFlags parses repeatable FROM=TO rule flags. The split is on
// the first '=' so TO may contain one.
func parseReplaceFlags(raw []string) ([]text.Rule, error) {
	var rules []text.Rule
	for _, pair := range raw {
		from, to, found := strings.Cut(pair, "=")
		if !found {
			return nil, errors.Errorf("invalid replacement %q: expected FROM=TO", pair)
		}
		if from == "" {
			return nil, errors.Errorf("invalid replacement %q: empty FROM string is not allowed", pair)
		}
		rules = append(rules, text.Rule{From: from, To: to})
	}
	return rules, nil
}

// parseCopyFlags turns the flat --copy value list into pairs: every value
// but the last is a source, the last is the shared target.
func parseCopyFlags(raw []string) ([]operation.Pair, error) {
	if len(raw) < 2 {
		return nil, errors.Errorf("--copy requires at least one SOURCE and one TARGET")
	}
	target := raw[len(raw)-1]
	pairs := make([]operation.Pair, 0, len(raw)-1)
	for _, source := range raw[:len(raw)-1] {
		pairs = append(pairs, operation.Pair{Source: source, Target: target})
	}
	return pairs, nil
}

func stdinIsPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
