package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mane-cli/mane/pkg/text"
)

func writeRulesFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeRulesFile(t, ".mane.yaml", `
rules:
  - from: helloWorld
    to: goodMorning
  - from: foo
    to: bar
ignore_patterns:
  - vendor/**
rename_dirs: false
`)

	f, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []RuleEntry{
		{From: "helloWorld", To: "goodMorning"},
		{From: "foo", To: "bar"},
	}, f.Rules)
	assert.Equal(t, []string{"vendor/**"}, f.IgnorePatterns)
	require.NotNil(t, f.RenameDirs)
	assert.False(t, *f.RenameDirs)
}

func TestLoad_YAML_UnknownFieldRejected(t *testing.T) {
	path := writeRulesFile(t, ".mane.yaml", `
rules:
  - from: a
    to: b
bogus_field: true
`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
}

func TestLoad_HCL(t *testing.T) {
	path := writeRulesFile(t, ".mane.hcl", `
rule {
  from = "helloWorld"
  to   = "goodMorning"
}

rule {
  from = "foo"
  to   = "bar"
}

ignore_patterns = ["dist/**"]
case_variants   = false
`)

	f, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []RuleEntry{
		{From: "helloWorld", To: "goodMorning"},
		{From: "foo", To: "bar"},
	}, f.Rules)
	assert.Equal(t, []string{"dist/**"}, f.IgnorePatterns)
	require.NotNil(t, f.CaseVariants)
	assert.False(t, *f.CaseVariants)
}

func TestLoad_EmptyFromRejected(t *testing.T) {
	path := writeRulesFile(t, ".mane.yaml", `
rules:
  - from: ""
    to: b
`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from is required")
}

func TestLoad_NoParser(t *testing.T) {
	path := writeRulesFile(t, "rules.toml", "whatever")
	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser found")
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", Locate(dir))

	path := filepath.Join(dir, ".mane.yml")
	require.NoError(t, os.WriteFile(path, []byte("rules: []\n"), 0o644))
	assert.Equal(t, path, Locate(dir))
}

func TestRulesFile_ApplyTo(t *testing.T) {
	off := false
	f := &RulesFile{RenameFiles: &off}

	toggles := f.ApplyTo(DefaultToggles())
	assert.False(t, toggles.RenameFiles)
	assert.True(t, toggles.RenameDirs)
	assert.True(t, toggles.CaseVariants)
}

func TestMergeRules_CLIOverridesFile(t *testing.T) {
	set, err := MergeRules(
		[]RuleEntry{
			{From: "foo", To: "from-file"},
			{From: "keep", To: "kept"},
		},
		[]text.Rule{{From: "foo", To: "from-cli"}},
	)
	require.NoError(t, err)

	assert.Equal(t, []text.Rule{
		{From: "keep", To: "kept"},
		{From: "foo", To: "from-cli"},
	}, set.Rules())
}

func TestMergeRules_EmptyFromRejected(t *testing.T) {
	_, err := MergeRules(nil, []text.Rule{{From: "", To: "x"}})
	require.Error(t, err)
}
