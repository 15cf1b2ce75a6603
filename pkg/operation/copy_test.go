package operation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mane-cli/mane/pkg/config"
	"github.com/mane-cli/mane/pkg/text"
)

func TestCopyTree_FileIntoDirectoryKeepsBaseName(t *testing.T) {
	src := filepath.Join(t.TempDir(), "alpha.txt")
	writeFile(t, src, []byte("alpha AlphaValue"))
	target := t.TempDir()

	op := newTestOperator(t, config.DefaultToggles(), text.Rule{From: "alpha", To: "zeta"})
	report, err := op.CopyTree(context.Background(), []Pair{{Source: src, Target: target}})
	require.NoError(t, err)
	assert.Empty(t, report.Errs())

	// The base name stays untransformed; only the content changes.
	dest := filepath.Join(target, "alpha.txt")
	require.FileExists(t, dest)
	assert.Equal(t, "zeta ZetaValue", readFile(t, dest))

	// The source is never mutated.
	assert.Equal(t, "alpha AlphaValue", readFile(t, src))
}

func TestCopyTree_FileToExplicitPathOverwrites(t *testing.T) {
	src := filepath.Join(t.TempDir(), "in.txt")
	writeFile(t, src, []byte("alpha"))
	dest := filepath.Join(t.TempDir(), "out.txt")
	writeFile(t, dest, []byte("stale"))

	op := newTestOperator(t, config.DefaultToggles(), text.Rule{From: "alpha", To: "zeta"})
	_, err := op.CopyTree(context.Background(), []Pair{{Source: src, Target: dest}})
	require.NoError(t, err)

	assert.Equal(t, "zeta", readFile(t, dest))
}

func TestCopyTree_BinaryPassthrough(t *testing.T) {
	raw := []byte{0xff, 0xfe, 'a', 'l', 'p', 'h', 'a', 0x00}
	src := filepath.Join(t.TempDir(), "blob.bin")
	writeFile(t, src, raw)
	target := t.TempDir()

	op := newTestOperator(t, config.DefaultToggles(), text.Rule{From: "alpha", To: "zeta"})
	_, err := op.CopyTree(context.Background(), []Pair{{Source: src, Target: target}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(target, "blob.bin"))
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestCopyTree_DirectoryMapsComponents(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "alpha_project")
	writeFile(t, filepath.Join(src, "alphaDir", "alpha_file.txt"), []byte("AlphaProject uses alpha"))
	writeFile(t, filepath.Join(src, "plain.txt"), []byte("nothing here"))
	target := t.TempDir()

	op := newTestOperator(t, config.DefaultToggles(), text.Rule{From: "alpha", To: "zeta"})
	report, err := op.CopyTree(context.Background(), []Pair{{Source: src, Target: target}})
	require.NoError(t, err)
	assert.Empty(t, report.Errs())

	// Root directory name and every path component are transformed.
	assert.Equal(t, "ZetaProject uses zeta",
		readFile(t, filepath.Join(target, "zeta_project", "zetaDir", "zeta_file.txt")))
	assert.Equal(t, "nothing here",
		readFile(t, filepath.Join(target, "zeta_project", "plain.txt")))

	// Source tree untouched.
	assert.FileExists(t, filepath.Join(src, "alphaDir", "alpha_file.txt"))
}

func TestCopyTree_DirRenameToggleOffKeepsRootName(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "alpha_project")
	writeFile(t, filepath.Join(src, "alpha.txt"), []byte("x"))
	target := t.TempDir()

	toggles := config.DefaultToggles()
	toggles.RenameDirs = false

	op := newTestOperator(t, toggles, text.Rule{From: "alpha", To: "zeta"})
	_, err := op.CopyTree(context.Background(), []Pair{{Source: src, Target: target}})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(target, "alpha_project", "zeta.txt"))
}

func TestCopyTree_DirectoryOntoFileIsReportedNotFatal(t *testing.T) {
	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, "srcdir")
	writeFile(t, filepath.Join(srcDir, "a.txt"), []byte("alpha"))
	srcFile := filepath.Join(tmp, "single.txt")
	writeFile(t, srcFile, []byte("alpha"))
	targetFile := filepath.Join(tmp, "occupied")
	writeFile(t, targetFile, []byte("i am a file"))
	targetDir := t.TempDir()

	op := newTestOperator(t, config.DefaultToggles(), text.Rule{From: "alpha", To: "zeta"})
	report, err := op.CopyTree(context.Background(), []Pair{
		{Source: srcDir, Target: targetFile},
		{Source: srcFile, Target: targetDir},
	})
	require.NoError(t, err)

	// First pair fails, second still runs.
	assert.Len(t, report.Errs(), 1)
	assert.Equal(t, "i am a file", readFile(t, targetFile))
	assert.Equal(t, "zeta", readFile(t, filepath.Join(targetDir, "single.txt")))
}

func TestCopyTree_MissingSourceIsPerPair(t *testing.T) {
	tmp := t.TempDir()
	present := filepath.Join(tmp, "present.txt")
	writeFile(t, present, []byte("alpha"))
	target := t.TempDir()

	op := newTestOperator(t, config.DefaultToggles(), text.Rule{From: "alpha", To: "zeta"})
	report, err := op.CopyTree(context.Background(), []Pair{
		{Source: filepath.Join(tmp, "missing.txt"), Target: target},
		{Source: present, Target: target},
	})
	require.NoError(t, err)

	assert.Len(t, report.Errs(), 1)
	assert.FileExists(t, filepath.Join(target, "present.txt"))
}

func TestCopyTree_RespectsIgnoreFiles(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "proj")
	writeFile(t, filepath.Join(src, ".gitignore"), []byte("*.log\n"))
	writeFile(t, filepath.Join(src, "keep.txt"), []byte("alpha"))
	writeFile(t, filepath.Join(src, "drop.log"), []byte("alpha"))
	target := t.TempDir()

	op := newTestOperator(t, config.DefaultToggles(), text.Rule{From: "alpha", To: "zeta"})
	_, err := op.CopyTree(context.Background(), []Pair{{Source: src, Target: target}})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(target, "proj", "keep.txt"))
	assert.NoFileExists(t, filepath.Join(target, "proj", "drop.log"))
}

func TestCopyTree_RerunIsByteIdentical(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "alpha_project")
	writeFile(t, filepath.Join(src, "alpha.txt"), []byte("alpha content"))
	writeFile(t, filepath.Join(src, "blob.bin"), []byte{0xff, 0xfe, 0x00})

	op := newTestOperator(t, config.DefaultToggles(), text.Rule{From: "alpha", To: "zeta"})

	firstTarget := t.TempDir()
	_, err := op.CopyTree(context.Background(), []Pair{{Source: src, Target: firstTarget}})
	require.NoError(t, err)

	secondTarget := t.TempDir()
	_, err = op.CopyTree(context.Background(), []Pair{{Source: src, Target: secondTarget}})
	require.NoError(t, err)

	for _, rel := range []string{
		filepath.Join("zeta_project", "zeta.txt"),
		filepath.Join("zeta_project", "blob.bin"),
	} {
		first, err := os.ReadFile(filepath.Join(firstTarget, rel))
		require.NoError(t, err)
		second, err := os.ReadFile(filepath.Join(secondTarget, rel))
		require.NoError(t, err)
		assert.Equal(t, first, second, rel)
	}
}

func TestCopyTree_CopyModeWorksWithoutRules(t *testing.T) {
	src := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, src, []byte("content"))
	target := t.TempDir()

	op := newTestOperator(t, config.DefaultToggles())
	_, err := op.CopyTree(context.Background(), []Pair{{Source: src, Target: target}})
	require.NoError(t, err)

	assert.Equal(t, "content", readFile(t, filepath.Join(target, "plain.txt")))
}

func TestCopyTree_RequiresPairs(t *testing.T) {
	op := newTestOperator(t, config.DefaultToggles())
	_, err := op.CopyTree(context.Background(), nil)
	require.Error(t, err)
}
