package operation

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mane-cli/mane/pkg/config"
	"github.com/mane-cli/mane/pkg/status"
	"github.com/mane-cli/mane/pkg/text"
)

func newTestOperator(t *testing.T, toggles config.Toggles, rules ...text.Rule) *Operator {
	t.Helper()
	op, err := New(Options{
		Rules:    text.NewRuleSet(rules...),
		Toggles:  toggles,
		Reporter: status.NewReporter(io.Discard, false),
	})
	require.NoError(t, err)
	return op
}

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Options{Reporter: status.NewReporter(io.Discard, false)})
	require.Error(t, err)

	_, err = New(Options{Rules: text.NewRuleSet()})
	require.Error(t, err)
}
