package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mane-cli/mane/pkg/operation"
	"github.com/mane-cli/mane/pkg/text"
)

func TestParseReplaceFlags(t *testing.T) {
	tests := []struct {
		name      string
		raw       []string
		want      []text.Rule
		wantError string
	}{
		{
			name: "single_rule",
			raw:  []string{"helloWorld=goodMorning"},
			want: []text.Rule{{From: "helloWorld", To: "goodMorning"}},
		},
		{
			name: "to_may_contain_equals",
			raw:  []string{"a=b=c"},
			want: []text.Rule{{From: "a", To: "b=c"}},
		},
		{
			name: "empty_to_is_deletion",
			raw:  []string{"gone="},
			want: []text.Rule{{From: "gone", To: ""}},
		},
		{
			name:      "missing_separator",
			raw:       []string{"nope"},
			wantError: "expected FROM=TO",
		},
		{
			name:      "empty_from",
			raw:       []string{"=to"},
			wantError: "empty FROM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseReplaceFlags(tt.raw)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCopyFlags(t *testing.T) {
	pairs, err := parseCopyFlags([]string{"a", "b", "dst"})
	require.NoError(t, err)
	assert.Equal(t, []operation.Pair{
		{Source: "a", Target: "dst"},
		{Source: "b", Target: "dst"},
	}, pairs)

	_, err = parseCopyFlags([]string{"only-one"})
	require.Error(t, err)
}
