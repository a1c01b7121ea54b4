package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupErrorFormatting(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  *Lookup
		want string
	}{
		{
			name: "not found with table and key",
			err:  NotFound("unimod", "Oxydation"),
			want: `[not-found] unimod "Oxydation": no record matches key`,
		},
		{
			name: "code only",
			err:  &Lookup{Code: CodeEmptyTable},
			want: "[empty-table]",
		},
		{
			name: "formatted message",
			err:  NewLookupf(CodeAmbiguousMass, "psimod", "79.9663", "%d candidates", 3),
			want: `[ambiguous-mass] psimod "79.9663": 3 candidates`,
		},
		{
			name: "nil receiver",
			err:  nil,
			want: "lookup <nil>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestAsLookupUnwrapsChain(t *testing.T) {
	t.Parallel()

	base := NotFound("elements", "Zzz")
	wrapped := fmt.Errorf("resolve composition: %w", base)

	got, ok := AsLookup(wrapped)
	require.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsLookup(fmt.Errorf("plain error"))
	assert.False(t, ok)

	_, ok = AsLookup(nil)
	assert.False(t, ok)
}

func TestCodePredicates(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("query: %w", NotFound("resid", "AA9999"))
	assert.True(t, IsNotFound(err))
	assert.True(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(err, CodeAmbiguousMass))
	assert.False(t, IsNotFound(nil))
}
