package xiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceStopsOnBreak(t *testing.T) {
	t.Parallel()

	var seen []int
	for v := range Slice([]int{1, 2, 3, 4}) {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, Collect(Slice([]string{"a", "b"})))
	assert.Empty(t, Collect(Slice([]string(nil))))
}

func TestSortedKeys(t *testing.T) {
	t.Parallel()

	m := map[string]int{"tmt": 1, "itraq": 2, "silac": 3}
	assert.Equal(t, []string{"itraq", "silac", "tmt"}, Collect(SortedKeys(m)))
}
