package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordkit/wordkit/pkg/selector"
)

func TestOrderingSeededShuffleIsStable(t *testing.T) {
	words := []string{"ant", "bee", "crab", "dove", "elk", "fern", "gull", "hare"}

	run := func(seed int64) []string {
		res, err := selector.Select(words, len(words), &selector.Config{
			Seed:             &seed,
			PhoneticDistinct: boolPtr(false),
		})
		require.NoError(t, err)
		return res.Words
	}

	assert.Equal(t, run(99), run(99))
	assert.ElementsMatch(t, words, run(99), "shuffle must be a permutation")
}

func TestOrderingSortAscCaseInsensitive(t *testing.T) {
	res, err := selector.Select([]string{"Cherry", "apple", "Banana"}, 3, &selector.Config{
		Sort: selector.SortAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "Banana", "Cherry"}, res.Words)
}

func TestOrderingSortDesc(t *testing.T) {
	res, err := selector.Select([]string{"apple", "Cherry", "Banana"}, 3, &selector.Config{
		Sort: selector.SortDesc,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cherry", "Banana", "apple"}, res.Words)
}

func TestWeightExpansionPreservesFirstOccurrenceOrder(t *testing.T) {
	// With an identity shuffle the expanded pool surfaces directly in
	// the selection order: weighted words repeat in place.
	res, err := selector.Select([]string{"ant", "bee"}, 4, &selector.Config{
		Weights:          map[string]int{"ant": 2, "bee": 2},
		Shuffle:          func([]string) {},
		PhoneticDistinct: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ant", "ant", "bee", "bee"}, res.Words)
}
