package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordkit/wordkit/pkg/selector"
)

func TestHistory(t *testing.T) {
	t.Run("records words in lowercase", func(t *testing.T) {
		h := selector.NewHistory()
		h.Add("Apple")

		assert.True(t, h.Contains("apple"))
		assert.True(t, h.Contains("APPLE"))
		assert.ElementsMatch(t, []string{"apple"}, h.Words())
	})

	t.Run("clear forgets everything", func(t *testing.T) {
		h := selector.NewHistory()
		h.Add("apple")
		h.Add("bee")
		assert.Equal(t, 2, h.Len())

		h.Clear()
		assert.Equal(t, 0, h.Len())
		assert.False(t, h.Contains("apple"))
	})

	t.Run("nil history is inert", func(t *testing.T) {
		var h *selector.History
		assert.False(t, h.Contains("apple"))
		assert.Equal(t, 0, h.Len())
		assert.Nil(t, h.Words())
		h.Add("apple") // must not panic
		h.Clear()      // must not panic
	})

	t.Run("duplicate adds collapse", func(t *testing.T) {
		h := selector.NewHistory()
		h.Add("apple")
		h.Add("Apple")
		assert.Equal(t, 1, h.Len())
	})
}
