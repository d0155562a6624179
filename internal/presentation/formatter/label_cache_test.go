package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelCacheMatchesModelLabel(t *testing.T) {
	cache := NewLabelCache(2)

	assert.Equal(t, "Gpt 4o (Latest)", cache.Label("gpt-4o:latest"))
	assert.Equal(t, "Gpt 4o (Latest)", cache.Label("gpt-4o:latest"))
	assert.Equal(t, 1, cache.Len())
}

func TestLabelCacheEvictsOldest(t *testing.T) {
	cache := NewLabelCache(2)

	got := cache.Labels([]string{"llama3", "phi3", "mistral"})

	assert.Equal(t, []string{"Llama3", "Phi3", "Mistral"}, got)
	assert.Equal(t, 2, cache.Len())
}

func TestLabelCacheDefaultSize(t *testing.T) {
	cache := NewLabelCache(0)
	assert.Equal(t, "", cache.Label(""))
	assert.Equal(t, 1, cache.Len())
}
