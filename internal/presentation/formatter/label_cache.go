package formatter

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultLabelCacheSize = 256

// LabelCache memoizes ModelLabel for the model picker, which reformats the
// whole model list on every refresh.
type LabelCache struct {
	cache *lru.Cache[string, string]
}

// NewLabelCache returns a cache holding up to size labels. Non-positive
// sizes fall back to a default.
func NewLabelCache(size int) *LabelCache {
	if size <= 0 {
		size = defaultLabelCacheSize
	}
	// lru.New only errors on non-positive size which we guard above.
	cache, _ := lru.New[string, string](size)
	return &LabelCache{cache: cache}
}

// Label returns the picker label for name.
func (c *LabelCache) Label(name string) string {
	if label, ok := c.cache.Get(name); ok {
		return label
	}
	label := ModelLabel(name)
	c.cache.Add(name, label)
	return label
}

// Labels formats names in order.
func (c *LabelCache) Labels(names []string) []string {
	labels := make([]string, 0, len(names))
	for _, name := range names {
		labels = append(labels, c.Label(name))
	}
	return labels
}

// Len reports how many labels are cached.
func (c *LabelCache) Len() int {
	return c.cache.Len()
}
