package filter

import "github.com/abelbrown/catalog/internal/model"

// Cache memoises the last Visible result for a fixed product list.
// Not safe for concurrent use; the UI owns one.
type Cache struct {
	products []model.EnrichedProduct

	valid  bool
	last   State
	result []model.EnrichedProduct

	hits   int
	misses int
}

// NewCache binds a cache to products, which must not change afterwards.
func NewCache(products []model.EnrichedProduct) *Cache {
	return &Cache{products: products}
}

// Visible returns Visible(products, st), reusing the previous result when
// st is structurally equal to the last state seen. The returned slice is
// shared with the cache and must be treated as read-only.
func (c *Cache) Visible(st State) []model.EnrichedProduct {
	if c.valid && c.last.Equal(st) {
		c.hits++
		return c.result
	}

	c.misses++
	c.result = Visible(c.products, st)
	c.last = st
	c.valid = true
	return c.result
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}
