package counter

import (
	"sync"

	"github.com/NivBraz/trendstats/internal/models"
	"github.com/NivBraz/trendstats/pkg/parser"
)

// Counter is a frequency table of items.
type Counter struct {
	counts map[string]int
	total  int
	mu     sync.RWMutex
}

func New() *Counter {
	return &Counter{
		counts: make(map[string]int),
	}
}

// FromItems counts every entry of items.
func FromItems(items []string) *Counter {
	c := New()
	c.AddAll(items)
	return c
}

func (c *Counter) AddAll(items []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		c.counts[item]++
	}
	c.total += len(items)
}

// Total is the number of items added, duplicates included.
func (c *Counter) Total() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.total
}

// Top returns up to n items ordered by descending count, ascending item on
// ties, after dropping the first skip entries of that ordering.
func (c *Counter) Top(n, skip int) []models.ItemCount {
	c.mu.RLock()
	items := make([]models.ItemCount, 0, len(c.counts))
	for item, count := range c.counts {
		items = append(items, models.ItemCount{Item: item, Count: count})
	}
	c.mu.RUnlock()

	parser.SortItemCounts(items)

	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []models.ItemCount{}
	}
	items = items[skip:]
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}
