package service

import (
	"food-wastage-api/internal/entity"
	"strings"
	"sync"
	"time"
)

// reportCache holds finished reports until the next load or append. A result
// computed across an invalidation is dropped instead of stored.
type reportCache struct {
	mu         sync.Mutex
	generation uint64
	reports    map[string]*entity.Report
}

func newReportCache() *reportCache {
	return &reportCache{reports: make(map[string]*entity.Report)}
}

func cacheKey(name string, filters entity.ReportFilters, asOf time.Time) string {
	city := strings.ToLower(strings.TrimSpace(filters.City))

	return name + "|" + city + "|" + asOf.Format(dateLayout)
}

func (c *reportCache) get(key string) (*entity.Report, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.reports[key]

	return r, c.generation, ok
}

func (c *reportCache) put(key string, generation uint64, r *entity.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return
	}
	c.reports[key] = r
}

func (c *reportCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.reports = make(map[string]*entity.Report)
}
