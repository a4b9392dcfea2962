package catalog

import (
	"context"
	"sync"

	"github.com/community-support-hub/server/internal/hub/metrics"
	"github.com/community-support-hub/server/internal/hub/model"
	logx "github.com/community-support-hub/server/pkg/logger"
)

// Catalog is the shared read model of resources: the bundled base set plus
// at most one merge of remotely fetched records.
type Catalog struct {
	mu      sync.RWMutex
	records []model.Resource
	once    sync.Once
}

// New creates a catalog holding base. A nil base uses DefaultResources.
func New(base []model.Resource) *Catalog {
	if base == nil {
		base = DefaultResources
	}
	c := &Catalog{records: append([]model.Resource(nil), base...)}
	metrics.CatalogSize.Set(float64(len(c.records)))
	return c
}

// Records returns a snapshot of the catalog in order.
func (c *Catalog) Records() []model.Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Resource(nil), c.records...)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Load runs the remote fetch once per catalog and merges the result. Fetch
// failures are logged and leave the catalog unchanged. Later calls are no-ops
// and report false.
func (c *Catalog) Load(ctx context.Context, f Fetcher) bool {
	ran := false
	c.once.Do(func() {
		ran = true
		c.load(ctx, f)
	})
	return ran
}

func (c *Catalog) load(ctx context.Context, f Fetcher) {
	if f == nil {
		return
	}

	remote, err := f.Fetch(ctx)
	if err != nil {
		metrics.CatalogFetches.WithLabelValues("failed").Inc()
		logx.Warn().Err(err).Str("component", "catalog").Msg("remote catalog unavailable; keeping bundled resources")
		return
	}
	if len(remote) == 0 {
		metrics.CatalogFetches.WithLabelValues("empty").Inc()
		logx.Info().Str("component", "catalog").Msg("remote catalog returned no resources")
		return
	}

	c.mu.Lock()
	before := len(c.records)
	c.records = Merge(c.records, remote)
	after := len(c.records)
	c.mu.Unlock()

	metrics.CatalogFetches.WithLabelValues("merged").Inc()
	metrics.CatalogSize.Set(float64(after))
	logx.Info().
		Str("component", "catalog").
		Int("remote", len(remote)).
		Int("added", after-before).
		Int("total", after).
		Msg("merged remote catalog")
}
