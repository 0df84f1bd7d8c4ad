package catalog

import (
	"github.com/gomtb/validator/cache"
)

// Cached wraps a Service with an LRU over the per-version code sets,
// so repeated checks against the same catalog version skip the inner
// service's locking.
type Cached struct {
	inner Service
	sets  *cache.Cache[string, Codes]
}

// NewCached decorates inner with caching. capacity bounds the number
// of version sets kept; a handful is plenty.
func NewCached(inner Service, capacity int) *Cached {
	return &Cached{
		inner: inner,
		sets:  cache.New[string, Codes](capacity),
	}
}

// Versions implements ICD10Provider.
func (c *Cached) Versions() []ICD10Version {
	return c.inner.Versions()
}

// Codings implements ICD10Provider with caching.
func (c *Cached) Codings(version ICD10Version) Codes {
	key := "icd10|" + string(version)
	if set, ok := c.sets.Get(key); ok {
		return set
	}
	set := c.inner.Codings(version)
	c.sets.Set(key, set)
	return set
}

// Topography implements ICDO3Provider with caching.
func (c *Cached) Topography(version ICDO3Version) Codes {
	key := "icdo3t|" + string(version)
	if set, ok := c.sets.Get(key); ok {
		return set
	}
	set := c.inner.Topography(version)
	c.sets.Set(key, set)
	return set
}

// Morphology implements ICDO3Provider with caching.
func (c *Cached) Morphology(version ICDO3Version) Codes {
	key := "icdo3m|" + string(version)
	if set, ok := c.sets.Get(key); ok {
		return set
	}
	set := c.inner.Morphology(version)
	c.sets.Set(key, set)
	return set
}

// Medications implements MedicationProvider with caching.
func (c *Cached) Medications() Codes {
	const key = "atc"
	if set, ok := c.sets.Get(key); ok {
		return set
	}
	set := c.inner.Medications()
	c.sets.Set(key, set)
	return set
}

// Stats returns cache hit/miss statistics.
func (c *Cached) Stats() cache.Stats {
	return c.sets.Stats()
}

// Verify interface compliance
var _ Service = (*Cached)(nil)
