package repository

import (
	"context"
	"strings"
	"sync"

	"travelmap-service/internal/domain/entity"
	"travelmap-service/internal/domain/repository"
)

// CachedAirportRepository wraps an AirportRepository with an in-memory
// lookup cache keyed by IATA code. The cache is an explicit object owned by
// whoever wires the repositories, not hidden process state, so callers and
// tests can inject a fresh one and reset it with Clear.
type CachedAirportRepository struct {
	inner repository.AirportRepository

	mu        sync.RWMutex
	byCode    map[string]entity.Airport
	all       []entity.Airport
	allLoaded bool
}

// NewCachedAirportRepository creates a cache around an airport repository.
func NewCachedAirportRepository(inner repository.AirportRepository) *CachedAirportRepository {
	return &CachedAirportRepository{
		inner:  inner,
		byCode: make(map[string]entity.Airport),
	}
}

// FindAll returns the full reference table, reading through on first use.
func (c *CachedAirportRepository) FindAll(ctx context.Context) ([]entity.Airport, error) {
	c.mu.RLock()
	if c.allLoaded {
		airports := make([]entity.Airport, len(c.all))
		copy(airports, c.all)
		c.mu.RUnlock()
		return airports, nil
	}
	c.mu.RUnlock()

	airports, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.all = airports
	c.allLoaded = true
	for _, airport := range airports {
		c.byCode[airport.IATA] = airport
	}
	c.mu.Unlock()

	out := make([]entity.Airport, len(airports))
	copy(out, airports)
	return out, nil
}

// GetByIATA returns a single airport, reading through on cache miss.
// Misses that fail in the backing store are not cached.
func (c *CachedAirportRepository) GetByIATA(ctx context.Context, code string) (*entity.Airport, error) {
	key := strings.ToUpper(code)

	c.mu.RLock()
	if airport, ok := c.byCode[key]; ok {
		c.mu.RUnlock()
		return &airport, nil
	}
	c.mu.RUnlock()

	airport, err := c.inner.GetByIATA(ctx, key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byCode[key] = *airport
	c.mu.Unlock()

	found := *airport
	return &found, nil
}

// Insert writes through and invalidates the cache.
func (c *CachedAirportRepository) Insert(ctx context.Context, airport *entity.Airport) error {
	if err := c.inner.Insert(ctx, airport); err != nil {
		return err
	}
	c.Clear()
	return nil
}

// Clear resets the cache; the next read repopulates it.
func (c *CachedAirportRepository) Clear() {
	c.mu.Lock()
	c.byCode = make(map[string]entity.Airport)
	c.all = nil
	c.allLoaded = false
	c.mu.Unlock()
}
