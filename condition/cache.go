package condition

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes parsed condition strings. Catalogue data reuses the same
// few hundred condition strings across thousands of talents and events, so
// parsing once and sharing the AST avoids re-tokenizing on every check.
//
// Reads take the fast path under an RWMutex read lock; a miss upgrades to
// the write lock to insert. Concurrent first-parses of the same never-seen
// key are coalesced through a singleflight.Group so a burst of lookups for
// one condition string parses it exactly once.
type Cache struct {
	mu    sync.RWMutex
	nodes map[string]Node
	group singleflight.Group
}

// NewCache returns an empty condition cache.
func NewCache() *Cache {
	return &Cache{nodes: make(map[string]Node)}
}

// GetOrParse returns the cached AST for condition, parsing and storing it on
// a miss. Parse errors are not cached; a persistently malformed condition
// re-parses (and re-fails) on every call.
func (c *Cache) GetOrParse(conditionStr string) (Node, error) {
	c.mu.RLock()
	node, ok := c.nodes[conditionStr]
	c.mu.RUnlock()
	if ok {
		return node, nil
	}

	result, err, _ := c.group.Do(conditionStr, func() (any, error) {
		c.mu.RLock()
		node, ok := c.nodes[conditionStr]
		c.mu.RUnlock()
		if ok {
			return node, nil
		}

		parsed, err := Parse(conditionStr)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.nodes[conditionStr] = parsed
		c.mu.Unlock()
		return parsed, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(Node), nil
}

// CheckCondition parses (or reuses a cached parse of) conditionStr and
// evaluates it against state. An empty condition string is treated as
// always-true, matching catalogue entries that omit a condition entirely.
func (c *Cache) CheckCondition(conditionStr string, state Lookup) (bool, error) {
	if conditionStr == "" {
		return true, nil
	}
	node, err := c.GetOrParse(conditionStr)
	if err != nil {
		return false, err
	}
	return Check(node, state), nil
}

// Clear empties the cache. Exposed for tests; production callers share one
// process-wide Cache for the engine's lifetime.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nodes = make(map[string]Node)
}

// Size reports the number of distinct condition strings currently cached.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.nodes)
}

// global is the process-wide cache used by callers that don't need an
// isolated instance (mirrors the Rust original's lazily-initialised static).
var global = NewCache()

// Global returns the shared process-wide condition cache.
func Global() *Cache {
	return global
}
