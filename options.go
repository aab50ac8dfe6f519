package liferestart

import (
	"github.com/rs/zerolog"

	"github.com/lox/liferestart/condition"
)

// defaultReplacementDepth and defaultChainDepth are the spec's recursion
// caps: 32 for startup talent replacement, 64 for per-year event chains.
const (
	defaultReplacementDepth = 32
	defaultChainDepth       = 64
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger injects a zerolog.Logger for engine-internal diagnostics. The
// engine emits one debug-level message: a year whose event pool yields no
// selection. Cache misses and depth-cap hits are not logged. The default is a disabled
// logger, matching how internal/regression and internal/server in the
// teacher pack default to a no-op rather than a package-global logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithConditionCache overrides the condition parse cache the engine uses.
// Defaults to condition.Global(), the process-wide shared cache; tests
// that want isolation from other tests' cache entries can pass
// condition.NewCache().
func WithConditionCache(cache *condition.Cache) Option {
	return func(e *Engine) { e.conditions = cache }
}

// WithReplacementDepth overrides the startup talent-replacement recursion
// cap (default 32).
func WithReplacementDepth(depth int) Option {
	return func(e *Engine) { e.replacementDepth = depth }
}

// WithChainDepth overrides the per-year event chain-resolution recursion
// cap (default 64).
func WithChainDepth(depth int) Option {
	return func(e *Engine) { e.chainDepth = depth }
}
