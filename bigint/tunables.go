package bigint

import "github.com/agbruneau/bigint/internal/config"

// defaultTunables is resolved once at package init from the environment
// and adaptive hardware estimation (see internal/config). Individual calls
// may override it by passing a non-nil *config.Tunables to the *T variant
// of an operation; the package never mutates defaultTunables itself, so
// this is not the kind of global mutable state spec.md §5 rules out.
var defaultTunables = config.Load()

// resolveTunables returns t if non-nil, otherwise the package default.
func resolveTunables(t *config.Tunables) config.Tunables {
	if t != nil {
		return *t
	}
	return defaultTunables
}
