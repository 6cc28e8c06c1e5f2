package filter

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ResolverConfig holds option-lookup limits.
type ResolverConfig struct {
	// MaxInFlight caps concurrent lookups across all fields.
	// If 0, defaults to 4.
	MaxInFlight int64

	// LookupsPerSec throttles lookup dispatch. A search input issues one
	// lookup per keystroke; a modest rate keeps slow sources from piling
	// up. If 0, unlimited.
	LookupsPerSec float64

	// Logger receives lookup diagnostics. If nil, logging is disabled.
	Logger *slog.Logger
}

// Resolver resolves enum and relation options against a registry with a
// last-query-wins policy per field: when lookups race, only the result of
// the latest issued query is applied, and a stale result arriving late is
// dropped rather than overwriting what the user is looking at.
//
// Issuing a new lookup logically cancels interest in all prior ones for
// that field; sources are not signalled, their results are just suppressed
// on arrival. A failed lookup degrades to an empty option list and is never
// surfaced as an error. There are no retries.
type Resolver struct {
	reg     *Registry
	sem     *semaphore.Weighted
	limiter *rate.Limiter
	logger  *slog.Logger

	mu   sync.Mutex
	gens map[string]uint64
}

// NewResolver creates a resolver over the given registry.
func NewResolver(reg *Registry, cfg ResolverConfig) *Resolver {
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = 4
	}

	r := &Resolver{
		reg:    reg,
		sem:    semaphore.NewWeighted(cfg.MaxInFlight),
		logger: cfg.Logger,
		gens:   make(map[string]uint64),
	}

	if cfg.LookupsPerSec > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(cfg.LookupsPerSec), 1)
	}

	return r
}

// Lookup resolves options for fieldKey matching query and hands them to
// apply. Resolution may run on another goroutine; apply is invoked at most
// once, and only if no newer lookup for the same field has been issued in
// the meantime. apply runs with the resolver's internal lock held so
// results land in issue order; it must not call back into the Resolver.
// Fields without an option source resolve immediately to nothing and apply
// is not invoked.
//
// Fails with ErrUnknownField; every other failure degrades to applying an
// empty option list.
func (r *Resolver) Lookup(ctx context.Context, fieldKey, query string, apply func([]string)) error {
	f, err := r.reg.Field(fieldKey)
	if err != nil {
		return err
	}
	if f.Options == nil {
		return nil
	}

	r.mu.Lock()
	r.gens[fieldKey]++
	gen := r.gens[fieldKey]
	r.mu.Unlock()

	go func() {
		opts := r.fetch(ctx, f.Options, fieldKey, query)

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.gens[fieldKey] != gen {
			// A newer lookup superseded this one while it was in flight.
			if r.logger != nil {
				r.logger.DebugContext(ctx, "stale option lookup dropped",
					"field", fieldKey,
					"query", query,
				)
			}
			return
		}
		apply(opts)
	}()

	return nil
}

func (r *Resolver) fetch(ctx context.Context, src OptionSource, fieldKey, query string) []string {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil
		}
	}

	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil
	}
	defer r.sem.Release(1)

	opts, err := src.Options(ctx, query)
	if err != nil {
		// Degrade to an empty option set, no retry.
		if r.logger != nil {
			r.logger.WarnContext(ctx, "option lookup failed",
				"field", fieldKey,
				"query", query,
				"error", err,
			)
		}
		return nil
	}

	if r.logger != nil {
		r.logger.DebugContext(ctx, "option lookup completed",
			"field", fieldKey,
			"query", query,
			"count", len(opts),
		)
	}

	return opts
}
