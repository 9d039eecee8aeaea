package cache

import (
	"context"
	"time"

	"task-match-service.com/task-match-service/internal/scoring"
)

// RankCache stores computed rankings keyed by user, tagged with the
// pool generation they were computed at. Every pool-mutating lifecycle
// transition bumps the generation, so stale rankings are never served;
// they are simply recomputed on the next query.
type RankCache interface {
	// Generation returns the current pool generation.
	Generation(ctx context.Context) (int64, error)

	// BumpGeneration invalidates every cached ranking.
	BumpGeneration(ctx context.Context) error

	// Get returns the ranking cached for the user, if one exists for
	// the given generation.
	Get(ctx context.Context, userID string, generation int64) ([]scoring.RankedTask, bool, error)

	// Set stores the user's ranking for the given generation.
	Set(ctx context.Context, userID string, generation int64, ranked []scoring.RankedTask, ttl time.Duration) error

	// Invalidate drops one user's cached ranking. Used when a signal
	// scoped to that user changes (declared preferences, reactions)
	// without the pool itself changing.
	Invalidate(ctx context.Context, userID string) error
}
