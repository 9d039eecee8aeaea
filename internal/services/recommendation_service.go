package services

import (
	"context"
	"log"
	"time"

	"task-match-service.com/task-match-service/internal/cache"
	apperrors "task-match-service.com/task-match-service/internal/errors"
	repository "task-match-service.com/task-match-service/internal/repositories"
	"task-match-service.com/task-match-service/internal/scoring"
)

// RecommendationService orchestrates the ranking engine: it snapshots
// the unassigned pool, bulk-loads the user's signal inputs, and ranks.
// The query is read-only; it never blocks assignment, and a task that
// was ranked but claimed a moment later simply fails the subsequent
// assign with an invalid transition.
type RecommendationService struct {
	tasks      *repository.TaskRepository
	properties *repository.PropertyRepository
	behaviors  *repository.BehaviorRepository
	ranker     *scoring.Ranker
	rankCache  cache.RankCache
	cacheTTL   time.Duration

	defaultLimit int
	maxLimit     int
}

func NewRecommendationService(
	tasks *repository.TaskRepository,
	properties *repository.PropertyRepository,
	behaviors *repository.BehaviorRepository,
	ranker *scoring.Ranker,
	rankCache cache.RankCache,
	cacheTTL time.Duration,
	defaultLimit, maxLimit int,
) *RecommendationService {
	return &RecommendationService{
		tasks:        tasks,
		properties:   properties,
		behaviors:    behaviors,
		ranker:       ranker,
		rankCache:    rankCache,
		cacheTTL:     cacheTTL,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Recommend returns the top tasks for the user, best first. An empty
// pool is an empty result, not an error.
func (s *RecommendationService) Recommend(ctx context.Context, userID string, limit int) ([]scoring.RankedTask, error) {
	switch {
	case limit < 0:
		return nil, apperrors.ErrInvalidLimit
	case limit == 0:
		limit = s.defaultLimit
	case limit > s.maxLimit:
		limit = s.maxLimit
	}

	generation, err := s.rankCache.Generation(ctx)
	if err != nil {
		log.Printf("rank cache unavailable, recomputing: %v", err)
	} else if ranked, ok, err := s.rankCache.Get(ctx, userID, generation); err != nil {
		log.Printf("rank cache read failed, recomputing: %v", err)
	} else if ok {
		return truncate(ranked, limit), nil
	}

	ranked, err := s.rank(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.rankCache.Set(ctx, userID, generation, ranked, s.cacheTTL); err != nil {
		log.Printf("rank cache write failed: %v", err)
	}

	return truncate(ranked, limit), nil
}

func (s *RecommendationService) rank(ctx context.Context, userID string) ([]scoring.RankedTask, error) {
	pool, err := s.tasks.ListUnassigned(ctx)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}

	historyIDs, err := s.tasks.ApprovedTaskIDsByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}

	likedTaskIDs, dislikedTaskIDs, err := s.behaviors.ReactedTaskIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	likedProps, dislikedProps, err := s.properties.UserPreferenceIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Property sets for the pool, the history, and the reacted tasks
	// are loaded in one query.
	allIDs := make([]string, 0, len(pool)+len(historyIDs)+len(likedTaskIDs)+len(dislikedTaskIDs))
	for _, task := range pool {
		allIDs = append(allIDs, task.ID)
	}
	allIDs = append(allIDs, historyIDs...)
	allIDs = append(allIDs, likedTaskIDs...)
	allIDs = append(allIDs, dislikedTaskIDs...)

	propertySets, err := s.properties.TaskPropertyIDs(ctx, allIDs)
	if err != nil {
		return nil, err
	}

	candidates := make([]scoring.TaskInfo, len(pool))
	for i, task := range pool {
		candidates[i] = scoring.TaskInfo{
			ID:         task.ID,
			CreatedAt:  task.CreatedAt,
			Properties: scoring.NewPropertySet(propertySets[task.ID]...),
		}
	}

	signals := scoring.UserSignals{
		LikedProperties:        scoring.NewPropertySet(likedProps...),
		DislikedProperties:     scoring.NewPropertySet(dislikedProps...),
		HasHistory:             len(historyIDs) > 0,
		HistoryProperties:      unionProperties(propertySets, historyIDs),
		HasBehavior:            len(likedTaskIDs)+len(dislikedTaskIDs) > 0,
		LikedTaskProperties:    unionProperties(propertySets, likedTaskIDs),
		DislikedTaskProperties: unionProperties(propertySets, dislikedTaskIDs),
	}

	return s.ranker.Rank(candidates, signals, time.Now().UTC()), nil
}

func unionProperties(propertySets map[string][]string, taskIDs []string) scoring.PropertySet {
	union := scoring.NewPropertySet()
	for _, taskID := range taskIDs {
		for _, propertyID := range propertySets[taskID] {
			union.Add(propertyID)
		}
	}
	return union
}

func truncate(ranked []scoring.RankedTask, limit int) []scoring.RankedTask {
	if len(ranked) <= limit {
		return ranked
	}
	return ranked[:limit]
}
