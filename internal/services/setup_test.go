package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-match-service.com/task-match-service/internal/constants"
	model "task-match-service.com/task-match-service/internal/models"
	repository "task-match-service.com/task-match-service/internal/repositories"
	"task-match-service.com/task-match-service/internal/scoring"
)

// memoryRankCache is an in-memory RankCache for tests.
type memoryRankCache struct {
	mu         sync.Mutex
	generation int64
	entries    map[string]memoryRankEntry
}

type memoryRankEntry struct {
	generation int64
	ranked     []scoring.RankedTask
}

func newMemoryRankCache() *memoryRankCache {
	return &memoryRankCache{entries: make(map[string]memoryRankEntry)}
}

func (m *memoryRankCache) Generation(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generation, nil
}

func (m *memoryRankCache) BumpGeneration(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	return nil
}

func (m *memoryRankCache) Get(ctx context.Context, userID string, generation int64) ([]scoring.RankedTask, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[userID]
	if !ok || entry.generation != generation {
		return nil, false, nil
	}
	return entry.ranked, true, nil
}

func (m *memoryRankCache) Set(ctx context.Context, userID string, generation int64, ranked []scoring.RankedTask, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[userID] = memoryRankEntry{generation: generation, ranked: ranked}
	return nil
}

func (m *memoryRankCache) Invalidate(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, userID)
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Task{},
		&model.User{},
		&model.Property{},
		&model.TaskProperty{},
		&model.UserProperty{},
		&model.UserBehavior{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type testEnv struct {
	db              *gorm.DB
	tasks           *repository.TaskRepository
	properties      *repository.PropertyRepository
	behaviors       *repository.BehaviorRepository
	rankCache       *memoryRankCache
	lifecycle       *LifecycleService
	recommendations *RecommendationService
	propertySvc     *PropertyService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	tasks := repository.NewTaskRepository(db)
	properties := repository.NewPropertyRepository(db)
	behaviors := repository.NewBehaviorRepository(db)
	rankCache := newMemoryRankCache()

	ranker := scoring.NewRanker(
		scoring.Weights{Characteristic: 0.25, Preference: 0.25, History: 0.25, Behavior: 0.25},
		scoring.NormalizationMinMax,
		72*time.Hour,
	)

	return &testEnv{
		db:         db,
		tasks:      tasks,
		properties: properties,
		behaviors:  behaviors,
		rankCache:  rankCache,
		lifecycle:  NewLifecycleService(tasks, rankCache, false),
		recommendations: NewRecommendationService(
			tasks, properties, behaviors, ranker, rankCache,
			time.Minute, 15, 100,
		),
		propertySvc: NewPropertyService(properties, behaviors, tasks, rankCache),
	}
}

func employer(id string) model.Actor {
	return model.Actor{ID: id, Role: constants.RoleEmployer}
}

func employee(id string) model.Actor {
	return model.Actor{ID: id, Role: constants.RoleEmployee}
}
