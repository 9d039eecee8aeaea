package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func taskWithProps(id string, createdAt time.Time, props ...string) TaskInfo {
	return TaskInfo{ID: id, CreatedAt: createdAt, Properties: NewPropertySet(props...)}
}

func TestCharacteristicScore(t *testing.T) {
	now := time.Now()
	halfLife := 72 * time.Hour

	fresh := taskWithProps("fresh", now)
	stale := taskWithProps("stale", now.Add(-30*24*time.Hour))
	assert.Greater(t, CharacteristicScore(fresh, now, halfLife), CharacteristicScore(stale, now, halfLife),
		"newer tasks score higher on freshness")

	narrow := taskWithProps("narrow", now, "p1")
	broad := taskWithProps("broad", now, "p1", "p2", "p3", "p4")
	assert.Greater(t, CharacteristicScore(broad, now, halfLife), CharacteristicScore(narrow, now, halfLife),
		"richer tagging scores higher on breadth")

	// Bounded and total, including a task from the future.
	future := taskWithProps("future", now.Add(time.Hour))
	for _, task := range []TaskInfo{fresh, stale, narrow, broad, future} {
		score := CharacteristicScore(task, now, halfLife)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestPreferenceScore(t *testing.T) {
	now := time.Now()

	user := UserSignals{
		LikedProperties:    NewPropertySet("design", "coding"),
		DislikedProperties: NewPropertySet("cleaning"),
	}

	tests := []struct {
		name string
		task TaskInfo
		want float64
	}{
		{"all liked", taskWithProps("t", now, "design", "coding"), 1.0},
		{"all disliked", taskWithProps("t", now, "cleaning"), 0.0},
		{"mixed cancels out", taskWithProps("t", now, "design", "cleaning"), 0.5},
		{"unknown properties are neutral", taskWithProps("t", now, "gardening"), 0.5},
		{"no properties never divides by zero", taskWithProps("t", now), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PreferenceScore(tt.task, user), 1e-9)
		})
	}
}

func TestHistoryScore(t *testing.T) {
	now := time.Now()
	task := taskWithProps("t", now, "design", "writing")

	noHistory := UserSignals{}
	assert.Equal(t, 0.5, HistoryScore(task, noHistory), "no history is neutral, not zero")

	exact := UserSignals{HasHistory: true, HistoryProperties: NewPropertySet("design", "writing")}
	assert.InDelta(t, 1.0, HistoryScore(task, exact), 1e-9)

	partial := UserSignals{HasHistory: true, HistoryProperties: NewPropertySet("design", "cleaning", "cooking")}
	// |{design}| / |{design, writing, cleaning, cooking}|
	assert.InDelta(t, 0.25, HistoryScore(task, partial), 1e-9)

	disjoint := UserSignals{HasHistory: true, HistoryProperties: NewPropertySet("cleaning")}
	assert.InDelta(t, 0.0, HistoryScore(task, disjoint), 1e-9)
}

func TestBehaviorScore(t *testing.T) {
	now := time.Now()
	task := taskWithProps("t", now, "design")

	noBehavior := UserSignals{}
	assert.Equal(t, 0.5, BehaviorScore(task, noBehavior), "no behavior is neutral")

	likesSimilar := UserSignals{HasBehavior: true, LikedTaskProperties: NewPropertySet("design")}
	assert.InDelta(t, 1.0, BehaviorScore(task, likesSimilar), 1e-9)

	dislikesSimilar := UserSignals{HasBehavior: true, DislikedTaskProperties: NewPropertySet("design")}
	assert.InDelta(t, 0.0, BehaviorScore(task, dislikesSimilar), 1e-9)

	conflicted := UserSignals{
		HasBehavior:            true,
		LikedTaskProperties:    NewPropertySet("design"),
		DislikedTaskProperties: NewPropertySet("design"),
	}
	assert.InDelta(t, 0.5, BehaviorScore(task, conflicted), 1e-9)
}

func TestAllSignalsBounded(t *testing.T) {
	now := time.Now()
	tasks := []TaskInfo{
		taskWithProps("a", now),
		taskWithProps("b", now.Add(-1000*time.Hour), "p1", "p2", "p3", "p4", "p5", "p6"),
	}
	users := []UserSignals{
		{},
		{
			LikedProperties:        NewPropertySet("p1"),
			DislikedProperties:     NewPropertySet("p2", "p3", "p4", "p5", "p6"),
			HasHistory:             true,
			HistoryProperties:      NewPropertySet("p9"),
			HasBehavior:            true,
			LikedTaskProperties:    NewPropertySet(),
			DislikedTaskProperties: NewPropertySet("p1", "p2"),
		},
	}

	for _, task := range tasks {
		for _, user := range users {
			for name, score := range map[string]float64{
				"characteristic": CharacteristicScore(task, now, 72*time.Hour),
				"preference":     PreferenceScore(task, user),
				"history":        HistoryScore(task, user),
				"behavior":       BehaviorScore(task, user),
			} {
				assert.GreaterOrEqual(t, score, 0.0, "%s out of range", name)
				assert.LessOrEqual(t, score, 1.0, "%s out of range", name)
			}
		}
	}
}
