package scoring

import (
	"fmt"
	"math"
	"sort"
	"time"
)

type Normalization string

const (
	NormalizationMinMax Normalization = "minmax"
	NormalizationNone   Normalization = "none"
)

// Weights configures the relative importance of the four signals.
// They must be non-negative and sum to 1; validation happens once at
// configuration load, never per request.
type Weights struct {
	Characteristic float64
	Preference     float64
	History        float64
	Behavior       float64
}

const weightSumEpsilon = 1e-9

func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"characteristic": w.Characteristic,
		"preference":     w.Preference,
		"history":        w.History,
		"behavior":       w.Behavior,
	} {
		if v < 0 {
			return fmt.Errorf("ranking weight %s must not be negative, got %v", name, v)
		}
	}

	sum := w.Characteristic + w.Preference + w.History + w.Behavior
	if math.Abs(sum-1) > weightSumEpsilon {
		return fmt.Errorf("ranking weights must sum to 1, got %v", sum)
	}
	return nil
}

// Ranker aggregates the four extractors over a candidate set.
type Ranker struct {
	weights           Weights
	normalization     Normalization
	freshnessHalfLife time.Duration
}

func NewRanker(weights Weights, normalization Normalization, freshnessHalfLife time.Duration) *Ranker {
	return &Ranker{
		weights:           weights,
		normalization:     normalization,
		freshnessHalfLife: freshnessHalfLife,
	}
}

type RankedTask struct {
	TaskID string  `json:"task_id"`
	Score  float64 `json:"score"`
}

// Rank orders the candidate set for one user, best first.
//
// Each signal is normalized independently across the whole candidate
// set before weighting, so a task's position depends on the current
// pool, not on the task in isolation. Ties are broken by creation time
// ascending and then by id, making the ordering fully deterministic for
// a given snapshot. An empty candidate set is a valid empty ranking.
func (r *Ranker) Rank(candidates []TaskInfo, user UserSignals, now time.Time) []RankedTask {
	if len(candidates) == 0 {
		return nil
	}

	characteristic := make([]float64, len(candidates))
	preference := make([]float64, len(candidates))
	history := make([]float64, len(candidates))
	behavior := make([]float64, len(candidates))

	for i, task := range candidates {
		characteristic[i] = CharacteristicScore(task, now, r.freshnessHalfLife)
		preference[i] = PreferenceScore(task, user)
		history[i] = HistoryScore(task, user)
		behavior[i] = BehaviorScore(task, user)
	}

	if r.normalization == NormalizationMinMax {
		minMaxNormalize(characteristic)
		minMaxNormalize(preference)
		minMaxNormalize(history)
		minMaxNormalize(behavior)
	}

	order := make([]int, len(candidates))
	totals := make([]float64, len(candidates))
	for i := range candidates {
		order[i] = i
		totals[i] = r.weights.Characteristic*characteristic[i] +
			r.weights.Preference*preference[i] +
			r.weights.History*history[i] +
			r.weights.Behavior*behavior[i]
	}

	sort.SliceStable(order, func(a, b int) bool {
		ta, tb := candidates[order[a]], candidates[order[b]]
		if totals[order[a]] != totals[order[b]] {
			return totals[order[a]] > totals[order[b]]
		}
		if !ta.CreatedAt.Equal(tb.CreatedAt) {
			return ta.CreatedAt.Before(tb.CreatedAt)
		}
		return ta.ID < tb.ID
	})

	ranked := make([]RankedTask, len(order))
	for i, idx := range order {
		ranked[i] = RankedTask{TaskID: candidates[idx].ID, Score: totals[idx]}
	}
	return ranked
}

// minMaxNormalize rescales values onto [0,1] in place. When every value
// is identical the signal carries no ordering information and all
// entries collapse to 0.
func minMaxNormalize(values []float64) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	spread := max - min
	for i, v := range values {
		if spread == 0 {
			values[i] = 0
		} else {
			values[i] = (v - min) / spread
		}
	}
}
