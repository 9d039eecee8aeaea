// Package scoring computes per-(user, task) ranking signals and
// aggregates them into a total order over the unassigned task pool.
//
// Every extractor is a pure function of its inputs, returns a value in
// [0,1], and is total: degenerate cases (no properties, no history, no
// behavior) yield a neutral score instead of an error, so a brand-new
// user always receives a well-formed ranking.
package scoring

import "time"

// TaskInfo is the point-in-time view of one candidate task.
type TaskInfo struct {
	ID         string
	CreatedAt  time.Time
	Properties PropertySet
}

// UserSignals is everything known about a user that scoring consumes:
// declared preferences, implicit behavior, and completed-task history,
// all reduced to property sets.
type UserSignals struct {
	LikedProperties    PropertySet // declared interested
	DislikedProperties PropertySet // declared not interested

	HasHistory        bool
	HistoryProperties PropertySet // union over approved-as-assignee tasks

	HasBehavior            bool
	LikedTaskProperties    PropertySet // union over liked tasks
	DislikedTaskProperties PropertySet // union over disliked tasks
}

type PropertySet map[string]struct{}

func NewPropertySet(ids ...string) PropertySet {
	s := make(PropertySet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s PropertySet) Add(id string) {
	s[id] = struct{}{}
}

func (s PropertySet) intersectionSize(other PropertySet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for id := range small {
		if _, ok := large[id]; ok {
			n++
		}
	}
	return n
}

// jaccard is |A ∩ B| / |A ∪ B|; zero when both sets are empty.
func jaccard(a, b PropertySet) float64 {
	inter := a.intersectionSize(b)
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// neutral is the score used when a signal has no data to speak from.
const neutral = 0.5

// signed01 maps a value in [-1,1] onto [0,1].
func signed01(x float64) float64 {
	return (x + 1) / 2
}
