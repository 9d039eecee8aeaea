package scoring

// HistoryScore measures how similar a task is to the work the user has
// already completed, as Jaccard similarity between the task's property
// set and the union of property sets of the user's approved tasks.
// Users with no history get the neutral score, never a penalty.
func HistoryScore(task TaskInfo, user UserSignals) float64 {
	if !user.HasHistory {
		return neutral
	}
	return jaccard(task.Properties, user.HistoryProperties)
}
