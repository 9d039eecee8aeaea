package scoring

// BehaviorScore measures similarity to the user's implicit feedback:
// Jaccard similarity against liked-task properties minus the same
// against disliked-task properties, mapped onto [0,1]. No recorded
// behavior yields the neutral score.
func BehaviorScore(task TaskInfo, user UserSignals) float64 {
	if !user.HasBehavior {
		return neutral
	}

	raw := jaccard(task.Properties, user.LikedTaskProperties) -
		jaccard(task.Properties, user.DislikedTaskProperties)
	return signed01(raw)
}
