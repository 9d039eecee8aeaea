package scoring

// PreferenceScore measures alignment between a task's property set and
// the user's declared preferences. The liked overlap raises the score,
// the disliked overlap lowers it:
//
//	(|props ∩ liked| - |props ∩ disliked|) / |props|
//
// mapped from [-1,1] onto [0,1]. A task with no properties is neutral.
func PreferenceScore(task TaskInfo, user UserSignals) float64 {
	if len(task.Properties) == 0 {
		return neutral
	}

	liked := task.Properties.intersectionSize(user.LikedProperties)
	disliked := task.Properties.intersectionSize(user.DislikedProperties)

	raw := float64(liked-disliked) / float64(len(task.Properties))
	return signed01(raw)
}
