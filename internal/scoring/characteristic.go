package scoring

import (
	"math"
	"time"
)

// breadthSaturation controls how quickly the tag-richness component
// approaches 1: a task with this many properties scores 0.5 on breadth.
const breadthSaturation = 3

// CharacteristicScore rates a task on its own attributes, independent
// of the user: freshness (exponential decay of age with the given
// half-life) averaged with breadth (property count, saturating).
// Callers pass now explicitly so a ranking batch scores every candidate
// against the same instant.
func CharacteristicScore(task TaskInfo, now time.Time, halfLife time.Duration) float64 {
	age := now.Sub(task.CreatedAt)
	if age < 0 {
		age = 0
	}

	freshness := math.Exp2(-age.Hours() / halfLife.Hours())

	n := float64(len(task.Properties))
	breadth := n / (n + breadthSaturation)

	return (freshness + breadth) / 2
}
