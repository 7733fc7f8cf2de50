package tracker

import (
	"fmt"
	"math"
)

// OneRepMax estimates the maximum single-rep lift from a submaximal set using
// the Brzycki formula. A single rep is already the max. Reps must be between
// 1 and 36: at 37 the denominator 1.0278 - 0.0278*reps goes non-positive and
// the formula stops meaning anything.
func OneRepMax(weight float64, reps int) (float64, error) {
	if reps <= 0 {
		return 0, fmt.Errorf("invalid rep count %d: must be at least 1", reps)
	}
	if reps == 1 {
		return weight, nil
	}

	denom := 1.0278 - 0.0278*float64(reps)
	if denom <= 0 {
		return 0, fmt.Errorf("rep count %d too high for a 1RM estimate", reps)
	}
	return math.Round(weight / denom), nil
}
