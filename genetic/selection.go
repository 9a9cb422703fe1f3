package genetic

import "math/rand"

// RouletteSelect picks a member with probability proportional to its fitness.
//
// A value u is drawn uniformly from [0, fitnessSum); fitness is accumulated over
// members in order and the first member whose running total exceeds u is
// returned. Rounding can leave the final total at or below u, in which case the
// last member is returned. A member with zero fitness adds a zero-width slot to
// the wheel and is never chosen while fitnessSum is positive.
//
// When fitnessSum is not positive every member is equally likely.
func RouletteSelect[C Chromosome](rng *rand.Rand, members []C, fitnessSum float64) C {
	if fitnessSum <= 0 {
		return members[rng.Intn(len(members))]
	}

	pick := rng.Float64() * fitnessSum
	current := 0.0
	for _, m := range members {
		current += m.Fitness()
		if current > pick {
			return m
		}
	}
	return members[len(members)-1]
}
