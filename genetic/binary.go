package genetic

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// BinaryRepresentation encodes a scalar in [XMin, XMax] as a fixed-length bit string.
type BinaryRepresentation struct {
	Length    int     // Number of bits per chromosome (lchrom).
	XMin      float64 // Value decoded from the all-zero string.
	XMax      float64 // Value decoded from the all-one string.
	Objective Objective
}

// NewBinaryRepresentation builds a representation from a validated BinaryConfig.
func NewBinaryRepresentation(config *BinaryConfig, objective Objective) (*BinaryRepresentation, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if objective == nil {
		return nil, &ConfigError{Field: "objective", Reason: "is required"}
	}
	return &BinaryRepresentation{
		Length:    config.ChromosomeLength,
		XMin:      config.XMin,
		XMax:      config.XMax,
		Objective: objective,
	}, nil
}

// BinaryChromosome is a bit string interpreted as an unsigned integer, most
// significant bit first.
type BinaryChromosome struct {
	Bits []uint8 // Each element is 0 or 1.

	repr    *BinaryRepresentation
	cost    cachedValue
	fitness cachedValue
}

// New wraps a copy of bits in a chromosome bound to this representation.
func (r *BinaryRepresentation) New(bits []uint8) (*BinaryChromosome, error) {
	if len(bits) != r.Length {
		return nil, fmt.Errorf("%w: chromosome has %d bits, want %d", ErrInvariantViolation, len(bits), r.Length)
	}
	for i, b := range bits {
		if b > 1 {
			return nil, fmt.Errorf("%w: bit %d has value %d", ErrInvariantViolation, i, b)
		}
	}
	return r.wrap(append([]uint8(nil), bits...)), nil
}

func (r *BinaryRepresentation) wrap(bits []uint8) *BinaryChromosome {
	return &BinaryChromosome{Bits: bits, repr: r}
}

// Random returns a chromosome with uniformly random bits.
func (r *BinaryRepresentation) Random(rng *rand.Rand) *BinaryChromosome {
	bits := make([]uint8, r.Length)
	for i := range bits {
		bits[i] = uint8(rng.Intn(2))
	}
	return r.wrap(bits)
}

// Crossover performs single-point crossover with probability pcross. The cut
// index is drawn from [1, Length-1], so both children mix genes from both
// parents. Without a cut the children are copies of the parents.
func (r *BinaryRepresentation) Crossover(rng *rand.Rand, parent1, parent2 *BinaryChromosome, pcross float64) (*BinaryChromosome, *BinaryChromosome) {
	child1 := parent1.Clone()
	child2 := parent2.Clone()
	if !flip(rng, pcross) || r.Length < 2 {
		return child1, child2
	}

	cut := 1 + rng.Intn(r.Length-1)
	copy(child1.Bits[cut:], parent2.Bits[cut:])
	copy(child2.Bits[cut:], parent1.Bits[cut:])
	return child1, child2
}

// Mutate flips every bit independently with probability pmutation.
func (r *BinaryRepresentation) Mutate(rng *rand.Rand, c *BinaryChromosome, pmutation float64) {
	for i := range c.Bits {
		if flip(rng, pmutation) {
			c.Flip(i)
		}
	}
}

// Clone returns an independent copy of c.
func (r *BinaryRepresentation) Clone(c *BinaryChromosome) *BinaryChromosome {
	return c.Clone()
}

// Decode maps a bit string onto [xMin, xMax]. The bits are read as an unsigned
// integer v in [0, 2^len-1] and mapped linearly, then rounded half-to-even.
// The all-zero string yields round(xMin) and the all-one string round(xMax).
func Decode(bits []uint8, xMin, xMax float64) float64 {
	if len(bits) == 0 {
		return math.RoundToEven(xMin)
	}
	var v uint64
	for _, b := range bits {
		v = v<<1 | uint64(b&1)
	}
	maxVal := float64(uint64(1)<<uint(len(bits)) - 1)
	return math.RoundToEven(xMin + (xMax-xMin)*float64(v)/maxVal)
}

// Flip inverts bit i and invalidates the cached cost and fitness.
func (c *BinaryChromosome) Flip(i int) {
	c.Bits[i] ^= 1
	c.cost.reset()
	c.fitness.reset()
}

// Decoded returns the scalar this chromosome encodes.
func (c *BinaryChromosome) Decoded() float64 {
	return Decode(c.Bits, c.repr.XMin, c.repr.XMax)
}

// Cost returns the raw objective value at the decoded scalar. It may be negative.
func (c *BinaryChromosome) Cost() float64 {
	return c.cost.get(func() float64 {
		return c.repr.Objective.Evaluate(c.Decoded())
	})
}

// Fitness returns the objective value clamped at zero.
func (c *BinaryChromosome) Fitness() float64 {
	return c.fitness.get(func() float64 {
		return math.Max(0, c.Cost())
	})
}

// Len returns the number of bits.
func (c *BinaryChromosome) Len() int {
	return len(c.Bits)
}

// Clone returns an independent copy with an unset cache.
func (c *BinaryChromosome) Clone() *BinaryChromosome {
	return c.repr.wrap(append([]uint8(nil), c.Bits...))
}

// String renders the bit string, e.g. "01101".
func (c *BinaryChromosome) String() string {
	var sb strings.Builder
	sb.Grow(len(c.Bits))
	for _, b := range c.Bits {
		sb.WriteByte('0' + b)
	}
	return sb.String()
}
