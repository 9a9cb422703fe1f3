package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingObjective counts how often Evaluate is called.
type countingObjective struct {
	calls int
	fn    func(float64) float64
}

func (o *countingObjective) Evaluate(x float64) float64 {
	o.calls++
	return o.fn(x)
}

func genMaxObjective() Polynomial {
	return Polynomial{-0.5, 10, 13}
}

func newBinaryRepr(t *testing.T, length int, objective Objective) *BinaryRepresentation {
	t.Helper()
	repr, err := NewBinaryRepresentation(&BinaryConfig{
		ChromosomeLength: length,
		XMin:             -1,
		XMax:             21,
	}, objective)
	require.NoError(t, err)
	return repr
}

func bitsOf(v uint64, length int) []uint8 {
	bits := make([]uint8, length)
	for i := length - 1; i >= 0; i-- {
		bits[i] = uint8(v & 1)
		v >>= 1
	}
	return bits
}

func TestDecodeEndpoints(t *testing.T) {
	assert.Equal(t, -1.0, Decode([]uint8{0, 0, 0, 0, 0}, -1, 21))
	assert.Equal(t, 21.0, Decode([]uint8{1, 1, 1, 1, 1}, -1, 21))
	assert.Equal(t, 0.0, Decode([]uint8{0, 0, 0}, -0.4, 7.6))
	assert.Equal(t, 8.0, Decode([]uint8{1, 1, 1}, -0.4, 7.6))
}

func TestDecodeIsMonotonic(t *testing.T) {
	const length = 8
	prev := Decode(bitsOf(0, length), -1, 21)
	for v := uint64(1); v < 1<<length; v++ {
		cur := Decode(bitsOf(v, length), -1, 21)
		assert.GreaterOrEqual(t, cur, prev, "decode(%d) < decode(%d)", v, v-1)
		prev = cur
	}
}

func TestDecodeRoundsHalfToEven(t *testing.T) {
	// Two bits over [0, 1.5]: v=1 maps to exactly 0.5 and v=3 to exactly 1.5.
	assert.Equal(t, 0.0, Decode([]uint8{0, 1}, 0, 1.5))
	assert.Equal(t, 2.0, Decode([]uint8{1, 1}, 0, 1.5))
}

func TestPolynomialEvaluate(t *testing.T) {
	p := genMaxObjective()
	assert.Equal(t, 13.0, p.Evaluate(0))
	assert.Equal(t, 63.0, p.Evaluate(10))
	assert.Equal(t, 2.5, p.Evaluate(-1))
}

func TestBinaryFitnessNeverNegative(t *testing.T) {
	repr := newBinaryRepr(t, 5, ObjectiveFunc(func(x float64) float64 { return -x*x - 1 }))
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		c := repr.Random(rng)
		assert.Less(t, c.Cost(), 0.0)
		assert.Equal(t, 0.0, c.Fitness())
	}
}

func TestBinaryFitnessClampsGenMaxObjective(t *testing.T) {
	repr := newBinaryRepr(t, 5, genMaxObjective())

	top, err := repr.New([]uint8{1, 1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 21.0, top.Decoded())
	assert.Equal(t, -0.5*21*21+10*21+13, top.Cost())
	assert.Equal(t, 2.5, top.Fitness())

	bottom, err := repr.New([]uint8{0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, -1.0, bottom.Decoded())
	assert.Equal(t, 2.5, bottom.Fitness())
}

func TestBinaryCacheCoherence(t *testing.T) {
	objective := &countingObjective{fn: func(x float64) float64 { return x }}
	repr := newBinaryRepr(t, 5, objective)

	c, err := repr.New([]uint8{0, 0, 0, 0, 0})
	require.NoError(t, err)

	first := c.Fitness()
	second := c.Fitness()
	_ = c.Cost()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, objective.calls, "reads must not recompute")

	c.Flip(4)
	assert.Equal(t, Decode([]uint8{0, 0, 0, 0, 1}, -1, 21), c.Cost())
	assert.Equal(t, 2, objective.calls, "flip must invalidate the cache")
	_ = c.Fitness()
	assert.Equal(t, 2, objective.calls)
}

func TestBinaryNewRejectsWrongLength(t *testing.T) {
	repr := newBinaryRepr(t, 5, genMaxObjective())

	_, err := repr.New([]uint8{1, 0, 1})
	require.ErrorIs(t, err, ErrInvariantViolation)

	_, err = repr.New([]uint8{1, 0, 2, 0, 1})
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestBinaryCrossoverWithoutProbabilityCopiesParents(t *testing.T) {
	repr := newBinaryRepr(t, 5, genMaxObjective())
	rng := rand.New(rand.NewSource(3))
	p1, _ := repr.New([]uint8{0, 0, 0, 0, 0})
	p2, _ := repr.New([]uint8{1, 1, 1, 1, 1})

	for i := 0; i < 100; i++ {
		c1, c2 := repr.Crossover(rng, p1, p2, 0)
		assert.Equal(t, p1.Bits, c1.Bits)
		assert.Equal(t, p2.Bits, c2.Bits)
		assert.NotSame(t, p1, c1)
		assert.NotSame(t, p2, c2)
	}

	c1, _ := repr.Crossover(rng, p1, p2, 0)
	c1.Flip(0)
	assert.Equal(t, uint8(0), p1.Bits[0], "children must not share bits with parents")
}

func TestBinaryCrossoverAlwaysCutsWithFullProbability(t *testing.T) {
	repr := newBinaryRepr(t, 5, genMaxObjective())
	rng := rand.New(rand.NewSource(4))
	p1, _ := repr.New([]uint8{0, 0, 0, 0, 0})
	p2, _ := repr.New([]uint8{1, 1, 1, 1, 1})

	for i := 0; i < 200; i++ {
		c1, c2 := repr.Crossover(rng, p1, p2, 1)
		assert.NotEqual(t, p1.Bits, c1.Bits)
		assert.NotEqual(t, p2.Bits, c1.Bits)
		// The cut lies in [1, 4], so the first bit comes from the own parent and
		// the last from the other.
		assert.Equal(t, uint8(0), c1.Bits[0])
		assert.Equal(t, uint8(1), c1.Bits[4])
		for j := range c1.Bits {
			assert.Equal(t, uint8(1), c1.Bits[j]+c2.Bits[j])
		}
	}
}

func TestBinaryMutate(t *testing.T) {
	repr := newBinaryRepr(t, 5, genMaxObjective())
	rng := rand.New(rand.NewSource(5))

	c, _ := repr.New([]uint8{0, 1, 0, 1, 0})
	repr.Mutate(rng, c, 0)
	assert.Equal(t, []uint8{0, 1, 0, 1, 0}, c.Bits)

	assert.Equal(t, 6.0, c.Decoded())
	_ = c.Cost()
	repr.Mutate(rng, c, 1)
	assert.Equal(t, []uint8{1, 0, 1, 0, 1}, c.Bits)
	assert.Equal(t, 14.0, c.Decoded())
	assert.Equal(t, repr.Objective.Evaluate(14), c.Cost())
}

func TestBinaryString(t *testing.T) {
	repr := newBinaryRepr(t, 5, genMaxObjective())
	c, _ := repr.New([]uint8{0, 1, 1, 0, 1})
	assert.Equal(t, "01101", c.String())
}
