package genetic

// Objective scores a decoded scalar. Implementations must be pure.
type Objective interface {
	Evaluate(x float64) float64
}

// ObjectiveFunc adapts an ordinary function to the Objective interface.
type ObjectiveFunc func(x float64) float64

// Evaluate calls f(x).
func (f ObjectiveFunc) Evaluate(x float64) float64 {
	return f(x)
}

// Polynomial is an Objective defined by its coefficients, highest degree first.
// Polynomial{-0.5, 10, 13} is f(x) = -0.5x² + 10x + 13.
type Polynomial []float64

// Evaluate computes the polynomial at x using Horner's scheme.
func (p Polynomial) Evaluate(x float64) float64 {
	result := 0.0
	for _, c := range p {
		result = result*x + c
	}
	return result
}
