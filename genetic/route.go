package genetic

import (
	"fmt"
	"math/rand"
	"strings"
)

// RouteRepresentation encodes a closed tour over a fixed city catalog.
type RouteRepresentation struct {
	Cities []*City // The catalog every route must be a permutation of.
}

// NewRouteRepresentation validates the catalog and builds a representation.
func NewRouteRepresentation(cities []*City) (*RouteRepresentation, error) {
	if err := ValidateCities(cities); err != nil {
		return nil, err
	}
	return &RouteRepresentation{Cities: cities}, nil
}

// Route is an ordered visit of every catalog city exactly once. The tour closes
// back to the first city.
type Route struct {
	Cities []*City

	cost    cachedValue
	fitness cachedValue
}

// NewRoute wraps a copy of cities. It does not check the permutation invariant;
// use CheckPermutation for that.
func NewRoute(cities []*City) *Route {
	return &Route{Cities: append([]*City(nil), cities...)}
}

// Random returns a uniformly random permutation of the catalog.
func (r *RouteRepresentation) Random(rng *rand.Rand) *Route {
	perm := rng.Perm(len(r.Cities))
	cities := make([]*City, len(perm))
	for i, j := range perm {
		cities[i] = r.Cities[j]
	}
	return &Route{Cities: cities}
}

// Crossover applies order crossover with probability pcross. Two cut indices
// j1 in [1, n-2] and j2 in [j1+1, n-1] select a segment [j1, j2). Child 1 keeps
// parent 1's segment in place; the other positions take parent 2's remaining
// cities in parent 2's order, the first j1 of them before the segment and the rest
// after it. Child 2 is built the same way with the parents swapped.
//
// Without a cut the children carry the parents' content as fresh routes, so
// mutating a child never reaches back into the current generation. Tours of fewer
// than three cities have no valid cut pair and are always passed through.
func (r *RouteRepresentation) Crossover(rng *rand.Rand, parent1, parent2 *Route, pcross float64) (*Route, *Route) {
	if !flip(rng, pcross) || len(parent1.Cities) < 3 {
		return parent1.Clone(), parent2.Clone()
	}

	n := len(parent1.Cities)
	j1 := 1 + rng.Intn(n-2)         // [1, n-2]
	j2 := j1 + 1 + rng.Intn(n-1-j1) // [j1+1, n-1]

	child1 := orderCrossover(parent1.Cities, parent2.Cities, j1, j2)
	child2 := orderCrossover(parent2.Cities, parent1.Cities, j1, j2)
	return &Route{Cities: child1}, &Route{Cities: child2}
}

// orderCrossover keeps donor[j1:j2] in place and fills the rest from filler.
func orderCrossover(donor, filler []*City, j1, j2 int) []*City {
	segment := donor[j1:j2]
	inSegment := make(map[string]bool, len(segment))
	for _, c := range segment {
		inSegment[c.Name] = true
	}

	remaining := make([]*City, 0, len(filler)-len(segment))
	for _, c := range filler {
		if !inSegment[c.Name] {
			remaining = append(remaining, c)
		}
	}

	child := make([]*City, 0, len(donor))
	child = append(child, remaining[:j1]...)
	child = append(child, segment...)
	child = append(child, remaining[j1:]...)
	return child
}

// Mutate swaps two distinct positions, chosen uniformly, with a single
// probability check of pmutation for the whole route.
func (r *RouteRepresentation) Mutate(rng *rand.Rand, route *Route, pmutation float64) {
	n := len(route.Cities)
	if !flip(rng, pmutation) || n < 2 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	route.Swap(i, j)
}

// Clone returns an independent copy of route.
func (r *RouteRepresentation) Clone(route *Route) *Route {
	return route.Clone()
}

// Swap exchanges the cities at positions i and j and invalidates the cached
// cost and fitness.
func (route *Route) Swap(i, j int) {
	route.Cities[i], route.Cities[j] = route.Cities[j], route.Cities[i]
	route.cost.reset()
	route.fitness.reset()
}

// Cost returns the closed tour length, including the edge from the last city
// back to the first.
func (route *Route) Cost() float64 {
	return route.cost.get(func() float64 {
		n := len(route.Cities)
		if n < 2 {
			return 0
		}
		total := 0.0
		for i := 0; i < n-1; i++ {
			total += route.Cities[i].DistanceTo(route.Cities[i+1])
		}
		total += route.Cities[n-1].DistanceTo(route.Cities[0])
		return total
	})
}

// Fitness returns 1/Cost, so shorter tours are fitter. A zero-length tour has
// zero fitness; catalogs validated by ValidateCities never produce one.
func (route *Route) Fitness() float64 {
	return route.fitness.get(func() float64 {
		cost := route.Cost()
		if cost <= 0 {
			return 0
		}
		return 1 / cost
	})
}

// Len returns the number of cities.
func (route *Route) Len() int {
	return len(route.Cities)
}

// Clone returns a route with the same city order and an unset cache.
func (route *Route) Clone() *Route {
	return NewRoute(route.Cities)
}

// String renders the tour as "A -> B -> C".
func (route *Route) String() string {
	names := make([]string, len(route.Cities))
	for i, c := range route.Cities {
		names[i] = c.Name
	}
	return strings.Join(names, " -> ")
}

// CheckPermutation reports ErrInvariantViolation unless route visits every city
// of catalog exactly once.
func CheckPermutation(route *Route, catalog []*City) error {
	if len(route.Cities) != len(catalog) {
		return fmt.Errorf("%w: route has %d cities, catalog has %d", ErrInvariantViolation, len(route.Cities), len(catalog))
	}
	want := make(map[string]int, len(catalog))
	for _, c := range catalog {
		want[c.Name]++
	}
	for _, c := range route.Cities {
		if want[c.Name] == 0 {
			return fmt.Errorf("%w: city '%s' is unknown or repeated in route %s", ErrInvariantViolation, c.Name, route)
		}
		want[c.Name]--
	}
	return nil
}
