package genetic

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// City is an immutable named point on the plane.
type City struct {
	Name string
	X    float64
	Y    float64

	distances map[string]float64 // Memoised distances keyed by the other city's name.
}

// NewCity creates a city at (x, y).
func NewCity(name string, x, y float64) *City {
	return &City{
		Name:      name,
		X:         x,
		Y:         y,
		distances: make(map[string]float64),
	}
}

// DistanceTo returns the Euclidean distance to other. The value is computed once
// per pair and stored on both endpoints, so a.DistanceTo(b) == b.DistanceTo(a).
func (c *City) DistanceTo(other *City) float64 {
	if d, ok := c.distances[other.Name]; ok {
		return d
	}
	d := math.Hypot(c.X-other.X, c.Y-other.Y)
	c.remember(other.Name, d)
	other.remember(c.Name, d)
	return d
}

func (c *City) remember(name string, d float64) {
	if c.distances == nil {
		c.distances = make(map[string]float64)
	}
	c.distances[name] = d
}

func (c *City) String() string {
	return c.Name
}

// cityCatalogFile is the on-disk YAML layout of a city catalog.
type cityCatalogFile struct {
	Cities []struct {
		Name string  `yaml:"name"`
		X    float64 `yaml:"x"`
		Y    float64 `yaml:"y"`
	} `yaml:"cities"`
}

// LoadCities reads a YAML city catalog and validates it with ValidateCities.
func LoadCities(filePath string) ([]*City, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read city catalog '%s': %w", filePath, err)
	}
	var file cityCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse city catalog '%s': %w", filePath, err)
	}

	cities := make([]*City, 0, len(file.Cities))
	for _, entry := range file.Cities {
		cities = append(cities, NewCity(entry.Name, entry.X, entry.Y))
	}
	if err := ValidateCities(cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// ValidateCities checks that a catalog can seed a route population: at least two
// cities, unique non-empty names, and at least two distinct locations so every
// tour has a positive length.
func ValidateCities(cities []*City) error {
	if len(cities) < 2 {
		return configErrorf("cities", "must contain at least 2 entries, got %d", len(cities))
	}
	seen := make(map[string]bool, len(cities))
	distinct := false
	for i, c := range cities {
		if c == nil || c.Name == "" {
			return configErrorf("cities", "entry %d has no name", i)
		}
		if seen[c.Name] {
			return configErrorf("cities", "duplicate name '%s'", c.Name)
		}
		seen[c.Name] = true
		if c.X != cities[0].X || c.Y != cities[0].Y {
			distinct = true
		}
	}
	if !distinct {
		return configErrorf("cities", "all share one location, tour length would be zero")
	}
	return nil
}
