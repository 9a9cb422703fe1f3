package genetic

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// maxChromosomeLength keeps 2^L-1 exactly representable as a float64.
const maxChromosomeLength = 52

// Config stores the configuration parameters for a run.
type Config struct {
	Run    RunConfig
	Binary BinaryConfig
	Route  RouteConfig
}

// RunConfig holds the parameters shared by every representation.
type RunConfig struct {
	PopSize     int     `ini:"pop_size"`
	Generations int     `ini:"generations"`
	PCross      float64 `ini:"pcross"`
	PMutation   float64 `ini:"pmutation"`
	Elitism     int     `ini:"elitism"` // Best members copied unchanged into the next generation
	Seed        int64   `ini:"seed"`    // 0 seeds from the clock
}

// BinaryConfig holds parameters of the binary-encoded scalar representation.
type BinaryConfig struct {
	ChromosomeLength int       `ini:"chromosome_length"`
	XMin             float64   `ini:"x_min"`
	XMax             float64   `ini:"x_max"`
	Coefficients     []float64 `ini:"coefficients" delim:" "` // Polynomial objective, highest degree first
}

// RouteConfig holds parameters of the permutation representation.
type RouteConfig struct {
	CitiesFile string `ini:"cities_file"` // YAML catalog, relative to the config file
}

// LoadConfig loads configuration parameters from an INI file. Sections that are
// absent keep their zero values; callers validate the sections they use.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := &Config{}

	if err := cfg.Section("Run").MapTo(&config.Run); err != nil {
		return nil, fmt.Errorf("failed to map [Run] section: %w", err)
	}
	if err := cfg.Section("Binary").MapTo(&config.Binary); err != nil {
		return nil, fmt.Errorf("failed to map [Binary] section: %w", err)
	}
	if err := cfg.Section("Route").MapTo(&config.Route); err != nil {
		return nil, fmt.Errorf("failed to map [Route] section: %w", err)
	}

	config.Route.CitiesFile = cleanIniString(config.Route.CitiesFile)
	if config.Route.CitiesFile != "" && !filepath.IsAbs(config.Route.CitiesFile) {
		config.Route.CitiesFile = filepath.Join(filepath.Dir(filePath), config.Route.CitiesFile)
	}

	if err := config.Run.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks sizes and probabilities.
func (c *RunConfig) Validate() error {
	if c.PopSize < 2 {
		return configErrorf("pop_size", "must be at least 2, got %d", c.PopSize)
	}
	if c.Generations < 1 {
		return configErrorf("generations", "must be positive, got %d", c.Generations)
	}
	if !isProbability(c.PCross) {
		return configErrorf("pcross", "must be between 0 and 1, got %v", c.PCross)
	}
	if !isProbability(c.PMutation) {
		return configErrorf("pmutation", "must be between 0 and 1, got %v", c.PMutation)
	}
	if c.Elitism < 0 || c.Elitism >= c.PopSize {
		return configErrorf("elitism", "must be between 0 and pop_size-1, got %d", c.Elitism)
	}
	return nil
}

// Validate checks the chromosome length and domain bounds.
func (c *BinaryConfig) Validate() error {
	if c.ChromosomeLength < 2 || c.ChromosomeLength > maxChromosomeLength {
		return configErrorf("chromosome_length", "must be between 2 and %d, got %d", maxChromosomeLength, c.ChromosomeLength)
	}
	if math.IsNaN(c.XMin) || math.IsNaN(c.XMax) || math.IsInf(c.XMin, 0) || math.IsInf(c.XMax, 0) {
		return configErrorf("x_min/x_max", "must be finite")
	}
	if c.XMin >= c.XMax {
		return configErrorf("x_min", "must be less than x_max (%v >= %v)", c.XMin, c.XMax)
	}
	return nil
}

// Objective returns the polynomial described by Coefficients.
func (c *BinaryConfig) Objective() (Polynomial, error) {
	if len(c.Coefficients) == 0 {
		return nil, configErrorf("coefficients", "must list at least one value")
	}
	return Polynomial(c.Coefficients), nil
}

// Validate checks that a city catalog is configured.
func (c *RouteConfig) Validate() error {
	if c.CitiesFile == "" {
		return configErrorf("cities_file", "must be set")
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
