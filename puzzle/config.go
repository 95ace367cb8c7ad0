package puzzle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds optional per-day overrides for real inputs.
//
//	days:
//	  15:
//	    params: {row: 2000000, limit: 4000000}
//	    want: {part1: "...", part2: "..."}
type Config struct {
	Days map[int]DayConfig `yaml:"days"`
}

// DayConfig overrides the parameters of one day and optionally names the
// expected answers for its real input.
type DayConfig struct {
	Params Params   `yaml:"params"`
	Want   Solution `yaml:"want"`
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: read config: %w", err)
	}

	return ParseConfig(b)
}

// ParseConfig parses YAML configuration bytes.
func ParseConfig(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("puzzle: parse config: %w", err)
	}

	return &c, nil
}

// Day returns the overrides for day n. A nil Config has none.
func (c *Config) Day(n int) DayConfig {
	if c == nil {
		return DayConfig{}
	}

	return c.Days[n]
}
