package leetlist

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Substitutions map[string][]string `yaml:"substitutions"`
	Patterns      []string            `yaml:"patterns"`
	YearStart     int                 `yaml:"year-start,omitempty"`
	// YearEnd is exclusive, zero means current year + 1
	YearEnd int `yaml:"year-end,omitempty"`
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Generate Sample creates a sample yaml file with default/sample values
func GenerateSample(filePath string) error {
	cfg := Config{
		Substitutions: DefaultSubstitutions,
		Patterns:      DefaultPatterns,
		YearStart:     DefaultYearStart,
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
