package latch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	viamutils "go.viam.com/utils"
)

// Config stores the parameters of an Extractor.
type Config struct {
	// Multithread splits large keypoint sets across goroutines.
	Multithread bool `json:"multithread"`
	// MaxWorkers caps the number of goroutines. Zero uses utils.ParallelFactor.
	MaxWorkers int `json:"max_workers,omitempty"`
}

// DefaultConfig returns a multithreaded configuration using all available parallelism.
func DefaultConfig() *Config {
	return &Config{Multithread: true}
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	if cfg.MaxWorkers < 0 {
		return viamutils.NewConfigValidationError(path,
			errors.Errorf("max_workers cannot be negative, got %d", cfg.MaxWorkers))
	}
	return nil
}

// LoadConfiguration loads and validates a Config from a json file.
func LoadConfiguration(file string) (*Config, error) {
	filePath := filepath.Clean(file)
	configFile, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open LATCH config %q", filePath)
	}
	defer viamutils.UncheckedErrorFunc(configFile.Close)

	var config Config
	jsonParser := json.NewDecoder(configFile)
	jsonParser.DisallowUnknownFields()
	if err := jsonParser.Decode(&config); err != nil {
		return nil, errors.Wrapf(err, "cannot parse LATCH config %q", filePath)
	}
	if err := config.Validate(filePath); err != nil {
		return nil, err
	}
	return &config, nil
}
