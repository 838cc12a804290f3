package feed

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-board/pkg/errors"
)

// Config holds the feed server configuration.
type Config struct {
	// Address the server listens on. ":0" picks a random port.
	Address string `json:"address" yaml:"address" validate:"required"`
	// BoardName is the storage name the served board is loaded from and
	// saved to.
	BoardName string `json:"boardName" yaml:"boardName" validate:"required"`
	// DataPath is the directory or database the board library lives in.
	DataPath string `json:"dataPath" yaml:"dataPath" validate:"required"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Address:   ":8433",
		BoardName: "default",
		DataPath:  "./data",
	}
}

// ParseConfig parses and validates a YAML feed server configuration.
func ParseConfig(raw []byte) (Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse feed config", err)
	}

	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid feed config", err)
	}

	return config, nil
}

// LoadConfig reads and parses a YAML feed server configuration file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read feed config %s", path)
	}

	return ParseConfig(raw)
}
