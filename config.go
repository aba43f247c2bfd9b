package delphesplot

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the settings of a time-of-flight analysis run. Command-line
// flags take precedence over values loaded from a file.
type Config struct {
	Inputs   []string `json:"inputs"`
	Label    string   `json:"label"`
	OutDir   string   `json:"out_dir"`
	SaveAll  bool     `json:"save_all"`
	Weighted bool     `json:"weighted"`
	Binnings Binnings `json:"binnings"`
}

func DefaultConfig() Config {
	return Config{
		OutDir:   ".",
		Binnings: DefaultBinnings(),
	}
}

// LoadConfig reads a JSON configuration file on top of DefaultConfig. An
// empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, &ErrOpenFile{Filename: path, Err: err}
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("could not decode configuration %q: %w", path, err)
	}

	return config, config.Binnings.Validate()
}

func (c Config) Validate() error {
	if c.Label == "" {
		return fmt.Errorf("missing output label")
	}
	return c.Binnings.Validate()
}
