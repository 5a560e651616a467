package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for display and annotation behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Display parameters. Brightness and contrast are percentages where 100
	// is neutral, matching the per-sign values stored on annotations.
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`

	// PixelSpacingMM converts image pixels to millimeters for the sign
	// detail popover. Zero disables physical-unit display.
	PixelSpacingMM float64 `json:"pixel_spacing_mm"`

	// Main window geometry.
	WindowW int `json:"window_w"`
	WindowH int `json:"window_h"`

	// Screen-import selection rectangle persistence.
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		Brightness:     100,
		Contrast:       100,
		PixelSpacingMM: 0.14,
		WindowW:        1024,
		WindowH:        768,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Brightness <= 0 || c.Brightness > 200 {
		c.Brightness = 100
	}
	if c.Contrast <= 0 || c.Contrast > 200 {
		c.Contrast = 100
	}
	if c.PixelSpacingMM < 0 {
		c.PixelSpacingMM = 0
	}
	if c.WindowW < 320 {
		c.WindowW = 1024
	}
	if c.WindowH < 240 {
		c.WindowH = 768
	}
	if c.SelectionW < 0 {
		c.SelectionW = 0
	}
	if c.SelectionH < 0 {
		c.SelectionH = 0
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
