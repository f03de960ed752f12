package config

// RawConfig mirrors the YAML file. Nil fields were not set and keep their
// defaults.
type RawConfig struct {
	Display     *string `yaml:"display"`
	Title       *string `yaml:"title"`
	Width       *int    `yaml:"width"`
	Height      *int    `yaml:"height"`
	BorderWidth *int    `yaml:"border_width"`
	LogLevel    *string `yaml:"log_level"`
}

func (r RawConfig) apply(cfg *Config) {
	if r.Display != nil {
		cfg.Display = *r.Display
	}
	if r.Title != nil {
		cfg.Title = *r.Title
	}
	if r.Width != nil {
		cfg.Width = *r.Width
	}
	if r.Height != nil {
		cfg.Height = *r.Height
	}
	if r.BorderWidth != nil {
		cfg.BorderWidth = *r.BorderWidth
	}
	if r.LogLevel != nil {
		cfg.LogLevel = *r.LogLevel
	}
}
