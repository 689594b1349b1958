package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Content ContentConfig     `yaml:"content"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Content.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return nil
}

// ContentConfig tunes the generator and points at the output directory.
type ContentConfig struct {
	OutputDir       string `yaml:"output_dir"`
	ExcerptMaxLen   int    `yaml:"excerpt_max_len"`
	MaxTags         int    `yaml:"max_tags"`
	ReadingSpeedWPM int    `yaml:"reading_speed_wpm"`
	Brand           string `yaml:"brand"`
	Overwrite       bool   `yaml:"overwrite"`
}

// Validate validates the content configuration.
func (c *ContentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.ExcerptMaxLen, validation.Required, validation.Min(1), validation.Max(160)),
		validation.Field(&c.MaxTags, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&c.ReadingSpeedWPM, validation.Required, validation.Min(1)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Content: ContentConfig{
			OutputDir:       "./content/blog",
			ExcerptMaxLen:   160,
			MaxTags:         5,
			ReadingSpeedWPM: 225,
			Brand:           "Aviators Training Centre",
			Overwrite:       false,
		},
	}
}
