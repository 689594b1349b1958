package internal

import "time"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config    *Config
	inputs    []string
	overwrite bool
	now       func() time.Time
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithInputs sets the input document paths to process.
func WithInputs(paths ...string) Option {
	return func(a *application) {
		a.inputs = append(a.inputs, paths...)
	}
}

// WithOverwrite forces overwriting existing output files, regardless of the
// configured policy.
func WithOverwrite() Option {
	return func(a *application) {
		a.overwrite = true
	}
}

// WithNow overrides the generation clock (publishedAt, SEO title year).
func WithNow(now func() time.Time) Option {
	return func(a *application) {
		a.now = now
	}
}
