package gen

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the directory the shared dispatch unit is written to.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackage sets the package name of the shared dispatch unit.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithHeader sets the file header comment added at the top of each
// generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		if header == "" {
			return NewConfigError("Header", nil, "header cannot be empty")
		}
		c.Header = header
		return nil
	}
}

// WithoutEntryPoints suppresses emission of the shared dispatch unit.
// Per-factory forwarding units are still emitted.
func WithoutEntryPoints() Option {
	return func(c *Config) error {
		c.SkipEntryPoints = true
		return nil
	}
}

// WithReporter routes diagnostics to the given reporter.
func WithReporter(r *Reporter) Option {
	return func(c *Config) error {
		if r == nil {
			return NewConfigError("Reporter", nil, "reporter cannot be nil")
		}
		c.Reporter = r
		return nil
	}
}
