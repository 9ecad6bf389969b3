package gen

// DefaultHeader is the header comment added to every generated file.
const DefaultHeader = "Code generated by nativecom. DO NOT EDIT."

// Config holds the generation settings.
type Config struct {
	// Target is the directory the shared dispatch unit is written to.
	Target string
	// Package is the package name of the shared dispatch unit. It defaults
	// to "main", the package a c-shared component server is built from.
	Package string
	// Header is the header comment of every generated file.
	Header string
	// SkipEntryPoints suppresses the shared dispatch unit while still
	// emitting the per-factory forwarding units, for hosts that supply
	// their own entry points.
	SkipEntryPoints bool
	// Reporter receives validation diagnostics.
	Reporter *Reporter
}

// NewConfig builds a Config from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Target:   ".",
		Package:  "main",
		Header:   DefaultHeader,
		Reporter: &Reporter{},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
