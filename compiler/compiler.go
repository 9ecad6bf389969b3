// Package compiler wires the generation pipeline: resolve declarations from
// the host compilation, validate them, emit the generated units and write
// them to disk. The pipeline is a single pass; running it twice over an
// unchanged host compilation produces byte-identical output.
package compiler

import (
	"context"
	"fmt"

	"github.com/bluehill/nativecom/compiler/gen"
	"github.com/bluehill/nativecom/compiler/load"
)

// Generate runs the pipeline over the host packages matching patterns,
// rooted at dir.
//
// Declarations that fail validation are reported through the configured
// reporter and dropped; the remaining declarations still generate. The
// returned error is ErrValidationFailed when anything was rejected, so
// build integrations fail loudly, and a run-level error for an unsupported
// environment or an emission/write failure.
func Generate(dir string, patterns []string, opts ...gen.Option) error {
	return GenerateContext(context.Background(), dir, patterns, opts...)
}

// GenerateContext is Generate with a caller-supplied context bounding the
// file writes.
func GenerateContext(ctx context.Context, dir string, patterns []string, opts ...gen.Option) error {
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	graph, err := load.Load(dir, patterns)
	if err != nil {
		return err
	}
	decls, err := gen.Validate(graph, cfg.Reporter)
	if err != nil {
		return err
	}
	units, err := gen.Emit(cfg, decls)
	if err != nil {
		return err
	}
	if err := gen.NewWriter().Write(ctx, units); err != nil {
		return err
	}
	if cfg.Reporter.HasErrors() {
		return fmt.Errorf("%d of %d declarations rejected: %w",
			len(graph.Declarations())-len(decls), len(graph.Declarations()), gen.ErrValidationFailed)
	}
	return nil
}
