package gen

import (
	"fmt"
	"go/token"
)

// Code is a stable, documented diagnostic code. Codes are part of the
// external contract and must not be renumbered.
type Code string

const (
	// CodeEnvironment reports that a required well-known type could not be
	// resolved in the host compilation. Run-level; aborts generation.
	CodeEnvironment Code = "NC0001"
	// CodeFactoryInterface reports a factory that does not implement the
	// required activation interface.
	CodeFactoryInterface Code = "NC0002"
	// CodeFactoryVisible reports a factory lacking the interop-capable marker.
	CodeFactoryVisible Code = "NC0003"
	// CodeTargetVisible reports a target lacking the interop-capable marker.
	CodeTargetVisible Code = "NC0004"
	// CodeTargetClassID reports a target lacking exactly one decodable class
	// identifier marker.
	CodeTargetClassID Code = "NC0005"
	// CodeFactoryConflict reports a factory declaring more than one target.
	CodeFactoryConflict Code = "NC0006"
)

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// String returns the lower-case severity label.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one reported validation failure, attached to the source
// location of the offending declaration.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Pos      token.Position
}

// String formats the diagnostic in the file:line:col style tooling expects.
func (d Diagnostic) String() string {
	if !d.Pos.IsValid() {
		return fmt.Sprintf("%s %s: %s", d.Severity, d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s %s: %s", d.Pos, d.Severity, d.Code, d.Message)
}

// Reporter accumulates diagnostics in report order.
type Reporter struct {
	diags []Diagnostic
}

// Report appends d.
func (r *Reporter) Report(d Diagnostic) {
	r.diags = append(r.diags, d)
}

// Diagnostics returns the reported diagnostics in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diags
}

// HasErrors reports whether any error-severity diagnostic was reported.
func (r *Reporter) HasErrors() bool {
	for _, d := range r.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
