package gen

import (
	"fmt"
	"strings"

	"github.com/bluehill/nativecom/guid"
)

// ValidatedDeclaration is a declaration that passed every precondition,
// carrying the target's decoded class identifier. It is consumed by the
// emitter and not retained afterward.
type ValidatedDeclaration struct {
	Declaration
	ClassID guid.GUID
}

// checkResult is the terminal state of the per-declaration validation
// state machine. The constant order mirrors the check order.
type checkResult int

const (
	checkOK               checkResult = iota
	checkFactoryInterface             // NC0002
	checkFactoryVisible               // NC0003
	checkTargetVisible                // NC0004
	checkTargetClassID                // NC0005
)

// Validate runs every declaration of g through the fixed precondition
// sequence. Failing declarations are reported to r and dropped; the rest
// continue. A non-nil error is returned only for the run-level NC0001
// condition, which aborts the whole run.
func Validate(g SymbolGraph, r *Reporter) ([]*ValidatedDeclaration, error) {
	if missing := g.Missing(); len(missing) > 0 {
		d := Diagnostic{
			Code:     CodeEnvironment,
			Severity: SeverityError,
			Message: fmt.Sprintf("required types %s could not be resolved; the host compilation must import %s",
				strings.Join(missing, ", "), RuntimePkg),
		}
		r.Report(d)
		return nil, fmt.Errorf("%s: %w", d.Message, ErrUnsupportedEnvironment)
	}
	// A factory embedding the target marker more than once produces several
	// declarations for one generated unit. Go cannot host two generated
	// method sets on one type, so the whole factory is rejected here with a
	// positioned diagnostic instead of failing later at write time.
	targets := make(map[string]int, len(g.Declarations()))
	for _, d := range g.Declarations() {
		targets[d.Factory.Name()]++
	}

	var out []*ValidatedDeclaration
	reported := make(map[string]bool)
	for _, d := range g.Declarations() {
		if n := targets[d.Factory.Name()]; n > 1 {
			if !reported[d.Factory.Name()] {
				reported[d.Factory.Name()] = true
				r.Report(Diagnostic{
					Code:     CodeFactoryConflict,
					Severity: SeverityError,
					Pos:      d.Factory.Pos(),
					Message: fmt.Sprintf("factory %s declares %d targets; a factory must declare exactly one",
						d.Factory.Name(), n),
				})
			}
			continue
		}
		res, id := check(d)
		if res != checkOK {
			r.Report(res.diagnostic(d))
			continue
		}
		out = append(out, &ValidatedDeclaration{Declaration: d, ClassID: id})
	}
	return out, nil
}

// check evaluates the precondition sequence for one declaration. The first
// failure wins; later checks are not evaluated.
func check(d Declaration) (checkResult, guid.GUID) {
	switch {
	case !d.Factory.Implements(InterfaceClassFactory):
		return checkFactoryInterface, guid.Nil
	case !d.Factory.HasMarker(MarkerVisible):
		return checkFactoryVisible, guid.Nil
	case !d.Target.HasMarker(MarkerVisible):
		return checkTargetVisible, guid.Nil
	}
	ids := d.Target.MarkerValues(MarkerClassID)
	if len(ids) != 1 {
		return checkTargetClassID, guid.Nil
	}
	id, err := guid.Parse(ids[0])
	if err != nil {
		return checkTargetClassID, guid.Nil
	}
	return checkOK, id
}

// diagnostic maps a failed check to its stable code and message, attached
// to the factory's declaration location.
func (res checkResult) diagnostic(d Declaration) Diagnostic {
	diag := Diagnostic{Severity: SeverityError, Pos: d.Factory.Pos()}
	switch res {
	case checkFactoryInterface:
		diag.Code = CodeFactoryInterface
		diag.Message = fmt.Sprintf("factory %s does not implement %s; embed nativecom.UnimplementedClassFactory",
			d.Factory.Name(), InterfaceClassFactory)
	case checkFactoryVisible:
		diag.Code = CodeFactoryVisible
		diag.Message = fmt.Sprintf("factory %s lacks the //%s marker", d.Factory.Name(), MarkerVisible)
	case checkTargetVisible:
		diag.Code = CodeTargetVisible
		diag.Message = fmt.Sprintf("target %s lacks the //%s marker", d.Target.Name(), MarkerVisible)
	case checkTargetClassID:
		diag.Code = CodeTargetClassID
		diag.Message = fmt.Sprintf("target %s must carry exactly one //%s marker with a canonical 8-4-4-4-12 identifier",
			d.Target.Name(), MarkerClassID)
	}
	return diag
}
