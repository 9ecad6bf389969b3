package gen

import "go/token"

// Marker identifies a capability marker attached to a declared type through
// a directive comment.
type Marker string

const (
	// MarkerVisible flags a type as interop-capable ("//com:visible").
	MarkerVisible Marker = "com:visible"
	// MarkerClassID attaches the 128-bit class identifier ("//com:clsid").
	MarkerClassID Marker = "com:clsid"
)

// Interface names a well-known interface symbols can be tested against.
type Interface string

// InterfaceClassFactory is the activation-capability contract every
// declared factory must implement.
const InterfaceClassFactory Interface = RuntimePkg + ".IClassFactory"

// Symbol is a read-only view of one named type in the host compilation.
// The generator never walks the host symbol graph generically; these
// narrow queries are the whole abstraction surface.
type Symbol interface {
	// Name returns the fully qualified type name (package path dot ident).
	Name() string
	// Ident returns the bare type name.
	Ident() string
	// PkgPath returns the import path of the declaring package.
	PkgPath() string
	// PkgName returns the package name of the declaring package.
	PkgName() string
	// Dir returns the directory holding the declaring package's sources.
	Dir() string
	// Pos returns the source location of the type declaration.
	Pos() token.Position
	// HasMarker reports whether the marker is attached to the type.
	HasMarker(m Marker) bool
	// MarkerValues returns the attached values of a value-carrying marker,
	// one per occurrence, in declaration order.
	MarkerValues(m Marker) []string
	// Implements reports whether the pointer type implements the well-known
	// interface.
	Implements(i Interface) bool
}

// Declaration is one requested factory→target association, produced by the
// resolver and consumed exactly once by the validator.
type Declaration struct {
	Factory Symbol
	Target  Symbol
}

// SymbolGraph is the resolver's view of the host compilation.
type SymbolGraph interface {
	// Missing returns the names of well-known types the resolver could not
	// resolve in the host compilation. Non-empty means the environment is
	// unsupported and the whole run aborts (NC0001).
	Missing() []string
	// Declarations returns the raw declarations in resolution order. The
	// order is stable across re-runs on an unchanged compilation.
	Declarations() []Declaration
}
