// Package load resolves factory declarations from a host Go compilation.
//
// It loads the host packages with go/packages and scans their declarations
// for struct types embedding the nativecom.FactoryFor marker, producing the
// declaration sequence the validator consumes. The scan follows file and
// declaration order, so re-resolving an unchanged compilation yields the
// same sequence.
package load

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/bluehill/nativecom/compiler/gen"
)

// Names of the well-known runtime types resolved from the host compilation.
const (
	classFactoryName = "IClassFactory"
	factoryForName   = "FactoryFor"
)

// Graph is the resolved view of the host compilation.
type Graph struct {
	missing []string
	decls   []gen.Declaration
}

var _ gen.SymbolGraph = (*Graph)(nil)

// Missing returns the well-known type names that could not be resolved.
func (g *Graph) Missing() []string { return g.missing }

// Declarations returns the resolved declarations in declaration order.
func (g *Graph) Declarations() []gen.Declaration { return g.decls }

// wellKnown holds the runtime types declarations are checked against.
type wellKnown struct {
	classFactory *types.Interface
	factoryFor   *types.TypeName
}

// Symbol is the go/types-backed implementation of gen.Symbol.
type Symbol struct {
	obj     *types.TypeName
	pos     token.Position
	markers map[gen.Marker][]string
	wk      *wellKnown
}

var _ gen.Symbol = (*Symbol)(nil)

// Name returns the fully qualified type name.
func (s *Symbol) Name() string { return s.PkgPath() + "." + s.Ident() }

// Ident returns the bare type name.
func (s *Symbol) Ident() string { return s.obj.Name() }

// PkgPath returns the import path of the declaring package.
func (s *Symbol) PkgPath() string { return s.obj.Pkg().Path() }

// PkgName returns the name of the declaring package.
func (s *Symbol) PkgName() string { return s.obj.Pkg().Name() }

// Dir returns the directory holding the declaring package's sources.
func (s *Symbol) Dir() string { return filepath.Dir(s.pos.Filename) }

// Pos returns the source location of the type declaration.
func (s *Symbol) Pos() token.Position { return s.pos }

// HasMarker reports whether the directive marker is attached to the type.
func (s *Symbol) HasMarker(m gen.Marker) bool {
	_, ok := s.markers[m]
	return ok
}

// MarkerValues returns the attached marker values in declaration order.
func (s *Symbol) MarkerValues(m gen.Marker) []string { return s.markers[m] }

// Implements reports whether the pointer type implements the well-known
// interface.
func (s *Symbol) Implements(i gen.Interface) bool {
	if i != gen.InterfaceClassFactory || s.wk.classFactory == nil {
		return false
	}
	return types.Implements(types.NewPointer(s.obj.Type()), s.wk.classFactory)
}

type loader struct {
	fset  *token.FileSet
	wk    *wellKnown
	index map[*types.TypeName]*Symbol
}

// Load loads the packages matching patterns rooted at dir and resolves
// every declared factory association.
//
// A host compilation that never imports the runtime package cannot carry
// declarations; that is a valid empty result, not an NC0001 environment
// failure. NC0001 is reserved for compilations that do import the runtime
// package but whose copy lacks the well-known types.
func Load(dir string, patterns []string) (*Graph, error) {
	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedImports | packages.NeedDeps | packages.NeedTypes |
			packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:       dir,
		Fset:      fset,
		ParseFile: parseSkipGenerated,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load host packages: %w", err)
	}
	for _, p := range pkgs {
		for _, e := range p.Errors {
			return nil, fmt.Errorf("load host packages: %v", e)
		}
	}

	runtimePkg := findRuntime(pkgs)
	if runtimePkg == nil {
		return &Graph{}, nil
	}

	l := &loader{
		fset:  fset,
		wk:    &wellKnown{},
		index: make(map[*types.TypeName]*Symbol),
	}
	var missing []string
	scope := runtimePkg.Types.Scope()
	if iface, ok := lookupInterface(scope, classFactoryName); ok {
		l.wk.classFactory = iface
	} else {
		missing = append(missing, gen.RuntimePkg+"."+classFactoryName)
	}
	if obj, ok := scope.Lookup(factoryForName).(*types.TypeName); ok {
		l.wk.factoryFor = obj
	} else {
		missing = append(missing, gen.RuntimePkg+"."+factoryForName)
	}
	if len(missing) > 0 {
		return &Graph{missing: missing}, nil
	}

	// Index every type declaration reachable with syntax so target symbols
	// from dependency packages carry their markers too.
	packages.Visit(pkgs, func(p *packages.Package) bool {
		l.indexPackage(p)
		return true
	}, nil)

	g := &Graph{}
	for _, p := range pkgs {
		if p.PkgPath == gen.RuntimePkg {
			continue
		}
		g.decls = append(g.decls, l.resolvePackage(p)...)
	}
	return g, nil
}

// parseSkipGenerated parses host files, except previously generated
// nativecom files whose contents may reference types that no longer exist.
func parseSkipGenerated(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if strings.HasPrefix(filepath.Base(filename), "nativecom_") {
		return parser.ParseFile(fset, filename, src, parser.PackageClauseOnly)
	}
	return parser.ParseFile(fset, filename, src, parser.ParseComments|parser.DeclarationErrors)
}

// findRuntime locates the runtime package in the import graph.
func findRuntime(pkgs []*packages.Package) *packages.Package {
	var found *packages.Package
	packages.Visit(pkgs, func(p *packages.Package) bool {
		if p.PkgPath == gen.RuntimePkg {
			found = p
		}
		return found == nil
	}, nil)
	if found == nil || found.Types == nil {
		return nil
	}
	return found
}

func lookupInterface(scope *types.Scope, name string) (*types.Interface, bool) {
	obj, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		return nil, false
	}
	iface, ok := obj.Type().Underlying().(*types.Interface)
	return iface, ok
}

// indexPackage records every type declaration of p with its directive
// markers and position.
func (l *loader) indexPackage(p *packages.Package) {
	if p.TypesInfo == nil {
		return
	}
	for _, file := range p.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				obj, ok := p.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}
				markers := directives(gd.Doc, ts.Doc)
				l.index[obj] = &Symbol{
					obj:     obj,
					pos:     l.fset.Position(ts.Pos()),
					markers: markers,
					wk:      l.wk,
				}
			}
		}
	}
}

// resolvePackage scans one root package for factory declarations in file
// and declaration order.
func (l *loader) resolvePackage(p *packages.Package) []gen.Declaration {
	var decls []gen.Declaration
	for _, file := range p.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				obj, ok := p.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}
				st, ok := obj.Type().Underlying().(*types.Struct)
				if !ok {
					continue
				}
				for _, target := range l.embeddedTargets(st) {
					decls = append(decls, gen.Declaration{
						Factory: l.symbolFor(obj),
						Target:  l.symbolFor(target),
					})
				}
			}
		}
	}
	return decls
}

// embeddedTargets returns the target type of every embedded FactoryFor
// marker, one per occurrence, in field order.
func (l *loader) embeddedTargets(st *types.Struct) []*types.TypeName {
	var targets []*types.TypeName
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Embedded() {
			continue
		}
		named, ok := f.Type().(*types.Named)
		if !ok || named.Origin().Obj() != l.wk.factoryFor {
			continue
		}
		args := named.TypeArgs()
		if args.Len() != 1 {
			continue
		}
		arg, ok := args.At(0).(*types.Named)
		if !ok {
			continue
		}
		targets = append(targets, arg.Obj())
	}
	return targets
}

// symbolFor returns the indexed symbol for obj, synthesizing a markerless
// one for types whose syntax was not loaded.
func (l *loader) symbolFor(obj *types.TypeName) *Symbol {
	if s, ok := l.index[obj]; ok {
		return s
	}
	s := &Symbol{obj: obj, pos: l.fset.Position(obj.Pos()), wk: l.wk}
	l.index[obj] = s
	return s
}

// directives extracts the //com: markers from the declaration's comment
// groups.
func directives(groups ...*ast.CommentGroup) map[gen.Marker][]string {
	var m map[gen.Marker][]string
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			text, ok := strings.CutPrefix(c.Text, "//")
			if !ok || !strings.HasPrefix(text, "com:") {
				continue
			}
			name, value, _ := strings.Cut(text, " ")
			if m == nil {
				m = make(map[gen.Marker][]string)
			}
			marker := gen.Marker(name)
			if value = strings.TrimSpace(value); value != "" {
				m[marker] = append(m[marker], value)
			} else if _, seen := m[marker]; !seen {
				m[marker] = nil
			}
		}
	}
	return m
}
