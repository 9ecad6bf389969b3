package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
)

// RuntimePkg is the import path of the runtime package generated code
// depends on.
const RuntimePkg = "github.com/bluehill/nativecom"

// DispatchUnitName keys the single shared dispatch unit.
const DispatchUnitName = "nativecom/server"

// DispatchUnitFile is the file name of the shared dispatch unit.
const DispatchUnitFile = "nativecom_server.go"

// Unit is one named piece of generated output. Units are write-once:
// emitting two units with the same name is rejected by the writer.
type Unit struct {
	Name    string // factory's qualified name, or DispatchUnitName
	Dir     string // directory the file belongs to
	File    string // file name within Dir
	Content []byte
}

// Path returns the unit's file path.
func (u *Unit) Path() string {
	if u.Dir == "" {
		return u.File
	}
	return u.Dir + "/" + u.File
}

// Emit renders one forwarding unit per validated declaration plus, unless
// suppressed by the configuration, the shared dispatch unit. For a fixed
// declaration order the output is byte-identical across runs.
func Emit(cfg *Config, decls []*ValidatedDeclaration) ([]*Unit, error) {
	units := make([]*Unit, 0, len(decls)+1)
	for _, d := range decls {
		u, err := emitFactory(cfg, d)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	if !cfg.SkipEntryPoints {
		u, err := emitDispatch(cfg, decls)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}

// emitFactory renders the forwarding implementation of one factory's two
// required operations. CreateInstance forwards unconditionally to the
// shared instantiation routine parameterized by the declared target type;
// interface filtering is the wrapper runtime's responsibility.
func emitFactory(cfg *Config, d *ValidatedDeclaration) (*Unit, error) {
	factory := d.Factory.Ident()
	target := jen.Qual(d.Target.PkgPath(), d.Target.Ident())

	f := jen.NewFilePathName(d.Factory.PkgPath(), d.Factory.PkgName())
	f.HeaderComment(cfg.Header)
	f.ImportName(RuntimePkg, "nativecom")

	f.Commentf("CreateInstance creates a fresh %s and queries it for the requested interface.", d.Target.Ident())
	f.Func().
		Params(jen.Id("f").Op("*").Id(factory)).
		Id("CreateInstance").
		Params(
			jen.Id("outer").Qual("unsafe", "Pointer"),
			jen.Id("iid").Op("*").Qual(RuntimePkg, "GUID"),
			jen.Id("out").Op("*").Qual("unsafe", "Pointer"),
		).
		Qual(RuntimePkg, "HRESULT").
		Block(
			jen.Return(jen.Qual(RuntimePkg, "Activate").Index(target).Call(
				jen.Id("outer"), jen.Id("iid"), jen.Id("out"),
			)),
		)

	f.Comment("LockServer adjusts the process-wide server lock count.")
	f.Func().
		Params(jen.Id("f").Op("*").Id(factory)).
		Id("LockServer").
		Params(jen.Id("lock").Bool()).
		Qual(RuntimePkg, "HRESULT").
		Block(
			jen.Return(jen.Qual(RuntimePkg, "LockServer").Call(jen.Id("lock"))),
		)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("%w: factory %s: %v", ErrGenerationFailed, d.Factory.Name(), err)
	}
	return &Unit{
		Name:    d.Factory.Name(),
		Dir:     d.Factory.Dir(),
		File:    "nativecom_" + inflect.Underscore(factory) + ".go",
		Content: buf.Bytes(),
	}, nil
}

// sameDir reports whether two paths name the same directory. The configured
// target is often relative while symbol positions are absolute, so both
// sides are resolved before comparing.
func sameDir(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

type dispatchImport struct {
	Alias string
	Path  string
}

type dispatchEntry struct {
	ClassID string // canonical identifier text
	Literal string // decoded field layout as a composite literal
	Target  string // qualified target type expression
}

type dispatchData struct {
	Header     string
	Package    string
	RuntimePkg string
	Imports    []dispatchImport
	Entries    []dispatchEntry
}

// dispatchTemplate renders the shared dispatch unit. The cgo export
// directives rule out the jennifer renderer here; the template output is
// gofmt-formatted before it becomes a unit.
var dispatchTemplate = template.Must(template.New("dispatch").Parse(`// {{.Header}}

package {{.Package}}

import "C"

import (
	"unsafe"

	nativecom "{{.RuntimePkg}}"
{{- range .Imports}}
	{{.Alias}} "{{.Path}}"
{{- end}}
)

// classIDs and classCreators are parallel tables fixed at generation time:
// the instantiation routine for classIDs[i] is classCreators[i].
var (
	classIDs = [{{len .Entries}}]nativecom.GUID{
{{- range .Entries}}
		{{.Literal}}, // {{.ClassID}} ({{.Target}})
{{- end}}
	}
	classCreators = [{{len .Entries}}]nativecom.CreateFunc{
{{- range .Entries}}
		nativecom.Activate[{{.Target}}],
{{- end}}
	}
)

//export DllGetClassObject
func DllGetClassObject(rclsid unsafe.Pointer, riid unsafe.Pointer, ppv *unsafe.Pointer) int32 {
	if rclsid == nil || ppv == nil {
		return int32(nativecom.EPointer)
	}
	clsid := *(*nativecom.GUID)(rclsid)
	for i := range classIDs {
		if classIDs[i] == clsid {
			return int32(classCreators[i](nil, (*nativecom.GUID)(riid), ppv))
		}
	}
	return int32(nativecom.ClassENotAvailable)
}

//export DllCanUnloadNow
func DllCanUnloadNow() int32 {
	if nativecom.LockCount() <= 0 {
		return int32(nativecom.SOK)
	}
	return int32(nativecom.SFalse)
}
`))

// emitDispatch renders the shared dispatch unit accumulating, in resolution
// order, the identifier table and the parallel table of instantiation
// routines specialized per target.
func emitDispatch(cfg *Config, decls []*ValidatedDeclaration) (*Unit, error) {
	data := dispatchData{
		Header:     cfg.Header,
		Package:    cfg.Package,
		RuntimePkg: RuntimePkg,
	}

	aliases := make(map[string]string, len(decls))
	used := map[string]bool{"nativecom": true, "unsafe": true, "C": true, cfg.Package: true}
	qualify := func(s Symbol) string {
		// A target declared in the emission package itself must stay
		// unqualified; importing the output package would be a self-import.
		if s.PkgName() == cfg.Package && sameDir(cfg.Target, s.Dir()) {
			return s.Ident()
		}
		alias, ok := aliases[s.PkgPath()]
		if !ok {
			alias = s.PkgName()
			for n := 2; used[alias]; n++ {
				alias = s.PkgName() + strconv.Itoa(n)
			}
			used[alias] = true
			aliases[s.PkgPath()] = alias
			data.Imports = append(data.Imports, dispatchImport{Alias: alias, Path: s.PkgPath()})
		}
		return alias + "." + s.Ident()
	}

	for _, d := range decls {
		data.Entries = append(data.Entries, dispatchEntry{
			ClassID: d.ClassID.String(),
			Literal: d.ClassID.SourceLiteral(""),
			Target:  qualify(d.Target),
		})
	}

	var buf bytes.Buffer
	if err := dispatchTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: dispatch unit: %v", ErrGenerationFailed, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: dispatch unit does not format: %v", ErrGenerationFailed, err)
	}
	return &Unit{
		Name:    DispatchUnitName,
		Dir:     cfg.Target,
		File:    DispatchUnitFile,
		Content: src,
	}, nil
}
