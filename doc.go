// Package nativecom is the runtime surface of the nativecom component-server
// generator.
//
// The generator turns declarative factory→target associations into the glue
// code an in-process, binary-activatable component server needs: per-factory
// forwarding implementations of the class-factory contract, and one shared
// dispatch module exposing the two entry points a hosting process queries at
// load time (DllGetClassObject, DllCanUnloadNow).
//
// # Declaring a component
//
// A factory declares its target by embedding the FactoryFor marker, and
// declares the class-factory contract by embedding
// UnimplementedClassFactory. Interop capability and the class identifier are
// declared with directive comments on the type:
//
//	//com:visible
//	//com:clsid E10F1111-2222-3333-4444-555566667777
//	type Widget struct{}
//
//	//com:visible
//	type WidgetFactory struct {
//		nativecom.UnimplementedClassFactory
//		nativecom.FactoryFor[Widget]
//	}
//
// Running the generator over the package emits forwarding CreateInstance and
// LockServer methods for WidgetFactory (shadowing the embedded stubs) and
// the shared dispatch module mapping the declared class identifier to the
// specialized instantiation routine.
//
// # Generating
//
//	nativecom generate --out ./server ./...
//
// or through the library entry point:
//
//	err := compiler.Generate(".", []string{"./..."}, gen.WithTarget("./server"))
//
// # Runtime collaborator
//
// Object creation delegates to an external wrapper runtime registered with
// RegisterWrapper. nativecom specifies that collaborator only at its
// boundary (create a wrapper, query an interface, release); it does not ship
// a marshalling layer.
package nativecom
