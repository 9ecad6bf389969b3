package nativecom

import (
	"unsafe"

	"github.com/bluehill/nativecom/guid"
)

// GUID is the 128-bit identifier layout shared by the generator, the
// generated code and wrapper runtimes.
type GUID = guid.GUID

// FactoryFor marks the embedding struct as a class factory for T. Each
// embedded occurrence declares exactly one association; a factory serving
// several classes embeds the marker once per target.
type FactoryFor[T any] struct{}

// IClassFactory is the activation-capability contract every declared factory
// must satisfy. The generator emits the forwarding implementations; user
// code satisfies the interface up front by embedding
// UnimplementedClassFactory.
type IClassFactory interface {
	// CreateInstance creates a fresh instance of the factory's target class
	// and queries it for the requested interface.
	CreateInstance(outer unsafe.Pointer, iid *GUID, out *unsafe.Pointer) HRESULT
	// LockServer increments or decrements the process-wide server lock count.
	LockServer(lock bool) HRESULT
}

// UnimplementedClassFactory provides stub implementations of IClassFactory
// returning ENotImpl. Embed it in every declared factory; the generated
// methods on the factory type shadow these stubs.
type UnimplementedClassFactory struct{}

// CreateInstance returns ENotImpl.
func (UnimplementedClassFactory) CreateInstance(unsafe.Pointer, *GUID, *unsafe.Pointer) HRESULT {
	return ENotImpl
}

// LockServer returns ENotImpl.
func (UnimplementedClassFactory) LockServer(bool) HRESULT {
	return ENotImpl
}

var _ IClassFactory = UnimplementedClassFactory{}
