package nativecom

import (
	"errors"
	"sync/atomic"
	"unsafe"
)

// Handle identifies a native-callable wrapper created for a managed
// instance. It is opaque to nativecom; only the Wrapper that produced it
// can interpret it.
type Handle any

// Wrapper is the external activation collaborator: it creates a callable
// wrapper for a managed instance, queries it for a requested interface and
// manages its reference count. nativecom ships the contract only.
type Wrapper interface {
	CreateWrapper(instance any) (Handle, error)
	QueryInterface(h Handle, iid GUID) (unsafe.Pointer, error)
	Release(h Handle)
}

// CreateFunc is the signature of a specialized instantiation routine held
// in the generated dispatch table.
type CreateFunc func(outer unsafe.Pointer, iid *GUID, out *unsafe.Pointer) HRESULT

var activeWrapper atomic.Pointer[Wrapper]

// RegisterWrapper installs the process-wide wrapper runtime. It is expected
// to be called once before the hosting process activates any class.
func RegisterWrapper(w Wrapper) {
	if w == nil {
		panic("nativecom: RegisterWrapper called with nil Wrapper")
	}
	activeWrapper.Store(&w)
}

func currentWrapper() Wrapper {
	p := activeWrapper.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Activate is the shared instantiation routine all generated factory code
// forwards to. It allocates a fresh T per call (no caching), wraps it
// through the registered Wrapper and queries the requested interface into
// out. Failures come back as result codes, never as panics.
func Activate[T any](outer unsafe.Pointer, iid *GUID, out *unsafe.Pointer) HRESULT {
	if out == nil {
		return EPointer
	}
	*out = nil
	if outer != nil {
		return ClassENoAggregation
	}
	if iid == nil {
		return EPointer
	}
	w := currentWrapper()
	if w == nil {
		return EFail
	}
	h, err := w.CreateWrapper(new(T))
	if err != nil {
		return resultOf(err)
	}
	p, err := w.QueryInterface(h, *iid)
	if err != nil {
		w.Release(h)
		return resultOf(err)
	}
	*out = p
	return SOK
}

func resultOf(err error) HRESULT {
	if errors.Is(err, ErrNoInterface) {
		return ENoInterface
	}
	return EFail
}

// serverLocks is the single process-wide lock counter shared by every
// generated LockServer implementation. The hosting process polls it from
// another thread through DllCanUnloadNow, so updates must be atomic.
var serverLocks atomic.Int64

// LockServer adjusts the process-wide lock counter. It performs no other
// work and never fails.
func LockServer(lock bool) HRESULT {
	if lock {
		serverLocks.Add(1)
	} else {
		serverLocks.Add(-1)
	}
	return SOK
}

// LockCount returns the current value of the lock counter. The component
// may be unloaded only when the count is at or below zero.
func LockCount() int64 {
	return serverLocks.Load()
}
