package nativecom

import "fmt"

// HRESULT is the plain-data result code returned across the native boundary.
// Activation-time failures are never raised as panics or errors to the
// hosting process; they travel as these signed 32-bit codes.
type HRESULT int32

// Result codes used by generated code and wrapper runtimes.
const (
	SOK    HRESULT = 0
	SFalse HRESULT = 1

	ENotImpl     HRESULT = -2147467263 // 0x80004001
	ENoInterface HRESULT = -2147467262 // 0x80004002
	EPointer     HRESULT = -2147467261 // 0x80004003
	EFail        HRESULT = -2147467259 // 0x80004005

	ClassENoAggregation HRESULT = -2147221232 // 0x80040110
	ClassENotAvailable  HRESULT = -2147221231 // 0x80040111
)

// Succeeded reports whether hr signals success (non-negative).
func (hr HRESULT) Succeeded() bool { return hr >= 0 }

// Failed reports whether hr signals failure.
func (hr HRESULT) Failed() bool { return hr < 0 }

// String returns the symbolic name for well-known codes and the hexadecimal
// value otherwise.
func (hr HRESULT) String() string {
	switch hr {
	case SOK:
		return "S_OK"
	case SFalse:
		return "S_FALSE"
	case ENotImpl:
		return "E_NOTIMPL"
	case ENoInterface:
		return "E_NOINTERFACE"
	case EPointer:
		return "E_POINTER"
	case EFail:
		return "E_FAIL"
	case ClassENoAggregation:
		return "CLASS_E_NOAGGREGATION"
	case ClassENotAvailable:
		return "CLASS_E_CLASSNOTAVAILABLE"
	default:
		return fmt.Sprintf("HRESULT(0x%08X)", uint32(hr))
	}
}
