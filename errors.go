package nativecom

import "errors"

// Sentinel errors a Wrapper implementation returns to steer the result code
// Activate hands back to the hosting process.
var (
	// ErrNoInterface reports that the wrapped instance does not support the
	// requested interface. Activate maps it to ENoInterface.
	ErrNoInterface = errors.New("nativecom: interface not supported")

	// ErrActivation reports any other wrapper-side activation failure.
	// Activate maps it, and every unrecognized error, to EFail.
	ErrActivation = errors.New("nativecom: activation failed")
)
