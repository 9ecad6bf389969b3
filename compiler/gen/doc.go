// Package gen validates resolved factory declarations and generates the
// component-server glue code.
//
// The pipeline is a single deterministic pass:
//
//	load.Load (host compilation)
//	        ↓
//	   []Declaration (resolution order)
//	        ↓
//	   Validate — fixed precondition sequence, diagnostics on failure
//	        ↓
//	   []*ValidatedDeclaration
//	        ↓
//	   Emit — one forwarding unit per factory + the shared dispatch unit
//	        ↓
//	   Writer — write-once persistence of the generated units
//
// Validation failures surface as Diagnostics with stable NC codes attached
// to the source location of the offending declaration; a failing declaration
// is dropped without halting the rest of the run. The only run-level failure
// is NC0001, reported when the host compilation does not make the nativecom
// runtime types resolvable.
//
// For a fixed input graph the emitted units are byte-identical across runs.
// Emission iterates slices only; nothing depends on map iteration order,
// time, or host object identity.
package gen
