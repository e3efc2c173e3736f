// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED helpers and the resolved Options to matrix_test ONLY.
//   - Being a _test.go file in package matrix, it never reaches production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options changes,
//     update snapshotOf(...) accordingly (tests will catch drift).

var (
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
	ExportedNewDenseWithPolicy = newDenseWithPolicy
	// ExportedSubScaledRow exposes the single row-update primitive.
	ExportedSubScaledRow = subScaledRow
)

// Panic message exports to avoid "magic strings" in tests.
const PanicPivotToleranceInvalid_TestOnly = panicPivotToleranceInvalid

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	PivotTol       float64
	ValidateNaNInf bool
	BoundRows      int
	BoundCols      int
	HasOnStep      bool
	HasOnOperation bool
	Err            error
}

// NewMatrixOptionsSnapshot_TestOnly builds Options via public Option funcs and returns a snapshot.
func NewMatrixOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(NewMatrixOptions(opts...))
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// IsZero_TestOnly evaluates the engine's zero test under opts.
func IsZero_TestOnly(x float64, opts ...Option) bool {
	o := gatherOptions(opts...)

	return o.isZero(x)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		PivotTol:       o.pivotTol,
		ValidateNaNInf: o.validateNaNInf,
		BoundRows:      o.boundRows,
		BoundCols:      o.boundCols,
		HasOnStep:      o.onStep != nil,
		HasOnOperation: o.onOp != nil,
		Err:            o.err,
	}
}
