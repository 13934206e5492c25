// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for options snapshot and panic messages.
//
// Purpose:
//   - Expose the resolved Options and the WithX panic messages to matrix_test ONLY.
//   - Compiled only with the package tests (_test.go), invisible in production builds.

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	HasHook        bool
	DiscardsLogger bool
}

// GatherOptionsSnapshot_TestOnly resolves opts and reports the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		HasHook:        o.hook != nil,
		DiscardsLogger: o.logger == discardLogger,
	}
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicLoggerNil_TestOnly   = panicLoggerNil
	PanicStepHookNil_TestOnly = panicStepHookNil
)
