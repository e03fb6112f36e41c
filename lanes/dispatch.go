package lanes

import (
	"os"
	"strconv"
)

// The resolved capability table. Detection runs once at init from the
// per-architecture files (dispatch_amd64.go, dispatch_arm64.go,
// dispatch_other.go); hot paths never re-query the CPU.
//
// The table is exposed through Capabilities and TargetName as the "does
// native hardware exist for this" predicate set, for callers choosing
// between an accelerated path and the portable one. The software
// implementations in this package are the reference semantics: any native
// path keyed off these flags must produce bit-identical results for all
// finite, NaN, and infinity inputs.

// Caps describes the native capabilities of the running CPU.
type Caps struct {
	// NativeF16 indicates hardware float16 <-> float32 conversion
	// (F16C on x86, FP16 on ARM).
	NativeF16 bool

	// NativeBF16 indicates hardware bfloat16 support.
	NativeBF16 bool

	// NativePopCount indicates a hardware population-count instruction.
	NativePopCount bool

	// NativePermute indicates a hardware lane-permute/table-lookup
	// instruction usable for dynamic shuffles.
	NativePermute bool
}

// caps is resolved by the per-architecture init.
var caps Caps

// capsName is a human-readable target name set by the same init.
var capsName = "unknown"

// Capabilities returns the resolved capability table for this process.
func Capabilities() Caps {
	return caps
}

// TargetName returns a human-readable name for the detected target,
// such as "amd64/avx2", "arm64/neon", or "generic".
func TargetName() string {
	return capsName
}

// NoNativeEnv reports whether the LANES_NO_NATIVE environment variable is
// set, which forces the capability table to all-false regardless of the
// CPU. Useful for verifying that native and software paths agree.
func NoNativeEnv() bool {
	val := os.Getenv("LANES_NO_NATIVE")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
