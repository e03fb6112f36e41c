//go:build arm64

package lanes

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func init() {
	if NoNativeEnv() {
		capsName = "arm64/generic"
		return
	}
	if runtime.GOOS == "darwin" {
		// cpu.ARM64 feature bits are not populated on darwin; every
		// Apple arm64 part has NEON, FP16 and the permute/count ops.
		caps = Caps{NativeF16: true, NativeBF16: true, NativePopCount: true, NativePermute: true}
		capsName = "arm64/neon"
		return
	}
	caps = Caps{
		NativeF16:      cpu.ARM64.HasFPHP,
		NativeBF16:     false,
		NativePopCount: cpu.ARM64.HasASIMD,
		NativePermute:  cpu.ARM64.HasASIMD,
	}
	if cpu.ARM64.HasASIMD {
		capsName = "arm64/neon"
	} else {
		capsName = "arm64/generic"
	}
}
