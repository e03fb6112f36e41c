//go:build amd64

package lanes

import "golang.org/x/sys/cpu"

func init() {
	if NoNativeEnv() {
		capsName = "amd64/generic"
		return
	}
	caps = Caps{
		// F16C ships on every FMA-capable part, which x/sys/cpu can see.
		NativeF16:      cpu.X86.HasFMA,
		NativeBF16:     cpu.X86.HasAVX512BF16,
		NativePopCount: cpu.X86.HasPOPCNT,
		NativePermute:  cpu.X86.HasSSSE3,
	}
	switch {
	case cpu.X86.HasAVX512F:
		capsName = "amd64/avx512"
	case cpu.X86.HasAVX2:
		capsName = "amd64/avx2"
	case cpu.X86.HasSSE42:
		capsName = "amd64/sse42"
	default:
		capsName = "amd64/generic"
	}
}
