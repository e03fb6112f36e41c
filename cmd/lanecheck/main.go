// Copyright 2026 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// lanecheck inspects the narrow float codecs and the resolved CPU
// capability table from the command line. It is a development aid for
// checking what a given bit pattern or value encodes to in each format.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/govec/go-lanes/lanes"
)

var formats = []lanes.FloatFormat{
	lanes.FormatE4M3,
	lanes.FormatE4M3UZ,
	lanes.FormatE5M2,
	lanes.FormatE5M2UZ,
}

func main() {
	root := &cobra.Command{
		Use:   "lanecheck",
		Short: "Inspect narrow float codecs and CPU capabilities",
	}
	root.AddCommand(formatsCmd(), encodeCmd(), decodeCmd(), capsCmd(), verifyCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the 8-bit float formats and their limits",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%-8s %-8s %-8s %-6s %-6s %12s %12s\n",
				"name", "exp", "mant", "bias", "inf", "max finite", "nan bits")
			for _, f := range formats {
				fmt.Printf("%-8s %-8d %-8d %-6d %-6v %12g %#12x\n",
					f.Name, f.ExpBits, f.MantBits, f.Bias, f.HasInf,
					f.Decode(f.MaxFinite()), f.NaN())
			}
		},
	}
}

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <value>",
		Short: "Encode a float value into every 8-bit format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			val, err := strconv.ParseFloat(args[0], 32)
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			x := float32(val)
			fmt.Printf("input: %g (0x%08X)\n", x, math.Float32bits(x))
			for _, f := range formats {
				code := f.Encode(x)
				fmt.Printf("%-8s 0x%02X  decodes to %g\n", f.Name, code, f.Decode(code))
			}
			fmt.Printf("%-8s 0x%04X\n", "f16", lanes.Float32ToFloat16(x).Bits())
			fmt.Printf("%-8s 0x%04X\n", "bf16", lanes.Float32ToBFloat16(x).Bits())
			return nil
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <bits>",
		Short: "Decode an 8-bit pattern in every format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := strconv.ParseUint(args[0], 0, 8)
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			raw := uint8(bits)
			for _, f := range formats {
				desc := ""
				switch {
				case f.IsNaN(raw):
					desc = " (nan)"
				case f.IsInf(raw):
					desc = " (inf)"
				}
				fmt.Printf("%-8s %g%s\n", f.Name, f.Decode(raw), desc)
			}
			return nil
		},
	}
}

func capsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "Show the resolved CPU capability table",
		Run: func(cmd *cobra.Command, args []string) {
			caps := lanes.Capabilities()
			fmt.Printf("target:           %s\n", lanes.TargetName())
			fmt.Printf("native f16:       %v\n", caps.NativeF16)
			fmt.Printf("native bf16:      %v\n", caps.NativeBF16)
			fmt.Printf("native popcount:  %v\n", caps.NativePopCount)
			fmt.Printf("native permute:   %v\n", caps.NativePermute)
			if lanes.NoNativeEnv() {
				fmt.Println("(LANES_NO_NATIVE is set: all native paths disabled)")
			}
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Round-trip all 256 patterns through every 8-bit codec",
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, f := range formats {
				for i := 0; i < 256; i++ {
					raw := uint8(i)
					if f.IsNaN(raw) || f.IsInf(raw) {
						continue
					}
					if back := f.Encode(f.Decode(raw)); back != raw {
						fmt.Printf("%s: 0x%02X -> %g -> 0x%02X\n", f.Name, raw, f.Decode(raw), back)
						bad++
					}
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d patterns failed to round-trip", bad)
			}
			fmt.Println("all finite patterns round-trip exactly")
			return nil
		},
	}
}
