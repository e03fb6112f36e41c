package lanes

import (
	"encoding/binary"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestLaneBytes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"bool", LaneBytes[bool](), 1},
		{"uint8", LaneBytes[uint8](), 1},
		{"Float8E4M3", LaneBytes[Float8E4M3](), 1},
		{"Float16", LaneBytes[Float16](), 2},
		{"BFloat16", LaneBytes[BFloat16](), 2},
		{"float32", LaneBytes[float32](), 4},
		{"float64", LaneBytes[float64](), 8},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("LaneBytes[%s] = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestAsBytesFromBytes(t *testing.T) {
	t.Run("uint16 little endian", func(t *testing.T) {
		v := VecOf[uint16](0x1234, 0xABCD)
		buf := AsBytes(v, binary.LittleEndian)
		if !reflect.DeepEqual(buf, []byte{0x34, 0x12, 0xCD, 0xAB}) {
			t.Errorf("AsBytes = %X", buf)
		}

		back, err := FromBytes[uint16](buf, binary.LittleEndian)
		if err != nil {
			t.Fatalf("FromBytes: %v", err)
		}
		if !reflect.DeepEqual(back.Data(), v.Data()) {
			t.Errorf("round trip = %v", back.Data())
		}
	})

	t.Run("uint16 big endian", func(t *testing.T) {
		v := VecOf[uint16](0x1234, 0xABCD)
		buf := AsBytes(v, binary.BigEndian)
		if !reflect.DeepEqual(buf, []byte{0x12, 0x34, 0xAB, 0xCD}) {
			t.Errorf("AsBytes = %X", buf)
		}
	})

	t.Run("float32", func(t *testing.T) {
		v := VecOf[float32](1.0, -2.0)
		buf := AsBytes(v, binary.LittleEndian)
		if len(buf) != 8 {
			t.Fatalf("len = %d", len(buf))
		}
		if bits := binary.LittleEndian.Uint32(buf); bits != math.Float32bits(1.0) {
			t.Errorf("lane 0 bits = %08X", bits)
		}
		back, err := FromBytes[float32](buf, binary.LittleEndian)
		if err != nil {
			t.Fatalf("FromBytes: %v", err)
		}
		if !reflect.DeepEqual(back.Data(), v.Data()) {
			t.Errorf("round trip = %v", back.Data())
		}
	})

	t.Run("narrow formats keep raw bits", func(t *testing.T) {
		v := VecOf(Float8E5M2(0x7B), Float8E5M2(0x80))
		buf := AsBytes(v, binary.LittleEndian)
		if !reflect.DeepEqual(buf, []byte{0x7B, 0x80}) {
			t.Errorf("AsBytes = %X", buf)
		}
	})

	t.Run("bools", func(t *testing.T) {
		buf := AsBytes(VecOf(true, false), binary.LittleEndian)
		if !reflect.DeepEqual(buf, []byte{1, 0}) {
			t.Errorf("AsBytes bools = %v", buf)
		}
		back, err := FromBytes[bool]([]byte{0, 2}, binary.LittleEndian)
		if err != nil {
			t.Fatalf("FromBytes: %v", err)
		}
		if !reflect.DeepEqual(back.Data(), []bool{false, true}) {
			t.Errorf("FromBytes bools = %v", back.Data())
		}
	})

	t.Run("bad buffer lengths", func(t *testing.T) {
		_, err := FromBytes[uint16]([]byte{1, 2, 3}, binary.LittleEndian)
		if !errors.Is(err, ErrBadLength) {
			t.Errorf("err = %v, want ErrBadLength", err)
		}
		// Six bytes is three uint16 lanes, not a power of two.
		_, err = FromBytes[uint16](make([]byte, 6), binary.LittleEndian)
		if !errors.Is(err, ErrBadWidth) {
			t.Errorf("err = %v, want ErrBadWidth", err)
		}
	})
}

func TestReinterpret(t *testing.T) {
	t.Run("float32 to uint32 keeps bits", func(t *testing.T) {
		v := VecOf[float32](1.0, -2.0)
		u, err := Reinterpret[uint32](v)
		if err != nil {
			t.Fatalf("Reinterpret: %v", err)
		}
		if GetLane(u, 0) != math.Float32bits(1.0) || GetLane(u, 1) != math.Float32bits(-2.0) {
			t.Errorf("Reinterpret = %08X", u.Data())
		}

		back, err := Reinterpret[float32](u)
		if err != nil {
			t.Fatalf("Reinterpret back: %v", err)
		}
		if !reflect.DeepEqual(back.Data(), v.Data()) {
			t.Errorf("round trip = %v", back.Data())
		}
	})

	t.Run("lane width change", func(t *testing.T) {
		v := VecOf[uint16](0x1234, 0xABCD)
		b, err := Reinterpret[uint8](v)
		if err != nil {
			t.Fatalf("Reinterpret: %v", err)
		}
		// Little-endian layout: low byte first.
		if !reflect.DeepEqual(b.Data(), []uint8{0x34, 0x12, 0xCD, 0xAB}) {
			t.Errorf("Reinterpret to bytes = %X", b.Data())
		}

		w, err := Reinterpret[uint32](v)
		if err != nil {
			t.Fatalf("Reinterpret: %v", err)
		}
		if !reflect.DeepEqual(w.Data(), []uint32{0xABCD1234}) {
			t.Errorf("Reinterpret to uint32 = %08X", w.Data())
		}
	})

	t.Run("narrow float reinterpret", func(t *testing.T) {
		v := VecOf(Float32ToBFloat16(1.0), Float32ToBFloat16(2.0))
		u, err := Reinterpret[uint16](v)
		if err != nil {
			t.Fatalf("Reinterpret: %v", err)
		}
		if !reflect.DeepEqual(u.Data(), []uint16{0x3F80, 0x4000}) {
			t.Errorf("Reinterpret bf16 = %04X", u.Data())
		}
	})

	t.Run("size mismatch fails", func(t *testing.T) {
		v := VecOf[uint8](1, 2)
		if _, err := Reinterpret[uint32](v); err == nil {
			t.Error("expected error: 2 bytes cannot form uint32 lanes")
		}
	})
}
