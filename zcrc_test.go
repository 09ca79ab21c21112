package zcrc_test

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/LocalSpook/zcrc"
)

// Catalogue vectors: P.Compute("123456789") against published check values.
func TestCatalogueVectors(t *testing.T) {
	const check = "123456789"
	cases := []struct {
		name string
		p    zcrc.Params
		want uint64
	}{
		{"crc32c", zcrc.Crc32C, 0xE3069283},
		{"crc16_modbus", zcrc.Crc16Modbus, 0x4B37},
		{"crc64_xz", zcrc.Crc64Xz, 0x995DC9BBDF1939FA},
		{"crc16_arc", zcrc.Crc16Arc, 0xBB3D},
		{"crc32_iso_hdlc", zcrc.Crc32IsoHdlc, 0xCBF43926},
		{"crc16_xmodem", zcrc.Crc16Xmodem, 0x31C3},
	}
	for _, c := range cases {
		if got := c.p.Compute([]byte(check)); got != c.want {
			t.Errorf("%s.Compute(%q) = %#x, want %#x", c.name, check, got, c.want)
		}
	}
}

// End-to-end scenarios listed literally in the property list.
func TestLiteralScenarios(t *testing.T) {
	if got := zcrc.Crc32C.Compute([]byte("123456789")); got != 0xE3069283 {
		t.Errorf("crc32c.Compute = %#x, want 0xE3069283", got)
	}
	if got := zcrc.Crc16Modbus.Compute([]byte("123456789")); got != 0x4B37 {
		t.Errorf("crc16_modbus.Compute = %#x, want 0x4B37", got)
	}
	if got := zcrc.Crc64Xz.Compute([]byte("123456789")); got != 0x995DC9BBDF1939FA {
		t.Errorf("crc64_xz.Compute = %#x, want 0x995DC9BBDF1939FA", got)
	}
}

func TestIncremental(t *testing.T) {
	s := zcrc.Crc64Xz.InitState()
	s = zcrc.Process(s, []byte("Some data"))
	s = zcrc.Process(s, []byte(" processed in "))
	s = zcrc.Process(s, []byte("parts"))
	got := zcrc.Finalize(s)

	want := zcrc.Crc64Xz.Compute([]byte("Some data processed in parts"))
	if got != want {
		t.Errorf("incremental finalize = %#x, want %#x", got, want)
	}
}

func TestValidationLiteralCrc32c(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i)
	}
	data = append(data, 0x4E, 0x79, 0xDD, 0x46)
	if !zcrc.Crc32C.IsValid(data) {
		t.Error("crc32c.IsValid of the 36-byte self-checksummed message should be true")
	}
}

func TestValidationLiteralCrc16Arc(t *testing.T) {
	data := []byte{0x33, 0x22, 0x55, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x98, 0xAE}
	if !zcrc.Crc16Arc.IsValid(data) {
		t.Error("crc16_arc.IsValid of the given 11-byte message should be true")
	}
}

// Property 2: slice-independence.
func TestSliceIndependence(t *testing.T) {
	catalogue := []zcrc.Params{zcrc.Crc32C, zcrc.Crc16Modbus, zcrc.Crc64Xz, zcrc.Crc8SaeJ1850, zcrc.Crc24Openpgp}
	data := randomBytes(1, 5000)

	for _, p := range catalogue {
		base := p.Compute(data, zcrc.SliceBy(1))
		for _, n := range []int{1, 2, 3, 4, 7, 8, 16, 32} {
			if got := p.Compute(data, zcrc.SliceBy(n)); got != base {
				t.Errorf("width=%d: SliceBy(%d) = %#x, want %#x (SliceBy(1))", p.Width, n, got, base)
			}
		}
	}
}

// Property 3: parallel equivalence, on a multi-kilobyte random string.
func TestParallelEquivalence(t *testing.T) {
	catalogue := []zcrc.Params{zcrc.Crc32C, zcrc.Crc64Xz, zcrc.Crc16Arc}
	data := randomBytes(2, 8192)

	for _, p := range catalogue {
		for _, inner := range []zcrc.Algorithm{zcrc.SliceBy(1), zcrc.SliceBy(8), zcrc.SliceBy(16)} {
			want := p.Compute(data, inner)
			got := p.Compute(data, zcrc.Parallel(inner))
			if got != want {
				t.Errorf("width=%d inner=%v: Parallel = %#x, want %#x", p.Width, inner, got, want)
			}
		}
	}
}

// Property 4: zero-byte extension, exhaustive for small n plus a smoke test
// that a huge n doesn't hang (it must cost O(log n) folds, not n streamed
// bytes).
func TestProcessZeroBytesExhaustiveSmall(t *testing.T) {
	catalogue := []zcrc.Params{zcrc.Crc32C, zcrc.Crc16Modbus, zcrc.Crc64Xz, zcrc.Crc10Atm}
	for _, p := range catalogue {
		for n := 0; n <= 16; n++ {
			zeroes := make([]byte, n)
			want := zcrc.Process(p.InitState(), zeroes, zcrc.SliceBy(1))
			got := zcrc.ProcessZeroBytes(p.InitState(), uint64(n))
			if !got.Equal(want) {
				t.Errorf("width=%d n=%d: ProcessZeroBytes disagrees with streaming zero bytes", p.Width, n)
			}
		}
	}
}

func TestProcessZeroBytesSmokeHugeN(t *testing.T) {
	p := zcrc.Crc64Xz
	// This must return promptly: it's 64 carry-less multiplications, never
	// (2^64-1) streamed bytes.
	_ = zcrc.ProcessZeroBytes(p.InitState(), ^uint64(0))
}

// Property 5: combine law.
func TestCombineLaw(t *testing.T) {
	catalogue := []zcrc.Params{zcrc.Crc32C, zcrc.Crc16Modbus, zcrc.Crc64Xz}
	data := randomBytes(3, 4000)

	for _, p := range catalogue {
		for _, split := range []int{0, 1, 17, 2000, len(data) - 1, len(data)} {
			x, y := data[:split], data[split:]

			whole := p.Compute(data)

			left := zcrc.Process(p.InitState(), x)
			left = zcrc.ProcessZeroBytes(left, uint64(len(y)))
			right := zcrc.Process(p.ZeroState(), y)
			combined := zcrc.Finalize(zcrc.Combine(left, right))

			if combined != whole {
				t.Errorf("width=%d split=%d: combine law gives %#x, want %#x", p.Width, split, combined, whole)
			}
		}
	}
}

// Property 6: associativity of partial processing.
func TestAssociativity(t *testing.T) {
	p := zcrc.Crc32C
	data := randomBytes(4, 4000)

	f := func(split uint16) bool {
		s := int(split) % (len(data) + 1)
		x, y := data[:s], data[s:]

		whole := zcrc.Process(p.InitState(), data)
		parts := zcrc.Process(zcrc.Process(p.InitState(), x), y)
		return whole.Equal(parts)
	}
	if err := quick.Check(f, &quick.Config{Rand: rand.New(rand.NewSource(5))}); err != nil {
		t.Error(err)
	}
}

// Property 7: validation, general (not just the two literal examples).
func TestValidationGeneral(t *testing.T) {
	catalogue := []zcrc.Params{zcrc.Crc32C, zcrc.Crc16Modbus, zcrc.Crc64Xz, zcrc.Crc8SaeJ1850}
	for _, p := range catalogue {
		msg := randomBytes(6, 200)
		crc := p.Compute(msg)

		size := int(p.Width+7) / 8
		crcBytes := make([]byte, size)
		orientedCRC := crc
		if !p.RefOut {
			orientedCRC <<= 8*uint(size) - p.Width
		}
		for i := 0; i < size; i++ {
			if p.RefOut {
				crcBytes[i] = byte(orientedCRC >> (8 * uint(i)))
			} else {
				crcBytes[size-1-i] = byte(orientedCRC >> (8 * uint(i)))
			}
		}

		full := append(append([]byte{}, msg...), crcBytes...)
		if !p.IsValid(full) {
			t.Errorf("width=%d: IsValid of message+its own CRC should be true", p.Width)
		}

		// Flip one bit of the last byte; validation must now fail.
		corrupted := append([]byte{}, full...)
		corrupted[len(corrupted)-1] ^= 0x01
		if p.IsValid(corrupted) {
			t.Errorf("width=%d: IsValid after flipping a bit should be false", p.Width)
		}
	}
}

// Property 8: equality ignores garbage above Width — the CRC-10/ATM
// collision example from the property list.
func TestEqualityIgnoresGarbage(t *testing.T) {
	a := zcrc.Process(zcrc.Crc10Atm.InitState(), []byte("\x00\x00"))
	b := zcrc.Process(zcrc.Crc10Atm.InitState(), []byte("\x06\x33"))
	if !a.Equal(b) {
		t.Error("CRC-10/ATM states over \\x00\\x00 and \\x06\\x33 should compare equal")
	}
	if zcrc.Finalize(a) != zcrc.Finalize(b) {
		t.Error("the two states should also finalize to the same checksum")
	}
}

// Property 9: dispatch law.
func TestDispatchLaw(t *testing.T) {
	catalogue := []zcrc.Params{zcrc.Crc32C, zcrc.Crc16Modbus, zcrc.Crc64Xz}
	data := randomBytes(7, 1000)
	for _, p := range catalogue {
		want := p.Compute(data)
		got := zcrc.Finalize(zcrc.Process(p.InitState(), data))
		if got != want {
			t.Errorf("width=%d: Compute = %#x, Finalize(Process(init,B)) = %#x", p.Width, want, got)
		}
	}
}

func TestConstructionPanics(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected a panic, got none", name)
			}
		}()
		f()
	}
	mustPanic("Width 0", func() { zcrc.NewParams(0, 0, 0, false, false, 0) })
	mustPanic("Width 65", func() { zcrc.NewParams(65, 0, 0, false, false, 0) })
	mustPanic("Poly out of range", func() { zcrc.NewParams(8, 0x100, 0, false, false, 0) })
	mustPanic("SliceBy(0)", func() { zcrc.SliceBy(0) })
	mustPanic("nested Parallel", func() { zcrc.Parallel(zcrc.Parallel(zcrc.SliceBy(1))) })

	// A Params built as a bare literal bypasses NewParams entirely — every
	// field is exported, so mustBeValid is only reachable from the actual
	// entry points (InitState/ZeroState), not from construction itself.
	mustPanic("literal Params with Width 0, InitState", func() { zcrc.Params{Width: 0}.InitState() })
	mustPanic("literal Params with Width 0, ZeroState", func() { zcrc.Params{Width: 0}.ZeroState() })
	mustPanic("literal Params with out-of-range Poly, InitState", func() {
		zcrc.Params{Width: 8, Poly: 0x100}.InitState()
	})
	mustPanic("literal Params with Width 0, Compute", func() { zcrc.Params{Width: 0}.Compute([]byte("x")) })

	// The zero Algorithm (sliceN == 0, isParallel == false) must panic
	// rather than hang processSliceBy's loop.
	mustPanic("zero Algorithm", func() {
		zcrc.Process(zcrc.Crc32C.InitState(), []byte("123456789"), zcrc.Algorithm{})
	})
	mustPanic("zero Algorithm on empty data", func() {
		zcrc.Process(zcrc.Crc32C.InitState(), nil, zcrc.Algorithm{})
	})
}

func randomBytes(seed int64, n int) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	r.Read(b)
	return b
}
