/*
 * mips64r6 - Physical memory and per-core address translation.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package memory

import "testing"

func TestTranslateWithinLimit(t *testing.T) {
	m := New(4096, 1)
	m.SetMMU(0, 0x1000, 0x0fff)
	phys, ok := m.Translate(0, 0x0fff)
	if !ok {
		t.Fatalf("Translate rejected address inside limit")
	}
	if phys != 0x1fff {
		t.Errorf("Translate got: %#x expected: %#x", phys, 0x1fff)
	}
}

func TestTranslateBeyondLimitFaults(t *testing.T) {
	m := New(4096, 1)
	m.SetMMU(0, 0x1000, 0x0fff)
	if _, ok := m.Translate(0, 0x1000); ok {
		t.Errorf("Translate accepted address beyond limit")
	}
}

func TestReadWriteByteRoundTrip(t *testing.T) {
	m := New(16, 1)
	for i := uint64(0); i < m.Size(); i++ {
		if !m.WriteByte(i, byte(i*7)) {
			t.Fatalf("WriteByte failed at %d", i)
		}
	}
	for i := uint64(0); i < m.Size(); i++ {
		v, ok := m.ReadByte(i)
		if !ok {
			t.Fatalf("ReadByte failed at %d", i)
		}
		if v != uint64(byte(i*7)) {
			t.Errorf("ReadByte(%d) got: %#x expected: %#x", i, v, byte(i*7))
		}
	}
}

func TestReadWriteDwordLittleEndian(t *testing.T) {
	m := New(4096, 1)
	want := uint64(0xDEADBEEFCAFEBABE)
	if !m.WriteDword(16, want) {
		t.Fatalf("WriteDword failed")
	}
	b0, _ := m.ReadByte(16)
	if b0 != 0xBE {
		t.Errorf("WriteDword not little-endian: byte 0 got %#x expected %#x", b0, 0xBE)
	}
	got, ok := m.ReadDword(16)
	if !ok || got != want {
		t.Errorf("ReadDword got: %#x expected: %#x", got, want)
	}
}

func TestReadInstructionBigEndian(t *testing.T) {
	m := New(4096, 1)
	m.WriteByte(0, 0x11)
	m.WriteByte(1, 0x22)
	m.WriteByte(2, 0x33)
	m.WriteByte(3, 0x44)
	word, ok := m.ReadInstruction(0)
	if !ok {
		t.Fatalf("ReadInstruction faulted unexpectedly")
	}
	if word != 0x11223344 {
		t.Errorf("ReadInstruction got: %#08x expected: %#08x", word, 0x11223344)
	}
}

func TestBoundsRejectsOnePastEnd(t *testing.T) {
	m := New(8, 1)
	if _, ok := m.ReadByte(8); ok {
		t.Errorf("ReadByte accepted one-past-end address")
	}
	if _, ok := m.ReadByte(7); !ok {
		t.Errorf("ReadByte rejected last valid address")
	}
	if _, ok := m.ReadWord(5); ok {
		t.Errorf("ReadWord accepted a range spilling past end")
	}
	if _, ok := m.ReadWord(4); !ok {
		t.Errorf("ReadWord rejected a range ending exactly at len(mem)")
	}
}

func TestLoadImage(t *testing.T) {
	m := New(16, 1)
	image := []byte{0xde, 0xad, 0xbe, 0xef}
	if !m.LoadImage(4, image) {
		t.Fatalf("LoadImage failed to fit")
	}
	word, ok := m.ReadInstruction(4)
	if !ok || word != 0xdeadbeef {
		t.Errorf("LoadImage/ReadInstruction got: %#08x ok: %v", word, ok)
	}
	if m.LoadImage(14, image) {
		t.Errorf("LoadImage accepted an image that overruns memory")
	}
}
