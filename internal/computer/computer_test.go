/*
 * mips64r6 - Computer harness: owns memory and the per-core executors.
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

package computer

import "testing"

// opLUI/opORI encoded by hand: LUI rt,imm; ORI rt,rs,imm.
func encodeLUI(rt uint32, imm uint16) uint32 {
	return (0x0f << 26) | (rt << 16) | uint32(imm)
}

func encodeORI(rs, rt uint32, imm uint16) uint32 {
	return (0x0d << 26) | (rs << 21) | (rt << 16) | uint32(imm)
}

func bigEndian(word uint32) []byte {
	return []byte{byte(word >> 24), byte(word >> 16), byte(word >> 8), byte(word)}
}

func TestStepAdvancesEveryCoreOncePerTick(t *testing.T) {
	c := New(2, 4096, nil)
	c.SetMMU(0, 0, 4095)
	c.SetMMU(1, 0, 4095)

	c.LoadImage(0, bigEndian(encodeLUI(1, 0x0001)))

	c.Step()

	pc0, _ := c.PC(0)
	pc1, _ := c.PC(1)
	if pc0 != 4 {
		t.Errorf("core 0 PC = %d, want 4", pc0)
	}
	if pc1 != 4 {
		t.Errorf("core 1 PC = %d, want 4 (every core steps once per tick)", pc1)
	}

	r1, _ := c.Register(0, 1)
	if r1 != 0x10000 {
		t.Errorf("core 0 r1 = %#x, want 0x10000", r1)
	}
}

func TestOutOfRangeCoreReturnsError(t *testing.T) {
	c := New(1, 4096, nil)
	if _, err := c.PC(5); err == nil {
		t.Errorf("expected an error for an out-of-range core")
	}
}

func TestPeekPokeBypassTranslation(t *testing.T) {
	c := New(1, 4096, nil)
	if !c.PokeDword(8, 0x1122334455667788) {
		t.Fatalf("PokeDword failed")
	}
	v, ok := c.PeekDword(8)
	if !ok || v != 0x1122334455667788 {
		t.Errorf("PeekDword = %#x, %v, want 0x1122334455667788, true", v, ok)
	}
}

func TestPeekPokeHalfwordAndWordBypassTranslation(t *testing.T) {
	c := New(1, 4096, nil)
	if !c.PokeHalfword(16, 0x1122) {
		t.Fatalf("PokeHalfword failed")
	}
	if v, ok := c.PeekHalfword(16); !ok || v != 0x1122 {
		t.Errorf("PeekHalfword = %#x, %v, want 0x1122, true", v, ok)
	}

	if !c.PokeWord(32, 0x11223344) {
		t.Fatalf("PokeWord failed")
	}
	if v, ok := c.PeekWord(32); !ok || v != 0x11223344 {
		t.Errorf("PeekWord = %#x, %v, want 0x11223344, true", v, ok)
	}
}

func TestExceptionFreezesCoreAcrossSteps(t *testing.T) {
	c := New(1, 4096, nil)
	c.SetMMU(0, 0, 4095)
	c.LoadImage(0, bigEndian(encodeORI(31, 31, 0))) // harmless, but followed by nothing mapped
	c.SetMMU(0, 0, 0)                               // shrink window so fetch at pc=4 faults next step

	c.Step() // executes the ORI fine, PC -> 4
	if pc, _ := c.PC(0); pc != 4 {
		t.Fatalf("PC after first step = %d, want 4", pc)
	}

	c.Step() // fetch at pc=4 is out of window: faults
	exc, _ := c.ExceptionPending(0)
	if !exc {
		t.Fatalf("expected exception_pending after fetch fault")
	}

	pcBefore, _ := c.PC(0)
	c.Step() // frozen core: Step is a no-op
	pcAfter, _ := c.PC(0)
	if pcBefore != pcAfter {
		t.Errorf("frozen core's PC moved: %d -> %d", pcBefore, pcAfter)
	}
}
