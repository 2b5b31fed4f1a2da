/*
 * mips64r6 - Instruction fetch, decode and step dispatch.
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

package cpu

import (
	"testing"

	"github.com/rcornwell/mips64r6/internal/memory"
)

// rType encodes an opcode-0 three-register instruction.
func rType(rs, rt, rd, sa, fn uint32) uint32 {
	return (0 << 26) | (rs << 21) | (rt << 16) | (rd << 11) | (sa << 6) | fn
}

// iType encodes a primary-opcode register+16-bit-immediate instruction.
func iType(opcode, rs, rt uint32, imm uint16) uint32 {
	return (opcode << 26) | (rs << 21) | (rt << 16) | uint32(imm)
}

func newTestExecutor(t *testing.T, memBytes uint64) (*Executor, *memory.Memory) {
	t.Helper()
	mem := memory.New(memBytes, 1)
	mem.SetMMU(0, 0, memBytes-1)
	return New(0, mem, nil), mem
}

func storeInstruction(t *testing.T, mem *memory.Memory, addr uint64, word uint32) {
	t.Helper()
	if !mem.LoadImage(addr, []byte{
		byte(word >> 24), byte(word >> 16), byte(word >> 8), byte(word),
	}) {
		t.Fatalf("failed to store instruction at %#x", addr)
	}
}

func TestLuiOri(t *testing.T) {
	e, mem := newTestExecutor(t, 4096)
	storeInstruction(t, mem, 0, iType(opLUI, 0, 1, 0x1234))
	storeInstruction(t, mem, 4, iType(opORI, 1, 1, 0x5678))

	e.Step()
	e.Step()

	if got := e.Register(1); got != 0x0000000012345678 {
		t.Errorf("r1 = %#x, want %#x", got, uint64(0x0000000012345678))
	}
	if e.PC() != 8 {
		t.Errorf("PC = %d, want 8", e.PC())
	}
}

func TestAddiuNegativeOneSignExtends(t *testing.T) {
	e, mem := newTestExecutor(t, 4096)
	storeInstruction(t, mem, 0, iType(opADDIU, 0, 2, 0xffff))

	e.Step()

	if got := e.Register(2); got != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("r2 = %#x, want all-ones", got)
	}
	if e.PC() != 4 {
		t.Errorf("PC = %d, want 4", e.PC())
	}
}

func TestAddOverflowTraps(t *testing.T) {
	e, mem := newTestExecutor(t, 4096)
	storeInstruction(t, mem, 0, rType(4, 5, 3, 0, fnADD))
	e.SetRegister(4, 0x7FFFFFFF)
	e.SetRegister(5, 1)

	e.Step()

	if !e.ExceptionPending() {
		t.Fatalf("expected exception_pending after ADD overflow")
	}
	if e.PC() != 0 {
		t.Errorf("PC = %d, want 0 (rewound to faulting instruction)", e.PC())
	}
	if e.Register(3) != 0 {
		t.Errorf("r3 = %#x, want unchanged (0)", e.Register(3))
	}
}

func TestDadduWrapsWithoutException(t *testing.T) {
	e, mem := newTestExecutor(t, 4096)
	storeInstruction(t, mem, 0, rType(7, 8, 6, 0, fnDADDU))
	e.SetRegister(7, 0xFFFFFFFFFFFFFFFF)
	e.SetRegister(8, 1)

	e.Step()

	if e.ExceptionPending() {
		t.Fatalf("DADDU should not trap")
	}
	if e.Register(6) != 0 {
		t.Errorf("r6 = %#x, want 0", e.Register(6))
	}
	if e.PC() != 4 {
		t.Errorf("PC = %d, want 4", e.PC())
	}
}

func TestStoreThenLoadDword(t *testing.T) {
	e, mem := newTestExecutor(t, 4096)
	storeInstruction(t, mem, 0, iType(opSD, 0, 9, 16))
	storeInstruction(t, mem, 4, iType(opLD, 0, 10, 16))
	e.SetRegister(9, 0xDEADBEEFCAFEBABE)

	e.Step()
	e.Step()

	if got := e.Register(10); got != 0xDEADBEEFCAFEBABE {
		t.Errorf("r10 = %#x, want %#x", got, uint64(0xDEADBEEFCAFEBABE))
	}
}

func TestBeqDelaySlot(t *testing.T) {
	e, mem := newTestExecutor(t, 4096)
	storeInstruction(t, mem, 0, iType(opBEQ, 0, 0, 2))
	storeInstruction(t, mem, 4, iType(opORI, 0, 11, 0x42))

	e.Step() // BEQ: arms the delay slot, PC advances to the slot
	if e.PC() != 4 {
		t.Fatalf("PC after BEQ = %d, want 4 (delay slot)", e.PC())
	}

	e.Step() // delay-slot instruction executes, then PC redirects
	if got := e.Register(11); got != 0x42 {
		t.Errorf("r11 = %#x, want 0x42", got)
	}
	if e.PC() != 8 {
		t.Errorf("PC = %d, want 8 (branch target)", e.PC())
	}
}

func TestJalrLinksAndJumpsPastTarget(t *testing.T) {
	e, mem := newTestExecutor(t, 4096)
	storeInstruction(t, mem, 0, rType(8, 0, 31, 0, fnJALR))
	e.SetRegister(8, 0x100)

	e.Step()

	if got := e.Register(31); got != 8 {
		t.Errorf("link register r31 = %#x, want 8 (pc + 8 at dispatch time)", got)
	}
	if e.PC() != 0x104 {
		t.Errorf("PC = %#x, want 0x104 (rs + 4, since JALR never arms the delay slot)", e.PC())
	}
}

func TestDoubleDelaySlotFaults(t *testing.T) {
	e, mem := newTestExecutor(t, 4096)
	storeInstruction(t, mem, 0, iType(opBEQ, 0, 0, 1))
	storeInstruction(t, mem, 4, iType(opBEQ, 0, 0, 1))

	e.Step()
	e.Step()

	if !e.ExceptionPending() {
		t.Errorf("expected exception_pending for a BEQ inside a delay slot")
	}
}

func TestLoadTranslateFaultOnlySetsException(t *testing.T) {
	e, mem := newTestExecutor(t, 4096)
	storeInstruction(t, mem, 0, iType(opLW, 2, 1, 0))
	e.SetRegister(1, 0xAAAAAAAA)
	e.SetRegister(2, 1_000_000) // well past the 4096-byte window

	e.Step()

	if !e.ExceptionPending() {
		t.Fatalf("expected exception_pending on translate fault")
	}
	if e.Register(1) != 0xAAAAAAAA {
		t.Errorf("r1 changed on faulted load: %#x", e.Register(1))
	}
	if e.PC() != 0 {
		t.Errorf("PC = %d, want 0 (unchanged on data fault)", e.PC())
	}
}

func TestZeroRegisterHardWired(t *testing.T) {
	e, mem := newTestExecutor(t, 4096)
	storeInstruction(t, mem, 0, iType(opADDIU, 1, 0, 5))
	e.SetRegister(1, 5)

	e.Step()

	if e.Register(0) != 0 {
		t.Errorf("r0 = %#x, want 0 (writes discarded)", e.Register(0))
	}
}

func TestCloClzCountCorrectly(t *testing.T) {
	e, _ := newTestExecutor(t, 4096)
	e.SetRegister(4, 0xFFFFFFF0)
	s := &stepInfo{rs: 4, rt: 0, rd: 5}
	e.opCLO(s)
	if got := e.Register(5); got != 28 {
		t.Errorf("CLO = %d, want 28", got)
	}

	e.SetRegister(4, 0x0000000F)
	s2 := &stepInfo{rs: 4, rt: 0, rd: 6}
	e.opCLZ(s2)
	if got := e.Register(6); got != 28 {
		t.Errorf("CLZ = %d, want 28", got)
	}
}

func TestBitswapIsSelfInverseUnderSignExtension(t *testing.T) {
	e, _ := newTestExecutor(t, 4096)
	e.SetRegister(1, 0x12345678)
	s := &stepInfo{raw: rType(0, 1, 2, 0, 0) | fnBSHFL, rt: 1, rd: 2}
	e.opBITSWAP(s)
	swapped := e.Register(2)

	s2 := &stepInfo{raw: rType(0, 2, 3, 0, 0) | fnBSHFL, rt: 2, rd: 3}
	e.SetRegister(2, swapped)
	e.opBITSWAP(s2)

	if got := e.Register(3); got != signExt32(0x12345678) {
		t.Errorf("double BITSWAP = %#x, want %#x", got, signExt32(0x12345678))
	}
}

func TestAlignBoundaryCases(t *testing.T) {
	e, _ := newTestExecutor(t, 4096)
	e.SetRegister(1, 0x1111111122222222) // rs
	e.SetRegister(2, 0x3333333344444444) // rt

	s0 := &stepInfo{raw: rType(1, 2, 3, 0, fnBSHFL), rs: 1, rt: 2, rd: 3}
	e.opALIGN(s0)
	if got := e.Register(3); got != signExt32(0x44444444) {
		t.Errorf("ALIGN bp=0 = %#x, want rt = %#x", got, signExt32(0x44444444))
	}
}

func TestDivideByZeroIsIllegalInstruction(t *testing.T) {
	e, mem := newTestExecutor(t, 4096)
	storeInstruction(t, mem, 0, rType(4, 5, 3, divOddDIV, fnSOP32))
	e.SetRegister(4, 10)
	e.SetRegister(5, 0)

	e.Step()

	if !e.ExceptionPending() {
		t.Errorf("expected exception_pending on divide by zero")
	}
}
