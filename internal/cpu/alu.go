/*
 * mips64r6 - Register-register and immediate ALU operations.
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

// signExt32 replicates bit 31 of v into bits 63..32.
func signExt32(v uint32) uint64 {
	return uint64(int64(int32(v)))
}

// addOverflow32 reports whether a+b overflows a signed 32-bit result.
func addOverflow32(a, b int32) (int32, bool) {
	sum := a + b
	return sum, ((a ^ sum) & (b ^ sum)) < 0
}

// subOverflow32 reports whether a-b overflows a signed 32-bit result.
func subOverflow32(a, b int32) (int32, bool) {
	diff := a - b
	return diff, ((a ^ b) & (a ^ diff)) < 0
}

// addOverflow64 reports whether a+b overflows a signed 64-bit result.
func addOverflow64(a, b int64) (int64, bool) {
	sum := a + b
	return sum, ((a ^ sum) & (b ^ sum)) < 0
}

// subOverflow64 reports whether a-b overflows a signed 64-bit result.
func subOverflow64(a, b int64) (int64, bool) {
	diff := a - b
	return diff, ((a ^ b) & (a ^ diff)) < 0
}

func (e *Executor) opADD(s *stepInfo) {
	rs32 := int32(e.Register(s.rs))
	rt32 := int32(e.Register(s.rt))
	sum, overflow := addOverflow32(rs32, rt32)
	if overflow {
		e.fault()
		return
	}
	e.SetRegister(s.rd, signExt32(uint32(sum)))
}

func (e *Executor) opADDU(s *stepInfo) {
	sum := int32(e.Register(s.rs)) + int32(e.Register(s.rt))
	e.SetRegister(s.rd, signExt32(uint32(sum)))
}

func (e *Executor) opSUB(s *stepInfo) {
	rs32 := int32(e.Register(s.rs))
	rt32 := int32(e.Register(s.rt))
	diff, overflow := subOverflow32(rs32, rt32)
	if overflow {
		e.fault()
		return
	}
	e.SetRegister(s.rd, signExt32(uint32(diff)))
}

func (e *Executor) opSUBU(s *stepInfo) {
	diff := int32(e.Register(s.rs)) - int32(e.Register(s.rt))
	e.SetRegister(s.rd, signExt32(uint32(diff)))
}

func (e *Executor) opDADD(s *stepInfo) {
	rs64 := int64(e.Register(s.rs))
	rt64 := int64(e.Register(s.rt))
	sum, overflow := addOverflow64(rs64, rt64)
	if overflow {
		e.fault()
		return
	}
	e.SetRegister(s.rd, uint64(sum))
}

func (e *Executor) opDADDU(s *stepInfo) {
	sum := int64(e.Register(s.rs)) + int64(e.Register(s.rt))
	e.SetRegister(s.rd, uint64(sum))
}

func (e *Executor) opDSUB(s *stepInfo) {
	rs64 := int64(e.Register(s.rs))
	rt64 := int64(e.Register(s.rt))
	diff, overflow := subOverflow64(rs64, rt64)
	if overflow {
		e.fault()
		return
	}
	e.SetRegister(s.rd, uint64(diff))
}

func (e *Executor) opDSUBU(s *stepInfo) {
	diff := int64(e.Register(s.rs)) - int64(e.Register(s.rt))
	e.SetRegister(s.rd, uint64(diff))
}

func (e *Executor) opAND(s *stepInfo) {
	e.SetRegister(s.rd, e.Register(s.rs)&e.Register(s.rt))
}

func (e *Executor) opOR(s *stepInfo) {
	e.SetRegister(s.rd, e.Register(s.rs)|e.Register(s.rt))
}

func (e *Executor) opXOR(s *stepInfo) {
	e.SetRegister(s.rd, e.Register(s.rs)^e.Register(s.rt))
}

func (e *Executor) opNOR(s *stepInfo) {
	e.SetRegister(s.rd, ^(e.Register(s.rs) | e.Register(s.rt)))
}

func (e *Executor) opSLT(s *stepInfo) {
	var v uint64
	if int64(e.Register(s.rs)) < int64(e.Register(s.rt)) {
		v = 1
	}
	e.SetRegister(s.rd, v)
}

func (e *Executor) opSLTU(s *stepInfo) {
	var v uint64
	if e.Register(s.rs) < e.Register(s.rt) {
		v = 1
	}
	e.SetRegister(s.rd, v)
}

func (e *Executor) opADDIU(s *stepInfo) {
	sum := int32(e.Register(s.rs)) + int32(s.imm16)
	e.SetRegister(s.rt, signExt32(uint32(sum)))
}

func (e *Executor) opDADDIU(s *stepInfo) {
	sum := int64(e.Register(s.rs)) + s.imm16
	e.SetRegister(s.rt, uint64(sum))
}

func (e *Executor) opANDI(s *stepInfo) {
	e.SetRegister(s.rt, e.Register(s.rs)&uint64(uint16(s.imm16)))
}

func (e *Executor) opORI(s *stepInfo) {
	e.SetRegister(s.rt, e.Register(s.rs)|uint64(uint16(s.imm16)))
}

func (e *Executor) opXORI(s *stepInfo) {
	e.SetRegister(s.rt, e.Register(s.rs)^uint64(uint16(s.imm16)))
}

func (e *Executor) opLUI(s *stepInfo) {
	e.SetRegister(s.rt, uint64(s.imm16<<16))
}

func (e *Executor) opSLTI(s *stepInfo) {
	var v uint64
	if int64(e.Register(s.rs)) < s.imm16 {
		v = 1
	}
	e.SetRegister(s.rt, v)
}

func (e *Executor) opSLTIU(s *stepInfo) {
	var v uint64
	if e.Register(s.rs) < uint64(s.imm16) {
		v = 1
	}
	e.SetRegister(s.rt, v)
}
