/*
 * mips64r6 - Multiply, divide and count-leading operations.
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

import "math/bits"

// opCLO counts leading one bits in the low 32 bits of rs.
func (e *Executor) opCLO(s *stepInfo) {
	v := uint32(e.Register(s.rs))
	count := uint64(0)
	for i := 31; i >= 0; i-- {
		if (v>>uint(i))&1 != 1 {
			break
		}
		count++
	}
	e.SetRegister(s.rd, count)
}

// opCLZ counts leading zero bits in the low 32 bits of rs.
func (e *Executor) opCLZ(s *stepInfo) {
	v := uint32(e.Register(s.rs))
	count := uint64(0)
	for i := 31; i >= 0; i-- {
		if (v>>uint(i))&1 != 0 {
			break
		}
		count++
	}
	e.SetRegister(s.rd, count)
}

// opDCLO counts leading one bits across all 64 bits of rs.
func (e *Executor) opDCLO(s *stepInfo) {
	v := e.Register(s.rs)
	count := uint64(0)
	for i := 63; i >= 0; i-- {
		if (v>>uint(i))&1 != 1 {
			break
		}
		count++
	}
	e.SetRegister(s.rd, count)
}

// opDCLZ counts leading zero bits across all 64 bits of rs.
func (e *Executor) opDCLZ(s *stepInfo) {
	v := e.Register(s.rs)
	count := uint64(0)
	for i := 63; i >= 0; i-- {
		if (v>>uint(i))&1 != 0 {
			break
		}
		count++
	}
	e.SetRegister(s.rd, count)
}

// mulHi64 returns the high 64 bits of the signed 128-bit product a*b.
func mulHi64(a, b int64) int64 {
	hi, _ := bits.Mul64(uint64(a), uint64(b))
	if a < 0 {
		hi -= uint64(b)
	}
	if b < 0 {
		hi -= uint64(a)
	}
	return int64(hi)
}

// opSOP30 selects MUL/MUH: 32-bit signed low/high product.
func (e *Executor) opSOP30(s *stepInfo) {
	rs32 := int32(e.Register(s.rs))
	rt32 := int32(e.Register(s.rt))
	switch s.sa {
	case mulOddMUL:
		e.SetRegister(s.rd, signExt32(uint32(rs32*rt32)))
	case mulOddMUH:
		e.SetRegister(s.rd, uint64((int64(rs32)*int64(rt32))>>32))
	default:
		e.fault()
	}
}

// opSOP31 selects MULU/MUHU: 32-bit unsigned low/high product.
func (e *Executor) opSOP31(s *stepInfo) {
	rs32 := uint32(e.Register(s.rs))
	rt32 := uint32(e.Register(s.rt))
	switch s.sa {
	case mulOddMUL:
		e.SetRegister(s.rd, signExt32(rs32*rt32))
	case mulOddMUH:
		e.SetRegister(s.rd, signExt32(uint32((uint64(rs32)*uint64(rt32))>>32)))
	default:
		e.fault()
	}
}

// opSOP34 selects DMUL/DMUH: 64-bit signed low/high product.
func (e *Executor) opSOP34(s *stepInfo) {
	rs64 := int64(e.Register(s.rs))
	rt64 := int64(e.Register(s.rt))
	switch s.sa {
	case mulOddMUL:
		e.SetRegister(s.rd, uint64(rs64*rt64))
	case mulOddMUH:
		e.SetRegister(s.rd, uint64(mulHi64(rs64, rt64)))
	default:
		e.fault()
	}
}

// opSOP35 selects DMULU/DMUHU: 64-bit unsigned low/high product.
func (e *Executor) opSOP35(s *stepInfo) {
	rs64 := e.Register(s.rs)
	rt64 := e.Register(s.rt)
	switch s.sa {
	case mulOddMUL:
		e.SetRegister(s.rd, rs64*rt64)
	case mulOddMUH:
		hi, _ := bits.Mul64(rs64, rt64)
		e.SetRegister(s.rd, hi)
	default:
		e.fault()
	}
}

// opSOP32 selects DIV/MOD: 32-bit signed quotient/remainder. Division
// by zero has no architectural meaning in this core; it is surfaced as
// an illegal instruction rather than aborting the process.
func (e *Executor) opSOP32(s *stepInfo) {
	rs32 := int32(e.Register(s.rs))
	rt32 := int32(e.Register(s.rt))
	if rt32 == 0 {
		e.fault()
		return
	}
	switch s.sa {
	case divOddDIV:
		e.SetRegister(s.rd, signExt32(uint32(rs32/rt32)))
	case divOddMOD:
		e.SetRegister(s.rd, signExt32(uint32(rs32%rt32)))
	default:
		e.fault()
	}
}

// opSOP33 selects DIVU/MODU: 32-bit unsigned quotient/remainder.
func (e *Executor) opSOP33(s *stepInfo) {
	rs32 := uint32(e.Register(s.rs))
	rt32 := uint32(e.Register(s.rt))
	if rt32 == 0 {
		e.fault()
		return
	}
	switch s.sa {
	case divOddDIV:
		e.SetRegister(s.rd, signExt32(rs32/rt32))
	case divOddMOD:
		e.SetRegister(s.rd, signExt32(rs32%rt32))
	default:
		e.fault()
	}
}

// opSOP36 selects DDIV/DMOD: 64-bit signed quotient/remainder.
func (e *Executor) opSOP36(s *stepInfo) {
	rs64 := int64(e.Register(s.rs))
	rt64 := int64(e.Register(s.rt))
	if rt64 == 0 {
		e.fault()
		return
	}
	switch s.sa {
	case divOddDIV:
		e.SetRegister(s.rd, uint64(rs64/rt64))
	case divOddMOD:
		e.SetRegister(s.rd, uint64(rs64%rt64))
	default:
		e.fault()
	}
}

// opSOP37 selects DDIVU/DMODU: 64-bit unsigned quotient/remainder.
func (e *Executor) opSOP37(s *stepInfo) {
	rs64 := e.Register(s.rs)
	rt64 := e.Register(s.rt)
	if rt64 == 0 {
		e.fault()
		return
	}
	switch s.sa {
	case divOddDIV:
		e.SetRegister(s.rd, rs64/rt64)
	case divOddMOD:
		e.SetRegister(s.rd, rs64%rt64)
	default:
		e.fault()
	}
}

// opJALR links PC+8 into rd (unless rd is r0) and jumps to rs. JALR
// never arms the delay slot, so the step epilogue's unconditional
// pc += 4 is the only adjustment applied after this handler runs: the
// architectural post-step PC is rs's value plus 4, not rs itself.
func (e *Executor) opJALR(s *stepInfo) {
	if s.rd != 0 {
		e.SetRegister(s.rd, e.pc+8)
	}
	e.pc = e.Register(s.rs)
}
