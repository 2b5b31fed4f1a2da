/*
 * mips64r6 - Load/store and PC-relative load operations.
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

// opLoadStore handles every naturally-aligned load/store opcode. The
// effective address is rs + sext(imm16); a translate or bounds fault
// leaves every other piece of state untouched.
func (e *Executor) opLoadStore(s *stepInfo) {
	vAddr := uint64(int64(e.Register(s.rs)) + s.imm16)
	phys, ok := e.mem.Translate(e.id, vAddr)
	if !ok {
		e.fault()
		return
	}

	switch s.opcode {
	case opLB:
		v, ok := e.mem.ReadByte(phys)
		if !ok {
			e.fault()
			return
		}
		e.SetRegister(s.rt, uint64(int64(int8(v))))
	case opLBU:
		v, ok := e.mem.ReadByte(phys)
		if !ok {
			e.fault()
			return
		}
		e.SetRegister(s.rt, v)
	case opLH:
		v, ok := e.mem.ReadHalfword(phys)
		if !ok {
			e.fault()
			return
		}
		e.SetRegister(s.rt, uint64(int64(int16(v))))
	case opLHU:
		v, ok := e.mem.ReadHalfword(phys)
		if !ok {
			e.fault()
			return
		}
		e.SetRegister(s.rt, v)
	case opLW:
		v, ok := e.mem.ReadWord(phys)
		if !ok {
			e.fault()
			return
		}
		e.SetRegister(s.rt, signExt32(uint32(v)))
	case opLWU:
		v, ok := e.mem.ReadWord(phys)
		if !ok {
			e.fault()
			return
		}
		e.SetRegister(s.rt, v)
	case opLD:
		v, ok := e.mem.ReadDword(phys)
		if !ok {
			e.fault()
			return
		}
		e.SetRegister(s.rt, v)
	case opSB:
		if !e.mem.WriteByte(phys, byte(e.Register(s.rt))) {
			e.fault()
		}
	case opSH:
		if !e.mem.WriteHalfword(phys, uint16(e.Register(s.rt))) {
			e.fault()
		}
	case opSW:
		if !e.mem.WriteWord(phys, uint32(e.Register(s.rt))) {
			e.fault()
		}
	case opSD:
		if !e.mem.WriteDword(phys, e.Register(s.rt)) {
			e.fault()
		}
	default:
		e.fault()
	}
}

// opPCRel handles the PCREL opcode family: LWPC, LWUPC and LDPC. All
// three write their result to rs, not rt.
func (e *Executor) opPCRel(s *stepInfo) {
	switch (s.raw >> 19) & 0x3 {
	case pcrelLWPC:
		e.pcRelLoad(s, 19, 2, false)
		return
	case pcrelLWUPC:
		e.pcRelLoad(s, 19, 2, true)
		return
	}

	if (s.raw>>18)&0x7 == pcrelLDPC {
		e.pcRelLoadDword(s)
		return
	}

	e.fault()
}

// pcRelLoad implements LWPC/LWUPC: a 32-bit load at PC + sext(imm<<shift).
func (e *Executor) pcRelLoad(s *stepInfo, immBits, shift uint, unsigned bool) {
	offset := signExtendShifted(s.raw, immBits, shift)
	vAddr := uint64(int64(e.pc) + offset)

	phys, ok := e.mem.Translate(e.id, vAddr)
	if !ok {
		e.fault()
		return
	}
	v, ok := e.mem.ReadWord(phys)
	if !ok {
		e.fault()
		return
	}
	if unsigned {
		e.SetRegister(s.rs, v)
	} else {
		e.SetRegister(s.rs, signExt32(uint32(v)))
	}
}

// pcRelLoadDword implements LDPC: a 64-bit load at PC + sext(imm18<<3).
func (e *Executor) pcRelLoadDword(s *stepInfo) {
	offset := signExtendShifted(s.raw, 18, 3)
	vAddr := uint64(int64(e.pc) + offset)

	phys, ok := e.mem.Translate(e.id, vAddr)
	if !ok {
		e.fault()
		return
	}
	v, ok := e.mem.ReadDword(phys)
	if !ok {
		e.fault()
		return
	}
	e.SetRegister(s.rs, v)
}

// signExtendShifted sign-extends the low immBits bits of word (as a
// 2's-complement value) and multiplies by 2^shift.
func signExtendShifted(word uint32, immBits, shift uint) int64 {
	v := int64(word) << (64 - immBits)
	v >>= 64 - immBits
	return v << shift
}
