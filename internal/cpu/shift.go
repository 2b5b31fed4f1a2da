/*
 * mips64r6 - Shift and rotate operations.
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

// Left shifts (SLL family) and arithmetic right shifts (SRA family) have
// no rotate form; a nonzero selector field is an unrecognised encoding.
// Logical right shifts (SRL family) do: the selector field chooses
// between the plain shift and its rotate counterpart (the 32-bit forms
// rotate only when the whole field equals 1, the 64-bit forms whenever
// its low bit is set), so every encoding is defined.

func (e *Executor) opSLL(s *stepInfo) {
	if s.rs != 0 {
		e.fault()
		return
	}
	rt := uint32(e.Register(s.rt))
	e.SetRegister(s.rd, signExt32(rt<<s.sa))
}

func (e *Executor) opSLLV(s *stepInfo) {
	if s.sa != 0 {
		e.fault()
		return
	}
	sh := uint32(e.Register(s.rs)) & 0x1f
	rt := uint32(e.Register(s.rt))
	e.SetRegister(s.rd, signExt32(rt<<sh))
}

func (e *Executor) opSRA(s *stepInfo) {
	if s.rs != 0 {
		e.fault()
		return
	}
	rt := int32(e.Register(s.rt))
	e.SetRegister(s.rd, signExt32(uint32(rt>>s.sa)))
}

func (e *Executor) opSRAV(s *stepInfo) {
	if s.sa != 0 {
		e.fault()
		return
	}
	sh := uint32(e.Register(s.rs)) & 0x1f
	rt := int32(e.Register(s.rt))
	e.SetRegister(s.rd, signExt32(uint32(rt>>sh)))
}

func (e *Executor) opSRL(s *stepInfo) {
	rt := uint32(e.Register(s.rt))
	if s.rs == 1 {
		// ROTR
		e.SetRegister(s.rd, signExt32((rt<<(32-s.sa))|(rt>>s.sa)))
		return
	}
	e.SetRegister(s.rd, signExt32(rt>>s.sa))
}

func (e *Executor) opSRLV(s *stepInfo) {
	sh := uint32(e.Register(s.rs)) & 0x1f
	rt := uint32(e.Register(s.rt))
	if s.sa == 1 {
		// ROTRV
		e.SetRegister(s.rd, signExt32((rt<<(32-sh))|(rt>>sh)))
		return
	}
	e.SetRegister(s.rd, signExt32(rt>>sh))
}

func (e *Executor) opDSLL(s *stepInfo) {
	if s.rs != 0 {
		e.fault()
		return
	}
	e.SetRegister(s.rd, e.Register(s.rt)<<s.sa)
}

func (e *Executor) opDSLL32(s *stepInfo) {
	if s.rs != 0 {
		e.fault()
		return
	}
	e.SetRegister(s.rd, e.Register(s.rt)<<(s.sa+32))
}

func (e *Executor) opDSLLV(s *stepInfo) {
	if s.sa != 0 {
		e.fault()
		return
	}
	sh := e.Register(s.rs) & 0x3f
	e.SetRegister(s.rd, e.Register(s.rt)<<sh)
}

func (e *Executor) opDSRA(s *stepInfo) {
	if s.rs != 0 {
		e.fault()
		return
	}
	rt := int64(e.Register(s.rt))
	e.SetRegister(s.rd, uint64(rt>>s.sa))
}

func (e *Executor) opDSRA32(s *stepInfo) {
	if s.rs != 0 {
		e.fault()
		return
	}
	rt := int64(e.Register(s.rt))
	e.SetRegister(s.rd, uint64(rt>>(s.sa+32)))
}

func (e *Executor) opDSRAV(s *stepInfo) {
	if s.sa != 0 {
		e.fault()
		return
	}
	sh := e.Register(s.rs) & 0x3f
	rt := int64(e.Register(s.rt))
	e.SetRegister(s.rd, uint64(rt>>sh))
}

func (e *Executor) opDSRL(s *stepInfo) {
	rt := e.Register(s.rt)
	if s.rs&0x1 != 0 {
		// DROTR
		e.SetRegister(s.rd, (rt<<(64-s.sa))|(rt>>s.sa))
		return
	}
	e.SetRegister(s.rd, rt>>s.sa)
}

func (e *Executor) opDSRL32(s *stepInfo) {
	rt := e.Register(s.rt)
	sa := s.sa + 32
	if s.rs&0x1 != 0 {
		// DROTR32
		e.SetRegister(s.rd, (rt<<(64-sa))|(rt>>sa))
		return
	}
	e.SetRegister(s.rd, rt>>sa)
}

func (e *Executor) opDSRLV(s *stepInfo) {
	sh := e.Register(s.rs) & 0x3f
	rt := e.Register(s.rt)
	if s.sa&0x1 != 0 {
		// DROTRV
		e.SetRegister(s.rd, (rt<<(64-sh))|(rt>>sh))
		return
	}
	e.SetRegister(s.rd, rt>>sh)
}
