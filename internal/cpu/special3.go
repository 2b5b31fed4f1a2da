/*
 * mips64r6 - SPECIAL3 bit-field operations: ALIGN/DALIGN, BITSWAP/DBITSWAP.
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

// dispatchSpecial3 routes SPECIAL3: when rs is nonzero, BSHFL/DBSHFL
// select ALIGN/DALIGN; when rs is zero they select BITSWAP/DBITSWAP.
func (e *Executor) dispatchSpecial3(s *stepInfo) {
	if s.rs != 0 {
		switch s.fn {
		case fnBSHFL:
			if (s.raw>>8)&0x7 == bshflALIGN {
				e.opALIGN(s)
				return
			}
		case fnDBSHFL:
			if (s.raw>>9)&0x3 == dbshflDALIGN {
				e.opDALIGN(s)
				return
			}
		}
		e.fault()
		return
	}

	switch s.fn {
	case fnBSHFL:
		if (s.raw>>6)&0x1f == bshflBITSWAP {
			e.opBITSWAP(s)
			return
		}
	case fnDBSHFL:
		if (s.raw>>6)&0x1f == dbshflDBITSWAP {
			e.opDBITSWAP(s)
			return
		}
	}
	e.fault()
}

// opALIGN concatenates rt:rs, rotated right by bp bytes (bp is a 2-bit
// field), and sign-extends the 32-bit result.
func (e *Executor) opALIGN(s *stepInfo) {
	bp := uint((s.raw >> 6) & 0x3)
	rt := e.Register(s.rt)
	rs := e.Register(s.rs)
	v := (rt << (8 * bp)) | (rs >> (64 - 8*bp))
	e.SetRegister(s.rd, signExt32(uint32(v)))
}

// opDALIGN is the 64-bit form of ALIGN with a 3-bit bp field; the
// result is the native 64-bit concatenation, not sign-extended.
func (e *Executor) opDALIGN(s *stepInfo) {
	bp := uint((s.raw >> 6) & 0x7)
	rt := e.Register(s.rt)
	rs := e.Register(s.rs)
	e.SetRegister(s.rd, (rt<<(8*bp))|(rs>>(64-8*bp)))
}

// reverseByte reverses the bit order within a single byte.
func reverseByte(b byte) byte {
	var out byte
	for j := uint(0); j < 8; j++ {
		if b&(1<<j) != 0 {
			out |= 0x80 >> j
		}
	}
	return out
}

// opBITSWAP reverses the bits of each of the low 4 bytes of rt
// independently, then sign-extends the 32-bit result.
func (e *Executor) opBITSWAP(s *stepInfo) {
	rt := e.Register(s.rt)
	var result uint64
	for i := uint(0); i < 4; i++ {
		b := byte(rt >> (8 * i))
		result |= uint64(reverseByte(b)) << (8 * i)
	}
	e.SetRegister(s.rd, signExt32(uint32(result)))
}

// opDBITSWAP reverses the bits of each of the 8 bytes of rt
// independently; the 64-bit result is not sign-extended.
func (e *Executor) opDBITSWAP(s *stepInfo) {
	rt := e.Register(s.rt)
	var result uint64
	for i := uint(0); i < 8; i++ {
		b := byte(rt >> (8 * i))
		result |= uint64(reverseByte(b)) << (8 * i)
	}
	e.SetRegister(s.rd, result)
}
