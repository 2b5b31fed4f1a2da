/*
 * mips64r6 - SPECIAL (opcode 0) sub-dispatch.
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

// dispatchSpecial routes an opcode-0 instruction. CLO/CLZ/DCLO/DCLZ are
// recognised on an 11-bit field (sa and fn together) ahead of the
// ordinary 6-bit function switch, since their encoding does not use sa
// as a true shift amount.
func (e *Executor) dispatchSpecial(s *stepInfo) {
	low11 := s.raw & 0x7ff

	if s.fn == fnBREAK {
		e.syscallPending = true
		return
	}

	if low11 == low11CLO && s.rt == 0 {
		e.opCLO(s)
		return
	}
	if low11 == low11CLZ && s.rt == 0 {
		e.opCLZ(s)
		return
	}
	if low11 == low11DCLO && s.rt == 0 {
		e.opDCLO(s)
		return
	}
	if low11 == low11DCLZ && s.rt == 0 {
		e.opDCLZ(s)
		return
	}

	switch s.fn {
	case fnADD:
		e.opADD(s)
	case fnADDU:
		e.opADDU(s)
	case fnAND:
		e.opAND(s)
	case fnDADD:
		e.opDADD(s)
	case fnDADDU:
		e.opDADDU(s)
	case fnDSUB:
		e.opDSUB(s)
	case fnDSUBU:
		e.opDSUBU(s)
	case fnNOR:
		e.opNOR(s)
	case fnOR:
		e.opOR(s)
	case fnSLT:
		e.opSLT(s)
	case fnSLTU:
		e.opSLTU(s)
	case fnSUB:
		e.opSUB(s)
	case fnSUBU:
		e.opSUBU(s)
	case fnXOR:
		e.opXOR(s)
	case fnSLL:
		e.opSLL(s)
	case fnSLLV:
		e.opSLLV(s)
	case fnSRA:
		e.opSRA(s)
	case fnSRAV:
		e.opSRAV(s)
	case fnSRL:
		e.opSRL(s)
	case fnSRLV:
		e.opSRLV(s)
	case fnDSLL:
		e.opDSLL(s)
	case fnDSLL32:
		e.opDSLL32(s)
	case fnDSLLV:
		e.opDSLLV(s)
	case fnDSRA:
		e.opDSRA(s)
	case fnDSRA32:
		e.opDSRA32(s)
	case fnDSRAV:
		e.opDSRAV(s)
	case fnDSRL:
		e.opDSRL(s)
	case fnDSRL32:
		e.opDSRL32(s)
	case fnDSRLV:
		e.opDSRLV(s)
	case fnSOP30:
		e.opSOP30(s)
	case fnSOP31:
		e.opSOP31(s)
	case fnSOP32:
		e.opSOP32(s)
	case fnSOP33:
		e.opSOP33(s)
	case fnSOP34:
		e.opSOP34(s)
	case fnSOP35:
		e.opSOP35(s)
	case fnSOP36:
		e.opSOP36(s)
	case fnSOP37:
		e.opSOP37(s)
	case fnJALR:
		e.opJALR(s)
	default:
		e.fault()
	}
}
