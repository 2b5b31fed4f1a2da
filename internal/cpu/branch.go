/*
 * mips64r6 - Branches and jumps: legacy delay-slot forms, Release-6
 * compact forms, and the unconditional jumps.
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

// signShift32 performs the instruction-field sign-extension idiom used
// throughout the compact-branch encodings: shift word left by left bits
// (as a 32-bit value, discarding overflow), then arithmetic-shift right
// by right bits.
func signShift32(word uint32, left, right uint) int64 {
	return int64(int32(word<<left) >> right)
}

// compactTarget is the PC a taken compact branch (BC, BALC and the
// POPxx families) redirects to: the
// trailing -4 cancels the step epilogue's unconditional PC+4, leaving
// the final PC at pc+imm.
func compactTarget(pc uint64, imm int64) uint64 {
	return uint64(int64(pc) + imm - 4)
}

func (e *Executor) opBEQ(s *stepInfo) {
	if e.branching {
		e.fault()
		return
	}
	if e.Register(s.rs) == e.Register(s.rt) {
		e.nextBranching = true
		e.branchTarget = uint64(int64(e.pc) + (s.imm16 << 2))
	}
}

func (e *Executor) opJ(s *stepInfo) {
	e.pc = ((e.pc >> 28) << 28) | uint64((s.raw<<6)>>4)
	e.pc -= 4
}

func (e *Executor) opJAL(s *stepInfo) {
	e.SetRegister(31, e.pc+4)
	e.pc = ((e.pc >> 28) << 28) | uint64((s.raw<<6)>>4)
	e.pc -= 4
}

func (e *Executor) opBC(s *stepInfo) {
	e.pc = compactTarget(e.pc, signShift32(s.raw, 6, 4))
}

func (e *Executor) opBALC(s *stepInfo) {
	e.SetRegister(31, e.pc+4)
	e.pc = compactTarget(e.pc, signShift32(s.raw, 6, 4))
}

// opPOP06 fans out to BGEUC / BGEZALC / BLEZALC by the shape of (rs, rt).
func (e *Executor) opPOP06(s *stepInfo) {
	switch {
	case s.rs != 0 && s.rt != 0 && s.rs != s.rt: // BGEUC
		if e.Register(s.rt) >= e.Register(s.rs) {
			e.pc = compactTarget(e.pc, s.imm16)
		}
	case s.rs != 0 && s.rs == s.rt: // BGEZALC
		if int64(e.Register(s.rt)) >= 0 {
			e.SetRegister(31, e.pc+4)
			e.pc = compactTarget(e.pc, s.imm16)
		}
	case s.rs == 0 && s.rt != 0: // BLEZALC
		if int64(e.Register(s.rt)) <= 0 {
			e.SetRegister(31, e.pc+4)
			e.pc = compactTarget(e.pc, s.imm16)
		}
	default:
		e.fault()
	}
}

// opPOP07 fans out to BLTUC / BLTZALC / BGTZALC.
func (e *Executor) opPOP07(s *stepInfo) {
	switch {
	case s.rs != 0 && s.rt != 0 && s.rs != s.rt: // BLTUC
		if e.Register(s.rt) < e.Register(s.rs) {
			e.pc = compactTarget(e.pc, s.imm16)
		}
	case s.rs != 0 && s.rs == s.rt: // BLTZALC
		if int64(e.Register(s.rt)) < 0 {
			e.SetRegister(31, e.pc+4)
			e.pc = compactTarget(e.pc, s.imm16)
		}
	case s.rs == 0 && s.rt != 0: // BGTZALC
		if int64(e.Register(s.rt)) > 0 {
			e.SetRegister(31, e.pc+4)
			e.pc = compactTarget(e.pc, s.imm16)
		}
	default:
		e.fault()
	}
}

// opPOP10 fans out to BEQC / BEQZALC / BOVC.
func (e *Executor) opPOP10(s *stepInfo) {
	switch {
	case s.rs != 0 && s.rt != 0 && s.rs < s.rt: // BEQC
		if e.Register(s.rt) == e.Register(s.rs) {
			e.pc = compactTarget(e.pc, s.imm16)
		}
	case s.rs == 0 && s.rs < s.rt: // BEQZALC
		if e.Register(s.rt) == 0 {
			e.SetRegister(31, e.pc+4)
			e.pc = compactTarget(e.pc, s.imm16)
		}
	case s.rs >= s.rt: // BOVC
		_, overflow := addOverflow32(int32(e.Register(s.rt)), int32(e.Register(s.rs)))
		if overflow {
			e.pc = compactTarget(e.pc, s.imm16)
		}
	default:
		e.fault()
	}
}

// opPOP30 fans out to BNEC / BNEZALC / BNVC.
func (e *Executor) opPOP30(s *stepInfo) {
	switch {
	case s.rs != 0 && s.rt != 0 && s.rs < s.rt: // BNEC
		if e.Register(s.rt) != e.Register(s.rs) {
			e.pc = compactTarget(e.pc, s.imm16)
		}
	case s.rs == 0 && s.rs < s.rt: // BNEZALC
		if e.Register(s.rt) != 0 {
			e.SetRegister(31, e.pc+4)
			e.pc = compactTarget(e.pc, s.imm16)
		}
	case s.rs >= s.rt: // BNVC
		_, overflow := addOverflow32(int32(e.Register(s.rt)), int32(e.Register(s.rs)))
		if !overflow {
			e.pc = compactTarget(e.pc, s.imm16)
		}
	default:
		e.fault()
	}
}

// opPOP26 fans out to BLEZC / BGEZC / BGEC.
func (e *Executor) opPOP26(s *stepInfo) {
	switch {
	case s.rs == 0 && s.rt != 0: // BLEZC
		if int64(e.Register(s.rt)) <= 0 {
			e.pc = compactTarget(e.pc, s.imm16)
		}
	case s.rs != 0 && s.rt != 0 && s.rs == s.rt: // BGEZC
		if int64(e.Register(s.rt)) >= 0 {
			e.pc = compactTarget(e.pc, s.imm16)
		}
	case s.rs != 0 && s.rt != 0 && s.rs != s.rt: // BGEC
		if int64(e.Register(s.rs)) >= int64(e.Register(s.rt)) {
			e.pc = compactTarget(e.pc, s.imm16)
		}
	default:
		e.fault()
	}
}

// opPOP27 fans out to BGTZC / BLTZC / BLTC.
func (e *Executor) opPOP27(s *stepInfo) {
	switch {
	case s.rs == 0 && s.rt != 0: // BGTZC
		if int64(e.Register(s.rt)) > 0 {
			e.pc = compactTarget(e.pc, s.imm16)
		}
	case s.rs != 0 && s.rt != 0 && s.rs == s.rt: // BLTZC
		if int64(e.Register(s.rt)) < 0 {
			e.pc = compactTarget(e.pc, s.imm16)
		}
	case s.rs != 0 && s.rt != 0 && s.rs != s.rt: // BLTC
		if int64(e.Register(s.rs)) < int64(e.Register(s.rt)) {
			e.pc = compactTarget(e.pc, s.imm16)
		}
	default:
		e.fault()
	}
}

// opPOP66 selects JIC by the rs-field selector, else BEQZC.
func (e *Executor) opPOP66(s *stepInfo) {
	if s.rs == jicSelector {
		e.pc = uint64(int64(e.Register(s.rt)) + s.imm16 - 4)
		return
	}
	if e.Register(s.rs) == 0 {
		e.pc = uint64(int64(e.pc) + signShift32(s.raw, 11, 9) - 4)
	}
}

// opPOP76 selects JIALC by the rs-field selector, else BNEZC.
func (e *Executor) opPOP76(s *stepInfo) {
	if s.rs == jicSelector {
		e.SetRegister(31, e.pc+4)
		e.pc = uint64(int64(e.Register(s.rt)) + s.imm16 - 4)
		return
	}
	if e.Register(s.rs) != 0 {
		e.pc = uint64(int64(e.pc) + signShift32(s.raw, 11, 9) - 4)
	}
}
