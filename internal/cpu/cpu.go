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

// Package cpu implements the MIPS64 Release 6 instruction decoder and
// executor: one register file, one program counter, and the dispatch
// table that maps a fetched 32-bit word onto its architectural effect.
package cpu

import (
	"log/slog"

	"github.com/rcornwell/mips64r6/internal/memory"
)

// stepInfo carries the fields decoded from one fetched instruction word
// across dispatch.
type stepInfo struct {
	raw    uint32
	opcode uint32
	rs     uint32
	rt     uint32
	rd     uint32
	sa     uint32
	fn     uint32
	imm16  int64
}

// decode splits a raw instruction word into its addressing fields. imm16
// is sign-extended as a 16-bit two's-complement value.
func decode(word uint32) stepInfo {
	return stepInfo{
		raw:    word,
		opcode: (word >> 26) & 0x3f,
		rs:     (word >> 21) & 0x1f,
		rt:     (word >> 16) & 0x1f,
		rd:     (word >> 11) & 0x1f,
		sa:     (word >> 6) & 0x1f,
		fn:     word & 0x3f,
		imm16:  int64(int16(word)),
	}
}

// Executor is one core's architectural state: register file, program
// counter, and the sticky exception/syscall/delay-slot flags described
// in the computer's data model.
type Executor struct {
	regs [32]uint64
	pc   uint64
	id   uint64
	mem  *memory.Memory

	exceptionPending bool
	syscallPending   bool

	nextBranching bool
	branching     bool
	branchTarget  uint64

	table [64]func(*Executor, *stepInfo)

	log *slog.Logger
}

// New returns an executor for core id, bound to mem, with all registers
// and PC zeroed.
func New(id uint64, mem *memory.Memory, log *slog.Logger) *Executor {
	e := &Executor{
		id:  id,
		mem: mem,
		log: log,
	}
	e.createTable()
	return e
}

// ID returns the core identifier this executor steps as.
func (e *Executor) ID() uint64 {
	return e.id
}

// PC returns the program counter.
func (e *Executor) PC() uint64 {
	return e.pc
}

// SetPC overrides the program counter; used to load an initial entry
// point before the first Step.
func (e *Executor) SetPC(pc uint64) {
	e.pc = pc
}

// Register reads general-purpose register r (0..31). Register 0 always
// reads as zero.
func (e *Executor) Register(r uint32) uint64 {
	if r == 0 {
		return 0
	}
	return e.regs[r&0x1f]
}

// SetRegister writes general-purpose register r. Writes to register 0
// are discarded.
func (e *Executor) SetRegister(r uint32, value uint64) {
	if r == 0 {
		return
	}
	e.regs[r&0x1f] = value
}

// ExceptionPending reports whether an architectural fault has frozen
// this executor.
func (e *Executor) ExceptionPending() bool {
	return e.exceptionPending
}

// SyscallPending reports whether a voluntary stop has frozen this
// executor.
func (e *Executor) SyscallPending() bool {
	return e.syscallPending
}

// ClearException resumes a frozen executor after a host-level handler
// has dealt with the fault. The core has no internal clear path.
func (e *Executor) ClearException() {
	e.exceptionPending = false
}

// ClearSyscall resumes a frozen executor after a host-level handler has
// serviced the syscall or break.
func (e *Executor) ClearSyscall() {
	e.syscallPending = false
}

// fault marks the executor excepted. All sub-steps route through this
// so that exactly one place decides whether the PC epilogue runs.
func (e *Executor) fault() {
	e.exceptionPending = true
}

// Step executes exactly one instruction, or does nothing if the
// executor is already frozen.
func (e *Executor) Step() {
	if e.exceptionPending || e.syscallPending {
		return
	}

	phys, ok := e.mem.Translate(e.id, e.pc)
	if !ok {
		e.fault()
		return
	}

	word, ok := e.mem.ReadInstruction(phys)
	if !ok {
		e.fault()
		return
	}

	e.execute(word)
}

// execute dispatches a fetched word and runs the PC epilogue. Per the
// data model, an executor that raises an exception mid-step leaves the
// PC exactly where it was on entry, pointing at the faulting
// instruction (this is also how a trapping overflow "rewinds"): once the
// host clears the flag, the next Step re-executes that instruction. The
// epilogue therefore only runs when the step completed without fault.
func (e *Executor) execute(word uint32) {
	s := decode(word)

	fn := e.table[s.opcode]
	if fn == nil {
		e.fault()
		return
	}
	fn(e, &s)

	if e.exceptionPending || e.syscallPending {
		return
	}

	if e.branching {
		e.branching = false
		e.pc = e.branchTarget
	} else {
		e.pc += 4
	}

	if e.nextBranching {
		e.nextBranching = false
		e.branching = true
	}
}

// createTable wires every primary opcode this core recognises to its
// handler. SPECIAL (opcode 0) and SPECIAL3 fan out further on the
// function field inside their own handlers.
func (e *Executor) createTable() {
	e.table[opSPECIAL] = (*Executor).dispatchSpecial
	e.table[opSPECIAL3] = (*Executor).dispatchSpecial3

	e.table[opADDIU] = (*Executor).opADDIU
	e.table[opDADDIU] = (*Executor).opDADDIU
	e.table[opANDI] = (*Executor).opANDI
	e.table[opORI] = (*Executor).opORI
	e.table[opXORI] = (*Executor).opXORI
	e.table[opLUI] = (*Executor).opLUI
	e.table[opSLTI] = (*Executor).opSLTI
	e.table[opSLTIU] = (*Executor).opSLTIU

	e.table[opLB] = (*Executor).opLoadStore
	e.table[opLBU] = (*Executor).opLoadStore
	e.table[opLH] = (*Executor).opLoadStore
	e.table[opLHU] = (*Executor).opLoadStore
	e.table[opLW] = (*Executor).opLoadStore
	e.table[opLWU] = (*Executor).opLoadStore
	e.table[opLD] = (*Executor).opLoadStore
	e.table[opSB] = (*Executor).opLoadStore
	e.table[opSH] = (*Executor).opLoadStore
	e.table[opSW] = (*Executor).opLoadStore
	e.table[opSD] = (*Executor).opLoadStore

	e.table[opPCREL] = (*Executor).opPCRel

	e.table[opBEQ] = (*Executor).opBEQ
	e.table[opJ] = (*Executor).opJ
	e.table[opJAL] = (*Executor).opJAL

	e.table[opBC] = (*Executor).opBC
	e.table[opBALC] = (*Executor).opBALC
	e.table[opPOP06] = (*Executor).opPOP06
	e.table[opPOP07] = (*Executor).opPOP07
	e.table[opPOP10] = (*Executor).opPOP10
	e.table[opPOP26] = (*Executor).opPOP26
	e.table[opPOP27] = (*Executor).opPOP27
	e.table[opPOP30] = (*Executor).opPOP30
	e.table[opPOP66] = (*Executor).opPOP66
	e.table[opPOP76] = (*Executor).opPOP76
}
