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

// Package computer wires one shared memory to N per-core executors and
// drives them one tick at a time.
package computer

import (
	"fmt"
	"log/slog"

	"github.com/rcornwell/mips64r6/internal/cpu"
	"github.com/rcornwell/mips64r6/internal/memory"
)

// Computer owns the physical memory and an ordered list of executors,
// one per core. Step() advances every executor exactly once, in
// ascending core-id order, within a single tick.
type Computer struct {
	mem       *memory.Memory
	executors []*cpu.Executor
	log       *slog.Logger
}

// New builds a computer with cores executors sharing a memBytes-sized
// physical store. All MMU windows start at {base: 0, limit: 0}, which
// maps only virtual address 0; callers set a wider window with SetMMU.
func New(cores, memBytes uint64, log *slog.Logger) *Computer {
	mem := memory.New(memBytes, cores)
	c := &Computer{
		mem:       mem,
		executors: make([]*cpu.Executor, cores),
		log:       log,
	}
	for i := uint64(0); i < cores; i++ {
		c.executors[i] = cpu.New(i, mem, log)
	}
	return c
}

// Step issues one instruction per core, in ascending core-id order.
// The harness does not inspect executor flags; a frozen core simply
// produces no effects for this tick.
func (c *Computer) Step() {
	for _, e := range c.executors {
		e.Step()
	}
}

// Cores returns the number of executors in the computer.
func (c *Computer) Cores() int {
	return len(c.executors)
}

// SetMMU replaces core coreID's translation window.
func (c *Computer) SetMMU(coreID, base, limit uint64) {
	c.mem.SetMMU(coreID, base, limit)
}

// SetPC sets core coreID's program counter, typically to an image's
// entry point before the first Step.
func (c *Computer) SetPC(coreID uint64, pc uint64) error {
	e, err := c.executor(coreID)
	if err != nil {
		return err
	}
	e.SetPC(pc)
	return nil
}

// PC returns core coreID's program counter.
func (c *Computer) PC(coreID uint64) (uint64, error) {
	e, err := c.executor(coreID)
	if err != nil {
		return 0, err
	}
	return e.PC(), nil
}

// Register reads general-purpose register r of core coreID.
func (c *Computer) Register(coreID uint64, r uint32) (uint64, error) {
	e, err := c.executor(coreID)
	if err != nil {
		return 0, err
	}
	return e.Register(r), nil
}

// SetRegister writes general-purpose register r of core coreID.
func (c *Computer) SetRegister(coreID uint64, r uint32, value uint64) error {
	e, err := c.executor(coreID)
	if err != nil {
		return err
	}
	e.SetRegister(r, value)
	return nil
}

// ExceptionPending reports whether core coreID is frozen on a fault.
func (c *Computer) ExceptionPending(coreID uint64) (bool, error) {
	e, err := c.executor(coreID)
	if err != nil {
		return false, err
	}
	return e.ExceptionPending(), nil
}

// SyscallPending reports whether core coreID is frozen on a voluntary
// stop.
func (c *Computer) SyscallPending(coreID uint64) (bool, error) {
	e, err := c.executor(coreID)
	if err != nil {
		return false, err
	}
	return e.SyscallPending(), nil
}

// ClearException resumes core coreID after a host-level fault handler
// has run.
func (c *Computer) ClearException(coreID uint64) error {
	e, err := c.executor(coreID)
	if err != nil {
		return err
	}
	e.ClearException()
	return nil
}

// ClearSyscall resumes core coreID after a host-level syscall handler
// has run.
func (c *Computer) ClearSyscall(coreID uint64) error {
	e, err := c.executor(coreID)
	if err != nil {
		return err
	}
	e.ClearSyscall()
	return nil
}

// PeekByte reads one physical byte, bypassing translation. Used by test
// harnesses and CLI inspection.
func (c *Computer) PeekByte(phys uint64) (uint64, bool) {
	return c.mem.ReadByte(phys)
}

// PokeByte writes one physical byte, bypassing translation.
func (c *Computer) PokeByte(phys uint64, value byte) bool {
	return c.mem.WriteByte(phys, value)
}

// PeekHalfword reads one physical little-endian halfword, bypassing
// translation.
func (c *Computer) PeekHalfword(phys uint64) (uint64, bool) {
	return c.mem.ReadHalfword(phys)
}

// PokeHalfword writes one physical little-endian halfword, bypassing
// translation.
func (c *Computer) PokeHalfword(phys uint64, value uint16) bool {
	return c.mem.WriteHalfword(phys, value)
}

// PeekWord reads one physical little-endian word, bypassing
// translation.
func (c *Computer) PeekWord(phys uint64) (uint64, bool) {
	return c.mem.ReadWord(phys)
}

// PokeWord writes one physical little-endian word, bypassing
// translation.
func (c *Computer) PokeWord(phys uint64, value uint32) bool {
	return c.mem.WriteWord(phys, value)
}

// PeekDword reads one physical little-endian dword, bypassing
// translation.
func (c *Computer) PeekDword(phys uint64) (uint64, bool) {
	return c.mem.ReadDword(phys)
}

// PokeDword writes one physical little-endian dword, bypassing
// translation.
func (c *Computer) PokeDword(phys uint64, value uint64) bool {
	return c.mem.WriteDword(phys, value)
}

// LoadImage copies a raw big-endian instruction stream into physical
// memory starting at phys.
func (c *Computer) LoadImage(phys uint64, image []byte) bool {
	return c.mem.LoadImage(phys, image)
}

// MemorySize returns the number of physical bytes backing the
// computer.
func (c *Computer) MemorySize() uint64 {
	return c.mem.Size()
}

func (c *Computer) executor(coreID uint64) (*cpu.Executor, error) {
	if coreID >= uint64(len(c.executors)) {
		return nil, fmt.Errorf("computer: core %d out of range (have %d)", coreID, len(c.executors))
	}
	return c.executors[coreID], nil
}
