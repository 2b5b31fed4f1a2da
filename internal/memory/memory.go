/*
 * mips64r6 - Physical memory and per-core address translation.
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

// Package memory implements the flat physical byte store and the
// per-core base/limit translator that sits in front of it.
package memory

// mmu holds one core's base/limit translation window.
type mmu struct {
	base  uint64
	limit uint64
}

// Memory is a flat byte-addressable physical store shared by every core,
// fronted by one translation window per core.
type Memory struct {
	mem  []byte
	mmus []mmu
}

// New allocates a zeroed byte store of size bytes with one translation
// window per core, all initially {base: 0, limit: 0}.
func New(size uint64, cores uint64) *Memory {
	return &Memory{
		mem:  make([]byte, size),
		mmus: make([]mmu, cores),
	}
}

// Size returns the number of physical bytes backing the store.
func (m *Memory) Size() uint64 {
	return uint64(len(m.mem))
}

// SetMMU replaces core coreID's translation window.
func (m *Memory) SetMMU(coreID uint64, base, limit uint64) {
	m.mmus[coreID] = mmu{base: base, limit: limit}
}

// Translate maps a virtual address through core coreID's window. ok is
// false if vAddr exceeds the window's limit.
func (m *Memory) Translate(coreID uint64, vAddr uint64) (phys uint64, ok bool) {
	win := m.mmus[coreID]
	if vAddr > win.limit {
		return 0, false
	}
	return vAddr + win.base, true
}

// bounds reports whether [phys, phys+size) lies entirely within the
// physical store: phys+size-1 >= len(mem) faults. The original compares
// with a bare '>', which admits a one-past-the-end access; this is the
// corrected '>=' form.
func (m *Memory) bounds(phys, size uint64) bool {
	return phys+size <= uint64(len(m.mem))
}

// ReadByte reads one byte at phys.
func (m *Memory) ReadByte(phys uint64) (uint64, bool) {
	if !m.bounds(phys, 1) {
		return 0, false
	}
	return uint64(m.mem[phys]), true
}

// WriteByte writes one byte at phys.
func (m *Memory) WriteByte(phys uint64, value byte) bool {
	if !m.bounds(phys, 1) {
		return false
	}
	m.mem[phys] = value
	return true
}

// ReadHalfword reads 2 little-endian bytes at phys.
func (m *Memory) ReadHalfword(phys uint64) (uint64, bool) {
	if !m.bounds(phys, 2) {
		return 0, false
	}
	return uint64(m.mem[phys]) | uint64(m.mem[phys+1])<<8, true
}

// WriteHalfword writes 2 little-endian bytes at phys.
func (m *Memory) WriteHalfword(phys uint64, value uint16) bool {
	if !m.bounds(phys, 2) {
		return false
	}
	m.mem[phys] = byte(value)
	m.mem[phys+1] = byte(value >> 8)
	return true
}

// ReadWord reads 4 little-endian bytes at phys.
func (m *Memory) ReadWord(phys uint64) (uint64, bool) {
	if !m.bounds(phys, 4) {
		return 0, false
	}
	var v uint64
	for i := uint64(0); i < 4; i++ {
		v |= uint64(m.mem[phys+i]) << (8 * i)
	}
	return v, true
}

// WriteWord writes 4 little-endian bytes at phys.
func (m *Memory) WriteWord(phys uint64, value uint32) bool {
	if !m.bounds(phys, 4) {
		return false
	}
	for i := uint64(0); i < 4; i++ {
		m.mem[phys+i] = byte(value >> (8 * i))
	}
	return true
}

// ReadDword reads 8 little-endian bytes at phys.
func (m *Memory) ReadDword(phys uint64) (uint64, bool) {
	if !m.bounds(phys, 8) {
		return 0, false
	}
	var v uint64
	for i := uint64(0); i < 8; i++ {
		v |= uint64(m.mem[phys+i]) << (8 * i)
	}
	return v, true
}

// WriteDword writes 8 little-endian bytes at phys.
func (m *Memory) WriteDword(phys uint64, value uint64) bool {
	if !m.bounds(phys, 8) {
		return false
	}
	for i := uint64(0); i < 8; i++ {
		m.mem[phys+i] = byte(value >> (8 * i))
	}
	return true
}

// ReadInstruction reads 4 big-endian bytes at phys: mem[phys] becomes
// bits 31..24 of the returned word, down through mem[phys+3] as bits 7..0.
func (m *Memory) ReadInstruction(phys uint64) (uint32, bool) {
	if !m.bounds(phys, 4) {
		return 0, false
	}
	v := uint32(m.mem[phys])<<24 |
		uint32(m.mem[phys+1])<<16 |
		uint32(m.mem[phys+2])<<8 |
		uint32(m.mem[phys+3])
	return v, true
}

// LoadImage copies a raw big-endian instruction stream into physical
// memory starting at phys. It returns false if the image does not fit.
func (m *Memory) LoadImage(phys uint64, image []byte) bool {
	if !m.bounds(phys, uint64(len(image))) {
		return false
	}
	copy(m.mem[phys:], image)
	return true
}
