/*
 * mips64r6 - Structured executor state dumps for debug builds.
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

// Package dump formats a core's architectural state for the CLI's
// --dump command and for test failure diagnostics.
package dump

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/rcornwell/mips64r6/util/hexutil"
)

// CoreState is a snapshot of one executor, read through the accessors
// internal/computer exposes rather than through any internal struct.
type CoreState struct {
	ID               uint64
	PC               uint64
	Registers        [32]uint64
	ExceptionPending bool
	SyscallPending   bool
}

var config = &spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Sdump renders a core snapshot as a multi-line, indented dump of every
// field, the same depth of detail spew gives any other Go value.
func Sdump(s CoreState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "core %d: pc=%s exception=%v syscall=%v\n",
		s.ID, hexutil.Dword(s.PC), s.ExceptionPending, s.SyscallPending)
	b.WriteString(config.Sdump(s.Registers))
	return b.String()
}

// Registers renders just the register file, one line per quadruple,
// for a more compact dump than Sdump.
func Registers(regs [32]uint64) string {
	var b strings.Builder
	for i := 0; i < 32; i += 4 {
		for j := i; j < i+4; j++ {
			fmt.Fprintf(&b, "r%-2d=%s ", j, hexutil.Dword(regs[j]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
