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

package dump

import (
	"strings"
	"testing"
)

func TestSdumpIncludesCoreHeader(t *testing.T) {
	s := CoreState{ID: 2, PC: 0x1000, ExceptionPending: true}
	s.Registers[4] = 0xDEADBEEF

	out := Sdump(s)

	if !strings.Contains(out, "core 2") {
		t.Errorf("Sdump missing core id: %q", out)
	}
	if !strings.Contains(out, "exception=true") {
		t.Errorf("Sdump missing exception flag: %q", out)
	}
}

func TestRegistersRendersAllThirtyTwo(t *testing.T) {
	var regs [32]uint64
	regs[31] = 0x42
	out := Registers(regs)
	if !strings.Contains(out, "r31=0x0000000000000042") {
		t.Errorf("Registers missing r31: %q", out)
	}
	if strings.Count(out, "\n") != 8 {
		t.Errorf("Registers produced %d lines, want 8", strings.Count(out, "\n"))
	}
}
