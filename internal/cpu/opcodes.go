/*
 * mips64r6 - Instruction field layout and opcode/function constants.
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

// Primary opcodes (instruction bits 31..26).
const (
	opSPECIAL = 0x00
	opJ       = 0x02
	opJAL     = 0x03
	opBEQ     = 0x04
	opADDIU   = 0x09
	opSLTI    = 0x0a
	opSLTIU   = 0x0b
	opANDI    = 0x0c
	opORI     = 0x0d
	opXORI    = 0x0e
	opLUI     = 0x0f
	opPOP06   = 0x06
	opPOP07   = 0x07
	opPOP10   = 0x08
	opPOP26   = 0x16
	opPOP27   = 0x17
	opPOP30   = 0x18
	opDADDIU  = 0x19
	opPOP66   = 0x36
	opPOP76   = 0x3e
	opBC      = 0x32
	opBALC    = 0x3a
	opSPECIAL3 = 0x1f
	opLB      = 0x20
	opLH      = 0x21
	opLW      = 0x23
	opLBU     = 0x24
	opLHU     = 0x25
	opLWU     = 0x27
	opSB      = 0x28
	opSH      = 0x29
	opSW      = 0x2b
	opPCREL   = 0x3b
	opLD      = 0x37
	opSD      = 0x3f
)

// SPECIAL (opcode 0) function codes (instruction bits 5..0).
const (
	fnSLL     = 0x00
	fnSRL     = 0x02
	fnSRA     = 0x03
	fnSLLV    = 0x04
	fnSRLV    = 0x06
	fnSRAV    = 0x07
	fnJALR    = 0x09
	fnBREAK   = 0x0d
	fnDSLLV   = 0x14
	fnDSRLV   = 0x16
	fnDSRAV   = 0x17
	fnSOP30   = 0x18
	fnSOP31   = 0x19
	fnSOP32   = 0x1a
	fnSOP33   = 0x1b
	fnSOP34   = 0x1c
	fnSOP35   = 0x1d
	fnSOP36   = 0x1e
	fnSOP37   = 0x1f
	fnADD     = 0x20
	fnADDU    = 0x21
	fnSUB     = 0x22
	fnSUBU    = 0x23
	fnAND     = 0x24
	fnOR      = 0x25
	fnXOR     = 0x26
	fnNOR     = 0x27
	fnSLT     = 0x2a
	fnSLTU    = 0x2b
	fnDADD    = 0x2c
	fnDADDU   = 0x2d
	fnDSUB    = 0x2e
	fnDSUBU   = 0x2f
	fnDSLL    = 0x38
	fnDSRL    = 0x3a
	fnDSRA    = 0x3b
	fnDSLL32  = 0x3c
	fnDSRL32  = 0x3e
	fnDSRA32  = 0x3f
)

// CLO/CLZ/DCLO/DCLZ are selected by bits 10..0 (fn plus the sa field
// folded in), matching the 11-bit encoding the architecture defines for
// these two-operand SPECIAL forms.
const (
	low11CLZ  = 0x50
	low11CLO  = 0x51
	low11DCLZ = 0x52
	low11DCLO = 0x53
)

// SOP3x sub-selectors (instruction bits 10..6).
const (
	mulOddMUL  = 0x02
	mulOddMUH  = 0x03
	divOddDIV  = 0x02
	divOddMOD  = 0x03
)

// SPECIAL3 (opcode 0x1f) function codes and BSHFL sub-selectors.
const (
	fnBSHFL      = 0x20
	fnDBSHFL     = 0x24
	bshflALIGN   = 0x2
	bshflBITSWAP = 0x00
	dbshflDALIGN = 0x1
	dbshflDBITSWAP = 0x00
)

// PCREL (opcode 0x3b) sub-selectors: LWPC/LWUPC on bits 20..19, LDPC on
// bits 20..18.
const (
	pcrelLWPC  = 0x1
	pcrelLWUPC = 0x2
	pcrelLDPC  = 0x6
)

// POP66/POP76 rs-field selector distinguishing JIC/JIALC from
// BEQZC/BNEZC.
const (
	jicSelector = 0
)
