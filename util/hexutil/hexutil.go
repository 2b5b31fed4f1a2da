/*
 * mips64r6 - Convert hex to strings.
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

// Package hexutil formats register and memory values for CLI dumps.
package hexutil

import "strings"

var hexMap = "0123456789abcdef"

// FormatDword writes a 64-bit value as 16 hex digits.
func FormatDword(str *strings.Builder, value uint64) {
	shift := 60
	for range 16 {
		str.WriteByte(hexMap[(value>>uint(shift))&0xf])
		shift -= 4
	}
}

// FormatWord writes a 32-bit value as 8 hex digits.
func FormatWord(str *strings.Builder, value uint32) {
	shift := 28
	for range 8 {
		str.WriteByte(hexMap[(value>>uint(shift))&0xf])
		shift -= 4
	}
}

// FormatHalf writes a 16-bit value as 4 hex digits.
func FormatHalf(str *strings.Builder, value uint16) {
	shift := 12
	for range 4 {
		str.WriteByte(hexMap[(value>>uint(shift))&0xf])
		shift -= 4
	}
}

// FormatByte writes an 8-bit value as 2 hex digits.
func FormatByte(str *strings.Builder, value byte) {
	str.WriteByte(hexMap[(value>>4)&0xf])
	str.WriteByte(hexMap[value&0xf])
}

// FormatBytes writes a byte slice as hex digits, optionally space separated.
func FormatBytes(str *strings.Builder, space bool, data []byte) {
	for _, by := range data {
		FormatByte(str, by)
		if space {
			str.WriteByte(' ')
		}
	}
}

// Dword renders a 64-bit value as a "0x"-prefixed hex string.
func Dword(value uint64) string {
	var str strings.Builder
	str.WriteString("0x")
	FormatDword(&str, value)
	return str.String()
}

// Word renders a 32-bit value as a "0x"-prefixed hex string.
func Word(value uint32) string {
	var str strings.Builder
	str.WriteString("0x")
	FormatWord(&str, value)
	return str.String()
}
