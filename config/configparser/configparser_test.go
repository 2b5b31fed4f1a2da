/*
 * mips64r6 - Configuration file parser test set.
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

package configparser

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
cores = 2
memory_bytes = 65536
entry_point = 4096
debug = ["step", "fault"]

[[mmu]]
core = 0
base = 0
limit = 32767

[[mmu]]
core = 1
base = 32768
limit = 65535

[image]
path = "boot.img"
addr = 4096
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cores != 2 {
		t.Errorf("Cores = %d, want 2", cfg.Cores)
	}
	if cfg.MemoryBytes != 65536 {
		t.Errorf("MemoryBytes = %d, want 65536", cfg.MemoryBytes)
	}
	if len(cfg.MMU) != 2 {
		t.Fatalf("len(MMU) = %d, want 2", len(cfg.MMU))
	}
	if cfg.Image == nil || cfg.Image.Path != "boot.img" {
		t.Errorf("Image = %+v, want path boot.img", cfg.Image)
	}
	if mask := cfg.DebugMask(); mask != DebugStep|DebugFault {
		t.Errorf("DebugMask = %#x, want %#x", mask, DebugStep|DebugFault)
	}
}

func TestLoadRejectsZeroCores(t *testing.T) {
	path := writeConfig(t, `
cores = 0
memory_bytes = 4096
`)
	if _, err := Load(path); err != ErrNoCores {
		t.Errorf("err = %v, want ErrNoCores", err)
	}
}

func TestLoadRejectsMMUCoreOutOfRange(t *testing.T) {
	path := writeConfig(t, `
cores = 1
memory_bytes = 4096

[[mmu]]
core = 5
base = 0
limit = 4095
`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected an error for an out-of-range mmu core")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
