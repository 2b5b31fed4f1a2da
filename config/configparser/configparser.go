/*
 * mips64r6 - Configuration file parser
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

// Package configparser loads the TOML file describing a machine: how
// many cores, how much memory, each core's MMU window, and what image
// to load before the first Step.
package configparser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNoCores is returned when a config requests zero cores.
var ErrNoCores = errors.New("configparser: cores must be at least 1")

// ErrNoMemory is returned when a config requests zero bytes of memory.
var ErrNoMemory = errors.New("configparser: memory_bytes must be at least 1")

// ErrMMUCoreRange is returned when an [[mmu]] entry names a core
// outside [0, cores).
var ErrMMUCoreRange = errors.New("configparser: mmu entry names an out-of-range core")

// MMUWindow is one core's translation window, as read from an [[mmu]]
// table entry.
type MMUWindow struct {
	Core  uint64 `toml:"core"`
	Base  uint64 `toml:"base"`
	Limit uint64 `toml:"limit"`
}

// Image places a raw big-endian instruction stream at a physical
// offset before the first Step.
type Image struct {
	Path string `toml:"path"`
	Addr uint64 `toml:"addr"`
}

// SystemConfig is the decoded form of a machine description file.
type SystemConfig struct {
	Cores       uint64      `toml:"cores"`
	MemoryBytes uint64      `toml:"memory_bytes"`
	EntryPoint  uint64      `toml:"entry_point"`
	MMU         []MMUWindow `toml:"mmu"`
	Image       *Image      `toml:"image"`
	Debug       []string    `toml:"debug"`
}

// Load reads and validates a system description from path.
func Load(path string) (*SystemConfig, error) {
	cfg := &SystemConfig{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("configparser: %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *SystemConfig) validate() error {
	if cfg.Cores == 0 {
		return ErrNoCores
	}
	if cfg.MemoryBytes == 0 {
		return ErrNoMemory
	}
	for _, w := range cfg.MMU {
		if w.Core >= cfg.Cores {
			return fmt.Errorf("%w: core %d (have %d)", ErrMMUCoreRange, w.Core, cfg.Cores)
		}
	}
	return nil
}

// DebugMask folds the config's debug string list into a bitmask, one bit
// per recognised category; util/logger does not read it. Unrecognised
// names are ignored rather than rejected, so a config written against
// a newer build still loads.
func (cfg *SystemConfig) DebugMask() uint64 {
	var mask uint64
	for _, name := range cfg.Debug {
		switch strings.ToLower(name) {
		case "step":
			mask |= DebugStep
		case "fault":
			mask |= DebugFault
		case "mmu":
			mask |= DebugMMU
		}
	}
	return mask
}

// Debug category bits, combined into the mask DebugMask returns.
const (
	DebugStep uint64 = 1 << iota
	DebugFault
	DebugMMU
)
