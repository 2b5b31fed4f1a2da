/*
 * mips64r6 - Main process.
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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"
	"log/slog"

	config "github.com/rcornwell/mips64r6/config/configparser"
	"github.com/rcornwell/mips64r6/internal/computer"
	"github.com/rcornwell/mips64r6/util/dump"
	logger "github.com/rcornwell/mips64r6/util/logger"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "mips64r6.toml", "Machine description file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optSteps := getopt.Uint64Long("steps", 's', 0, "Stop after N ticks (0 = run until every core is frozen)")
	optDump := getopt.BoolLong("dump", 'd', "Dump every core's state on exit")
	optDebug := getopt.BoolLong("debug", 0, "Mirror debug-level logs to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		var err error
		file, err = os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mips64sim: ", err)
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, optDebug))
	slog.SetDefault(Logger)

	Logger.Info("mips64sim started")

	cfg, err := config.Load(*optConfig)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	c := computer.New(cfg.Cores, cfg.MemoryBytes, Logger)
	for _, w := range cfg.MMU {
		c.SetMMU(w.Core, w.Base, w.Limit)
	}

	if cfg.Image != nil {
		image, err := os.ReadFile(cfg.Image.Path)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		if !c.LoadImage(cfg.Image.Addr, image) {
			Logger.Error("image does not fit in physical memory", "path", cfg.Image.Path)
			os.Exit(1)
		}
	}

	for core := uint64(0); core < uint64(c.Cores()); core++ {
		_ = c.SetPC(core, cfg.EntryPoint)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticks := uint64(0)
loop:
	for *optSteps == 0 || ticks < *optSteps {
		select {
		case <-sigChan:
			Logger.Info("got quit signal")
			break loop
		default:
		}

		if allFrozen(c) {
			Logger.Info("every core is frozen", "ticks", ticks)
			break loop
		}

		c.Step()
		ticks++
	}

	Logger.Info("ran", "ticks", ticks)

	if *optDump {
		dumpCores(c)
	}
}

// allFrozen reports whether every core is sitting on exceptionPending
// or syscallPending, meaning further ticks would be no-ops.
func allFrozen(c *computer.Computer) bool {
	for core := uint64(0); core < uint64(c.Cores()); core++ {
		exc, _ := c.ExceptionPending(core)
		sys, _ := c.SyscallPending(core)
		if !exc && !sys {
			return false
		}
	}
	return true
}

func dumpCores(c *computer.Computer) {
	for core := uint64(0); core < uint64(c.Cores()); core++ {
		pc, _ := c.PC(core)
		exc, _ := c.ExceptionPending(core)
		sys, _ := c.SyscallPending(core)
		var regs [32]uint64
		for r := uint32(0); r < 32; r++ {
			regs[r], _ = c.Register(core, r)
		}
		fmt.Print(dump.Sdump(dump.CoreState{
			ID:               core,
			PC:               pc,
			Registers:        regs,
			ExceptionPending: exc,
			SyscallPending:   sys,
		}))
	}
}
