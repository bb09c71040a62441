// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/chip8goemu/internal/cli"
	"github.com/retroenv/chip8goemu/internal/config"
	"github.com/retroenv/chip8goemu/internal/emulator"
	"github.com/retroenv/chip8goemu/internal/gui"
	"github.com/retroenv/chip8goemu/internal/loader"
	"github.com/retroenv/chip8goemu/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, emulatorOptions, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet, opts.Trace)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet, opts.Trace)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts, emulatorOptions); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program,
	emulatorOptions options.Emulator) error {

	rom, err := loader.New(logger).Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	vm := emulator.NewVM(opts)
	if err := vm.LoadROM(rom); err != nil {
		return fmt.Errorf("initializing machine: %w", err)
	}

	emu := emulator.New(logger, vm, emulatorOptions)

	windowOptions := options.Window{
		Title:   "chip8goemu - " + filepath.Base(opts.Input),
		Scale:   opts.Scale,
		ShowFPS: opts.ShowFPS,
	}
	return gui.Run(ctx, logger, emu, windowOptions)
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8goemu", log.String("version", buildinfo.Version(version, commit, date)))
}
