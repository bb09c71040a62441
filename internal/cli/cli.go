// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8goemu/internal/options"
)

// ParseFlags parses command line flags and returns program and emulator options
func ParseFlags() (options.Program, options.Emulator, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)
	readQuirkFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, options.Emulator{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Emulator{}, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Emulator{}, err
	}

	return opts, createEmulatorOptions(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8goemu [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file to run as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Scale < 1 {
		return fmt.Errorf("unsupported window scale %d, must be at least 1", opts.Scale)
	}
	if opts.InstructionsPerFrame < 0 {
		return fmt.Errorf("unsupported instruction count %d, must be 0 or positive", opts.InstructionsPerFrame)
	}
	if opts.TargetFPS < 1 {
		return fmt.Errorf("unsupported target frame rate %d, must be at least 1", opts.TargetFPS)
	}
	return nil
}

// createEmulatorOptions creates emulator options based on program options
func createEmulatorOptions(opts options.Program) options.Emulator {
	emuOptions := options.NewEmulator()
	emuOptions.InstructionsPerFrame = opts.InstructionsPerFrame
	emuOptions.TargetFPS = opts.TargetFPS
	emuOptions.Trace = opts.Trace
	return emuOptions
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction")
	flags.BoolVar(&opts.ShowFPS, "show-fps", false, "overlay the current frame rate")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "window scale factor for the 64x32 display")
	flags.IntVar(&opts.InstructionsPerFrame, "ipf", options.DefaultInstructionsPerFrame,
		"instructions to execute per frame, 0 to run on a time budget per frame")
	flags.IntVar(&opts.TargetFPS, "fps", options.DefaultTargetFPS, "target frame rate for the time budget mode")
}

// readQuirkFlags registers the interpreter behavior toggles. The defaults
// match the original COSMAC VIP interpreter.
func readQuirkFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.VFReset, "vf-reset", true, "clear VF after OR, AND and XOR")
	flags.BoolVar(&opts.MemoryIncrement, "memory-increment", true, "advance I after bulk register store and load")
	flags.BoolVar(&opts.DisplayWait, "display-wait", true, "limit draws to one sprite per frame")
	flags.BoolVar(&opts.DisplayWaitFaker, "display-wait-faker", false, "tick timers inline instead of waiting on draws")
	flags.BoolVar(&opts.Clipping, "clipping", true, "clip sprites at the display edges instead of wrapping")
	flags.BoolVar(&opts.Shifting, "shifting", false, "shift Vx in place instead of shifting Vy into Vx")
	flags.BoolVar(&opts.Jumping, "jumping", false, "jump with offset uses Vx instead of V0")
}
