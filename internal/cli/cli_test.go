package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8goemu/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags_EmulatorOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Emulator
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.Emulator{InstructionsPerFrame: 100, TargetFPS: 60},
		},
		{
			name: "ipf flag",
			args: []string{"prog", "-ipf", "20", "test.ch8"},
			want: options.Emulator{InstructionsPerFrame: 20, TargetFPS: 60},
		},
		{
			name: "time budget mode",
			args: []string{"prog", "-ipf", "0", "-fps", "30", "test.ch8"},
			want: options.Emulator{InstructionsPerFrame: 0, TargetFPS: 30},
		},
		{
			name: "trace flag",
			args: []string{"prog", "-trace", "test.ch8"},
			want: options.Emulator{InstructionsPerFrame: 100, TargetFPS: 60, Trace: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_QuirkDefaults(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "test.ch8"}

	opts, _, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "test.ch8", opts.Input)

	assert.True(t, opts.VFReset)
	assert.True(t, opts.MemoryIncrement)
	assert.True(t, opts.DisplayWait)
	assert.True(t, opts.Clipping)
	assert.False(t, opts.DisplayWaitFaker)
	assert.False(t, opts.Shifting)
	assert.False(t, opts.Jumping)
}

func TestParseFlags_QuirkToggles(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "-vf-reset=false", "-shifting", "test.ch8"}

	opts, _, err := ParseFlags()
	assert.NoError(t, err)
	assert.False(t, opts.VFReset)
	assert.True(t, opts.Shifting)
}

func TestParseFlags_MissingInput(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog"}

	_, _, err := ParseFlags()
	assert.Error(t, err)

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestValidateArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{"no flags after file", []string{"test.ch8"}, false},
		{"flag after file", []string{"test.ch8", "-trace"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateArgs(tt.args)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		expectError bool
	}{
		{
			name: "valid options",
			opts: options.Program{
				Timing: options.Timing{Scale: 10, InstructionsPerFrame: 100, TargetFPS: 60},
			},
			expectError: false,
		},
		{
			name: "invalid scale",
			opts: options.Program{
				Timing: options.Timing{Scale: 0, InstructionsPerFrame: 100, TargetFPS: 60},
			},
			expectError: true,
		},
		{
			name: "negative instruction count",
			opts: options.Program{
				Timing: options.Timing{Scale: 10, InstructionsPerFrame: -1, TargetFPS: 60},
			},
			expectError: true,
		},
		{
			name: "invalid frame rate",
			opts: options.Program{
				Timing: options.Timing{Scale: 10, InstructionsPerFrame: 100, TargetFPS: 0},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := normalizeOptions(&tt.opts)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
