// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"hash/crc32"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// Loader handles loading ROM files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads a CHIP-8 ROM file. ROM files are raw binary data without any
// header; whether the program fits into machine memory is decided by the
// machine when the ROM is loaded into it.
func (l *Loader) Load(path string) ([]byte, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	if len(rom) == 0 {
		return nil, fmt.Errorf("file %s contains no data", path)
	}

	crc32q := crc32.MakeTable(crc32.IEEE)
	l.logger.Info("Loaded ROM",
		log.String("file", path),
		log.Int("size", len(rom)),
		log.Hex("crc32", crc32.Checksum(rom, crc32q)))

	return rom, nil
}
