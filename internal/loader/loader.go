// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// ErrEmptyRom is returned for a ROM file without any content.
var ErrEmptyRom = errors.New("rom file is empty")

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

// Load reads a raw CHIP-8 program image from the file at path. The path can
// also name a pipe or device.
func (l *Loader) Load(path string) (*memory.Rom, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.Read(path, file)
}

// Read reads a raw CHIP-8 program image from r, name is used for messages.
// Input larger than the available program memory is truncated with a warning.
func (l *Loader) Read(name string, r io.Reader) (*memory.Rom, error) {
	rom, err := memory.ReadRom(r)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	if rom.Len() == 0 {
		return nil, fmt.Errorf("loading %s: %w", name, ErrEmptyRom)
	}

	if rom.Len() == memory.RomSize {
		var extra [1]byte
		n, err := r.Read(extra[:])
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
		if n > 0 {
			l.logger.Warn("ROM exceeds program memory, truncating",
				log.String("file", name),
				log.Int("capacity", memory.RomSize))
		}
	}

	l.logger.Debug("ROM loaded",
		log.String("file", name),
		log.Int("size", rom.Len()))
	return rom, nil
}
