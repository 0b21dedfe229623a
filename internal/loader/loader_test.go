package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLoad(t *testing.T) {
	t.Run("load rom file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x00, 0xE0, 0x12, 0x00})

		rom, err := New(log.NewTestLogger(t)).Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, 4, rom.Len())

		data := rom.Bytes()
		assert.Equal(t, []byte{0x00, 0xE0, 0x12, 0x00}, data[:4])
		assert.Equal(t, byte(0), data[4])
	})

	t.Run("truncate oversized rom", func(t *testing.T) {
		data := make([]byte, memory.RomSize+16)
		data[memory.RomSize-1] = 0xAB
		tmpFile := createTempFile(t, data)

		rom, err := New(log.NewTestLogger(t)).Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, memory.RomSize, rom.Len())
		assert.Equal(t, byte(0xAB), rom.Bytes()[memory.RomSize-1])
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		_, err := New(log.NewTestLogger(t)).Load(tmpFile)
		assert.True(t, errors.Is(err, ErrEmptyRom))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New(log.NewTestLogger(t)).Load("/nonexistent/file.ch8")
		assert.ErrorContains(t, err, "opening file /nonexistent/file.ch8")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestRead(t *testing.T) {
	t.Run("reader without size", func(t *testing.T) {
		// a pipe reports no size and delivers data in small chunks
		r := iotest.OneByteReader(bytes.NewReader([]byte{0x60, 0x01, 0x12, 0x02}))

		rom, err := New(log.NewTestLogger(t)).Read("pipe", r)
		assert.NoError(t, err)
		assert.Equal(t, 4, rom.Len())
		assert.Equal(t, []byte{0x60, 0x01, 0x12, 0x02}, rom.Bytes()[:4])
	})

	t.Run("oversized reader", func(t *testing.T) {
		data := bytes.Repeat([]byte{0xAA}, memory.RomSize+1)

		rom, err := New(log.NewTestLogger(t)).Read("pipe", iotest.OneByteReader(bytes.NewReader(data)))
		assert.NoError(t, err)
		assert.Equal(t, memory.RomSize, rom.Len())
	})

	t.Run("exactly full reader", func(t *testing.T) {
		data := bytes.Repeat([]byte{0xAA}, memory.RomSize)

		rom, err := New(log.NewTestLogger(t)).Read("pipe", bytes.NewReader(data))
		assert.NoError(t, err)
		assert.Equal(t, memory.RomSize, rom.Len())
	})

	t.Run("empty reader", func(t *testing.T) {
		_, err := New(log.NewTestLogger(t)).Read("pipe", bytes.NewReader(nil))
		assert.True(t, errors.Is(err, ErrEmptyRom))
	})

	t.Run("read error", func(t *testing.T) {
		_, err := New(log.NewTestLogger(t)).Read("pipe", iotest.ErrReader(errors.New("broken pipe")))
		assert.ErrorContains(t, err, "broken pipe")
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
