package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFloat32 writes the first channel as host-endian float32 values with
// no header or delimiters.
func (w *Wave) WriteFloat32(dst io.Writer) error {
	if !w.Decoded() {
		return ErrNotDecoded
	}

	if err := binary.Write(dst, binary.NativeEndian, w.samples); err != nil {
		return fmt.Errorf("%w: failed to write samples: %w", ErrIO, err)
	}

	return nil
}

// ExportFloat32 writes the first channel of wave to path, creating missing
// directories and truncating any existing file. The output is exactly
// 4 * FrameCount bytes long.
func ExportFloat32(wave *Wave, path string) (err error) {
	if !wave.Decoded() {
		return ErrNotDecoded
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: failed to create output directory: %w", ErrIO, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", ErrIO, path, err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: failed to close %s: %w", ErrIO, path, cerr)
		}
	}()

	return wave.WriteFloat32(file)
}
