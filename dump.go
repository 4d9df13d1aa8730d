package wav

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// bytesPerDumpLine is the number of source bytes rendered on each line.
const bytesPerDumpLine = 10

const hexDigits = "0123456789ABCDEF"

// ByteFormatter appends the rendering of b to dst and returns the extended
// slice.
type ByteFormatter func(dst []byte, b byte) []byte

// ASCIIByte renders printable ASCII as is and anything else as a dot.
func ASCIIByte(dst []byte, b byte) []byte {
	if b < 0x20 || b > 0x7e {
		b = '.'
	}

	return append(dst, b)
}

// HexByte renders b as two upper case hex digits followed by a space.
func HexByte(dst []byte, b byte) []byte {
	return append(dst, hexDigits[b>>4], hexDigits[b&0x0f], ' ')
}

// DumpASCII writes the raw bytes of the file at path as ASCII.
func DumpASCII(path string, w io.Writer) error {
	return Dump(path, w, ASCIIByte)
}

// DumpHex writes the raw bytes of the file at path as hex.
func DumpHex(path string, w io.Writer) error {
	return Dump(path, w, HexByte)
}

// Dump opens the file at path on its own and renders every byte with f.
func Dump(path string, w io.Writer, f ByteFormatter) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: failed to open %s: %w", ErrIO, path, err)
	}
	defer file.Close()

	return DumpReader(file, w, f)
}

// DumpReader renders every byte of r with f and breaks the line after every
// 10 bytes. A partial last line gets its own line break.
func DumpReader(r io.Reader, w io.Writer, f ByteFormatter) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var (
		line []byte
		n    int
	)

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}

		if err != nil {
			return fmt.Errorf("%w: failed to read: %w", ErrIO, err)
		}

		line = f(line, b)
		n++

		if n%bytesPerDumpLine == 0 {
			line = append(line, '\n')
			if _, err := bw.Write(line); err != nil {
				return fmt.Errorf("%w: failed to write dump: %w", ErrIO, err)
			}

			line = line[:0]
		}
	}

	if n%bytesPerDumpLine != 0 {
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("%w: failed to write dump: %w", ErrIO, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: failed to write dump: %w", ErrIO, err)
	}

	return nil
}
