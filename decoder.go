package wav

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
)

// canonicalHeaderSize is the RIFF header, the 16 byte fmt chunk and the data
// chunk header.
const canonicalHeaderSize = 44

// preallocFrames caps the initial sample capacity when the input size is
// unknown.
const preallocFrames = 4096

// Decoder decodes canonical WAVE streams. The zero value is ready to use and
// doesn't validate chunk tags.
type Decoder struct {
	// Strict rejects streams whose RIFF, WAVE, fmt and data tags don't match
	// the canonical layout.
	Strict bool
}

// Decode reads the file at path with a permissive decoder.
func Decode(path string) (*Wave, error) {
	var d Decoder
	return d.DecodeFile(path)
}

// DecodeFile opens the file at path and decodes it in a single pass.
func (d *Decoder) DecodeFile(path string) (*Wave, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrIO, path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat %s: %w", ErrIO, path, err)
	}

	return d.Decode(file, info.Size())
}

// Decode reads the header and the payload from r. size is the total length
// of the source; pass 0 when unknown. A known size also bounds the number of
// frames the data chunk may announce.
//
// Fields are read in file order with no padding. Chunks other than fmt and
// data are not recognized. If they precede data the result is misaligned.
func (d *Decoder) Decode(r io.Reader, size int64) (*Wave, error) {
	br := bufio.NewReader(r)
	w := &Wave{fileSize: size}
	h := &w.header

	var err error

	h.ChunkID, h.ChunkSize, err = readChunkHeader(br)
	if err != nil {
		return nil, readError("RIFF chunk header", err)
	}

	if _, err := io.ReadFull(br, h.Format[:]); err != nil {
		return nil, readError("format tag", err)
	}

	h.SubChunk1ID, h.SubChunk1Size, err = readChunkHeader(br)
	if err != nil {
		return nil, readError("fmt chunk header", err)
	}

	fields := []struct {
		name string
		dst  any
	}{
		{"audio format", &h.AudioFormat},
		{"channel count", &h.NumChannels},
		{"sample rate", &h.SampleRate},
		{"byte rate", &h.ByteRate},
		{"block align", &h.BlockAlign},
		{"bits per sample", &h.BitsPerSample},
	}
	for _, f := range fields {
		if err := binary.Read(br, binary.LittleEndian, f.dst); err != nil {
			return nil, readError(f.name, err)
		}
	}

	w.data.SubChunk2ID, w.data.SubChunk2Size, err = readChunkHeader(br)
	if err != nil {
		return nil, readError("data chunk header", err)
	}

	if d.Strict {
		if err := checkTags(w.header, w.data); err != nil {
			return nil, err
		}
	}

	w.frameCount = h.frameCount(w.data.SubChunk2Size)

	if size > 0 {
		if remaining := size - canonicalHeaderSize; int64(w.frameCount)*int64(h.BlockAlign) > remaining {
			return nil, fmt.Errorf("%w: %d frames of %d bytes announced, %d bytes left: %w",
				ErrTruncated, w.frameCount, h.BlockAlign, max(remaining, 0), io.ErrUnexpectedEOF)
		}
	}

	if err := w.readFirstChannel(br); err != nil {
		return nil, err
	}

	w.decoded = true

	return w, nil
}

// readChunkHeader reads a chunk tag and its little-endian size.
func readChunkHeader(r io.Reader) (Tag, uint32, error) {
	var (
		id   Tag
		size uint32
	)

	if _, err := io.ReadFull(r, id[:]); err != nil {
		return id, 0, err
	}

	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return id, 0, err
	}

	return id, size, nil
}

// readFirstChannel fills w.samples with channel 0 of every frame.
func (w *Wave) readFirstChannel(r io.Reader) error {
	h := w.header
	sampleSize := h.bytesPerSample()

	var otherChannels int64
	if h.NumChannels > 1 {
		otherChannels = int64(h.NumChannels - 1)
	}

	w.samples = make([]float32, 0, sampleCapacity(w.frameCount, w.fileSize, int64(sampleSize)*(otherChannels+1)))
	sample := make([]byte, sampleSize)

	for i := uint32(0); i < w.frameCount; i++ {
		if _, err := io.ReadFull(r, sample); err != nil {
			return readError(fmt.Sprintf("frame %d", i), err)
		}

		w.samples = append(w.samples, NormalizeSample(rawSample(sample), h.BitsPerSample))

		if err := skipBytes(r, otherChannels*int64(sampleSize)); err != nil {
			return readError(fmt.Sprintf("frame %d", i), err)
		}
	}

	return nil
}

// skipBytes drops n bytes from r. Channels other than the first are never
// kept.
func skipBytes(r io.Reader, n int64) error {
	if n <= 0 {
		return nil
	}

	_, err := io.CopyN(io.Discard, r, n)

	return err
}

// sampleCapacity bounds the initial allocation by what the source can
// actually hold, so a garbage data size doesn't allocate gigabytes upfront.
func sampleCapacity(frames uint32, size, frameSize int64) int {
	limit := int64(preallocFrames)
	if size > canonicalHeaderSize && frameSize > 0 {
		limit = (size - canonicalHeaderSize) / frameSize
	}

	return int(min(int64(frames), limit))
}

func checkTags(h FormatHeader, data DataHeader) error {
	tags := []struct {
		name      string
		got, want [4]byte
	}{
		{"chunk ID", h.ChunkID, riff.RiffID},
		{"format", h.Format, riff.WavFormatID},
		{"sub chunk 1 ID", h.SubChunk1ID, riff.FmtID},
		{"sub chunk 2 ID", data.SubChunk2ID, riff.DataFormatID},
	}
	for _, t := range tags {
		if t.got != t.want {
			return fmt.Errorf("%w: %s is %q, want %q", ErrInvalidTag, t.name, t.got[:], t.want[:])
		}
	}

	return nil
}

func readError(field string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s: %w", ErrTruncated, field, io.ErrUnexpectedEOF)
	}

	return fmt.Errorf("%w: reading %s: %w", ErrIO, field, err)
}
