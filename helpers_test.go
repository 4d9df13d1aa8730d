package wav

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// canonicalHeaders returns consistent headers for a PCM payload of dataSize
// bytes.
func canonicalHeaders(channels, bitsPerSample uint16, sampleRate, dataSize uint32) (FormatHeader, DataHeader) {
	blockAlign := channels * bitsPerSample / 8

	h := FormatHeader{
		ChunkID:       Tag{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        Tag{'W', 'A', 'V', 'E'},
		SubChunk1ID:   Tag{'f', 'm', 't', ' '},
		SubChunk1Size: 16,
		AudioFormat:   wavFormatPCM,
		NumChannels:   channels,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * uint32(blockAlign),
		BlockAlign:    blockAlign,
		BitsPerSample: bitsPerSample,
	}

	return h, DataHeader{SubChunk2ID: Tag{'d', 'a', 't', 'a'}, SubChunk2Size: dataSize}
}

func encodeWav(t *testing.T, h FormatHeader, d DataHeader, payload []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, h); err != nil {
		t.Fatalf("encoding format header: %v", err)
	}

	if err := binary.Write(&buf, binary.LittleEndian, d); err != nil {
		t.Fatalf("encoding data header: %v", err)
	}

	buf.Write(payload)

	return buf.Bytes()
}

func canonicalWav(t *testing.T, channels, bitsPerSample uint16, sampleRate uint32, payload []byte) []byte {
	t.Helper()

	h, d := canonicalHeaders(channels, bitsPerSample, sampleRate, uint32(len(payload)))

	return encodeWav(t, h, d, payload)
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}

	return path
}

func decodeBytes(t *testing.T, data []byte) *Wave {
	t.Helper()

	var d Decoder

	w, err := d.Decode(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	return w
}
