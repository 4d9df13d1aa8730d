package wav

import (
	"fmt"
	"io"
)

const infoLabelWidth = 20

// PrintInfo writes one line per header field, then the frame count.
func PrintInfo(w io.Writer, wave *Wave) error {
	if !wave.Decoded() {
		return ErrNotDecoded
	}

	h := wave.header
	lines := []struct {
		label string
		value any
	}{
		{"File Size", wave.fileSize},
		{"chunkID", h.ChunkID},
		{"chunkSize", h.ChunkSize},
		{"format", h.Format},
		{"SubChunk 1 Id", h.SubChunk1ID},
		{"SubChunk 1 Size", h.SubChunk1Size},
		{"Audio Format", h.AudioFormat},
		{"Channel Count", h.NumChannels},
		{"SampleRate", h.SampleRate},
		{"Byte Rate", h.ByteRate},
		{"Block Align", h.BlockAlign},
		{"Bits Per Sample", h.BitsPerSample},
		{"SubChunk 2 Id", wave.data.SubChunk2ID},
		{"SubChunk 2 Size", wave.data.SubChunk2Size},
		{"Frame Count", wave.frameCount},
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%*s : %v\n", infoLabelWidth, l.label, l.value); err != nil {
			return fmt.Errorf("%w: failed to write info: %w", ErrIO, err)
		}
	}

	return nil
}
