package wav

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

// Wave is the result of one decode pass. It is never modified after Decode
// returns; accessors hand out copies.
type Wave struct {
	fileSize   int64
	header     FormatHeader
	data       DataHeader
	frameCount uint32
	samples    []float32
	decoded    bool
}

// FileSize returns the byte length of the source file, or 0 when the size
// wasn't known at decode time.
func (w *Wave) FileSize() int64 {
	if w == nil {
		return 0
	}

	return w.fileSize
}

// Header returns the RIFF and fmt chunk fields.
func (w *Wave) Header() FormatHeader {
	if w == nil {
		return FormatHeader{}
	}

	return w.header
}

// Data returns the data chunk header.
func (w *Wave) Data() DataHeader {
	if w == nil {
		return DataHeader{}
	}

	return w.data
}

// FrameCount returns the number of whole frames in the data chunk.
func (w *Wave) FrameCount() uint32 {
	if w == nil {
		return 0
	}

	return w.frameCount
}

// Decoded reports whether w is the result of a successful decode pass.
func (w *Wave) Decoded() bool {
	return w != nil && w.decoded
}

// Samples returns a copy of the normalized first channel.
func (w *Wave) Samples() []float32 {
	if w == nil {
		return nil
	}

	return append([]float32(nil), w.samples...)
}

// Duration returns the playing time of the decoded frames.
func (w *Wave) Duration() time.Duration {
	if w == nil {
		return 0
	}

	return durationFromFrames(w.frameCount, w.header.SampleRate)
}

// Buffer returns the first channel as a mono go-audio buffer.
func (w *Wave) Buffer() *audio.Float32Buffer {
	if w == nil {
		return nil
	}

	return &audio.Float32Buffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  int(w.header.SampleRate),
		},
		Data:           w.Samples(),
		SourceBitDepth: int(w.header.BitsPerSample),
	}
}

// String implements the Stringer interface.
func (w *Wave) String() string {
	if w == nil {
		return "<nil wave>"
	}

	h := w.header

	format := fmt.Sprintf("format %d", h.AudioFormat)
	if h.AudioFormat == wavFormatPCM {
		format = "PCM"
	}

	return fmt.Sprintf("%d ch, %d Hz, %d-bit %s, %d frames", h.NumChannels, h.SampleRate, h.BitsPerSample, format, w.frameCount)
}
