package wav

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrIO wraps any failure to open, create, read or write a file.
	ErrIO = errors.New("wav: i/o failure")
	// ErrNotDecoded is returned when an operation needs a decoded wave but
	// no decode pass happened yet.
	ErrNotDecoded = errors.New("wav: read the file before using its decoded data")
	// ErrTruncated is returned when the stream ends before the header or the
	// announced frames could be read.
	ErrTruncated = errors.New("wav: truncated file")
	// ErrInvalidTag is returned by strict decoding when a chunk tag doesn't
	// match the canonical layout.
	ErrInvalidTag = errors.New("wav: unexpected chunk tag")
)

func durationFromFrames(frames uint32, sampleRate uint32) time.Duration {
	if sampleRate == 0 {
		return 0
	}

	sec := float64(frames) / float64(sampleRate)

	return time.Duration(math.Round(sec * float64(time.Second)))
}
