package wav

// Tag is a four character chunk identifier such as "RIFF" or "fmt ".
type Tag [4]byte

// String returns the raw ASCII bytes of the tag.
func (t Tag) String() string {
	return string(t[:])
}

// FormatHeader is the fixed 36 byte prefix of a canonical WAVE file: the
// RIFF header followed by the PCM fmt chunk.
type FormatHeader struct {
	ChunkID       Tag
	ChunkSize     uint32
	Format        Tag
	SubChunk1ID   Tag
	SubChunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// DataHeader is the header of the data chunk that follows the fmt chunk.
type DataHeader struct {
	SubChunk2ID   Tag
	SubChunk2Size uint32
}

// bytesPerSample truncates like the on-disk layout expects: 12-bit samples
// are read as a single byte.
func (h FormatHeader) bytesPerSample() int {
	return int(h.BitsPerSample / 8)
}

// frameCount returns the number of whole frames in a data chunk of the
// passed size. A zero block align yields no frames.
func (h FormatHeader) frameCount(dataSize uint32) uint32 {
	if h.BlockAlign == 0 {
		return 0
	}

	return dataSize / uint32(h.BlockAlign)
}
