package wav

const (
	wavFormatPCM     = 1
	floatPCM8Center  = 128.0
	scalePCMInt8     = 127.0
	scalePCMInt16    = 32767.0
	maxRawSampleSize = 4
)

// NormalizeSample converts a raw little-endian sample into a float32.
//
// 8-bit samples are unsigned with a 128 bias and are scaled by 127, 16-bit
// samples are two's complement and are scaled by 32767. Neither is clamped,
// so the most negative values land slightly below -1. Any other bit depth
// returns 0.
func NormalizeSample(raw uint32, bitsPerSample uint16) float32 {
	switch bitsPerSample {
	case 8:
		return (float32(uint8(raw)) - floatPCM8Center) / scalePCMInt8
	case 16:
		return float32(int16(uint16(raw))) / scalePCMInt16
	default:
		return 0
	}
}

// rawSample assembles up to 4 little-endian bytes into an unsigned value.
func rawSample(b []byte) uint32 {
	var v uint32

	for i := 0; i < len(b) && i < maxRawSampleSize; i++ {
		v |= uint32(b[i]) << (8 * uint(i))
	}

	return v
}
