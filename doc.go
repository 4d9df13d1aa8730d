// Package wav reads canonical RIFF/WAVE files and exposes the decoded data
// for inspection.
//
// A single decode pass produces an immutable Wave holding the format header,
// the data chunk header and the first channel of the payload normalized to
// float32. On top of that the package offers:
//
//   - PrintInfo, a field-by-field metadata report
//   - DumpASCII and DumpHex, raw byte dumps of the whole file
//   - ExportFloat32, a headerless native-endian float32 dump of channel 0
//
// Only the RIFF, fmt and data chunks are understood, in that order. Tags are
// not validated unless Decoder.Strict is set.
package wav
