package wav

import "io"

// Inspector ties a file path to at most one decoded Wave.
type Inspector struct {
	// Strict enables tag validation for Read.
	Strict bool

	path string
	wave *Wave
}

// NewInspector returns an inspector for the file at path. Nothing is read
// until Read is called.
func NewInspector(path string) *Inspector {
	return &Inspector{path: path}
}

// Analyze decodes the file at path and prints its metadata to w.
func Analyze(path string, w io.Writer) error {
	in := NewInspector(path)
	if err := in.Read(); err != nil {
		return err
	}

	return in.PrintInfo(w)
}

// Path returns the inspected file path.
func (in *Inspector) Path() string {
	return in.path
}

// Read decodes the file. Once a wave was decoded further calls are no-ops.
func (in *Inspector) Read() error {
	if in.wave != nil {
		return nil
	}

	d := Decoder{Strict: in.Strict}

	wave, err := d.DecodeFile(in.path)
	if err != nil {
		return err
	}

	in.wave = wave

	return nil
}

// Wave returns the decoded wave, or nil before a successful Read.
func (in *Inspector) Wave() *Wave {
	return in.wave
}

// PrintInfo writes the metadata report. It returns ErrNotDecoded before Read.
func (in *Inspector) PrintInfo(w io.Writer) error {
	return PrintInfo(w, in.wave)
}

// DumpASCII re-reads the file and writes its bytes as ASCII.
func (in *Inspector) DumpASCII(w io.Writer) error {
	return DumpASCII(in.path, w)
}

// DumpHex re-reads the file and writes its bytes as hex.
func (in *Inspector) DumpHex(w io.Writer) error {
	return DumpHex(in.path, w)
}

// Export writes the decoded first channel to path as raw float32 values.
func (in *Inspector) Export(path string) error {
	return ExportFloat32(in.wave, path)
}
