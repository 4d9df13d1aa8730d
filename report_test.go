package wav

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrintInfo(t *testing.T) {
	data := canonicalWav(t, 1, 16, 8000, []byte{0x00, 0x80, 0xFF, 0x7F, 0x00, 0x00, 0x01, 0x80})
	w := decodeBytes(t, data)

	var out bytes.Buffer
	if err := PrintInfo(&out, w); err != nil {
		t.Fatalf("PrintInfo failed: %v", err)
	}

	want := []string{
		"           File Size : 52",
		"             chunkID : RIFF",
		"           chunkSize : 44",
		"              format : WAVE",
		"       SubChunk 1 Id : fmt ",
		"     SubChunk 1 Size : 16",
		"        Audio Format : 1",
		"       Channel Count : 1",
		"          SampleRate : 8000",
		"           Byte Rate : 16000",
		"         Block Align : 2",
		"     Bits Per Sample : 16",
		"       SubChunk 2 Id : data",
		"     SubChunk 2 Size : 8",
		"         Frame Count : 4",
	}

	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d\nfull output:\n%s", len(got), len(want), out.String())
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d=%q, want %q", i, got[i], want[i])
		}
	}
}

func TestPrintInfoUnknownSize(t *testing.T) {
	data := canonicalWav(t, 1, 8, 8000, []byte{0xFF})

	var d Decoder

	w, err := d.Decode(bytes.NewReader(data), 0)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	var out bytes.Buffer
	if err := PrintInfo(&out, w); err != nil {
		t.Fatalf("PrintInfo failed: %v", err)
	}

	for _, c := range []string{"File Size : 0", "Frame Count : 1"} {
		if !strings.Contains(out.String(), c) {
			t.Fatalf("expected output to contain %q\nfull output:\n%s", c, out.String())
		}
	}
}

func TestPrintInfoBeforeDecode(t *testing.T) {
	var out bytes.Buffer

	if err := PrintInfo(&out, nil); !errors.Is(err, ErrNotDecoded) {
		t.Fatalf("expected ErrNotDecoded, got %v", err)
	}

	if err := PrintInfo(&out, &Wave{}); !errors.Is(err, ErrNotDecoded) {
		t.Fatalf("expected ErrNotDecoded for a zero wave, got %v", err)
	}

	if out.Len() != 0 {
		t.Fatalf("nothing should be written, got %q", out.String())
	}
}

type failingWriter struct{}

var errFullDisk = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errFullDisk }

func TestPrintInfoWriteFailure(t *testing.T) {
	w := decodeBytes(t, canonicalWav(t, 1, 8, 8000, []byte{0x80}))

	err := PrintInfo(failingWriter{}, w)
	if !errors.Is(err, ErrIO) || !errors.Is(err, errFullDisk) {
		t.Fatalf("expected wrapped write failure, got %v", err)
	}
}
