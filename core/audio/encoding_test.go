package audio

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestEncodeWAVHeaderFields(t *testing.T) {
	pcm := make([]byte, 320)
	wav := EncodeWAV(pcm, EncodingInfo{SampleRate: 16000, Format: EncodingLinear16}, 1)

	if len(wav) != 44+len(pcm) {
		t.Fatalf("expected %d bytes, got %d", 44+len(pcm), len(wav))
	}
	if !bytes.Equal(wav[0:4], []byte("RIFF")) || !bytes.Equal(wav[8:12], []byte("WAVE")) {
		t.Fatalf("expected RIFF/WAVE magic, got %q %q", wav[0:4], wav[8:12])
	}
	if rate := binary.LittleEndian.Uint32(wav[24:28]); rate != 16000 {
		t.Fatalf("expected sample rate 16000, got %d", rate)
	}
	if bits := binary.LittleEndian.Uint16(wav[34:36]); bits != 16 {
		t.Fatalf("expected 16 bits per sample, got %d", bits)
	}
	if dataLen := binary.LittleEndian.Uint32(wav[40:44]); dataLen != uint32(len(pcm)) {
		t.Fatalf("expected data length %d, got %d", len(pcm), dataLen)
	}
}

func TestDurationMs(t *testing.T) {
	e := EncodingInfo{SampleRate: 16000, Format: EncodingLinear16}
	if got := e.DurationMs(32000); got != 1000 {
		t.Fatalf("expected 1000ms for one second of linear16, got %d", got)
	}
	if got := (EncodingInfo{}).DurationMs(32000); got != 0 {
		t.Fatalf("expected 0ms for zero encoding, got %d", got)
	}
}
