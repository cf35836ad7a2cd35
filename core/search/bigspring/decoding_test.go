package bigspring

import "testing"

func TestDecoderPassesThroughASCII(t *testing.T) {
	decoder := textDecoder{}

	if decoded := decoder.Decode([]byte("plain text")); decoded != "plain text" {
		t.Fatalf("expected pass-through, got %q", decoded)
	}
}

func TestDecoderCarriesSplitCodepointAcrossReads(t *testing.T) {
	// "čćž" is three two-byte codepoints; split mid-codepoint.
	raw := []byte("čćž")
	decoder := textDecoder{}

	first := decoder.Decode(raw[:3])
	second := decoder.Decode(raw[3:])

	if first != "č" {
		t.Fatalf("expected only the complete codepoint, got %q", first)
	}
	if first+second != "čćž" {
		t.Fatalf("expected split codepoints to reassemble, got %q", first+second)
	}
}

func TestDecoderReassemblesAtEveryByteOffset(t *testing.T) {
	raw := []byte("naïve €5 確認 🚀")

	for offset := range len(raw) {
		decoder := textDecoder{}
		decoded := decoder.Decode(raw[:offset]) + decoder.Decode(raw[offset:])
		if decoded != string(raw) {
			t.Fatalf("split at %d: expected %q, got %q", offset, string(raw), decoded)
		}
	}
}

func TestDecoderHoldsBackIncompleteTail(t *testing.T) {
	// First three bytes of a four-byte codepoint.
	decoder := textDecoder{}

	if decoded := decoder.Decode([]byte{0xF0, 0x9F, 0x9A}); decoded != "" {
		t.Fatalf("expected incomplete codepoint to be held back, got %q", decoded)
	}
	if decoded := decoder.Decode([]byte{0x80}); decoded != "🚀" {
		t.Fatalf("expected completed codepoint, got %q", decoded)
	}
}
