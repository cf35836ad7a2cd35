package bigspring

import "unicode/utf8"

// textDecoder converts raw response bytes to text across read boundaries.
// A multi-byte codepoint split between two reads is held back until its
// remaining bytes arrive, so no partial unit is ever dropped or replaced.
type textDecoder struct {
	pending []byte
}

// Decode returns the longest decodable prefix of the pending bytes plus p,
// retaining any trailing incomplete codepoint for the next call.
func (d *textDecoder) Decode(p []byte) string {
	buf := append(d.pending, p...)
	d.pending = nil

	cut := len(buf)
	for i := len(buf) - 1; i >= 0 && i > len(buf)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(buf[i]) {
			continue
		}
		if !utf8.FullRune(buf[i:]) {
			cut = i
		}
		break
	}

	if cut < len(buf) {
		d.pending = append([]byte(nil), buf[cut:]...)
		buf = buf[:cut]
	}
	return string(buf)
}
