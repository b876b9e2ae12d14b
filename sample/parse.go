package sample

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HexError reports a malformed hexadecimal color.
type HexError struct {
	Input  string
	Reason string
}

func (e *HexError) Error() string {
	return fmt.Sprintf("invalid hex color %q: %s", e.Input, e.Reason)
}

// DecodeHex decodes "#rrggbb" or "rrggbb". Odd lengths, non-hex digits and
// values that do not decode to exactly three bytes are rejected with a
// *HexError.
func DecodeHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")

	b, err := hex.DecodeString(digits)
	if err != nil {
		var ib hex.InvalidByteError
		switch {
		case errors.As(err, &ib):
			return RGB{}, &HexError{s, fmt.Sprintf("invalid digit %q", byte(ib))}
		case errors.Is(err, hex.ErrLength):
			return RGB{}, &HexError{s, "odd length"}
		}
		return RGB{}, &HexError{s, err.Error()}
	}
	if len(b) != 3 {
		return RGB{}, &HexError{s, fmt.Sprintf("want 3 bytes, got %d", len(b))}
	}

	return RGB{b[0], b[1], b[2]}, nil
}

// ParseColor accepts a hex color ("#rrggbb", "rrggbb") or three decimal
// channels separated by commas and/or spaces ("250,5,5", "250 5 5").
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return DecodeHex(s)
	}

	var c [3]uint8
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid channel %q in %q: %w", f, s, err)
		}
		c[i] = uint8(v)
	}

	return RGB{c[0], c[1], c[2]}, nil
}
