package materialcolors

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ARGB is a color packed as alpha, red, green and blue, 8 bits each,
// most significant first.
type ARGB uint32

// Hex renders the color as #AARRGGBB.
func (c ARGB) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Literal renders the color as a 0xAARRGGBB integer literal.
func (c ARGB) Literal() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// ParseColor parses #RRGGBB or #AARRGGBB. Colors without alpha are
// returned fully opaque.
func ParseColor(s string) (ARGB, error) {
	if (len(s) != 7 && len(s) != 9) || s[0] != '#' {
		return 0, errors.Wrapf(ErrInvalidFormat, "unknown color %q", s)
	}

	value, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidFormat, "unknown color %q", s)
	}

	if len(s) == 7 {
		value |= 0xFF000000
	}

	return ARGB(value), nil
}
