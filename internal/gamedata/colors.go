package gamedata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrBadColor is returned for strings that are not hex colors.
var ErrBadColor = errors.New("invalid hex color")

// ParseHexColor converts "#RRGGBB", "RRGGBB" or the shorthand "#RGB" to a
// tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	return tcell.NewRGBColor(int32(v>>16&0xFF), int32(v>>8&0xFF), int32(v&0xFF)), nil
}
