package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cast"
)

// ParseColor accepts "#rrggbb", "#rrggbbaa", "r,g,b[,a]" or a 3/4 element
// list of numbers. A missing alpha channel means opaque.
func ParseColor(value interface{}) (Color, error) {
	switch v := value.(type) {
	case Color:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		if strings.HasPrefix(s, "#") {
			return parseHexColor(s)
		}
		return colorFromList(splitList(s))
	case []int:
		list := make([]interface{}, len(v))
		for i := range v {
			list[i] = v[i]
		}
		return colorFromList(list)
	case []interface{}:
		return colorFromList(v)
	case []string:
		list := make([]interface{}, len(v))
		for i := range v {
			list[i] = v[i]
		}
		return colorFromList(list)
	default:
		return Color{}, fmt.Errorf("%w: cannot use %T as color", ErrInvalidColor, value)
	}
}

func parseHexColor(s string) (Color, error) {
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

func colorFromList(list []interface{}) (Color, error) {
	if len(list) != 3 && len(list) != 4 {
		return Color{}, fmt.Errorf("%w: want 3 or 4 channels, got %d", ErrInvalidColor, len(list))
	}

	channels := [4]uint8{0, 0, 0, 255}
	for i, raw := range list {
		n, err := cast.ToIntE(raw)
		if err != nil {
			return Color{}, fmt.Errorf("%w: channel %d: %v", ErrInvalidColor, i, err)
		}
		if n < 0 || n > 255 {
			return Color{}, fmt.Errorf("%w: channel %d out of range: %d", ErrInvalidColor, i, n)
		}
		channels[i] = uint8(n)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

// ParsePoint accepts "x,y" or a two element list of numbers.
func ParsePoint(value interface{}) (Point, error) {
	var list []interface{}
	switch v := value.(type) {
	case Point:
		return v, nil
	case string:
		list = splitList(v)
	case []int:
		for _, n := range v {
			list = append(list, n)
		}
	case []string:
		for _, s := range v {
			list = append(list, s)
		}
	case []interface{}:
		list = v
	default:
		return Point{}, fmt.Errorf("%w: cannot use %T as point", ErrInvalidPoint, value)
	}

	if len(list) != 2 {
		return Point{}, fmt.Errorf("%w: want 2 coordinates, got %d", ErrInvalidPoint, len(list))
	}
	x, err := cast.ToIntE(list[0])
	if err != nil {
		return Point{}, fmt.Errorf("%w: x: %v", ErrInvalidPoint, err)
	}
	y, err := cast.ToIntE(list[1])
	if err != nil {
		return Point{}, fmt.Errorf("%w: y: %v", ErrInvalidPoint, err)
	}
	return Point{X: x, Y: y}, nil
}

func splitList(s string) []interface{} {
	s = strings.Trim(strings.TrimSpace(s), "()[]")
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	list := make([]interface{}, len(parts))
	for i, p := range parts {
		list[i] = strings.TrimSpace(p)
	}
	return list
}
