package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is an optional workspace number. The zero value is undefined.
type Number struct {
	Value int
	Valid bool
}

// Some returns a defined Number.
func Some(n int) Number {
	return Number{Value: n, Valid: true}
}

// Any is the undefined Number, used as "no preference".
var Any = Number{}

// Is reports whether n is defined and equal to v.
func (n Number) Is(v int) bool {
	return n.Valid && n.Value == v
}

func (n Number) String() string {
	if !n.Valid {
		return "none"
	}
	return strconv.Itoa(n.Value)
}

// ParseLocalNumber extracts the local number from a workspace name: the text
// after the last ':', trimmed and parsed as a base-10 integer. A name
// without ':' is parsed whole, so i3's default names ("1", "2") count.
//
// A non-integer suffix has no local number. Parsing never fails.
func ParseLocalNumber(name string) Number {
	v, err := strconv.Atoi(strings.TrimSpace(name[strings.LastIndex(name, ":")+1:]))
	if err != nil {
		return Any
	}
	return Some(v)
}

// FormatName builds the window-manager workspace name "<global>: <local>".
func FormatName(global, local int) string {
	return fmt.Sprintf("%d: %d", global, local)
}
