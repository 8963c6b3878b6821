package appbar

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultThickness replaces any non-positive or unparseable thickness.
const DefaultThickness int32 = 40

// NormalizeThickness returns n, or DefaultThickness when n is not positive.
// The boolean is false when the default was substituted.
func NormalizeThickness(n int32) (int32, bool) {
	if n <= 0 {
		return DefaultThickness, false
	}
	return n, true
}

// ParseThickness parses a decimal pixel count. Unparseable, out of range and
// non-positive values yield DefaultThickness with ok set to false.
func ParseThickness(raw string) (int32, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return DefaultThickness, false
	}
	return NormalizeThickness(int32(n))
}

// WindowHandle is an opaque native window identity owned by the caller.
// Obtain one with ParseWindowHandle.
type WindowHandle uintptr

// ParseWindowHandle parses the decimal encoding of a native window handle.
func ParseWindowHandle(raw string) (WindowHandle, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHandle, raw)
	}
	if v == 0 || v > uint64(^uintptr(0)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHandle, raw)
	}
	return WindowHandle(v), nil
}

func (h WindowHandle) String() string {
	return strconv.FormatUint(uint64(h), 10)
}
