//go:build !windows && !linux

package platform

import "fmt"

func openNative(name string) (Backend, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, name)
}
