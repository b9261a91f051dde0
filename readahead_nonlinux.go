//go:build !linux
// +build !linux

package sdat2img

// AdviseSequential is a no-op on platforms without posix_fadvise.
func AdviseSequential(fd uintptr) error {
	return nil
}
