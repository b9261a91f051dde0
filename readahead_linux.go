//go:build linux
// +build linux

package sdat2img

import "golang.org/x/sys/unix"

// AdviseSequential hints the kernel that fd is going to be read once, front
// to back. Best effort, callers shouldn't treat a failed advisory as fatal.
func AdviseSequential(fd uintptr) error {
	if err := unix.Fadvise(int(fd), 0, 0, unix.FADV_SEQUENTIAL); err != nil {
		return err
	}
	return unix.Fadvise(int(fd), 0, 0, unix.FADV_WILLNEED)
}
