//go:build windows

package ssdp

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// controlReusePort sets SO_REUSEADDR only; SO_REUSEPORT has no Windows
// equivalent, matching spec §4.3's "(and, on non-Windows, port reuse)".
func controlReusePort(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
