//go:build !windows

package ssdp

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// controlReusePort sets SO_REUSEADDR and SO_REUSEPORT on the socket
// before it is bound, so several processes or goroutines can share the
// multicast port the way the teacher's single-process listener could
// not. Mirrors the teacher's runtime.GOOS-gated control message handling
// in pkg/ssdp/listener.go, but for socket options instead of IP_PKTINFO.
func controlReusePort(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
		if sockErr != nil {
			return
		}
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
