//go:build linux

package ssdp

import (
	"context"
	"net"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/fdooze"
)

func mustListenUDP() *net.UDPConn {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	Expect(err).NotTo(HaveOccurred())
	return conn
}

var _ = Describe("Receiver", func() {

	var goodfds []FileDescriptor

	BeforeEach(func() {
		goodfds = Filedescriptors()
	})

	It("fans datagrams from several sockets into one channel", func() {
		a := mustListenUDP()
		b := mustListenUDP()

		receiver := NewReceiver(a, b)
		ctx, cancel := context.WithCancel(context.Background())
		receiver.Start(ctx)
		defer cancel()
		defer receiver.Close()

		client := mustListenUDP()
		defer client.Close()

		_, err := client.WriteTo([]byte("hello-a"), a.LocalAddr())
		Expect(err).NotTo(HaveOccurred())
		_, err = client.WriteTo([]byte("hello-b"), b.LocalAddr())
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < 2; i++ {
			Eventually(receiver.Packets(), time.Second).Should(Receive())
		}
	})

	It("releases every socket on Close without leaking file descriptors", func() {
		a := mustListenUDP()
		b := mustListenUDP()

		receiver := NewReceiver(a, b)
		ctx, cancel := context.WithCancel(context.Background())
		receiver.Start(ctx)
		cancel()

		Expect(receiver.Close()).To(Succeed())

		Eventually(Filedescriptors).ShouldNot(HaveLeakedFds(goodfds))
	})

	It("unblocks a goroutine parked in ReadFrom as soon as Close is called", func() {
		a := mustListenUDP()

		receiver := NewReceiver(a)
		receiver.Start(context.Background())

		done := make(chan struct{})
		go func() {
			receiver.Close()
			close(done)
		}()

		Eventually(done, 2*time.Second).Should(BeClosed())
	})
})
