package ssdp

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"
)

// ReceivedPacket is one datagram pulled off one of a Receiver's sockets.
type ReceivedPacket struct {
	Data []byte
	From net.Addr
	Via  *net.UDPConn
}

// Receiver fans a fixed set of bound UDP sockets into one shared channel,
// running a goroutine per socket. Earlier designs (kept only as reference
// in original_source's stream/receiver.rs) cancelled a receive loop with
// an atomic flag checked between reads; that leaves a goroutine blocked
// in ReadFrom until the next packet arrives, which may be never. Instead,
// Close sets every socket's read deadline to the past, which unblocks a
// pending ReadFrom immediately with a net.Error whose Timeout() is true,
// and the goroutine exits on seeing that without touching a shared flag.
type Receiver struct {
	conns []*net.UDPConn
	out   chan ReceivedPacket
	errs  chan error

	closeOnce sync.Once
	wg        sync.WaitGroup
	closed    chan struct{}
}

// NewReceiver constructs a Receiver over the given sockets. The sockets
// are not started until Start is called.
func NewReceiver(conns ...*net.UDPConn) *Receiver {
	return &Receiver{
		conns:  conns,
		out:    make(chan ReceivedPacket),
		errs:   make(chan error),
		closed: make(chan struct{}),
	}
}

// Start launches one receive goroutine per socket. ctx cancellation has
// the same effect as Close: it arms the deadline-based shutdown path.
func (r *Receiver) Start(ctx context.Context) {
	for _, conn := range r.conns {
		r.wg.Add(1)
		go r.receiveLoop(conn)
	}

	if ctx != nil {
		go func() {
			select {
			case <-ctx.Done():
				r.Close()
			case <-r.closed:
			}
		}()
	}
}

func (r *Receiver) receiveLoop(conn *net.UDPConn) {
	defer r.wg.Done()

	pr := NewPacketReceiver(conn)
	for {
		select {
		case <-r.closed:
			return
		default:
		}

		data, addr, err := pr.ReceivePacket()
		if err != nil {
			if isClosedOrTimeout(err) {
				return
			}
			select {
			case r.errs <- err:
			case <-r.closed:
				return
			}
			continue
		}

		select {
		case r.out <- ReceivedPacket{Data: data, From: addr, Via: conn}:
		case <-r.closed:
			return
		}
	}
}

func isClosedOrTimeout(err error) bool {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return true
	}
	return errors.Is(err, net.ErrClosed)
}

// Packets returns the channel receive goroutines publish datagrams to.
func (r *Receiver) Packets() <-chan ReceivedPacket {
	return r.out
}

// Errors returns the channel receive goroutines publish non-fatal read
// errors to (anything that isn't a shutdown signal).
func (r *Receiver) Errors() <-chan error {
	return r.errs
}

// Close unblocks every receive goroutine by setting its socket's read
// deadline into the past, waits for them to exit, and closes every
// socket. Safe to call more than once.
func (r *Receiver) Close() error {
	var err error
	r.closeOnce.Do(func() {
		close(r.closed)
		for _, conn := range r.conns {
			_ = conn.SetReadDeadline(time.Now())
		}
		r.wg.Wait()
		for _, conn := range r.conns {
			if cerr := conn.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	})
	return err
}
