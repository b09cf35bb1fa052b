package client

import (
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"sync"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/volcanolab/wws/protocol"
)

// DefaultIdleTimeout bounds both connection establishment and the gap
// between successive byte transfers on an open connection. A server that
// goes silent for longer faults the connection and unblocks the caller.
const DefaultIdleTimeout = 30 * time.Second

// closeGrace bounds how long close waits for the read loop to confirm it
// has stopped before releasing the connection anyway.
const closeGrace = 2 * time.Second

var (
	ErrIdleTimeout  = errors.New("Connection idled past its timeout")
	ErrRemoteClosed = errors.New("Server closed the connection")
	ErrNotConnected = errors.New("Connection is not established")
	ErrSlotOccupied = errors.New("A response handler is already bound to this connection")
)

// pendingRequest is the single-occupancy slot tying the connection to
// the handler consuming its incoming bytes.
type pendingRequest struct {
	handler protocol.ResponseHandler

	once sync.Once
	done chan struct{}
	err  error
}

func newPendingRequest(h protocol.ResponseHandler) *pendingRequest {
	return &pendingRequest{handler: h, done: make(chan struct{})}
}

// complete resolves the request exactly once, whichever of handler
// completion, connection fault or idle timeout gets here first.
func (p *pendingRequest) complete(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// conn owns the one TCP connection to the remote Winston and the read
// loop that drives it. The dispatcher borrows it per request; the read
// loop and the caller only meet through the pending request slot.
type conn struct {
	addr        string
	idleTimeout time.Duration
	log         *zap.Logger

	mu         sync.Mutex
	sock       net.Conn
	pending    *pendingRequest
	faulted    bool
	readerDone chan struct{}
}

func newConn(server string, port int, idleTimeout time.Duration, log *zap.Logger) *conn {
	return &conn{
		addr:        net.JoinHostPort(server, strconv.Itoa(port)),
		idleTimeout: idleTimeout,
		log:         log,
	}
}

// ensureConnected returns without touching the network when the current
// connection is still usable, otherwise tears down whatever is left and
// dials a fresh one. Every dial failure leaves the connection down and
// comes back as an error; nothing escapes this boundary any other way.
func (c *conn) ensureConnected(ctx context.Context) error {
	c.mu.Lock()
	alive := c.sock != nil && !c.faulted
	c.mu.Unlock()

	if alive {
		c.log.Debug("Reusing connection")
		return nil
	}

	if err := c.close(); err != nil {
		c.log.Debug("Stale connection teardown failed", zap.Error(err))
	}

	c.log.Debug("Connecting", zap.String("addr", c.addr))

	dialer := net.Dialer{Timeout: c.idleTimeout}
	sock, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			c.log.Error("Connection attempt cancelled", zap.String("addr", c.addr))
		case isTimeout(err):
			c.log.Error("Timeout connecting", zap.String("addr", c.addr))
		default:
			c.log.Error("Error connecting", zap.String("addr", c.addr), zap.Error(err))
		}
		return err
	}

	if tcp, ok := sock.(*net.TCPConn); ok {
		_ = tcp.SetKeepAlive(true)
	}

	readerDone := make(chan struct{})

	c.mu.Lock()
	c.sock = sock
	c.faulted = false
	c.readerDone = readerDone
	c.mu.Unlock()

	go c.readLoop(sock, readerDone)

	return nil
}

// bind attaches a handler to the pending request slot. The protocol
// forbids pipelining: binding while a request is outstanding is a
// programming error, not a recoverable condition.
func (c *conn) bind(h protocol.ResponseHandler) *pendingRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		panic(ErrSlotOccupied)
	}

	req := newPendingRequest(h)
	c.pending = req

	return req
}

// unbind releases the slot without completing the request. Used when the
// command never made it onto the wire.
func (c *conn) unbind(req *pendingRequest) {
	c.mu.Lock()
	if c.pending == req {
		c.pending = nil
	}
	c.mu.Unlock()
}

// write sends the command bytes. The write deadline keeps a wedged peer
// from blocking the caller past the idle timeout.
func (c *conn) write(command string) error {
	c.mu.Lock()
	sock := c.sock
	c.mu.Unlock()

	if sock == nil {
		return ErrNotConnected
	}

	_ = sock.SetWriteDeadline(time.Now().Add(c.idleTimeout))
	_, err := sock.Write([]byte(command))

	return err
}

// readLoop is the event loop for one socket lifetime. It feeds arriving
// bytes to the bound handler and exits when the socket faults, times out
// idle, or is closed under it.
func (c *conn) readLoop(sock net.Conn, done chan struct{}) {
	defer close(done)

	buf := make([]byte, 4096)
	for {
		_ = sock.SetReadDeadline(time.Now().Add(c.idleTimeout))

		n, err := sock.Read(buf)
		if n > 0 {
			c.feed(buf[:n])
		}
		if err != nil {
			c.fault(err)
			return
		}
	}
}

// feed hands one chunk to the pending handler and resolves the request
// when the handler reports done or fails. Bytes arriving with no request
// outstanding are dropped.
func (c *conn) feed(chunk []byte) {
	c.mu.Lock()
	req := c.pending
	c.mu.Unlock()

	if req == nil {
		c.log.Warn("Discarding bytes with no request outstanding", zap.Int("count", len(chunk)))
		return
	}

	done, err := req.handler.Accept(chunk)
	if done || err != nil {
		c.unbind(req)
		req.complete(err)
	}
}

// fault latches the connection failed and forcibly completes any pending
// request so the caller never hangs on a dead peer.
func (c *conn) fault(cause error) {
	switch {
	case isTimeout(cause):
		cause = ErrIdleTimeout
	case errors.Is(cause, io.EOF):
		cause = ErrRemoteClosed
	}

	c.mu.Lock()
	c.faulted = true
	req := c.pending
	c.pending = nil
	c.mu.Unlock()

	if req != nil {
		req.handler.Disconnected()
		req.complete(cause)
	}
}

// close shuts the socket down and waits, briefly, for the read loop to
// stop. Idempotent; closing while disconnected only releases resources.
func (c *conn) close() error {
	c.mu.Lock()
	sock := c.sock
	readerDone := c.readerDone
	c.sock = nil
	c.readerDone = nil
	c.faulted = false
	c.mu.Unlock()

	if sock == nil {
		return nil
	}

	c.log.Debug("Closing connection")

	var err error
	if tcp, ok := sock.(*net.TCPConn); ok {
		if werr := tcp.CloseWrite(); werr != nil && !isNotConnected(werr) {
			err = multierr.Append(err, werr)
		}
	}
	err = multierr.Append(err, sock.Close())

	select {
	case <-readerDone:
	case <-time.After(closeGrace):
		c.log.Warn("Read loop did not stop within the close grace period")
	}

	return err
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNotConnected(err error) bool {
	return errors.Is(err, net.ErrClosed) || errors.Is(err, syscall.ENOTCONN)
}
