// Package winstontest provides a scriptable in-process Winston wave
// server for exercising the client against real sockets. Responses are
// canned per command keyword; a script can also truncate a response
// mid-payload or hang up early to provoke the client's failure paths.
package winstontest

import (
	"bufio"
	"errors"
	"net"
	"strings"
	"sync"
	"sync/atomic"

	reuseport "github.com/kavu/go_reuseport"
	"go.uber.org/zap"
)

// Response scripts what the server writes back for one command keyword.
type Response struct {
	Payload []byte

	// StallAfter, when >= 0, truncates the write after that many bytes
	// and leaves the connection open so the client's idle watchdog has
	// something to catch.
	StallAfter int

	// CloseEarly hangs up right after the (possibly truncated) write.
	CloseEarly bool
}

// FullResponse is the no-surprises script entry: write everything, keep
// the connection open.
func FullResponse(payload []byte) Response {
	return Response{Payload: payload, StallAfter: -1}
}

type Server struct {
	listener net.Listener
	log      *zap.Logger

	mu     sync.Mutex
	script map[string]Response

	conns      int32
	loopWaiter sync.WaitGroup
}

// Start listens on an ephemeral localhost port and begins serving the
// (initially empty) script.
func Start(log *zap.Logger) (*Server, error) {
	listener, err := reuseport.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	s := &Server{
		listener: listener,
		log:      log,
		script:   make(map[string]Response),
	}

	s.loopWaiter.Add(1)
	go s.acceptLoop()

	return s, nil
}

// Addr returns the host and port the server is listening on.
func (s *Server) Addr() (string, int) {
	addr := s.listener.Addr().(*net.TCPAddr)
	return "127.0.0.1", addr.Port
}

// Handle scripts the response for a command keyword ("VERSION",
// "GETWAVERAW", ...).
func (s *Server) Handle(keyword string, resp Response) {
	s.mu.Lock()
	s.script[keyword] = resp
	s.mu.Unlock()
}

// ConnCount reports how many connections have been accepted so far.
func (s *Server) ConnCount() int {
	return int(atomic.LoadInt32(&s.conns))
}

// Close stops accepting and waits for in-flight connections to drain.
func (s *Server) Close() error {
	err := s.listener.Close()
	s.loopWaiter.Wait()
	return err
}

func (s *Server) acceptLoop() {
	defer s.loopWaiter.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				s.log.Warn("Accept failed", zap.Error(err))
			}
			return
		}

		atomic.AddInt32(&s.conns, 1)

		s.loopWaiter.Add(1)
		go func() {
			defer s.loopWaiter.Done()
			s.serve(conn)
		}()
	}
}

func (s *Server) serve(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			// Client hung up, which is how every exchange ends.
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		keyword := strings.TrimSuffix(fields[0], ":")

		s.mu.Lock()
		resp, ok := s.script[keyword]
		s.mu.Unlock()

		if !ok {
			s.log.Warn("No script for command", zap.String("keyword", keyword))
			return
		}

		payload := resp.Payload
		if resp.StallAfter >= 0 && resp.StallAfter < len(payload) {
			payload = payload[:resp.StallAfter]
		}

		if _, err := conn.Write(payload); err != nil {
			s.log.Warn("Write failed", zap.Error(err))
			return
		}

		if resp.CloseEarly {
			return
		}
	}
}
