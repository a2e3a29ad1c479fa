package server

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep-server/game"
	"github.com/they4kman/gosweep-server/util/collections"
	"net"
	"sync"
	"syscall"
	"time"
)

var ErrServerClosed = errors.New("server closed")

const (
	minRetryDelay = 5 * time.Millisecond
	maxRetryDelay = time.Second
)

// isTemporary reports whether an accept error may clear up by itself, such as
// running out of file descriptors.
func isTemporary(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, syscall.EMFILE) ||
		errors.Is(err, syscall.ENFILE) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.ECONNRESET)
}

// Server accepts players and hands each of them the same board. Every
// connection is served on its own goroutine, which the server never waits on.
type Server struct {
	board *game.Board
	debug bool
	log   *logrus.Logger

	mu       sync.Mutex
	listener net.Listener
	conns    collections.Set[*connection]
	closed   bool
}

// New creates a server for board. In debug mode players who dig a mine stay
// connected.
func New(board *game.Board, debug bool, log *logrus.Logger) *Server {
	return &Server{
		board: board,
		debug: debug,
		log:   log,
		conns: make(collections.Set[*connection]),
	}
}

func (s *Server) Board() *game.Board {
	return s.board
}

// Addr returns the listening address, or nil before Serve is called
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) ListenAndServe(addr string) error {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "resolving %s", addr)
	}
	listener, err := net.ListenTCP("tcp", tcpAddr)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", addr)
	}
	return s.Serve(listener)
}

// Serve accepts connections on listener until Close is called, then returns
// ErrServerClosed. Temporary accept errors are retried with backoff; any other
// accept error is returned.
func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		listener.Close()
		return ErrServerClosed
	}
	s.listener = listener
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"addr":  listener.Addr().String(),
		"size":  s.board.Size(),
		"debug": s.debug,
	}).Info("Accepting players")

	var retryDelay time.Duration
	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.isClosed() {
				return ErrServerClosed
			}
			if !isTemporary(err) {
				return errors.Wrap(err, "accepting connection")
			}

			if retryDelay == 0 {
				retryDelay = minRetryDelay
			} else if retryDelay *= 2; retryDelay > maxRetryDelay {
				retryDelay = maxRetryDelay
			}
			s.log.WithError(err).WithField("retry", retryDelay).Warn("Accepting connection")
			time.Sleep(retryDelay)
			continue
		}
		retryDelay = 0

		if c := s.track(conn); c != nil {
			go c.serve()
		}
	}
}

// Close stops accepting players and drops every connected one
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for c := range s.conns {
		c.conn.Close()
	}

	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

func (s *Server) track(conn net.Conn) *connection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		conn.Close()
		return nil
	}

	c := &connection{
		server: s,
		conn:   conn,
		log:    s.log.WithField("remote", conn.RemoteAddr().String()),
	}
	s.conns.Add(c)
	return c
}

func (s *Server) untrack(c *connection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conns.Remove(c)
}
