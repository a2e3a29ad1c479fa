package server

import (
	"bufio"
	"fmt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"io"
	"net"
	"strings"
	"sync"
)

const (
	welcomeFormat  = "Welcome to Minesweeper. %d people are playing including you. Type 'help' for help.\r\n"
	helpMessage    = "Commands: look | dig X Y | flag X Y | deflag X Y | help | bye\r\n"
	invalidMessage = "Unrecognized command. Type 'help' for help.\r\n"
	boomMessage    = "BOOM!\r\n"

	// Longest request line that is parsed; longer ones are answered as invalid
	maxLineLength = 64 * 1024
)

// connection speaks the line protocol with one player. It is open from the
// moment the player is counted until close is called, which happens exactly
// once whatever ends the session.
type connection struct {
	server *Server
	conn   net.Conn
	log    *logrus.Entry

	closeOnce sync.Once
}

func (c *connection) serve() {
	numPlayers := c.server.board.AddPlayer()
	defer c.close()

	c.log.WithField("players", numPlayers).Info("Player connected")

	if err := c.write(fmt.Sprintf(welcomeFormat, numPlayers)); err != nil {
		c.logError(err)
		return
	}

	reader := bufio.NewReader(c.conn)
	for {
		line, tooLong, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.logError(err)
			}
			return
		}

		command := ParseCommand(line)
		if tooLong {
			command = Command{Kind: Invalid}
		}
		c.log.WithField("command", command).Debug("Handling command")

		reply, keepOpen := c.handle(command)
		if reply != "" {
			if err := c.write(reply); err != nil {
				c.logError(err)
				return
			}
		}
		if !keepOpen {
			return
		}
	}
}

// readLine reads up to the next newline. Lines longer than maxLineLength are
// consumed in full but only reported as tooLong. A final line without a
// newline is returned before io.EOF.
func readLine(reader *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, readErr := reader.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > maxLineLength {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		switch {
		case readErr == bufio.ErrBufferFull:
			continue
		case readErr == io.EOF && (len(buf) > 0 || tooLong):
			return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
		case readErr != nil:
			return "", false, errors.Wrap(readErr, "reading request")
		}
		return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
	}
}

// handle runs one command against the board, returning the reply to send and
// whether the session continues afterwards.
func (c *connection) handle(command Command) (string, bool) {
	board := c.server.board

	switch command.Kind {
	case Look:
		return board.Look(), true
	case Help:
		return helpMessage, true
	case Bye:
		return "", false
	case Flag:
		return board.Flag(command.X, command.Y), true
	case Deflag:
		return board.Deflag(command.X, command.Y), true
	case Dig:
		view, exploded := board.Dig(command.X, command.Y)
		if !exploded {
			return view, true
		}

		c.log.WithFields(logrus.Fields{
			"x": command.X,
			"y": command.Y,
		}).Info("Player dug a mine")
		return boomMessage, c.server.debug
	default:
		return invalidMessage, true
	}
}

func (c *connection) write(reply string) error {
	_, err := io.WriteString(c.conn, reply)
	return errors.Wrap(err, "writing reply")
}

func (c *connection) logError(err error) {
	// Closed by us, either on shutdown or after the session ended
	if errors.Is(err, net.ErrClosed) {
		c.log.WithError(err).Debug("Connection closed")
		return
	}
	c.log.WithError(err).Warn("Connection failed")
}

func (c *connection) close() {
	c.closeOnce.Do(func() {
		numPlayers := c.server.board.RemovePlayer()
		if err := c.conn.Close(); err != nil {
			c.log.WithError(err).Debug("Closing connection")
		}
		c.server.untrack(c)

		c.log.WithField("players", numPlayers).Info("Player disconnected")
	})
}
