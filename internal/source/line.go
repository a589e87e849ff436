// Package source feeds raw control messages into the program. It is the
// boundary collaborator for transport: one newline-delimited JSON stream,
// read from stdin or a single TCP connection, pushed into the Bubble Tea
// event loop. Connection lifecycle beyond accept/close is out of scope.
package source

import (
	"bufio"
	"encoding/json"
	"io"
	"net"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// MessageMsg delivers one raw inbound line to the UI model.
type MessageMsg struct {
	Raw []byte
}

// Maximum accepted line length; feature payloads with full waveform and
// FFT buffers fit well inside this.
const maxLine = 256 * 1024

// LineSource reads NDJSON lines and forwards them via (*tea.Program).Send.
// It also implements the router's Sender: replies are written back to the
// connection the stream arrives on. In stdin mode replies are discarded,
// since stdout belongs to the TUI.
type LineSource struct {
	listener net.Listener
	reader   io.Reader

	mu   sync.Mutex
	out  io.Writer
	done chan struct{}
}

// NewReader wraps an already-open stream (typically os.Stdin).
func NewReader(r io.Reader) *LineSource {
	return &LineSource{
		reader: r,
		out:    io.Discard,
		done:   make(chan struct{}),
	}
}

// Listen binds a TCP address and serves one connection at a time.
func Listen(addr string) (*LineSource, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &LineSource{
		listener: ln,
		out:      io.Discard,
		done:     make(chan struct{}),
	}, nil
}

// Start begins forwarding lines into p. Must be called before p.Run, as
// with the scanner collaborators it is modeled on.
func (s *LineSource) Start(p *tea.Program) {
	if s.reader != nil {
		go s.pump(p, s.reader)
		return
	}
	go func() {
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				return // listener closed
			}
			s.setOut(conn)
			s.pump(p, conn)
			s.setOut(io.Discard)
			conn.Close()
		}
	}()
}

// Stop closes the listener; in-flight reads end with it.
func (s *LineSource) Stop() {
	select {
	case <-s.done:
		return
	default:
		close(s.done)
	}
	if s.listener != nil {
		s.listener.Close()
	}
}

// Send marshals v as one JSON line back to the active stream.
func (s *LineSource) Send(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.out.Write(append(b, '\n'))
	return err
}

func (s *LineSource) setOut(w io.Writer) {
	s.mu.Lock()
	s.out = w
	s.mu.Unlock()
}

func (s *LineSource) pump(p *tea.Program, r io.Reader) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	for sc.Scan() {
		select {
		case <-s.done:
			return
		default:
		}
		line := make([]byte, len(sc.Bytes()))
		copy(line, sc.Bytes())
		p.Send(MessageMsg{Raw: line})
	}
}
