package strategy

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/twoturn/game"
)

// DefaultPrompt is written before every line read by Interactive.
const DefaultPrompt = "Enter a move: "

// Interactive asks a human for a move, one line at a time.
// One Interactive may be shared by both players of a hot-seat game.
type Interactive struct {
	Prompt string

	in   *bufio.Reader
	out  io.Writer
	src  io.Reader
	once sync.Once
}

// NewInteractive reads moves from r and writes prompts to w.
func NewInteractive(r io.Reader, w io.Writer) *Interactive {
	return &Interactive{
		Prompt: DefaultPrompt,
		in:     bufio.NewReader(r),
		out:    w,
		src:    r,
	}
}

func (s *Interactive) Choose(v game.Variant) (game.Move, error) {
	p := v.State().CurrentPlayer()
	if _, err := fmt.Fprintf(s.out, "[%s] %s", p, s.Prompt); err != nil {
		return "", errors.WithStack(err)
	}
	line, err := s.in.ReadString('\n')
	if err != nil && !(err == io.EOF && strings.TrimSpace(line) != "") {
		return "", errors.Wrap(err, "reading move")
	}
	return v.NormalizeMove(line), nil
}

// ReadLine reads one raw line, for questions asked outside of a move.
func (s *Interactive) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(s.out, prompt); err != nil {
		return "", errors.WithStack(err)
	}
	line, err := s.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", errors.Wrap(err, "reading input")
	}
	return strings.TrimSpace(line), nil
}

// Close closes the underlying reader if it is an io.Closer. Later calls do nothing.
func (s *Interactive) Close() (err error) {
	s.once.Do(func() {
		if c, ok := s.src.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}
