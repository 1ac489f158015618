package greet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

const DefaultPhrase = "Hello"

var (
	ErrNilGreeter  = errors.New("greet: nil greeter")
	ErrNoOutput    = errors.New("greet: no output sink")
	ErrEmptyPhrase = errors.New("greet: empty phrase")
)

// Greeter writes one greeting line per call to its output sink.
// It is safe for concurrent use when the sink is.
type Greeter struct {
	phrase string
	out    io.Writer
}

type Option func(*Greeter)

func WithPhrase(phrase string) Option {
	return func(g *Greeter) {
		g.phrase = phrase
	}
}

func WithOutput(w io.Writer) Option {
	return func(g *Greeter) {
		g.out = w
	}
}

// New builds a Greeter writing to os.Stdout with DefaultPhrase unless
// overridden by opts.
func New(opts ...Option) (*Greeter, error) {
	g := &Greeter{
		phrase: DefaultPhrase,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.phrase = strings.TrimSpace(g.phrase)
	if g.phrase == "" {
		return nil, ErrEmptyPhrase
	}
	if g.out == nil {
		return nil, ErrNoOutput
	}
	return g, nil
}

func (g *Greeter) Phrase() string {
	if g == nil || g.phrase == "" {
		return DefaultPhrase
	}
	return g.phrase
}

// Format returns the greeting line for recipient, without a trailing newline.
func (g *Greeter) Format(recipient string) string {
	return g.Phrase() + ", " + recipient + "!"
}

// Greet writes the greeting for recipient as a single line. Preconditions are
// checked before anything is formatted: a nil Greeter reports ErrNilGreeter and
// a Greeter without a sink reports ErrNoOutput.
func (g *Greeter) Greet(recipient string) error {
	if g == nil {
		return ErrNilGreeter
	}
	if g.out == nil {
		return ErrNoOutput
	}
	// one Write per line keeps concurrent callers from interleaving
	if _, err := io.WriteString(g.out, g.Format(recipient)+"\n"); err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	return nil
}

// Format returns the default greeting line for recipient.
func Format(recipient string) string {
	return DefaultPhrase + ", " + recipient + "!"
}

// Greet writes the default greeting for recipient to standard output.
// Write failures are logged and otherwise dropped.
func Greet(recipient string) {
	g := &Greeter{phrase: DefaultPhrase, out: os.Stdout}
	if err := g.Greet(recipient); err != nil {
		log.Error().Err(err).Msg("greet: stdout write failed")
	}
}
