package tilde

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMalformedDirective  = errors.New("malformed directive")
	ErrArgumentExhausted   = errors.New("argument list exhausted")
	ErrInvalidArgumentType = errors.New("invalid argument type")
)

// DirectiveError reports a failure tied to one directive in a template.
// It wraps one of the package's sentinel errors, so [errors.Is] works:
//
//	if errors.Is(err, tilde.ErrMalformedDirective) { ... }
type DirectiveError struct {
	Pos    int    // byte offset of the directive's tilde in the template
	Detail string // human-readable description
	Err    error  // underlying sentinel error
}

// Error implements the error interface.
func (e *DirectiveError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Pos, e.Detail)
}

// Unwrap returns the sentinel error.
func (e *DirectiveError) Unwrap() error { return e.Err }

func errAt(pos int, sentinel error, format string, args ...any) error {
	return &DirectiveError{Pos: pos, Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}

// Template is a parsed directive template. It is immutable and safe for
// concurrent use: each render call builds its own argument cursor and writes
// to its own sink.
type Template struct {
	src  string
	body []segment
	cfg  Config
}

// Parse parses a template using [DefaultConfig].
func Parse(src string) (*Template, error) {
	return DefaultConfig().Parse(src)
}

// String returns the template's source text. Re-parsing it yields an
// equivalent template.
func (t *Template) String() string { return t.src }

// Render evaluates the template against args and writes the output to w.
func (t *Template) Render(w io.Writer, args ...any) error {
	e := &evaluator{out: newSink(w), cfg: t.cfg}
	err := e.run(t.body, &cursor{args: args}, false)
	if errors.Is(err, errEarlyExit) {
		// ~^ outside an iteration ends the render; not an error.
		return nil
	}
	return err
}

// Format evaluates the template against args and returns the output.
func (t *Template) Format(args ...any) (string, error) {
	var sb strings.Builder
	if err := t.Render(&sb, args...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write parses template, evaluates it against args, and writes to w.
func Write(w io.Writer, template string, args ...any) error {
	t, err := Parse(template)
	if err != nil {
		return err
	}
	return t.Render(w, args...)
}

// Format parses template, evaluates it against args, and returns the output.
func Format(template string, args ...any) (string, error) {
	t, err := Parse(template)
	if err != nil {
		return "", err
	}
	return t.Format(args...)
}
