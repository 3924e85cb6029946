package tilde

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// errEarlyExit is the ~^ termination signal. Iteration loops consume it;
// Render treats it as a normal end of output.
var errEarlyExit = errors.New("early exit")

// cursor tracks the current position in the argument list. Jumps are clamped
// to the list bounds; only consuming past the end is an error.
type cursor struct {
	args []any
	pos  int
}

func (c *cursor) consume() (any, error) {
	if c.pos >= len(c.args) {
		return nil, ErrArgumentExhausted
	}
	v := c.args[c.pos]
	c.pos++
	return v, nil
}

func (c *cursor) peek() (any, bool) {
	if c.pos >= len(c.args) {
		return nil, false
	}
	return c.args[c.pos], true
}

func (c *cursor) jump(delta int) { c.goTo(c.pos + delta) }

func (c *cursor) goTo(n int) {
	switch {
	case n < 0:
		c.pos = 0
	case n > len(c.args):
		c.pos = len(c.args)
	default:
		c.pos = n
	}
}

func (c *cursor) remaining() int { return len(c.args) - c.pos }

// sink is an append-only output stream that tracks the display width emitted
// since the last newline, for the column-relative directives.
type sink struct {
	w   io.Writer
	col int
}

func newSink(w io.Writer) *sink { return &sink{w: w} }

func (s *sink) writeString(str string) error {
	if str == "" {
		return nil
	}
	if _, err := io.WriteString(s.w, str); err != nil {
		return err
	}
	if i := strings.LastIndexByte(str, '\n'); i >= 0 {
		s.col = runewidth.StringWidth(str[i+1:])
	} else {
		s.col += runewidth.StringWidth(str)
	}
	return nil
}

type evaluator struct {
	out *sink
	cfg Config
}

// run evaluates one clause body against cur. inIteration marks whether a ~^
// should be scoped to an enclosing iteration pass.
func (e *evaluator) run(body []segment, cur *cursor, inIteration bool) error {
	for _, seg := range body {
		if seg.dir == nil {
			if err := e.out.writeString(seg.text); err != nil {
				return err
			}
			continue
		}
		if err := e.directive(seg.dir, cur, inIteration); err != nil {
			return err
		}
	}
	return nil
}

func (e *evaluator) directive(d *directive, cur *cursor, inIteration bool) error {
	ps, err := e.resolveParams(d, cur)
	if err != nil {
		return err
	}
	switch d.kind {
	case 'a':
		return e.evalAesthetic(d, ps, cur)
	case 'd':
		return e.evalDecimal(d, ps, cur)
	case 'r':
		return e.evalRadix(d, ps, cur)
	case 'p':
		return e.evalPlural(d, cur)
	case 'f':
		return e.evalFixed(d, ps, cur)
	case '*':
		e.evalJump(d, ps, cur)
		return nil
	case '[':
		return e.evalConditional(d, ps, cur, inIteration)
	case '{':
		return e.evalIteration(d, ps, cur)
	case '^':
		if cur.remaining() == 0 {
			return errEarlyExit
		}
		return nil
	case '<':
		return e.evalJustify(d, ps, cur, inIteration)
	case '(':
		return e.evalCase(d, cur, inIteration)
	case 't':
		return e.evalTabulate(d, ps)
	case '%':
		return e.out.writeString(strings.Repeat("\n", nonneg(ps.intAt(0, 1))))
	case '&':
		return e.evalFreshLine(ps)
	case '~':
		return e.out.writeString(strings.Repeat("~", nonneg(ps.intAt(0, 1))))
	}
	// Parse admits only the kinds above plus group punctuation, which never
	// reaches evaluation.
	return errAt(d.pos, ErrMalformedDirective, "unevaluable directive ~%c", d.kind)
}

// resolved holds prefix parameter values after v and # substitution.
type resolved struct {
	vals []pvalue
}

type pvalue struct {
	set    bool
	isChar bool
	num    int
	ch     rune
}

func (r resolved) intAt(i, def int) int {
	if i >= len(r.vals) || !r.vals[i].set || r.vals[i].isChar {
		return def
	}
	return r.vals[i].num
}

func (r resolved) hasInt(i int) bool {
	return i < len(r.vals) && r.vals[i].set && !r.vals[i].isChar
}

func (r resolved) charAt(i int, def rune) rune {
	if i >= len(r.vals) || !r.vals[i].set {
		return def
	}
	if r.vals[i].isChar {
		return r.vals[i].ch
	}
	return rune(r.vals[i].num)
}

// resolveParams substitutes v parameters (consumed from the arguments, left
// to right, before the directive itself runs) and # parameters (remaining
// argument count).
func (e *evaluator) resolveParams(d *directive, cur *cursor) (resolved, error) {
	if len(d.params) == 0 {
		return resolved{}, nil
	}
	vals := make([]pvalue, len(d.params))
	for i, p := range d.params {
		switch p.kind {
		case paramInt:
			vals[i] = pvalue{set: true, num: p.num}
		case paramChar:
			vals[i] = pvalue{set: true, isChar: true, ch: p.ch}
		case paramRemaining:
			vals[i] = pvalue{set: true, num: cur.remaining()}
		case paramFromArgs:
			v, err := cur.consume()
			if err != nil {
				return resolved{}, errAt(d.pos, err, "v parameter")
			}
			n, ok := toInt(v)
			if !ok {
				return resolved{}, errAt(d.pos, ErrInvalidArgumentType, "v parameter needs an integer, got %T", v)
			}
			vals[i] = pvalue{set: true, num: n}
		}
	}
	return resolved{vals: vals}, nil
}

func (e *evaluator) evalAesthetic(d *directive, ps resolved, cur *cursor) error {
	v, err := cur.consume()
	if err != nil {
		return errAt(d.pos, err, "~a needs an argument")
	}
	s := stringify(v)
	mincol := ps.intAt(0, 0)
	pad := ps.charAt(1, e.cfg.padRune())
	// @ right-justifies; the default pads on the right.
	return e.out.writeString(padTo(s, mincol, pad, d.at))
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (e *evaluator) evalDecimal(d *directive, ps resolved, cur *cursor) error {
	v, err := cur.consume()
	if err != nil {
		return errAt(d.pos, err, "~d needs an argument")
	}
	n, ok := toBigInt(v)
	if !ok {
		return errAt(d.pos, ErrInvalidArgumentType, "~d needs an integer, got %T", v)
	}
	s := n.Text(10)
	if d.colon {
		sep := e.cfg.GroupSeparator
		if len(ps.vals) > 2 && ps.vals[2].set {
			sep = string(ps.charAt(2, ','))
		}
		s = groupDigits(s, sep, ps.intAt(3, e.cfg.GroupSize))
	}
	if d.at && n.Sign() >= 0 {
		s = "+" + s
	}
	// Numbers justify to the right within mincol.
	return e.out.writeString(padTo(s, ps.intAt(0, 0), ps.charAt(1, e.cfg.padRune()), true))
}

func (e *evaluator) evalRadix(d *directive, ps resolved, cur *cursor) error {
	v, err := cur.consume()
	if err != nil {
		return errAt(d.pos, err, "~r needs an argument")
	}
	n, ok := toBigInt(v)
	if !ok {
		return errAt(d.pos, ErrInvalidArgumentType, "~r needs an integer, got %T", v)
	}
	if ps.hasInt(0) {
		base := ps.intAt(0, 10)
		if base < 2 || base > 36 {
			return errAt(d.pos, ErrInvalidArgumentType, "radix %d out of range 2..36", base)
		}
		return e.out.writeString(n.Text(base))
	}
	var s string
	switch {
	case d.at:
		if !n.IsInt64() {
			return errAt(d.pos, ErrInvalidArgumentType, "%s is not representable as a Roman numeral", n)
		}
		s, err = roman(n.Int64(), d.colon)
		if err != nil {
			return errAt(d.pos, ErrInvalidArgumentType, "%v", err)
		}
		if !d.colon {
			s = strings.ToLower(s)
		}
	case d.colon:
		s, err = ordinal(n)
		if err != nil {
			return errAt(d.pos, ErrInvalidArgumentType, "%v", err)
		}
	default:
		s, err = cardinal(n)
		if err != nil {
			return errAt(d.pos, ErrInvalidArgumentType, "%v", err)
		}
	}
	return e.out.writeString(s)
}

func (e *evaluator) evalPlural(d *directive, cur *cursor) error {
	if d.colon {
		// Re-pluralize the value just printed.
		cur.jump(-1)
	}
	v, err := cur.consume()
	if err != nil {
		return errAt(d.pos, err, "~p needs an argument")
	}
	f, ok := toFloat(v)
	if !ok {
		return errAt(d.pos, ErrInvalidArgumentType, "~p needs a number, got %T", v)
	}
	singular := f == 1
	if d.at {
		if singular {
			return e.out.writeString("y")
		}
		return e.out.writeString("ies")
	}
	if singular {
		return nil
	}
	return e.out.writeString("s")
}

func (e *evaluator) evalFixed(d *directive, ps resolved, cur *cursor) error {
	v, err := cur.consume()
	if err != nil {
		return errAt(d.pos, err, "~f needs an argument")
	}
	f, ok := toFloat(v)
	if !ok {
		return errAt(d.pos, ErrInvalidArgumentType, "~f needs a number, got %T", v)
	}
	digits := -1
	if ps.hasInt(1) {
		digits = ps.intAt(1, -1)
	}
	s := formatFixed(f, digits, d.at, e.cfg.DecimalPoint)
	return e.out.writeString(padTo(s, ps.intAt(0, 0), ps.charAt(2, e.cfg.padRune()), true))
}

func (e *evaluator) evalJump(d *directive, ps resolved, cur *cursor) {
	switch {
	case d.at:
		cur.goTo(ps.intAt(0, 0))
	case d.colon:
		cur.jump(-ps.intAt(0, 1))
	default:
		cur.jump(ps.intAt(0, 1))
	}
}

func (e *evaluator) evalConditional(d *directive, ps resolved, cur *cursor, inIteration bool) error {
	var selector int
	if ps.hasInt(0) {
		selector = ps.intAt(0, 0)
	} else {
		v, err := cur.consume()
		if err != nil {
			return errAt(d.pos, err, "~[ needs a selector argument")
		}
		n, ok := toInt(v)
		if !ok {
			return errAt(d.pos, ErrInvalidArgumentType, "~[ selector must be an integer, got %T", v)
		}
		selector = n
	}
	clause := -1
	switch {
	case selector >= 0 && selector < len(d.clauses):
		clause = selector
	case d.defaultIdx >= 0 && d.defaultIdx < len(d.clauses):
		clause = d.defaultIdx
	}
	if clause < 0 {
		// Out of range with no default clause: no output.
		return nil
	}
	return e.run(d.clauses[clause], cur, inIteration)
}

func (e *evaluator) evalIteration(d *directive, ps resolved, cur *cursor) error {
	max := -1
	if ps.hasInt(0) {
		max = ps.intAt(0, 0)
	}
	body := d.clauses[0]
	iterate := func(c *cursor) error {
		for n := 0; c.remaining() > 0; n++ {
			if max >= 0 && n >= max {
				break
			}
			before := c.pos
			if err := e.run(body, c, true); err != nil {
				if errors.Is(err, errEarlyExit) {
					break
				}
				return err
			}
			if c.pos == before {
				// A pass that consumes nothing would loop forever.
				break
			}
		}
		return nil
	}
	if d.at {
		return iterate(cur)
	}
	v, err := cur.consume()
	if err != nil {
		return errAt(d.pos, err, "~{ needs a sequence argument")
	}
	seq, ok := toSequence(v)
	if !ok {
		return errAt(d.pos, ErrInvalidArgumentType, "~{ needs a sequence, got %T", v)
	}
	return iterate(&cursor{args: seq})
}

// capture renders a clause body into a string using a fresh sink. The
// argument cursor is shared with the caller.
func (e *evaluator) capture(body []segment, cur *cursor, inIteration bool) (string, error) {
	var sb strings.Builder
	sub := &evaluator{out: newSink(&sb), cfg: e.cfg}
	if err := sub.run(body, cur, inIteration); err != nil && !errors.Is(err, errEarlyExit) {
		return "", err
	}
	return sb.String(), nil
}

func (e *evaluator) evalJustify(d *directive, ps resolved, cur *cursor, inIteration bool) error {
	parts := make([]string, 0, len(d.clauses))
	total := 0
	for _, clause := range d.clauses {
		s, err := e.capture(clause, cur, inIteration)
		if err != nil {
			return err
		}
		parts = append(parts, s)
		total += runewidth.StringWidth(s)
	}
	mincol := ps.intAt(0, 0)
	pad := ps.charAt(1, e.cfg.padRune())
	need := mincol - total
	if need <= 0 {
		return e.out.writeString(strings.Join(parts, ""))
	}
	gaps := len(parts) - 1
	leading, trailing := d.colon, d.at
	if gaps == 0 && !leading && !trailing {
		// A lone segment is right-justified.
		leading = true
	}
	if leading {
		gaps++
	}
	if trailing {
		gaps++
	}
	base, extra := need/gaps, need%gaps
	gap := func(i int) string {
		n := base
		if i < extra {
			n++
		}
		return strings.Repeat(string(pad), n)
	}
	var sb strings.Builder
	g := 0
	if leading {
		sb.WriteString(gap(g))
		g++
	}
	for i, part := range parts {
		if i > 0 {
			sb.WriteString(gap(g))
			g++
		}
		sb.WriteString(part)
	}
	if trailing {
		sb.WriteString(gap(g))
	}
	return e.out.writeString(sb.String())
}

func (e *evaluator) evalCase(d *directive, cur *cursor, inIteration bool) error {
	s, err := e.capture(d.clauses[0], cur, inIteration)
	if err != nil {
		return err
	}
	return e.out.writeString(convertCase(s, d.colon, d.at))
}

func (e *evaluator) evalTabulate(d *directive, ps resolved) error {
	pad := string(ps.charAt(1, e.cfg.padRune()))
	if d.at {
		// Relative: emit exactly n fill characters.
		return e.out.writeString(strings.Repeat(pad, nonneg(ps.intAt(0, 1))))
	}
	col := ps.intAt(0, 1)
	if e.out.col >= col {
		return nil
	}
	return e.out.writeString(strings.Repeat(pad, col-e.out.col))
}

func (e *evaluator) evalFreshLine(ps resolved) error {
	n := ps.intAt(0, 1)
	if e.out.col > 0 {
		if err := e.out.writeString("\n"); err != nil {
			return err
		}
	}
	if n > 1 {
		return e.out.writeString(strings.Repeat("\n", n-1))
	}
	return nil
}

func nonneg(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
