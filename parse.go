package tilde

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// A segment is one element of a parsed template: literal text when dir is
// nil, otherwise a directive.
type segment struct {
	text string
	dir  *directive
}

// directive is a closed, parse-time-resolved representation of one formatting
// instruction. Group directives carry their nested clauses.
type directive struct {
	kind       byte    // lowercased directive character
	params     []param // prefix parameters, in order
	colon, at  bool    // modifier flags
	clauses    [][]segment
	defaultIdx int // conditional clause used for out-of-range selectors; -1 none
	pos        int // byte offset of '~' in the template source
}

type paramKind uint8

const (
	paramEmpty     paramKind = iota // omitted position, the directive default applies
	paramInt                        // a literal integer
	paramChar                       // 'c
	paramRemaining                  // #
	paramFromArgs                   // v
)

type param struct {
	kind paramKind
	num  int
	ch   rune
}

// groupClosers maps an opening group directive to its closer.
var groupClosers = map[byte]byte{'[': ']', '{': '}', '<': '>', '(': ')'}

const simpleKinds = "adrpf*t^%&~"

func parseTemplate(src string) ([]segment, error) {
	clauses, _, end, err := parseBody(src, 0, 0)
	if err != nil {
		return nil, err
	}
	if end != len(src) {
		// Unreachable when close==0; parseBody consumes to the end.
		return nil, errAt(end, ErrMalformedDirective, "unexpected trailing input")
	}
	return clauses[0], nil
}

// parseBody scans src from position i until the directive closing close (or
// end of input when close is 0), splitting clauses on ~; at this nesting
// depth. It returns the clauses, the index of the default clause (-1 if
// none), and the position just past the closer.
func parseBody(src string, i int, close byte) ([][]segment, int, int, error) {
	var (
		clauses    [][]segment
		current    []segment
		defaultIdx = -1
	)
	for i < len(src) {
		tilde := strings.IndexByte(src[i:], '~')
		if tilde < 0 {
			current = append(current, segment{text: src[i:]})
			i = len(src)
			break
		}
		if tilde > 0 {
			current = append(current, segment{text: src[i : i+tilde]})
			i += tilde
		}
		d, next, err := parseDirective(src, i)
		if err != nil {
			return nil, 0, 0, err
		}
		i = next
		switch {
		case close != 0 && d.kind == close:
			clauses = append(clauses, current)
			return clauses, defaultIdx, i, nil
		case d.kind == ';':
			if close == 0 {
				return nil, 0, 0, errAt(d.pos, ErrMalformedDirective, "clause separator outside a group")
			}
			clauses = append(clauses, current)
			current = nil
			if d.colon {
				// ~:; marks the clause that follows as the default.
				defaultIdx = len(clauses)
			}
		case d.kind == ']' || d.kind == '}' || d.kind == '>' || d.kind == ')':
			return nil, 0, 0, errAt(d.pos, ErrMalformedDirective, "unmatched ~%c", d.kind)
		default:
			if closer, ok := groupClosers[d.kind]; ok {
				inner, innerDefault, after, err := parseBody(src, i, closer)
				if err != nil {
					return nil, 0, 0, err
				}
				d.clauses = inner
				d.defaultIdx = innerDefault
				i = after
			}
			current = append(current, segment{dir: d})
		}
	}
	if close != 0 {
		return nil, 0, 0, errAt(i, ErrMalformedDirective, "unterminated group, expected ~%c", close)
	}
	clauses = append(clauses, current)
	return clauses, defaultIdx, i, nil
}

// parseDirective parses the directive starting at the '~' at src[pos]. It
// stops after the directive kind character; group bodies are handled by the
// caller.
func parseDirective(src string, pos int) (*directive, int, error) {
	d := &directive{pos: pos, defaultIdx: -1}
	i := pos + 1
	if i >= len(src) {
		return nil, 0, errAt(pos, ErrMalformedDirective, "template ends after ~")
	}

	// Prefix parameters. A position may be left empty (its default applies),
	// but a comma must always be followed by another position.
	afterComma := false
	for {
		p, next, ok, err := parseParam(src, i, pos)
		if err != nil {
			return nil, 0, err
		}
		switch {
		case ok:
			d.params = append(d.params, p)
			i = next
		case i < len(src) && src[i] == ',':
			d.params = append(d.params, param{kind: paramEmpty})
		case afterComma:
			return nil, 0, errAt(pos, ErrMalformedDirective, "trailing comma in parameter list")
		}
		if i < len(src) && src[i] == ',' {
			i++
			afterComma = true
			continue
		}
		break
	}

	// Modifier flags, at most one of each.
	for i < len(src) {
		switch src[i] {
		case ':':
			if d.colon {
				return nil, 0, errAt(pos, ErrMalformedDirective, "duplicate : modifier")
			}
			d.colon = true
			i++
			continue
		case '@':
			if d.at {
				return nil, 0, errAt(pos, ErrMalformedDirective, "duplicate @ modifier")
			}
			d.at = true
			i++
			continue
		}
		break
	}

	if i >= len(src) {
		return nil, 0, errAt(pos, ErrMalformedDirective, "missing directive character")
	}
	kind := src[i]
	if kind >= 'A' && kind <= 'Z' {
		kind += 'a' - 'A'
	}
	i++
	switch {
	case strings.IndexByte(simpleKinds, kind) >= 0:
	case kind == ';' || kind == '[' || kind == ']' || kind == '{' || kind == '}' ||
		kind == '<' || kind == '>' || kind == '(' || kind == ')':
	default:
		return nil, 0, errAt(pos, ErrMalformedDirective, "unrecognized directive ~%c", src[i-1])
	}
	d.kind = kind
	return d, i, nil
}

// parseParam parses a single prefix parameter at src[i]. ok is false when
// src[i] does not start a parameter.
func parseParam(src string, i, dirPos int) (param, int, bool, error) {
	if i >= len(src) {
		return param{}, i, false, nil
	}
	switch c := src[i]; {
	case c == '\'':
		r, size := utf8.DecodeRuneInString(src[i+1:])
		if size == 0 {
			return param{}, 0, false, errAt(dirPos, ErrMalformedDirective, "unterminated character parameter")
		}
		return param{kind: paramChar, ch: r}, i + 1 + size, true, nil
	case c == '#':
		return param{kind: paramRemaining}, i + 1, true, nil
	case c == 'v' || c == 'V':
		return param{kind: paramFromArgs}, i + 1, true, nil
	case c >= '0' && c <= '9', c == '-', c == '+':
		j := i
		if c == '-' || c == '+' {
			j++
		}
		start := j
		for j < len(src) && src[j] >= '0' && src[j] <= '9' {
			j++
		}
		if j == start {
			// A bare sign is not a parameter; let the caller reject it as
			// an unknown directive character.
			return param{}, i, false, nil
		}
		n, err := strconv.Atoi(src[i:j])
		if err != nil {
			return param{}, 0, false, errAt(dirPos, ErrMalformedDirective, "bad integer parameter %q", src[i:j])
		}
		return param{kind: paramInt, num: n}, j, true, nil
	}
	return param{}, i, false, nil
}
