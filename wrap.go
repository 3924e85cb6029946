package tilde

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// Wrap greedily word-wraps s to the given display width, breaking on Unicode
// word boundaries. Existing newlines are preserved; a width of zero or less
// returns s unchanged. A single word wider than the width is left unbroken
// on its own line.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	var sb strings.Builder
	col := 0
	var pending string // whitespace held back until the next word fits
	flushLine := func() {
		sb.WriteString("\n")
		col = 0
		pending = ""
	}
	tokens := words.FromString(s)
	for tokens.Next() {
		tok := tokens.Value()
		if tok == "\n" || tok == "\r\n" {
			flushLine()
			continue
		}
		if isBlank(tok) {
			pending += tok
			continue
		}
		w := runewidth.StringWidth(tok)
		lead := runewidth.StringWidth(pending)
		if col > 0 && col+lead+w > width {
			flushLine()
		}
		sb.WriteString(pending)
		col += lead
		pending = ""
		sb.WriteString(tok)
		col += w
	}
	return sb.String()
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return s != ""
}

// convertCase applies the case-conversion group rules: plain lowercases,
// colon capitalizes every word, at capitalizes only the first word, and both
// together uppercase.
func convertCase(s string, colon, at bool) string {
	switch {
	case colon && at:
		return strings.ToUpper(s)
	case colon:
		return mapWords(s, capitalize)
	case at:
		first := true
		return mapWords(s, func(w string) string {
			if first {
				first = false
				return capitalize(w)
			}
			return strings.ToLower(w)
		})
	default:
		return strings.ToLower(s)
	}
}

// mapWords applies fn to every word token in s, leaving whitespace and
// punctuation spans untouched.
func mapWords(s string, fn func(string) string) string {
	var sb strings.Builder
	tokens := words.FromString(s)
	for tokens.Next() {
		tok := tokens.Value()
		if startsWithLetter(tok) {
			sb.WriteString(fn(tok))
		} else {
			sb.WriteString(tok)
		}
	}
	return sb.String()
}

func startsWithLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// JoinWords joins items into an English list phrase: nothing for an empty
// list, the lone element for one, "x and y" for two, and a serial-comma
// "x, y, and z" beyond that.
func JoinWords(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
