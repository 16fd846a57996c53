// seehuhn.de/go/overlay - printable keypad overlays for calculators
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package preview

import (
	"fmt"
	"io"
	"strconv"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokName
	tokString
	tokArray
	tokOperator
)

type token struct {
	kind tokenKind
	num  float64
	text string
}

// A SyntaxError is returned when a content stream cannot be tokenized.
type SyntaxError struct {
	Pos int
	Msg string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("content stream offset %d: %s", err.Pos, err.Msg)
}

// A scanner breaks a content stream into tokens.
type scanner struct {
	buf []byte
	pos int
}

func newScanner(content string) *scanner {
	return &scanner{buf: []byte(content)}
}

// next returns the next token.  At the end of input, io.EOF is returned.
func (s *scanner) next() (token, error) {
	s.skipWhiteSpace()
	if s.pos >= len(s.buf) {
		return token{}, io.EOF
	}

	start := s.pos
	switch b := s.buf[s.pos]; b {
	case '(':
		return s.readString()
	case '<':
		if s.pos+1 < len(s.buf) && s.buf[s.pos+1] == '<' {
			return token{}, s.errorf(start, "dictionaries are not supported")
		}
		return s.readHexString()
	case '/':
		s.pos++
		return token{kind: tokName, text: s.readName()}, nil
	case '[':
		s.pos++
		return s.readArray(start)
	case ']', ')', '>', '{', '}':
		return token{}, s.errorf(start, "unexpected %q", b)
	}

	for s.pos < len(s.buf) && class(s.buf[s.pos]) == regular {
		s.pos++
	}
	word := string(s.buf[start:s.pos])
	if x, err := strconv.ParseFloat(word, 64); err == nil && isNumber(word) {
		return token{kind: tokNumber, num: x}, nil
	}
	return token{kind: tokOperator, text: word}, nil
}

// isNumber excludes words like "Inf" or "1e5", which ParseFloat accepts
// but which are not valid PDF numbers.
func isNumber(word string) bool {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if !(c >= '0' && c <= '9' || c == '.' || c == '+' || c == '-') {
			return false
		}
	}
	return true
}

func (s *scanner) readArray(start int) (token, error) {
	for {
		s.skipWhiteSpace()
		if s.pos >= len(s.buf) {
			return token{}, s.errorf(start, "unterminated array")
		}
		if s.buf[s.pos] == ']' {
			s.pos++
			return token{kind: tokArray}, nil
		}
		_, err := s.next()
		if err != nil {
			return token{}, err
		}
	}
}

func (s *scanner) readString() (token, error) {
	start := s.pos
	s.pos++ // skip '('

	var res []byte
	level := 1
	for s.pos < len(s.buf) {
		b := s.buf[s.pos]
		s.pos++
		switch b {
		case '(':
			level++
		case ')':
			level--
			if level == 0 {
				return token{kind: tokString, text: string(res)}, nil
			}
		case '\\':
			if s.pos >= len(s.buf) {
				break
			}
			b = s.buf[s.pos]
			s.pos++
			switch b {
			case 'n':
				b = '\n'
			case 'r':
				b = '\r'
			case 't':
				b = '\t'
			case 'b':
				b = '\b'
			case 'f':
				b = '\f'
			case '\n':
				continue
			case '0', '1', '2', '3', '4', '5', '6', '7':
				oct := b - '0'
				for i := 0; i < 2 && s.pos < len(s.buf); i++ {
					c := s.buf[s.pos]
					if c < '0' || c > '7' {
						break
					}
					oct = oct*8 + (c - '0')
					s.pos++
				}
				b = oct
			}
		}
		res = append(res, b)
	}
	return token{}, s.errorf(start, "unterminated string")
}

func (s *scanner) readHexString() (token, error) {
	start := s.pos
	s.pos++ // skip '<'

	var res []byte
	first := true
	var hi byte
	for s.pos < len(s.buf) {
		b := s.buf[s.pos]
		s.pos++
		var lo byte
		switch {
		case b == '>':
			if !first {
				res = append(res, hi)
			}
			return token{kind: tokString, text: string(res)}, nil
		case b <= 32:
			continue
		case b >= '0' && b <= '9':
			lo = b - '0'
		case b >= 'A' && b <= 'F':
			lo = b - 'A' + 10
		case b >= 'a' && b <= 'f':
			lo = b - 'a' + 10
		default:
			return token{}, s.errorf(s.pos-1, "invalid hex digit %q", b)
		}
		if first {
			hi = lo << 4
		} else {
			res = append(res, hi|lo)
		}
		first = !first
	}
	return token{}, s.errorf(start, "unterminated hex string")
}

// readName reads a PDF name (without the leading slash).
func (s *scanner) readName() string {
	var name []byte
	for s.pos < len(s.buf) {
		b := s.buf[s.pos]
		if class(b) != regular {
			break
		}
		s.pos++
		if b == '#' && s.pos+1 < len(s.buf) {
			if x, err := strconv.ParseUint(string(s.buf[s.pos:s.pos+2]), 16, 8); err == nil {
				b = byte(x)
				s.pos += 2
			}
		}
		name = append(name, b)
	}
	return string(name)
}

// skipWhiteSpace skips all input (including comments) until a
// non-whitespace character is found.
func (s *scanner) skipWhiteSpace() {
	for s.pos < len(s.buf) {
		b := s.buf[s.pos]
		switch {
		case class(b) == space:
			s.pos++
		case b == '%':
			for s.pos < len(s.buf) && s.buf[s.pos] != '\n' && s.buf[s.pos] != '\r' {
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *scanner) errorf(pos int, format string, args ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

type charClass int

const (
	regular charClass = iota
	space
	delimiter
)

func class(b byte) charClass {
	switch b {
	case 0, 9, 10, 12, 13, 32:
		return space
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return delimiter
	default:
		return regular
	}
}
