// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package lexer turns program text into a slice of frames: numeric
// literals (scalar and array, with an explicit "*" standing for NaN),
// names (active and passive), strings, marks, and the two bracket
// tokens "]" and "}" that resolve directly to the mklist/mkproc vm
// ops rather than to a dict lookup.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/apeyser/neumundtiere/frame"
	"github.com/apeyser/neumundtiere/intern"
	"github.com/apeyser/neumundtiere/numeric"
	"github.com/apeyser/neumundtiere/ops"
)

const eof = -1

// ParseError reports a malformed numeric literal.
type ParseError struct {
	Kind string
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lexer: %s parse error: %v (%q)", e.Kind, e.Err, e.Text)
}
func (e *ParseError) Unwrap() error { return e.Err }

// IllformedError reports input that is not well formed. Tokenize does
// not return it: a malformed array element surfaces as a ParseError and
// an unterminated array as an IllegalSymError.
type IllformedError struct{ Text string }

func (e *IllformedError) Error() string { return fmt.Sprintf("lexer: illformed input %q", e.Text) }

// IllegalSymError is returned for a token that fits none of the
// recognized shapes: an unterminated string or array, or a bare
// delimiter with no opener.
type IllegalSymError struct{ Sym string }

func (e *IllegalSymError) Error() string { return fmt.Sprintf("lexer: illegal symbol %q", e.Sym) }

// scanner walks a byte slice left to right, producing one frame per
// call to next.
type scanner struct {
	from []byte
	pos  int
	tbl  *intern.Table
}

func (s *scanner) peek() int {
	if s.pos >= len(s.from) {
		return eof
	}
	return int(s.from[s.pos])
}

func (s *scanner) peekAt(off int) int {
	if s.pos+off >= len(s.from) {
		return eof
	}
	return int(s.from[s.pos+off])
}

func isspace(c int) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isdigit(c int) bool { return c >= '0' && c <= '9' }

// isdelim reports whether c terminates a bare name or number without
// being part of it.
func isdelim(c int) bool {
	switch c {
	case eof, ' ', '\t', '\n', '\r', '/', '{', '}', '[', ']', '(', ')':
		return true
	}
	return false
}

func (s *scanner) chompws() {
	for {
		for s.pos < len(s.from) && isspace(int(s.from[s.pos])) {
			s.pos++
		}
		if s.peek() != '|' {
			return
		}
		for s.pos < len(s.from) && s.from[s.pos] != '\n' {
			s.pos++
		}
	}
}

// Tokenize lexes the whole of src into frames, interning any name it
// encounters into table.
func Tokenize(table *intern.Table, src string) ([]frame.Frame, error) {
	s := &scanner{from: []byte(src), tbl: table}
	var out []frame.Frame
	for {
		s.chompws()
		if s.pos >= len(s.from) {
			return out, nil
		}
		f, err := s.next()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
}

func (s *scanner) next() (frame.Frame, error) {
	switch c := s.peek(); c {
	case '[':
		s.pos++
		return frame.PassiveMark, nil
	case ']':
		s.pos++
		return ops.MkList, nil
	case '{':
		s.pos++
		return frame.ActiveMark, nil
	case '}':
		s.pos++
		return ops.MkProc, nil
	case '/':
		s.pos++
		name := s.readBare()
		if name == "" {
			return nil, &IllegalSymError{Sym: "/"}
		}
		return frame.PassiveName(s.tbl.Intern(name)), nil
	case '(':
		return s.readString()
	case '<':
		return s.readArray()
	default:
		if c == '+' || c == '-' || c == '.' || isdigit(c) {
			if f, ok, err := s.tryNumber(); ok || err != nil {
				return f, err
			}
		}
		name := s.readBare()
		if name == "" {
			sym := string(rune(c))
			s.pos++
			return nil, &IllegalSymError{Sym: sym}
		}
		return frame.ActiveName(s.tbl.Intern(name)), nil
	}
}

// readBare consumes a run of non-delimiter bytes, the shape used both
// for active names and (after a leading '/') passive names.
func (s *scanner) readBare() string {
	start := s.pos
	for !isdelim(s.peek()) {
		s.pos++
	}
	return string(s.from[start:s.pos])
}

func (s *scanner) readString() (frame.Frame, error) {
	start := s.pos
	s.pos++ // consume '('
	var buf []byte
	for {
		c := s.peek()
		if c == eof {
			return nil, &IllegalSymError{Sym: string(s.from[start:s.pos])}
		}
		if c == '\\' && s.peekAt(1) == '(' {
			buf = append(buf, '(')
			s.pos += 2
			continue
		}
		if c == ')' {
			s.pos++
			return frame.PassiveString(string(buf)), nil
		}
		buf = append(buf, byte(c))
		s.pos++
	}
}

// tryNumber attempts to scan a numeric literal (scalar int, usize or
// float, each with its optional l/u/d suffix) starting at the current
// position. ok is false when the run of digit-shaped bytes turns out
// to be the prefix of a bare name instead (e.g. "1x"), in which case
// the scanner position is left unmodified so next falls through to
// readBare.
func (s *scanner) tryNumber() (frame.Frame, bool, error) {
	start := s.pos
	p := s.pos
	if s.from[p] == '+' || s.from[p] == '-' {
		p++
	}
	digitsStart := p
	for p < len(s.from) && isdigit(int(s.from[p])) {
		p++
	}
	isFloat := false
	if p < len(s.from) && s.from[p] == '.' {
		isFloat = true
		p++
		for p < len(s.from) && isdigit(int(s.from[p])) {
			p++
		}
	}
	if p == digitsStart && !isFloat {
		return nil, false, nil
	}
	if p < len(s.from) && (s.from[p] == 'e' || s.from[p] == 'E') {
		q := p + 1
		if q < len(s.from) && (s.from[q] == '+' || s.from[q] == '-') {
			q++
		}
		if q < len(s.from) && isdigit(int(s.from[q])) {
			isFloat = true
			p = q
			for p < len(s.from) && isdigit(int(s.from[p])) {
				p++
			}
		}
	}
	suffix := peekByteOrEOF(s.from, p)
	if !isdelim(suffix) && suffix != 'u' && suffix != 'l' && suffix != 'd' {
		return nil, false, nil
	}

	text := string(s.from[start:p])
	s.pos = p
	switch {
	case s.pos < len(s.from) && s.from[s.pos] == 'u' && !isFloat:
		s.pos++
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, true, &ParseError{Kind: "usize", Text: text, Err: err}
		}
		return frame.NumFrame{Num: numeric.NumUSize(numeric.Scalar(numeric.Of(v)))}, true, nil
	case s.pos < len(s.from) && s.from[s.pos] == 'd':
		s.pos++
		fallthrough
	case isFloat:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, true, &ParseError{Kind: "float", Text: text, Err: err}
		}
		return frame.NumFrame{Num: numeric.NumFloat(numeric.Scalar(numeric.Of(v)))}, true, nil
	default:
		if s.pos < len(s.from) && s.from[s.pos] == 'l' {
			s.pos++
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, true, &ParseError{Kind: "int", Text: text, Err: err}
		}
		return frame.NumFrame{Num: numeric.NumInt(numeric.Scalar(numeric.Of(v)))}, true, nil
	}
}

// peekByteOrEOF mirrors scanner.peek but for an arbitrary offset into
// an arbitrary slice, returning eof past the end.
func peekByteOrEOF(from []byte, p int) int {
	if p >= len(from) {
		return eof
	}
	return int(from[p])
}

// readArray scans "<d ... >", "<l ... >" or "<u ... >": a homogeneous
// array literal whose body is whitespace-separated elements, each
// either a number of the declared kind or "*" standing for NaN.
func (s *scanner) readArray() (frame.Frame, error) {
	start := s.pos
	kind := s.peekAt(1)
	if kind != 'd' && kind != 'l' && kind != 'u' {
		s.pos++
		return nil, &IllegalSymError{Sym: "<"}
	}
	s.pos += 2
	switch kind {
	case 'd':
		vs, err := scanArray(s, start, "float", func(t string) (float64, error) { return strconv.ParseFloat(t, 64) })
		if err != nil {
			return nil, err
		}
		return frame.NumFrame{Num: numeric.NumFloat(numeric.ArrayOf(vs))}, nil
	case 'l':
		vs, err := scanArray(s, start, "int", func(t string) (int64, error) { return strconv.ParseInt(t, 10, 64) })
		if err != nil {
			return nil, err
		}
		return frame.NumFrame{Num: numeric.NumInt(numeric.ArrayOf(vs))}, nil
	default:
		vs, err := scanArray(s, start, "usize", func(t string) (uint64, error) { return strconv.ParseUint(t, 10, 64) })
		if err != nil {
			return nil, err
		}
		return frame.NumFrame{Num: numeric.NumUSize(numeric.ArrayOf(vs))}, nil
	}
}

func scanArray[T numeric.Primitive](s *scanner, start int, kind string, parse func(string) (T, error)) ([]numeric.Value[T], error) {
	var out []numeric.Value[T]
	for {
		for s.pos < len(s.from) && isspace(int(s.from[s.pos])) {
			s.pos++
		}
		if s.pos >= len(s.from) {
			return nil, &IllegalSymError{Sym: string(s.from[start:s.pos])}
		}
		if s.from[s.pos] == '>' {
			s.pos++
			return out, nil
		}
		if s.from[s.pos] == '*' {
			s.pos++
			out = append(out, numeric.NaNOf[T]())
			continue
		}
		elemStart := s.pos
		for s.pos < len(s.from) && s.from[s.pos] != '>' && !isspace(int(s.from[s.pos])) {
			s.pos++
		}
		text := string(s.from[elemStart:s.pos])
		v, err := parse(text)
		if err != nil {
			return nil, &ParseError{Kind: kind, Text: text, Err: err}
		}
		out = append(out, numeric.Of(v))
	}
}
