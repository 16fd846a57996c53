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

package content

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// ErrNoCurrentPoint is returned by operations which need to know where the
// current path ends, if no path segment has been added yet.
var ErrNoCurrentPoint = errors.New("current point is undefined")

// trailer is the end of a content stream which has been wrapped in
// a save/restore pair.
const trailer = "Q\n"

// Builder accumulates the operators of a PDF content stream.
//
// Once an operation fails, the error is stored in Err and all subsequent
// operations are ignored.
type Builder struct {
	// Err is the first error encountered while building the stream.
	Err error

	// Measure, if set, is used to compute the width of text for
	// [Builder.Text].  If Measure is nil, all text has zero width.
	Measure Measurer

	buf        []byte
	trailerLen int

	current    vec.Vec2
	hasCurrent bool
}

// New allocates a new Builder.
//
// If pushState is true, the stream is enclosed in a "q ... Q" pair and all
// later operators are placed inside this pair.
func New(pushState bool) *Builder {
	b := &Builder{}
	if pushState {
		b.buf = append(b.buf, "q "+trailer...)
		b.trailerLen = len(trailer)
	}
	return b
}

// insert places s before the trailer.
func (b *Builder) insert(s string) {
	if b.Err != nil {
		return
	}
	pos := len(b.buf) - b.trailerLen
	b.buf = append(b.buf, s...)
	copy(b.buf[pos+len(s):], b.buf[pos:pos+b.trailerLen])
	copy(b.buf[pos:], s)
}

func (b *Builder) insertf(format string, args ...any) {
	b.insert(fmt.Sprintf(format, args...))
}

// Append inserts literal content stream text, for example the output of a
// nested Builder.
func (b *Builder) Append(s string) {
	b.insert(s)
}

// CurrentPoint returns the end point of the path under construction.
// The second return value is false, if no current point is defined.
func (b *Builder) CurrentPoint() (vec.Vec2, bool) {
	return b.current, b.hasCurrent
}

func (b *Builder) setCurrent(p vec.Vec2) {
	b.current = p
	b.hasCurrent = true
}

// needCurrent checks the precondition for operations which continue the
// current path.
func (b *Builder) needCurrent(op string) bool {
	if b.Err != nil {
		return false
	}
	if !b.hasCurrent {
		b.Err = fmt.Errorf("%s: %w", op, ErrNoCurrentPoint)
		return false
	}
	return true
}

// String returns the content stream built so far.
func (b *Builder) String() string {
	return string(b.buf)
}

// Finish returns the completed content stream.
// If any operation failed, the first error is returned instead.
func (b *Builder) Finish() (string, error) {
	if b.Err != nil {
		return "", b.Err
	}
	return string(b.buf), nil
}
