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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/content"
)

// flatness is the maximal distance, in device pixels, between a curve and
// its approximating polygon.
const flatness = 0.25

// minHalfWidth makes sure that hairlines remain visible.
const minHalfWidth = 0.5

var errUnbalanced = errors.New("unbalanced Q operator")

type graphicsState struct {
	ctm       matrix.Matrix
	lineWidth float64
}

type renderer struct {
	img    *image.Gray
	raster *vector.Rasterizer

	state graphicsState
	stack []graphicsState

	path    *path.Data // in device coordinates
	current vec.Vec2   // in user coordinates
	start   vec.Vec2   // in user coordinates
}

// Render draws a content stream onto a new grayscale image.
//
// The page size is given in PDF points, and dpi gives the resolution of
// the output.
func Render(stream string, page content.Dimensions, dpi float64) (*image.Gray, error) {
	if !(dpi > 0) {
		return nil, fmt.Errorf("invalid resolution %g", dpi)
	}
	scale := dpi / 72
	w := int(math.Ceil(page.Width * scale))
	h := int(math.Ceil(page.Height * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid page size %gx%g", page.Width, page.Height)
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := &renderer{
		img:    img,
		raster: vector.NewRasterizer(w, h),
		state: graphicsState{
			// PDF user space has the origin at the bottom left,
			// the image has the origin at the top left.
			ctm:       matrix.Matrix{scale, 0, 0, -scale, 0, page.Height * scale},
			lineWidth: 1,
		},
		path: &path.Data{},
	}
	err := r.run(newScanner(stream))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// WritePNG writes an image in PNG format.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func (r *renderer) run(s *scanner) error {
	var args []token
	inText := false
	for {
		tok, err := s.next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if tok.kind != tokOperator {
			args = append(args, tok)
			continue
		}

		op := tok.text
		switch {
		case op == "BT":
			inText = true
		case op == "ET":
			inText = false
		case inText:
			// text operators are not rendered
		default:
			err = r.do(op, args)
			if err != nil {
				return fmt.Errorf("operator %q: %w", op, err)
			}
		}
		args = args[:0]
	}
	if inText {
		return errors.New("unterminated text object")
	}
	return nil
}

// noOperands lists the supported operators which take no operands.
var noOperands = map[string]bool{
	"q": true, "Q": true, "h": true, "n": true,
	"S": true, "s": true, "f": true, "F": true, "f*": true,
	"B": true, "B*": true, "b": true, "b*": true,
}

func (r *renderer) do(op string, args []token) error {
	if noOperands[op] && len(args) > 0 {
		return fmt.Errorf("expected no operands, got %d", len(args))
	}

	switch op {
	case "q":
		r.stack = append(r.stack, r.state)
	case "Q":
		if len(r.stack) == 0 {
			return errUnbalanced
		}
		r.state = r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
	case "cm":
		x, err := numbers(args, 6)
		if err != nil {
			return err
		}
		m := matrix.Matrix{x[0], x[1], x[2], x[3], x[4], x[5]}
		r.state.ctm = m.Mul(r.state.ctm)
	case "w":
		x, err := numbers(args, 1)
		if err != nil {
			return err
		}
		r.state.lineWidth = x[0]

	case "m":
		x, err := numbers(args, 2)
		if err != nil {
			return err
		}
		r.moveTo(vec.Vec2{X: x[0], Y: x[1]})
	case "l":
		x, err := numbers(args, 2)
		if err != nil {
			return err
		}
		r.lineTo(vec.Vec2{X: x[0], Y: x[1]})
	case "c":
		x, err := numbers(args, 6)
		if err != nil {
			return err
		}
		p1 := vec.Vec2{X: x[0], Y: x[1]}
		p2 := vec.Vec2{X: x[2], Y: x[3]}
		p3 := vec.Vec2{X: x[4], Y: x[5]}
		r.path.CubeTo(r.device(p1), r.device(p2), r.device(p3))
		r.current = p3
	case "re":
		x, err := numbers(args, 4)
		if err != nil {
			return err
		}
		r.moveTo(vec.Vec2{X: x[0], Y: x[1]})
		r.lineTo(vec.Vec2{X: x[0] + x[2], Y: x[1]})
		r.lineTo(vec.Vec2{X: x[0] + x[2], Y: x[1] + x[3]})
		r.lineTo(vec.Vec2{X: x[0], Y: x[1] + x[3]})
		r.closePath()
	case "h":
		r.closePath()

	case "S":
		r.stroke()
		r.endPath()
	case "s":
		r.closePath()
		r.stroke()
		r.endPath()
	case "f", "F", "f*":
		r.fill()
		r.endPath()
	case "B", "B*":
		r.fill()
		r.stroke()
		r.endPath()
	case "b", "b*":
		r.closePath()
		r.fill()
		r.stroke()
		r.endPath()
	case "n":
		r.endPath()

	default:
		// Colour and other state operators do not affect the
		// black-on-white preview.
	}
	return nil
}

func numbers(args []token, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d operands, got %d", n, len(args))
	}
	res := make([]float64, n)
	for i, a := range args {
		if a.kind != tokNumber {
			return nil, fmt.Errorf("operand %d is not a number", i+1)
		}
		res[i] = a.num
	}
	return res, nil
}

// device transforms a point from user space to device space.
func (r *renderer) device(p vec.Vec2) vec.Vec2 {
	m := r.state.ctm
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func (r *renderer) moveTo(p vec.Vec2) {
	r.path.MoveTo(r.device(p))
	r.current = p
	r.start = p
}

func (r *renderer) lineTo(p vec.Vec2) {
	r.path.LineTo(r.device(p))
	r.current = p
}

func (r *renderer) closePath() {
	r.path.Close()
	r.current = r.start
}

// polygons flattens the current path into a list of polygons, one for each
// subpath.  The second return value indicates which subpaths are closed.
func (r *renderer) polygons() ([][]vec.Vec2, []bool) {
	var polys [][]vec.Vec2
	var closed []bool

	var current []vec.Vec2
	flush := func(isClosed bool) {
		if len(current) > 0 {
			polys = append(polys, current)
			closed = append(closed, isClosed)
		}
		current = nil
	}

	p := r.path
	idx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			current = []vec.Vec2{p.Coords[idx]}
			idx++
		case path.CmdLineTo:
			current = append(current, p.Coords[idx])
			idx++
		case path.CmdQuadTo:
			// not produced by the "c" operator
			current = append(current, p.Coords[idx+1])
			idx += 2
		case path.CmdCubeTo:
			if len(current) == 0 {
				current = []vec.Vec2{p.Coords[idx+2]}
				idx += 3
				continue
			}
			last := current[len(current)-1]
			current = flattenCubic(current, last, p.Coords[idx], p.Coords[idx+1], p.Coords[idx+2])
			idx += 3
		case path.CmdClose:
			if len(current) > 0 {
				start := current[0]
				flush(true)
				current = []vec.Vec2{start}
			}
		}
	}
	if len(current) > 1 {
		flush(false)
	}
	return polys, closed
}

// flattenCubic appends a polygonal approximation of a cubic Bézier curve
// to poly.  The number of segments is chosen using Wang's formula.
func flattenCubic(poly []vec.Vec2, p0, p1, p2, p3 vec.Vec2) []vec.Vec2 {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt * omt).
			Add(p1.Mul(3 * omt * omt * t)).
			Add(p2.Mul(3 * omt * t * t)).
			Add(p3.Mul(t * t * t))
		poly = append(poly, pt)
	}
	return poly
}

func (r *renderer) fill() {
	polys, _ := r.polygons()
	r.raster.Reset(r.img.Rect.Dx(), r.img.Rect.Dy())
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		r.raster.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			r.raster.LineTo(float32(p.X), float32(p.Y))
		}
		r.raster.ClosePath()
	}
	r.paint()
}

// stroke draws each segment of the path as a quadrilateral.  Line joins and
// caps are not drawn, which is acceptable for the thin lines of overlays.
func (r *renderer) stroke() {
	polys, closed := r.polygons()

	m := r.state.ctm
	scale := math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
	d := max(r.state.lineWidth*scale/2, minHalfWidth)

	r.raster.Reset(r.img.Rect.Dx(), r.img.Rect.Dy())
	for i, poly := range polys {
		if closed[i] && poly[0] != poly[len(poly)-1] {
			poly = append(poly, poly[0])
		}
		for j := 1; j < len(poly); j++ {
			r.addStrokeSegment(poly[j-1], poly[j], d)
		}
	}
	r.paint()
}

func (r *renderer) addStrokeSegment(a, b vec.Vec2, d float64) {
	v := b.Sub(a)
	length := v.Length()
	if length == 0 {
		return
	}
	n := vec.Vec2{X: -v.Y, Y: v.X}.Mul(d / length)

	p0 := a.Add(n)
	p1 := b.Add(n)
	p2 := b.Sub(n)
	p3 := a.Sub(n)
	r.raster.MoveTo(float32(p0.X), float32(p0.Y))
	r.raster.LineTo(float32(p1.X), float32(p1.Y))
	r.raster.LineTo(float32(p2.X), float32(p2.Y))
	r.raster.LineTo(float32(p3.X), float32(p3.Y))
	r.raster.ClosePath()
}

// paint composites the accumulated coverage in black.
func (r *renderer) paint() {
	src := image.NewUniform(color.Gray{Y: 0})
	r.raster.Draw(r.img, r.img.Bounds(), src, image.Point{})
}

func (r *renderer) endPath() {
	r.path = &path.Data{}
}
