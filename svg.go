package quadfit

import (
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// SVGOptions specifies optional settings for [FitResult.SVG] and
// [FitResult.WriteSVG].
type SVGOptions struct {
	// The number of decimals with which to format coordinates. A value of
	// 0 or less chooses the shortest representation that still
	// unambiguously represents any given coordinate.
	Precision int
	// Minify strips redundant characters from formatted numbers, such as
	// trailing zeros and leading zeros before the decimal point.
	Minify bool
}

// DefaultSVGOptions formats coordinates with two decimals.
var DefaultSVGOptions = SVGOptions{Precision: 2}

// SVG returns the fitted curves as SVG path data.
//
// See [FitResult.WriteSVG] for the format and a version that writes to an
// [io.Writer].
func (r *FitResult) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	r.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG writes the fitted curves to w as SVG path data of the form
//
//	M x0 y0 Q cx0 cy0, x1 y1 Q cx1 cy1, x2 y2
//
// The start point of each curve after the first is omitted, as it equals
// the end point of the previous curve.
func (r *FitResult) WriteSVG(w io.Writer, opts SVGOptions) error {
	_, err := w.Write(r.appendPath(nil, opts))
	return err
}

// WriteSVGDocument writes a standalone SVG document that draws the fitted
// curves as one unfilled path. The view box is the bounding box of the
// curves, grown by margin on every side.
func (r *FitResult) WriteSVGDocument(w io.Writer, opts SVGOptions, margin float64) error {
	bbox := r.BoundingBox().Inflate(margin, margin)
	buf := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="`)
	buf = appendNum(buf, bbox.X0, opts)
	buf = append(buf, ' ')
	buf = appendNum(buf, bbox.Y0, opts)
	buf = append(buf, ' ')
	buf = appendNum(buf, bbox.Width(), opts)
	buf = append(buf, ' ')
	buf = appendNum(buf, bbox.Height(), opts)
	buf = append(buf, `"><path fill="none" stroke="black" d="`...)
	buf = r.appendPath(buf, opts)
	buf = append(buf, "\"/></svg>\n"...)
	_, err := w.Write(buf)
	return err
}

func appendNum(buf []byte, f float64, opts SVGOptions) []byte {
	var s []byte
	if opts.Precision <= 0 {
		s = strconv.AppendFloat(nil, f, 'f', -1, 64)
	} else {
		s = strconv.AppendFloat(nil, f, 'f', opts.Precision, 64)
	}
	if opts.Minify {
		// The precision has already been applied above.
		s = minify.Number(s, 0)
	}
	return append(buf, s...)
}

func (r *FitResult) appendPath(buf []byte, opts SVGOptions) []byte {
	if len(r.Segments) == 0 {
		return buf
	}
	pair := func(pt Point) {
		buf = appendNum(buf, pt.X, opts)
		buf = append(buf, ' ')
		buf = appendNum(buf, pt.Y, opts)
	}

	buf = append(buf, "M "...)
	pair(r.Segments[0].Curve.P0)
	for _, seg := range r.Segments {
		buf = append(buf, " Q "...)
		pair(seg.Curve.P1)
		buf = append(buf, ", "...)
		pair(seg.Curve.P2)
	}
	return buf
}
