package quadfit

import (
	"errors"
	"strings"
	"testing"
)

func TestSVG(t *testing.T) {
	advisory, err := Fit(parabola, mustConfig(t, 2, 5, 2))
	if err != nil {
		t.Fatal(err)
	}
	strict, err := FitWithOptions(parabola, mustConfig(t, 2, 5, 0.5), FitOptions{Policy: MaxErrorStrict})
	if err != nil {
		t.Fatal(err)
	}
	line, err := Fit([]Point{Pt(1, 1), Pt(4, 5)}, mustConfig(t, 2, 2, 0))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		res  *FitResult
		opts SVGOptions
		want string
	}{
		{"default", advisory, DefaultSVGOptions, "M 0.00 0.00 Q 1.89 1.45, 2.00 4.00 Q 3.33 9.94, 4.00 16.00"},
		{"single", strict, DefaultSVGOptions, "M 0.00 0.00 Q 3.90 7.23, 4.00 16.00"},
		{"minify", advisory, SVGOptions{Precision: 2, Minify: true}, "M 0 0 Q 1.89 1.45, 2 4 Q 3.33 9.94, 4 16"},
		{"one decimal", advisory, SVGOptions{Precision: 1}, "M 0.0 0.0 Q 1.9 1.4, 2.0 4.0 Q 3.3 9.9, 4.0 16.0"},
		{"shortest", line, SVGOptions{}, "M 1 1 Q 2.5 3, 4 5"},
		{"empty", &FitResult{}, DefaultSVGOptions, ""},
	}
	for _, tt := range tests {
		if got := tt.res.SVG(tt.opts); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteSVGError(t *testing.T) {
	res, err := Fit(parabola, mustConfig(t, 2, 5, 2))
	if err != nil {
		t.Fatal(err)
	}
	if err := res.WriteSVG(failingWriter{}, DefaultSVGOptions); !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}

func TestWriteSVGDocument(t *testing.T) {
	res, err := Fit([]Point{Pt(1, 1), Pt(4, 5)}, mustConfig(t, 2, 2, 0))
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := res.WriteSVGDocument(&sb, SVGOptions{}, 1); err != nil {
		t.Fatal(err)
	}
	const want = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 5 6">` +
		`<path fill="none" stroke="black" d="M 1 1 Q 2.5 3, 4 5"/></svg>` + "\n"
	if got := sb.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFitResultBoundingBox(t *testing.T) {
	res, err := Fit(parabola, mustConfig(t, 2, 5, 2))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Rect{0, 0, 4, 16}, res.BoundingBox())
	diff(t, Rect{}, (&FitResult{}).BoundingBox())
}
