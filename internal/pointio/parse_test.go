package pointio

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"honnef.co/go/quadfit"
)

var square = []quadfit.Point{quadfit.Pt(0, 0), quadfit.Pt(1.5, 0), quadfit.Pt(1.5, -2), quadfit.Pt(0, 2e3)}

func TestParseText(t *testing.T) {
	var tts = []struct {
		in  string
		pts []quadfit.Point
	}{
		{"0 0\n1.5 0\n1.5 -2\n0 2e3\n", square},
		{"0,0 1.5,0 1.5,-2 0,2000", square},
		{"# x y\n0 0\r\n1.5 0\n\n# comment\n1.5 -2\n0 2e3", square},
		{"0;0;1.5;0;1.5;-2;0;2e3", square},
		{"  \n", nil},
	}
	for _, tt := range tts {
		t.Run(tt.in, func(t *testing.T) {
			pts, err := ParseText([]byte(tt.in))
			test.Error(t, err)
			test.T(t, len(pts), len(tt.pts))
			for i := range tt.pts {
				test.T(t, pts[i], tt.pts[i])
			}
		})
	}
}

func TestParseTextErrors(t *testing.T) {
	var tts = []struct {
		in  string
		err string
	}{
		{"0 0 1", "even count"},
		{"0 0 1 x", `invalid number "x" at offset 6`},
		{"0 0 1.5abc 2", `invalid number "1.5abc" at offset 4`},
	}
	for _, tt := range tts {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseText([]byte(tt.in))
			test.That(t, err != nil, "expected error")
			test.That(t, strings.Contains(err.Error(), tt.err), err.Error())
		})
	}
}

func TestParseJSON(t *testing.T) {
	var tts = []string{
		`[[0, 0], [1.5, 0], [1.5, -2], [0, 2e3]]`,
		`[{"x": 0, "y": 0}, {"x": 1.5, "y": 0}, {"x": "1.5", "y": "-2"}, {"x": 0, "y": 2000}]`,
	}
	for _, in := range tts {
		pts, err := ParseJSON([]byte(in))
		test.Error(t, err)
		test.T(t, pts, square)
	}

	for _, in := range []string{`[[0]]`, `[{"x": 1}]`, `[[true, 1]]`, `[[null, 1]]`, `["0 0"]`, `{}`} {
		_, err := ParseJSON([]byte(in))
		test.That(t, err != nil, in)
	}
}

func TestParseYAML(t *testing.T) {
	in := "- [0, 0]\n- [1.5, 0]\n- {x: 1.5, y: -2}\n- {x: '0', y: 2000}\n"
	pts, err := ParseYAML([]byte(in))
	test.Error(t, err)
	test.T(t, pts, square)

	_, err = ParseYAML([]byte("- [0, 0, 0]\n"))
	test.That(t, err != nil)
}

func TestParseGeoJSON(t *testing.T) {
	want := []quadfit.Point{quadfit.Pt(4.89, 52.37), quadfit.Pt(4.9, 52.38), quadfit.Pt(4.91, 52.375)}
	line := `{"type": "LineString", "coordinates": [[4.89, 52.37], [4.9, 52.38], [4.91, 52.375]]}`
	var tts = []struct {
		name string
		in   string
	}{
		{"LineString", line},
		{"MultiPoint", `{"type": "MultiPoint", "coordinates": [[4.89, 52.37], [4.9, 52.38], [4.91, 52.375]]}`},
		{"MultiLineString", `{"type": "MultiLineString", "coordinates": [[[4.89, 52.37], [4.9, 52.38], [4.91, 52.375]], [[0, 0], [1, 1]]]}`},
		{"Feature", `{"type": "Feature", "properties": {}, "geometry": ` + line + `}`},
		{"FeatureCollection", `{"type": "FeatureCollection", "features": [` +
			`{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [1, 2]}},` +
			`{"type": "Feature", "properties": {}, "geometry": ` + line + `}]}`},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := ParseGeoJSON([]byte(tt.in))
			test.Error(t, err)
			test.T(t, pts, want)
		})
	}

	_, err := ParseGeoJSON([]byte(`{"type": "Point", "coordinates": [1, 2]}`))
	test.That(t, err == errNoLine)
	_, err = ParseGeoJSON([]byte(`{"type": "FeatureCollection", "features": []}`))
	test.That(t, err == errNoLine)
}

func TestRead(t *testing.T) {
	pts, err := Read(strings.NewReader("- [1, 2]\n- [3, 4]\n"), FormatFromPath("trace.YML"))
	test.Error(t, err)
	test.T(t, pts, []quadfit.Point{quadfit.Pt(1, 2), quadfit.Pt(3, 4)})

	test.T(t, FormatFromPath("a.json"), JSON)
	test.T(t, FormatFromPath("a.geojson"), GeoJSON)
	test.T(t, FormatFromPath("a.csv"), Text)
	test.T(t, FormatFromPath("-"), Text)

	for _, f := range []Format{Text, JSON, YAML, GeoJSON} {
		got, err := ParseFormat(f.String())
		test.Error(t, err)
		test.T(t, got, f)
	}
	_, err = ParseFormat("xml")
	test.That(t, err != nil)
}
