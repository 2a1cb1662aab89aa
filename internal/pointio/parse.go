// Package pointio decodes point sequences for the quadfit command.
package pointio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cast"
	"github.com/tdewolff/parse/v2/strconv"
	"gopkg.in/yaml.v3"

	"honnef.co/go/quadfit"
)

// Format is an input encoding of a point sequence.
type Format int

const (
	// Text is a list of numbers taken pairwise as x and y, separated by
	// whitespace, commas, or semicolons. Lines starting with # are
	// ignored.
	Text Format = iota
	// JSON is an array of [x, y] pairs or {"x": x, "y": y} objects.
	JSON
	// YAML is the YAML equivalent of JSON.
	YAML
	// GeoJSON is a LineString, MultiPoint, or MultiLineString geometry, or
	// a Feature or FeatureCollection holding one. Longitude becomes x and
	// latitude becomes y.
	GeoJSON
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case GeoJSON:
		return "geojson"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the format whose String method returns s.
func ParseFormat(s string) (Format, error) {
	for _, f := range []Format{Text, JSON, YAML, GeoJSON} {
		if s == f.String() {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown input format %q", s)
}

// FormatFromPath guesses the format of a file from its extension. Unknown
// extensions are treated as Text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".geojson":
		return GeoJSON
	default:
		return Text
	}
}

// Read reads all of r and decodes it in the given format.
func Read(r io.Reader, format Format) ([]quadfit.Point, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch format {
	case Text:
		return ParseText(b)
	case JSON:
		return ParseJSON(b)
	case YAML:
		return ParseYAML(b)
	case GeoJSON:
		return ParseGeoJSON(b)
	default:
		return nil, fmt.Errorf("unknown input format %s", format)
	}
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == ';' || c == '\n' || c == '\r' || c == '\t'
}

// ParseText decodes numbers separated by whitespace, commas, or semicolons
// and pairs them up as points.
func ParseText(b []byte) ([]quadfit.Point, error) {
	var nums []float64
	i := 0
	for i < len(b) {
		c := b[i]
		switch {
		case isSeparator(c):
			i++
			continue
		case c == '#':
			if j := bytes.IndexByte(b[i:], '\n'); j >= 0 {
				i += j + 1
			} else {
				i = len(b)
			}
			continue
		}
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 || (i+n < len(b) && !isSeparator(b[i+n]) && b[i+n] != '#') {
			end := i + 1
			for end < len(b) && !isSeparator(b[end]) {
				end++
			}
			return nil, fmt.Errorf("invalid number %q at offset %d", b[i:end], i)
		}
		nums = append(nums, f)
		i += n
	}
	if len(nums)%2 != 0 {
		return nil, fmt.Errorf("got %d numbers, want an even count", len(nums))
	}
	pts := make([]quadfit.Point, len(nums)/2)
	for k := range pts {
		pts[k] = quadfit.Pt(nums[2*k], nums[2*k+1])
	}
	return pts, nil
}

// ParseJSON decodes an array of [x, y] pairs or {"x": x, "y": y} objects.
// Coordinates may be numbers or numeric strings.
func ParseJSON(b []byte) ([]quadfit.Point, error) {
	var items []any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&items); err != nil {
		return nil, err
	}
	return fromItems(items)
}

// ParseYAML is like ParseJSON for YAML documents.
func ParseYAML(b []byte) ([]quadfit.Point, error) {
	var items []any
	if err := yaml.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	return fromItems(items)
}

func fromItems(items []any) ([]quadfit.Point, error) {
	pts := make([]quadfit.Point, len(items))
	for i, item := range items {
		var x, y any
		switch item := item.(type) {
		case []any:
			if len(item) != 2 {
				return nil, fmt.Errorf("point %d: got %d coordinates, want 2", i, len(item))
			}
			x, y = item[0], item[1]
		case map[string]any:
			var okX, okY bool
			x, okX = item["x"]
			y, okY = item["y"]
			if !okX || !okY {
				return nil, fmt.Errorf("point %d: missing x or y", i)
			}
		default:
			return nil, fmt.Errorf("point %d: unexpected %T", i, item)
		}
		fx, err := toFloat(x)
		if err != nil {
			return nil, fmt.Errorf("point %d: x: %w", i, err)
		}
		fy, err := toFloat(y)
		if err != nil {
			return nil, fmt.Errorf("point %d: y: %w", i, err)
		}
		pts[i] = quadfit.Pt(fx, fy)
	}
	return pts, nil
}

func toFloat(v any) (float64, error) {
	switch v.(type) {
	case nil, bool:
		// cast would silently turn these into 0 and 1.
		return 0, fmt.Errorf("%v is not a number", v)
	}
	return cast.ToFloat64E(v)
}

var errNoLine = errors.New("no LineString, MultiPoint, or MultiLineString found")

// ParseGeoJSON decodes the first usable geometry of a GeoJSON document.
func ParseGeoJSON(b []byte) ([]quadfit.Point, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(b)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			if pts, ok := fromGeometry(f.Geometry); ok {
				return pts, nil
			}
		}
		return nil, errNoLine
	case "Feature":
		f, err := geojson.UnmarshalFeature(b)
		if err != nil {
			return nil, err
		}
		if pts, ok := fromGeometry(f.Geometry); ok {
			return pts, nil
		}
		return nil, errNoLine
	default:
		g, err := geojson.UnmarshalGeometry(b)
		if err != nil {
			return nil, err
		}
		if pts, ok := fromGeometry(g.Geometry()); ok {
			return pts, nil
		}
		return nil, errNoLine
	}
}

func fromGeometry(g orb.Geometry) ([]quadfit.Point, bool) {
	switch g := g.(type) {
	case orb.LineString:
		return fromOrb(g), true
	case orb.MultiPoint:
		return fromOrb(g), true
	case orb.MultiLineString:
		if len(g) == 0 {
			return nil, false
		}
		return fromOrb(g[0]), true
	default:
		return nil, false
	}
}

func fromOrb(ps []orb.Point) []quadfit.Point {
	pts := make([]quadfit.Point, len(ps))
	for i, p := range ps {
		pts[i] = quadfit.Pt(p.Lon(), p.Lat())
	}
	return pts
}
