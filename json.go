package quadfit

import (
	"encoding/json"
	"fmt"
)

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonSegment struct {
	P0    jsonPoint `json:"p0"`
	P1    jsonPoint `json:"p1"`
	P2    jsonPoint `json:"p2"`
	Start int       `json:"start"`
	End   int       `json:"end"`
	Error float64   `json:"error"`
}

type jsonConfig struct {
	MinSegmentLen int     `json:"min_segment_len"`
	MaxSegmentLen int     `json:"max_segment_len"`
	MaxError      float64 `json:"max_error"`
}

type jsonResult struct {
	Segments    []jsonSegment `json:"segments"`
	NumSegments int           `json:"num_segments"`
	TotalError  float64       `json:"total_error"`
	Fallback    bool          `json:"fallback"`
	Relaxed     bool          `json:"relaxed"`
	Config      jsonConfig    `json:"config"`
}

func toJSONPoint(pt Point) jsonPoint   { return jsonPoint{pt.X, pt.Y} }
func fromJSONPoint(pt jsonPoint) Point { return Point{pt.X, pt.Y} }

// MarshalJSON encodes the segments, statistics, and configuration of the
// result.
func (r *FitResult) MarshalJSON() ([]byte, error) {
	out := jsonResult{
		Segments:    make([]jsonSegment, len(r.Segments)),
		NumSegments: r.NumSegments,
		TotalError:  r.TotalError,
		Fallback:    r.Fallback,
		Relaxed:     r.Relaxed,
		Config: jsonConfig{
			MinSegmentLen: r.Config.minSegmentLen,
			MaxSegmentLen: r.Config.maxSegmentLen,
			MaxError:      r.Config.maxError,
		},
	}
	for i, seg := range r.Segments {
		out.Segments[i] = jsonSegment{
			P0:    toJSONPoint(seg.Curve.P0),
			P1:    toJSONPoint(seg.Curve.P1),
			P2:    toJSONPoint(seg.Curve.P2),
			Start: seg.Start,
			End:   seg.End,
			Error: seg.Error,
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a result encoded by [FitResult.MarshalJSON]. The
// configuration is validated as by [NewFitConfig], and the number of
// segments must match the segment list.
func (r *FitResult) UnmarshalJSON(data []byte) error {
	var in jsonResult
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	cfg, err := NewFitConfig(in.Config.MinSegmentLen, in.Config.MaxSegmentLen, in.Config.MaxError)
	if err != nil {
		return err
	}
	if in.NumSegments != len(in.Segments) {
		return fmt.Errorf("quadfit: num_segments is %d but %d segments are present", in.NumSegments, len(in.Segments))
	}
	segs := make([]Segment, len(in.Segments))
	for i, s := range in.Segments {
		segs[i] = Segment{
			Curve: QuadBez{fromJSONPoint(s.P0), fromJSONPoint(s.P1), fromJSONPoint(s.P2)},
			Start: s.Start,
			End:   s.End,
			Error: s.Error,
		}
	}
	*r = FitResult{
		Segments:    segs,
		NumSegments: in.NumSegments,
		TotalError:  in.TotalError,
		Fallback:    in.Fallback,
		Relaxed:     in.Relaxed,
		Config:      cfg,
	}
	return nil
}

// JSON returns the indented JSON encoding of the result.
func (r *FitResult) JSON() (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
