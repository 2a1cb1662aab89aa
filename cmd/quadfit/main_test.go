package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const parabola = "0 0\n1 1\n2 4\n3 9\n4 16\n"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFitCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			"svg",
			[]string{"fit", "--min", "2", "--max", "5"},
			"M 0.00 0.00 Q 1.89 1.45, 2.00 4.00 Q 3.33 9.94, 4.00 16.00\n",
		},
		{
			"strict",
			[]string{"fit", "--min", "2", "--max", "5", "--max-error", "0.5", "--policy", "strict", "--minify"},
			"M 0 0 Q 3.9 7.23, 4 16\n",
		},
		{
			"control",
			[]string{"fit", "--min", "2", "--max", "2", "-o", "control", "-"},
			"0 0 0.5 0.5 1 1\n1 1 1.5 2.5 2 4\n2 4 2.5 6.5 3 9\n3 9 3.5 12.5 4 16\n",
		},
		{
			"svgdoc",
			[]string{"fit", "--min", "2", "--max", "5", "-o", "svgdoc", "--margin", "0.5", "--minify"},
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="-.5 -.5 5 17">` +
				`<path fill="none" stroke="black" d="M 0 0 Q 1.89 1.45, 2 4 Q 3.33 9.94, 4 16"/></svg>` + "\n",
		},
		{
			"samples",
			[]string{"fit", "--min", "2", "--max", "2", "-o", "samples", "--samples", "2"},
			"0 0\n1 1\n1 1\n2 4\n2 4\n3 9\n3 9\n4 16\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, parabola, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestFitCommandJSON(t *testing.T) {
	got, err := run(t, parabola, "fit", "--min", "2", "--max", "5", "--output", "json")
	if err != nil {
		t.Fatal(err)
	}
	var res struct {
		NumSegments int `json:"num_segments"`
		Config      struct {
			MinSegmentLen int `json:"min_segment_len"`
		} `json:"config"`
	}
	if err := json.Unmarshal([]byte(got), &res); err != nil {
		t.Fatal(err)
	}
	if res.NumSegments != 2 || res.Config.MinSegmentLen != 2 {
		t.Errorf("got %d segments with min length %d, want 2 and 2", res.NumSegments, res.Config.MinSegmentLen)
	}
}

func TestFitCommandFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "points.json")
	config := filepath.Join(dir, "quadfit.yaml")
	write := func(path, data string) {
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(input, "[[0, 0], [1, 1], [2, 4], [3, 9], [4, 16]]")
	write(config, "min_segment_len: 2\nmax_segment_len: 3\npolicy: strict\nmax_error: 0.1\n")

	// The flag overrides the file's max_segment_len.
	got, err := run(t, "", "fit", "--config", config, "--max", "5", input)
	if err != nil {
		t.Fatal(err)
	}
	if want := "M 0.00 0.00 Q 1.89 1.45, 2.00 4.00 Q 3.33 9.94, 4.00 16.00\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	write(config, "min_segment_len: 2\nsmoothing: 3\n")
	if _, err := run(t, "", "fit", "--config", config, input); err == nil {
		t.Error("expected error for unknown config key")
	}
}

func TestFitCommandErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"config", parabola, []string{"fit", "--min", "1"}, "min_segment_len"},
		{"policy", parabola, []string{"fit", "--policy", "lenient"}, "lenient"},
		{"output", parabola, []string{"fit", "--min", "2", "-o", "png"}, "png"},
		{"input", "0 0 1", []string{"fit"}, "even count"},
		{"format", parabola, []string{"fit", "--input-format", "xml"}, "xml"},
		{"points", "0 0", []string{"fit"}, "at least 2 points"},
		{"file", "", []string{"fit", "does-not-exist.txt"}, "does-not-exist.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.stdin, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got error %v, want one mentioning %q", err, tt.want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := run(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if got != "quadfit dev\n" {
		t.Errorf("got %q", got)
	}
}
