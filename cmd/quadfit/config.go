package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"honnef.co/go/quadfit"
)

// settings are the fit parameters that can come from a config file or
// from flags.
type settings struct {
	MinSegmentLen   int     `yaml:"min_segment_len"`
	MaxSegmentLen   int     `yaml:"max_segment_len"`
	MaxError        float64 `yaml:"max_error"`
	Policy          string  `yaml:"policy"`
	Parametrization string  `yaml:"parametrization"`
	Metric          string  `yaml:"metric"`
	Workers         int     `yaml:"workers"`
}

func defaultSettings() settings {
	cfg := quadfit.DefaultFitConfig()
	opts := quadfit.DefaultFitOptions
	return settings{
		MinSegmentLen:   cfg.MinSegmentLen(),
		MaxSegmentLen:   cfg.MaxSegmentLen(),
		MaxError:        cfg.MaxError(),
		Policy:          opts.Policy.String(),
		Parametrization: opts.Parametrization.String(),
		Metric:          opts.Metric.String(),
	}
}

// loadSettings reads a YAML config file on top of s. Keys missing from the
// file keep their current values; unknown keys are an error.
func loadSettings(path string, s *settings) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// override copies the values of all flags set on the command line from
// src into s.
func (s *settings) override(flags *pflag.FlagSet, src settings) {
	fields := map[string]func(){
		"min":       func() { s.MinSegmentLen = src.MinSegmentLen },
		"max":       func() { s.MaxSegmentLen = src.MaxSegmentLen },
		"max-error": func() { s.MaxError = src.MaxError },
		"policy":    func() { s.Policy = src.Policy },
		"param":     func() { s.Parametrization = src.Parametrization },
		"metric":    func() { s.Metric = src.Metric },
		"workers":   func() { s.Workers = src.Workers },
	}
	flags.Visit(func(f *pflag.Flag) {
		if set, ok := fields[f.Name]; ok {
			set()
		}
	})
}

func (s settings) fitParams() (quadfit.FitConfig, quadfit.FitOptions, error) {
	cfg, err := quadfit.NewFitConfig(s.MinSegmentLen, s.MaxSegmentLen, s.MaxError)
	if err != nil {
		return quadfit.FitConfig{}, quadfit.FitOptions{}, err
	}
	opts := quadfit.FitOptions{Workers: s.Workers}
	if opts.Policy, err = quadfit.ParsePolicy(s.Policy); err != nil {
		return quadfit.FitConfig{}, quadfit.FitOptions{}, err
	}
	if opts.Parametrization, err = quadfit.ParseParametrization(s.Parametrization); err != nil {
		return quadfit.FitConfig{}, quadfit.FitOptions{}, err
	}
	if opts.Metric, err = quadfit.ParseErrorMetric(s.Metric); err != nil {
		return quadfit.FitConfig{}, quadfit.FitOptions{}, err
	}
	return cfg, opts, nil
}
