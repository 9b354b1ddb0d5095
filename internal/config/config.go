package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/tliron/commonlog"

	"github.com/jsvensson/tonal/internal/color"
	"github.com/jsvensson/tonal/internal/palette"
	"github.com/jsvensson/tonal/internal/pixels"
	"github.com/jsvensson/tonal/internal/quantize"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "tonal.hcl"

// DefaultMaxColors is how many colors an image is quantized to.
const DefaultMaxColors = 128

var log = commonlog.GetLogger("tonal.config")

// Config is the resolved configuration.
type Config struct {
	// Source is the seed color, 0 when unset.
	Source   color.ARGB
	Image    string
	Variant  palette.Variant
	Dark     bool
	Output   string
	Template string

	MaxColors     int
	MaxIterations int
	Workers       int
	Width         int
	Height        int

	Score quantize.ScoreOptions
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Variant:       palette.TonalSpot,
		MaxColors:     DefaultMaxColors,
		MaxIterations: quantize.DefaultMaxIterations,
		Width:         pixels.DefaultWidth,
		Height:        pixels.DefaultHeight,
		Score:         quantize.DefaultScoreOptions(),
	}
}

// File is the raw shape of a config file.
type File struct {
	Source   string         `hcl:"source,optional"`
	Image    string         `hcl:"image,optional"`
	Variant  string         `hcl:"variant,optional"`
	Dark     bool           `hcl:"dark,optional"`
	Output   string         `hcl:"output,optional"`
	Template string         `hcl:"template,optional"`
	Quantize *QuantizeBlock `hcl:"quantize,block"`
	Score    *ScoreBlock    `hcl:"score,block"`
}

// QuantizeBlock holds the image quantizer settings.
type QuantizeBlock struct {
	MaxColors     *int  `hcl:"max_colors,optional"`
	MaxIterations *int  `hcl:"max_iterations,optional"`
	Workers       *int  `hcl:"workers,optional"`
	Resize        []int `hcl:"resize,optional"`
}

// ScoreBlock holds the seed scoring thresholds.
type ScoreBlock struct {
	Desired       *int     `hcl:"desired,optional"`
	Fallback      *string  `hcl:"fallback,optional"`
	Filter        *bool    `hcl:"filter,optional"`
	MinChroma     *float64 `hcl:"min_chroma,optional"`
	MinTone       *float64 `hcl:"min_tone,optional"`
	MaxTone       *float64 `hcl:"max_tone,optional"`
	TargetChroma  *float64 `hcl:"target_chroma,optional"`
	MinProportion *float64 `hcl:"min_proportion,optional"`
}

// Load reads and resolves the config file at path. Relative image, output
// and template paths are taken relative to the file's directory.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, diags := Parse(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config: %s", diags.Error())
	}
	cfg.resolvePaths(filepath.Dir(path))
	log.Debugf("loaded config %s", path)
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields Default.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("no config file at %s", path)
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes config source. The returned Config is usable as long as
// the diagnostics hold no errors.
func Parse(src []byte, filename string) (*Config, hcl.Diagnostics) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	var raw File
	if d := gohcl.DecodeBody(file.Body, EvalContext(), &raw); d.HasErrors() {
		return nil, append(diags, d...)
	}

	body := file.Body.(*hclsyntax.Body)
	cfg, d := resolve(&raw, body)
	return cfg, append(diags, d...)
}

func resolve(raw *File, body *hclsyntax.Body) (*Config, hcl.Diagnostics) {
	cfg := Default()
	var diags hcl.Diagnostics
	fail := func(block, attr, summary, detail string) {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  summary,
			Detail:   detail,
			Subject:  AttributeRange(body, block, attr),
		})
	}

	if raw.Source != "" {
		c, err := color.ParseHex(raw.Source)
		if err != nil {
			fail("", "source", "Invalid source color", err.Error())
		}
		cfg.Source = c
	}
	if raw.Source != "" && raw.Image != "" {
		fail("", "image", "Conflicting seed", "source and image are mutually exclusive")
	}
	cfg.Image = raw.Image

	v, err := palette.ParseVariant(raw.Variant)
	if err != nil {
		fail("", "variant", "Unknown variant", err.Error())
	}
	cfg.Variant = v
	cfg.Dark = raw.Dark
	cfg.Output = raw.Output
	cfg.Template = raw.Template

	if q := raw.Quantize; q != nil {
		if q.MaxColors != nil {
			if *q.MaxColors < 1 {
				fail("quantize", "max_colors", "Invalid max_colors", "max_colors must be at least 1")
			}
			cfg.MaxColors = *q.MaxColors
		}
		if q.MaxIterations != nil {
			if *q.MaxIterations < 1 {
				fail("quantize", "max_iterations", "Invalid max_iterations", "max_iterations must be at least 1")
			}
			cfg.MaxIterations = *q.MaxIterations
		}
		if q.Workers != nil {
			if *q.Workers < 0 {
				fail("quantize", "workers", "Invalid workers", "workers must be 0 (automatic) or more")
			}
			cfg.Workers = *q.Workers
		}
		if q.Resize != nil {
			if len(q.Resize) != 2 || q.Resize[0] < 1 || q.Resize[1] < 1 {
				fail("quantize", "resize", "Invalid resize", "resize must be [width, height] with positive values")
			} else {
				cfg.Width, cfg.Height = q.Resize[0], q.Resize[1]
			}
		}
	}

	if s := raw.Score; s != nil {
		opts := &cfg.Score
		if s.Desired != nil {
			if *s.Desired < 1 {
				fail("score", "desired", "Invalid desired", "desired must be at least 1")
			}
			opts.Desired = *s.Desired
		}
		if s.Fallback != nil {
			c, err := color.ParseHex(*s.Fallback)
			if err != nil {
				fail("score", "fallback", "Invalid fallback color", err.Error())
			}
			opts.Fallback = c
		}
		if s.Filter != nil {
			opts.Filter = *s.Filter
		}
		checkRange := func(name string, v *float64, lo, hi float64, dst *float64) {
			if v == nil {
				return
			}
			if *v < lo || *v > hi {
				fail("score", name, "Value out of range", fmt.Sprintf("%s must be between %g and %g", name, lo, hi))
			}
			*dst = *v
		}
		// Zero is not a usable value for these; ScoreOptions would replace it
		// with the default.
		checkPositive := func(name string, v *float64, hi float64, dst *float64) {
			if v == nil {
				return
			}
			if *v <= 0 || *v > hi {
				fail("score", name, "Value out of range", fmt.Sprintf("%s must be greater than 0 and at most %g", name, hi))
			}
			*dst = *v
		}
		checkRange("min_chroma", s.MinChroma, 0, 200, &opts.MinChroma)
		checkRange("min_tone", s.MinTone, 0, 100, &opts.MinTone)
		checkPositive("max_tone", s.MaxTone, 100, &opts.MaxTone)
		checkPositive("target_chroma", s.TargetChroma, 200, &opts.TargetChroma)
		checkRange("min_proportion", s.MinProportion, 0, 1, &opts.MinProportion)
		if opts.MinTone > opts.MaxTone {
			fail("score", "min_tone", "Invalid tone range", "min_tone must not exceed max_tone")
		}
	}

	return cfg, diags
}

func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.Image, &c.Output, &c.Template} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// AttributeRange returns the source range of an attribute, in a named
// top-level block when block is set. It falls back to the block or file
// range when the attribute is absent.
func AttributeRange(body *hclsyntax.Body, block, name string) *hcl.Range {
	target := body
	if block != "" {
		target = nil
		for _, b := range body.Blocks {
			if b.Type == block {
				target = b.Body
				break
			}
		}
		if target == nil {
			r := body.SrcRange
			return &r
		}
	}
	if attr, ok := target.Attributes[name]; ok {
		r := attr.SrcRange
		return &r
	}
	r := target.SrcRange
	return &r
}
