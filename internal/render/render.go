// Package render writes a Theme through text/template, either the built-in
// scheme dump or a user template file.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/jsvensson/tonal"
	"github.com/jsvensson/tonal/internal/color"
	"github.com/jsvensson/tonal/internal/hct"
	"github.com/jsvensson/tonal/internal/palette"
	"github.com/jsvensson/tonal/internal/scheme"
)

// SchemeTemplate prints the scheme as $role=#rrggbb lines.
const SchemeTemplate = `$background={{ hex "background" }}
$onBackground={{ hex "onBackground" }}

$primary={{ hex "primary" }}
$secondary={{ hex "secondary" }}
$tertiary={{ hex "tertiary" }}
$error={{ hex "error" }}
$primaryContainer={{ hex "primaryContainer" }}
$secondaryContainer={{ hex "secondaryContainer" }}
$tertiaryContainer={{ hex "tertiaryContainer" }}
$errorContainer={{ hex "errorContainer" }}
$surfaceDim={{ hex "surfaceDim" }}
$surface={{ hex "surface" }}
$surfaceBright={{ hex "surfaceBright" }}
$surfaceContainer={{ hex "surfaceContainer" }}
$outline={{ hex "outline" }}
$shadow={{ hex "shadow" }}
$inversePrimary={{ hex "inversePrimary" }}
$inverseSurface={{ hex "inverseSurface" }}

$onPrimary={{ hex "onPrimary" }}
$onSecondary={{ hex "onSecondary" }}
$onTertiary={{ hex "onTertiary" }}
$onError={{ hex "onError" }}
$onPrimaryContainer={{ hex "onPrimaryContainer" }}
$onSecondaryContainer={{ hex "onSecondaryContainer" }}
$onTertiaryContainer={{ hex "onTertiaryContainer" }}
$onErrorContainer={{ hex "onErrorContainer" }}
$onSurface={{ hex "onSurface" }}
$scrim={{ hex "scrim" }}
`

// PaletteTemplate prints every palette stop as palette.tone=#rrggbb lines.
const PaletteTemplate = `{{ range .Palettes }}{{ $name := .Name }}{{ range .Stops }}{{ $name }}.{{ .Tone }}={{ hex .Color }}
{{ end }}{{ end }}`

// Engine renders a theme through a text template.
type Engine struct {
	// TemplatePath is a template file. When empty, Template is used.
	TemplatePath string
	// Template is the template text used when TemplatePath is empty. When
	// both are empty the scheme dump is rendered.
	Template string
	Dark     bool
}

// Render writes the rendered theme to w.
func (e *Engine) Render(w io.Writer, th *tonal.Theme) error {
	data := buildTemplateData(th, e.Dark)
	tmpl, err := e.parse(data)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmpl.Name(), err)
	}
	return nil
}

// WriteFile renders the theme into path, creating parent directories.
func (e *Engine) WriteFile(path string, th *tonal.Theme) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	defer f.Close()

	if err := e.Render(f, th); err != nil {
		return err
	}
	return f.Close()
}

func (e *Engine) parse(data templateData) (*template.Template, error) {
	if e.TemplatePath != "" {
		tmpl, err := template.New(filepath.Base(e.TemplatePath)).Funcs(data.FuncMap).ParseFiles(e.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", e.TemplatePath, err)
		}
		return tmpl, nil
	}
	text := e.Template
	if text == "" {
		text = SchemeTemplate
	}
	tmpl, err := template.New("scheme").Funcs(data.FuncMap).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return tmpl, nil
}

// templateData is the data passed to templates.
type templateData struct {
	Mode     string
	Variant  string
	Source   color.ARGB
	Seed     hct.Color
	Scheme   map[string]color.ARGB
	Palettes []paletteData
	FuncMap  template.FuncMap
}

type paletteData struct {
	Name  string
	Hue   float64
	Stops []stopData
}

type stopData struct {
	Tone  int
	Color color.ARGB
}

func buildTemplateData(th *tonal.Theme, dark bool) templateData {
	s := th.Scheme(dark)
	data := templateData{
		Mode:    s.Mode.String(),
		Variant: th.Variant.String(),
		Source:  th.Source,
		Seed:    th.Seed,
		Scheme:  s.Map(),
	}
	for _, role := range palette.Roles {
		p := th.Palettes.Get(role)
		pd := paletteData{Name: role.String(), Hue: p.Hue()}
		for i, c := range p.Stops() {
			pd.Stops = append(pd.Stops, stopData{Tone: palette.Tones[i], Color: c})
		}
		data.Palettes = append(data.Palettes, pd)
	}

	resolve := func(v any) (color.ARGB, error) {
		switch v := v.(type) {
		case color.ARGB:
			return v, nil
		case string:
			return resolveColorPath(v, th, s)
		default:
			return 0, fmt.Errorf("cannot use %T as a color", v)
		}
	}
	data.FuncMap = template.FuncMap{
		"hex": func(v any) (string, error) {
			c, err := resolve(v)
			return c.Hex(), err
		},
		"hexBare": func(v any) (string, error) {
			c, err := resolve(v)
			return c.HexBare(), err
		},
		"rgb": func(v any) (string, error) {
			c, err := resolve(v)
			return c.RGB(), err
		},
		"hct": func(v any) (string, error) {
			c, err := resolve(v)
			return hct.FromARGB(c).String(), err
		},
		"role": func(name string) (color.ARGB, error) {
			return resolveColorPath(name, th, s)
		},
		"tone": func(name string, t float64) (color.ARGB, error) {
			role, err := paletteRole(name)
			if err != nil {
				return 0, err
			}
			return th.Palettes.Get(role).Tone(t), nil
		},
	}
	return data
}

// resolveColorPath resolves a role name ("primary", "scheme.primary") or a
// palette stop ("palette.primary.40") to a color.
func resolveColorPath(path string, th *tonal.Theme, s scheme.Scheme) (color.ARGB, error) {
	parts := strings.Split(path, ".")
	switch {
	case len(parts) == 1:
		return schemeColor(s, parts[0])
	case parts[0] == "scheme" && len(parts) == 2:
		return schemeColor(s, parts[1])
	case parts[0] == "palette" && len(parts) == 3:
		role, err := paletteRole(parts[1])
		if err != nil {
			return 0, err
		}
		t, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid tone in %q: %w", path, err)
		}
		return th.Palettes.Get(role).Tone(t), nil
	default:
		return 0, fmt.Errorf("invalid color path %q (valid: role, scheme.role, palette.name.tone)", path)
	}
}

func schemeColor(s scheme.Scheme, name string) (color.ARGB, error) {
	role, ok := scheme.ParseRole(name)
	if !ok {
		return 0, fmt.Errorf("unknown role %q", name)
	}
	return s.Color(role), nil
}

func paletteRole(name string) (palette.Role, error) {
	for _, r := range palette.Roles {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown palette %q", name)
}
