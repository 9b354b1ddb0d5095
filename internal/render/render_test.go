package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/jsvensson/tonal"
	"github.com/jsvensson/tonal/internal/scheme"
)

func testTheme() *tonal.Theme {
	return tonal.FromSeed(0xff0000ff)
}

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.tmpl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderSchemeDump(t *testing.T) {
	th := testTheme()
	for _, dark := range []bool{false, true} {
		var buf bytes.Buffer
		e := &Engine{Dark: dark}
		if err := e.Render(&buf, th); err != nil {
			t.Fatalf("Render() error = %v", err)
		}

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if len(lines) != 30 {
			t.Fatalf("dump has %d lines, want 28 colors and 2 blank separators", len(lines))
		}
		if lines[2] != "" || lines[19] != "" {
			t.Errorf("blank separators missing: %q / %q", lines[2], lines[19])
		}

		s := th.Scheme(dark)
		colors := 0
		for _, line := range lines {
			if line == "" {
				continue
			}
			colors++
			name, hex, ok := strings.Cut(strings.TrimPrefix(line, "$"), "=")
			if !ok || !strings.HasPrefix(line, "$") {
				t.Errorf("malformed line %q", line)
				continue
			}
			role, ok := scheme.ParseRole(name)
			if !ok {
				t.Errorf("unknown role in %q", line)
				continue
			}
			if want := s.Color(role).Hex(); hex != want {
				t.Errorf("%s = %s, want %s", name, hex, want)
			}
		}
		if colors != 28 {
			t.Errorf("dump has %d colors, want 28", colors)
		}
		if lines[0] != "$background="+s.Color(scheme.Background).Hex() {
			t.Errorf("first line = %q", lines[0])
		}
		if lines[len(lines)-1] != "$scrim="+s.Color(scheme.Scrim).Hex() {
			t.Errorf("last line = %q", lines[len(lines)-1])
		}
	}
}

func TestRenderTemplateFile(t *testing.T) {
	th := testTheme()
	path := writeTemplate(t, `mode={{ .Mode }}
variant={{ .Variant }}
primary={{ hexBare .Scheme.primary }}
container={{ rgb "primaryContainer" }}`)

	var buf bytes.Buffer
	e := &Engine{TemplatePath: path, Dark: true}
	if err := e.Render(&buf, th); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		"mode=dark",
		"variant=tonal_spot",
		"primary=" + th.Dark.Color(scheme.Primary).HexBare(),
		"container=" + th.Dark.Color(scheme.PrimaryContainer).RGB(),
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTemplateFunctions(t *testing.T) {
	th := testTheme()
	data := buildTemplateData(th, false)

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"role name", `{{ hex "primary" }}`, th.Light.Color(scheme.Primary).Hex()},
		{"scheme path", `{{ hex "scheme.onSurface" }}`, th.Light.Color(scheme.OnSurface).Hex()},
		{"palette path", `{{ hex "palette.tertiary.40" }}`, th.Palettes.Tertiary.Tone(40).Hex()},
		{"direct field", `{{ hex .Scheme.surface }}`, th.Light.Color(scheme.Surface).Hex()},
		{"role function", `{{ role "outline" | hex }}`, th.Light.Color(scheme.Outline).Hex()},
		{"tone function", `{{ tone "neutral_variant" 42 | hex }}`, th.Palettes.NeutralVariant.Tone(42).Hex()},
		{"seed", `{{ hex .Source }}`, "#0000ff"},
		{"hct", `{{ hct .Source }}`, th.Seed.String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := template.New("test").Funcs(data.FuncMap).Parse(tt.template)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, data); err != nil {
				t.Fatalf("execute error: %v", err)
			}
			if got := strings.TrimSpace(buf.String()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplateFunctionErrors(t *testing.T) {
	th := testTheme()
	for _, text := range []string{
		`{{ hex "nope" }}`,
		`{{ hex "palette.primary.dark" }}`,
		`{{ hex "palette.sepia.40" }}`,
		`{{ hex "a.b.c.d" }}`,
		`{{ hex 42 }}`,
		`{{ tone "sepia" 40 }}`,
	} {
		e := &Engine{Template: text}
		if err := e.Render(&bytes.Buffer{}, th); err == nil {
			t.Errorf("Render(%s) succeeded, want error", text)
		}
	}
}

func TestRenderPaletteTemplate(t *testing.T) {
	th := testTheme()
	var buf bytes.Buffer
	e := &Engine{Template: PaletteTemplate}
	if err := e.Render(&buf, th); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6*23 {
		t.Errorf("got %d lines, want %d", len(lines), 6*23)
	}
	if want := "primary.40=" + th.Palettes.Primary.Tone(40).Hex(); !strings.Contains(buf.String(), want+"\n") {
		t.Errorf("output missing %q", want)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "colors.txt")
	e := &Engine{}
	if err := e.WriteFile(path, testTheme()); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "$background=#") {
		t.Errorf("unexpected output:\n%s", data)
	}
}
