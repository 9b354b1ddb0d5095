package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/tonal/internal/hct"
	"github.com/jsvensson/tonal/internal/palette"
)

func hoverText(t *testing.T, h *protocol.Hover) string {
	t.Helper()
	if h == nil {
		t.Fatal("expected non-nil hover result")
	}
	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("expected MarkupContent, got %T", h.Contents)
	}
	if mc.Kind != protocol.MarkupKindMarkdown {
		t.Errorf("expected markdown kind, got %q", mc.Kind)
	}
	return mc.Value
}

func TestHover_HexLiteral(t *testing.T) {
	content := "source = \"#4285f4\"\n"
	result := Analyze("tonal.hcl", content)

	h := hover(result, content, protocol.Position{Line: 0, Character: 12})
	md := hoverText(t, h)

	seed := hct.FromARGB(0xff4285f4)
	for _, want := range []string{"`#4285f4`", "`rgb(66, 133, 244)`", "`" + seed.String() + "`", "tonal_spot primary"} {
		if !strings.Contains(md, want) {
			t.Errorf("hover content should contain %q, got:\n%s", want, md)
		}
	}
	if strings.Contains(md, "**") {
		t.Errorf("literal hover should not repeat the source text, got:\n%s", md)
	}

	primary := palette.FromSeed(seed, palette.Primary, palette.TonalSpot)
	if want := "- 40 `" + primary.Tone(40).Hex() + "`"; !strings.Contains(md, want) {
		t.Errorf("hover content should contain %q, got:\n%s", want, md)
	}
	if want := "key `" + primary.KeyColor().ARGB().Hex() + "`"; !strings.Contains(md, want) {
		t.Errorf("hover content should contain %q, got:\n%s", want, md)
	}
	if n := strings.Count(md, "\n- "); n != len(hoverTones) {
		t.Errorf("hover lists %d tones, want %d", n, len(hoverTones))
	}

	if *h.Range != result.Colors[0].Range {
		t.Errorf("hover range = %+v, want %+v", *h.Range, result.Colors[0].Range)
	}
}

func TestHover_UsesConfiguredVariant(t *testing.T) {
	content := "variant = \"vibrant\"\nsource  = \"#4285f4\"\n"
	result := Analyze("tonal.hcl", content)

	md := hoverText(t, hover(result, content, protocol.Position{Line: 1, Character: 12}))
	if !strings.Contains(md, "vibrant primary") {
		t.Errorf("hover should follow the configured variant, got:\n%s", md)
	}
}

func TestHover_FunctionCall(t *testing.T) {
	content := "score {\n  fallback = hct(282, 36, 40)\n}\n"
	result := Analyze("tonal.hcl", content)

	md := hoverText(t, hover(result, content, protocol.Position{Line: 1, Character: 16}))
	if !strings.Contains(md, "**hct(282, 36, 40)**") {
		t.Errorf("hover content should contain the call, got:\n%s", md)
	}
	if want := hct.New(282, 36, 40).ARGB().Hex(); !strings.Contains(md, want) {
		t.Errorf("hover content should contain %q, got:\n%s", want, md)
	}
}

func TestHover_NoColor(t *testing.T) {
	content := "source = \"#4285f4\"\ndark   = true\n"
	result := Analyze("tonal.hcl", content)

	tests := []struct {
		name string
		pos  protocol.Position
	}{
		{"attribute name", protocol.Position{Line: 0, Character: 2}},
		{"other attribute", protocol.Position{Line: 1, Character: 10}},
		{"past end", protocol.Position{Line: 5, Character: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if h := hover(result, content, tt.pos); h != nil {
				t.Errorf("expected nil hover, got %+v", h)
			}
		})
	}

	if h := hover(nil, content, protocol.Position{}); h != nil {
		t.Errorf("hover(nil) = %+v, want nil", h)
	}
}

func TestPosInRange(t *testing.T) {
	r := protocol.Range{
		Start: protocol.Position{Line: 5, Character: 10},
		End:   protocol.Position{Line: 5, Character: 22},
	}

	tests := []struct {
		name string
		pos  protocol.Position
		want bool
	}{
		{"before range", protocol.Position{Line: 5, Character: 9}, false},
		{"at start", protocol.Position{Line: 5, Character: 10}, true},
		{"in middle", protocol.Position{Line: 5, Character: 15}, true},
		{"at end (exclusive)", protocol.Position{Line: 5, Character: 22}, false},
		{"after range", protocol.Position{Line: 5, Character: 23}, false},
		{"line before", protocol.Position{Line: 4, Character: 15}, false},
		{"line after", protocol.Position{Line: 6, Character: 15}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := posInRange(tt.pos, r)
			if got != tt.want {
				t.Errorf("posInRange(%v, %v) = %v, want %v", tt.pos, r, got, tt.want)
			}
		})
	}
}

func TestExtractText(t *testing.T) {
	content := "source = \"#4285f4\"\nscore {\n  fallback = \"#fff\"\n}"
	tests := []struct {
		name string
		r    protocol.Range
		want string
	}{
		{
			"single line",
			protocol.Range{Start: protocol.Position{Line: 0, Character: 9}, End: protocol.Position{Line: 0, Character: 18}},
			`"#4285f4"`,
		},
		{
			"multi line",
			protocol.Range{Start: protocol.Position{Line: 1, Character: 6}, End: protocol.Position{Line: 2, Character: 10}},
			"{\n  fallback",
		},
		{
			"clamped end",
			protocol.Range{Start: protocol.Position{Line: 3, Character: 0}, End: protocol.Position{Line: 3, Character: 40}},
			"}",
		},
		{
			"past end",
			protocol.Range{Start: protocol.Position{Line: 9, Character: 0}, End: protocol.Position{Line: 9, Character: 1}},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractText(content, tt.r); got != tt.want {
				t.Errorf("extractText() = %q, want %q", got, tt.want)
			}
		})
	}
}
