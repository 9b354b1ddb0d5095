package lsp

import (
	"fmt"
	"math"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/tonal/internal/color"
	"github.com/jsvensson/tonal/internal/hct"
)

// colorToLSP converts a color to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.ARGB) protocol.Color {
	return protocol.Color{
		Red:   float32(c.Red()) / 255.0,
		Green: float32(c.Green()) / 255.0,
		Blue:  float32(c.Blue()) / 255.0,
		Alpha: float32(c.Alpha()) / 255.0,
	}
}

// colorFromLSP converts a protocol.Color back to an opaque color.
func colorFromLSP(c protocol.Color) color.ARGB {
	channel := func(v float32) uint8 {
		return uint8(math.Round(min(max(float64(v), 0), 1) * 255))
	}
	return color.FromRGB(channel(c.Red), channel(c.Green), channel(c.Blue))
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces color presentation options for a given color and range.
// A quoted hex literal can be replaced by the picked color either as hex or
// as an hct() call. Function calls are left alone, since their arguments
// carry intent a literal would lose.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := colorFromLSP(params.Color)
	hexStr := c.Hex()

	text := extractText(content, params.Range)
	if !strings.HasPrefix(text, "\"") && !strings.HasPrefix(text, "#") {
		return []protocol.ColorPresentation{}
	}

	newText := hexStr
	if strings.HasPrefix(text, "\"") {
		newText = "\"" + hexStr + "\""
	}

	h := hct.FromARGB(c)
	call := fmt.Sprintf("hct(%.1f, %.1f, %.1f)", h.Hue, h.Chroma, h.Tone)

	return []protocol.ColorPresentation{
		{
			Label: hexStr,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: newText,
			},
		},
		{
			Label: call,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: call,
			},
		},
	}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	_, result, _ := s.docs.Get(string(params.TextDocument.URI))
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	content, _, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
