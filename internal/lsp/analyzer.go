package lsp

import (
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"

	"github.com/jsvensson/tonal/internal/color"
	"github.com/jsvensson/tonal/internal/config"
	"github.com/jsvensson/tonal/internal/hct"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

const diagSource = "tonal"

// lowChroma is the seed chroma below which every generated palette is
// close to gray.
const lowChroma = 5.0

// colorAttributes lists the attributes holding a color, keyed by block
// ("" for the top level).
var colorAttributes = map[string][]string{
	"":      {"source"},
	"score": {"fallback"},
}

// AnalysisResult holds all information produced by analyzing a config file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	// Config is nil when the file has errors.
	Config *config.Config
	Colors []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range  protocol.Range
	Color  color.ARGB
	IsCall bool // true for hct() and tone() calls, false for literals
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses config content from memory and produces diagnostics and
// color locations. It collects all errors the config decoder reports
// rather than stopping at the first.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Cannot proceed with semantic analysis if syntax is broken
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	cfg, diags := config.Parse([]byte(content), filename)
	for _, d := range diags {
		result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
	}
	if !diags.HasErrors() {
		result.Config = cfg
	}

	result.collectColors(body, "")
	for _, block := range body.Blocks {
		result.collectColors(block.Body, block.Type)
	}
	slices.SortFunc(result.Colors, func(a, b ColorLocation) int {
		if a.Range.Start.Line != b.Range.Start.Line {
			return int(a.Range.Start.Line) - int(b.Range.Start.Line)
		}
		return int(a.Range.Start.Character) - int(b.Range.Start.Character)
	})

	if result.Config != nil && result.Config.Source != 0 {
		if c := hct.FromARGB(result.Config.Source); c.Chroma < lowChroma {
			result.addWarning(*config.AttributeRange(body, "", "source"),
				fmt.Sprintf("source color has chroma %.1f; generated palettes will be nearly gray", c.Chroma))
		}
	}

	return result
}

// collectColors records the color attributes of one block body. Values
// that fail to evaluate are skipped; the config decoder reports them.
func (r *AnalysisResult) collectColors(body *hclsyntax.Body, block string) {
	ctx := config.EvalContext()
	for _, name := range colorAttributes[block] {
		attr, ok := body.Attributes[name]
		if !ok {
			continue
		}
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() || val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
			continue
		}
		c, err := color.ParseHex(val.AsString())
		if err != nil {
			continue
		}
		_, isCall := attr.Expr.(*hclsyntax.FunctionCallExpr)
		r.Colors = append(r.Colors, ColorLocation{
			Range:  hclRangeToLSP(attr.Expr.Range()),
			Color:  c,
			IsCall: isCall,
		})
	}
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}
