package format

import (
	"bytes"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)
var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Format takes config source and returns it formatted according to HCL
// canonical style rules, with hex color literals lowercased.
//
// The formatter works even on partial/invalid HCL, making it suitable
// for use while the user is still typing. Colors are only normalized
// once the source parses.
func Format(content string) (string, error) {
	src := []byte(content)
	if f, diags := hclwrite.ParseConfig(src, "", hcl.InitialPos); !diags.HasErrors() {
		lowerColors(f.Body())
		src = f.Bytes()
	}
	formatted := hclwrite.Format(src)
	// Collapse multiple consecutive blank lines into a single blank line.
	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	// Remove blank lines immediately after opening braces.
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	// Remove blank lines immediately before closing braces.
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed, nil
}

// lowerColors rewrites quoted hex colors in every attribute in place.
func lowerColors(body *hclwrite.Body) {
	for _, attr := range body.Attributes() {
		for _, tok := range attr.Expr().BuildTokens(nil) {
			if tok.Type == hclsyntax.TokenQuotedLit && hexColor.Match(tok.Bytes) {
				tok.Bytes = bytes.ToLower(tok.Bytes)
			}
		}
	}
	for _, block := range body.Blocks() {
		lowerColors(block.Body())
	}
}
