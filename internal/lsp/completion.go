package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/tonal/internal/palette"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot     blockContext = iota
	contextQuantize              // inside quantize {}
	contextScore                 // inside score {}
	contextUnknown               // inside a block the config does not define
)

// attributeDoc documents one config attribute for completion.
type attributeDoc struct {
	name   string
	detail string
}

var rootAttributes = []attributeDoc{
	{"source", "seed color, hex or hct()"},
	{"image", "image file to extract the seed from"},
	{"variant", "palette derivation: " + strings.Join(palette.VariantNames(), ", ")},
	{"dark", "render the dark scheme"},
	{"output", "file to write, stdout when unset"},
	{"template", "text/template file to render"},
}

var quantizeAttributes = []attributeDoc{
	{"max_colors", "colors kept by the quantizer"},
	{"max_iterations", "k-means refinement rounds"},
	{"workers", "parallel workers, 0 for automatic"},
	{"resize", "[width, height] bound for downscaling"},
}

var scoreAttributes = []attributeDoc{
	{"desired", "number of seed candidates"},
	{"fallback", "seed used when no color qualifies"},
	{"filter", "drop colors below the thresholds"},
	{"min_chroma", "minimum chroma of a candidate"},
	{"min_tone", "minimum tone of a candidate"},
	{"max_tone", "maximum tone of a candidate"},
	{"target_chroma", "chroma scored as neutral"},
	{"min_proportion", "minimum share of the hue's population"},
}

// topLevelBlocks are the valid top-level block names.
var topLevelBlocks = []string{"quantize", "score"}

// boolAttributes take true or false.
var boolAttributes = map[string]bool{"dark": true, "filter": true}

// complete produces completion items given an analysis result, document content,
// and cursor position. This is the core logic, decoupled from the LSP protocol
// handler for testability.
func complete(_ *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	if name, quoted, ok := valuePosition(textBeforeCursor); ok {
		return valueCompletions(name, quoted)
	}

	switch determineBlockContext(lines, int(pos.Line)) {
	case contextRoot:
		return topLevelCompletions(lines, int(pos.Line))
	case contextQuantize:
		return attributeCompletions(quantizeAttributes, lines, int(pos.Line))
	case contextScore:
		return attributeCompletions(scoreAttributes, lines, int(pos.Line))
	}

	return nil
}

// valuePosition reports the attribute name when the text before the cursor
// ends at a value position: after an "=" sign, or just inside an opening
// quote, in which case quoted is set.
func valuePosition(textBeforeCursor string) (name string, quoted, ok bool) {
	name, value, ok := strings.Cut(textBeforeCursor, "=")
	if !ok {
		return "", false, false
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if name == "" || strings.ContainsAny(name, " {") {
		return "", false, false
	}
	switch value {
	case "":
		return name, false, true
	case `"`:
		return name, true, true
	}
	return "", false, false
}

// valueCompletions returns completion items for the value of the named
// attribute. Inside a quote only string values are offered.
func valueCompletions(name string, quoted bool) []protocol.CompletionItem {
	switch {
	case name == "variant":
		kind := protocol.CompletionItemKindEnumMember
		var items []protocol.CompletionItem
		for _, v := range palette.VariantNames() {
			text := `"` + v + `"`
			if quoted {
				text = v
			}
			items = append(items, protocol.CompletionItem{
				Label:      v,
				Kind:       &kind,
				InsertText: &text,
			})
		}
		return items
	case quoted:
		return nil
	case boolAttributes[name]:
		kind := protocol.CompletionItemKindValue
		return []protocol.CompletionItem{
			{Label: "true", Kind: &kind},
			{Label: "false", Kind: &kind},
		}
	case name == "source" || name == "fallback":
		return colorFunctionCompletions()
	}
	return nil
}

// colorFunctionCompletions returns snippets for the color functions.
func colorFunctionCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	hctSnippet := "hct(${1:hue}, ${2:chroma}, ${3:tone})"
	toneSnippet := "tone(${1:\"#4285f4\"}, ${2:tone})"

	return []protocol.CompletionItem{
		{
			Label:            "hct",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("hct(hue, chroma, tone)"),
			InsertText:       &hctSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:            "tone",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("tone(color, tone)"),
			InsertText:       &toneSnippet,
			InsertTextFormat: &snippetFormat,
		},
	}
}

// determineBlockContext scans from the top of the file down to the cursor line
// to determine which block the cursor is in, using brace nesting.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		// Process opening braces: extract the block name (first word on the line)
		if opens > 0 {
			parts := strings.Fields(line)
			if len(parts) >= 1 {
				for range opens {
					stack = append(stack, parts[0])
				}
			}
		}

		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot
	}
	if len(stack) > 1 {
		return contextUnknown
	}

	switch stack[0] {
	case "quantize":
		return contextQuantize
	case "score":
		return contextScore
	default:
		return contextUnknown
	}
}

// attributeCompletions returns attribute completions, excluding attributes
// already defined in the current block.
func attributeCompletions(attrs []attributeDoc, lines []string, cursorLine int) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)
	kind := protocol.CompletionItemKindProperty

	var items []protocol.CompletionItem
	for _, a := range attrs {
		if defined[a.name] {
			continue
		}
		text := a.name + " = "
		items = append(items, protocol.CompletionItem{
			Label:      a.name,
			Kind:       &kind,
			Detail:     strPtr(a.detail),
			InsertText: &text,
		})
	}

	return items
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to cursorLine) and returns attribute names already defined
// (lines containing "name = ..."). Attributes of nested blocks are ignored.
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	// Scan backwards to find the opening brace of the current block
	first := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		closes := strings.Count(line, "}")
		opens := strings.Count(line, "{")
		depth += closes - opens
		if depth < 0 {
			first = i + 1
			break
		}
	}

	// Scan forward to cursorLine, collecting attribute names at this depth
	depth = 0
	for i := first; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if depth == 0 {
			if eqIdx := strings.Index(line, "="); eqIdx > 0 {
				name := strings.TrimSpace(line[:eqIdx])
				if !strings.ContainsAny(name, " {") {
					defined[name] = true
				}
			}
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
	}

	return defined
}

// topLevelCompletions returns the top-level attributes not yet set, followed
// by snippets for the blocks not yet present.
func topLevelCompletions(lines []string, cursorLine int) []protocol.CompletionItem {
	items := attributeCompletions(rootAttributes, lines, cursorLine)

	present := make(map[string]bool)
	for _, line := range lines {
		if fields := strings.Fields(line); len(fields) >= 2 && fields[1] == "{" {
			present[fields[0]] = true
		}
	}

	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet
	for _, name := range topLevelBlocks {
		if present[name] {
			continue
		}
		snippet := name + " {\n  $0\n}"
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	content, result, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}

	items := complete(result, content, params.Position)
	return items, nil
}
