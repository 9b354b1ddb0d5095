package format

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "basic formatting",
			input:    `quantize{max_colors=64}`,
			expected: `quantize { max_colors = 64 }`,
		},
		{
			name: "top-level attributes aligned",
			input: `source = "#4285f4"
variant = "tonal_spot"
`,
			expected: `source  = "#4285f4"
variant = "tonal_spot"
`,
		},
		{
			name:     "extra whitespace normalized",
			input:    `score   {   desired   =   4   }`,
			expected: `score { desired = 4 }`,
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name:     "hex colors lowercased",
			input:    "source = \"#4285F4\"\nscore {\n  fallback = \"#FFAA00\"\n}\n",
			expected: "source = \"#4285f4\"\nscore {\n  fallback = \"#ffaa00\"\n}\n",
		},
		{
			name:     "colors in function calls lowercased",
			input:    `source = tone("#ABC", 40)`,
			expected: `source = tone("#abc", 40)`,
		},
		{
			name:     "other strings untouched",
			input:    `image = "Wallpaper.PNG"`,
			expected: `image = "Wallpaper.PNG"`,
		},
		{
			name:     "multiple blank lines collapsed to one",
			input:    "source = \"#ffffff\"\n\n\n\nquantize { workers = 2 }",
			expected: "source = \"#ffffff\"\n\nquantize { workers = 2 }",
		},
		{
			name:     "single blank line preserved",
			input:    "dark = true\n\nscore { desired = 2 }",
			expected: "dark = true\n\nscore { desired = 2 }",
		},
		{
			name:     "blank line after opening brace removed",
			input:    "quantize {\n\n  max_colors = 64\n}",
			expected: "quantize {\n  max_colors = 64\n}",
		},
		{
			name:     "blank line before closing brace removed",
			input:    "quantize {\n  max_colors = 64\n\n}",
			expected: "quantize {\n  max_colors = 64\n}",
		},
		{
			name:     "blank lines after and before braces both removed",
			input:    "score {\n\n  min_tone = 10\n\n}",
			expected: "score {\n  min_tone = 10\n}",
		},
		{
			name: "block alignment",
			input: `score {
  desired = 4
  min_proportion = 0.01
}
`,
			expected: `score {
  desired        = 4
  min_proportion = 0.01
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(tt.input)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			// Normalize line endings for comparison
			result = strings.TrimSuffix(result, "\n")
			expected := strings.TrimSuffix(tt.expected, "\n")

			if result != expected {
				t.Errorf("Format() = %q, want %q", result, expected)
			}
		})
	}
}

func TestFormatInvalidHCL(t *testing.T) {
	// hclwrite.Format should handle partial/invalid HCL gracefully
	input := `score { fallback = "#FFFFFF"`
	got, err := Format(input)
	if err != nil {
		t.Errorf("Format() on incomplete HCL should not error, got: %v", err)
	}
	if !strings.Contains(got, "#FFFFFF") {
		t.Errorf("Format() changed colors in unparsable source: %q", got)
	}
}
