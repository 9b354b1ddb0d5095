package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/jsvensson/tonal/internal/color"
	"github.com/jsvensson/tonal/internal/hct"
)

// MakeHCTFunc creates an HCL function that converts HCT coordinates to a
// hex color. Usage: hct(282, 36, 40)
func MakeHCTFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the hex color closest to the given hue, chroma and tone",
		Params: []function.Parameter{
			{Name: "hue", Type: cty.Number},
			{Name: "chroma", Type: cty.Number},
			{Name: "tone", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			h, _ := args[0].AsBigFloat().Float64()
			c, _ := args[1].AsBigFloat().Float64()
			t, _ := args[2].AsBigFloat().Float64()
			return cty.StringVal(hct.New(h, c, t).ARGB().Hex()), nil
		},
	})
}

// MakeToneFunc creates an HCL function that moves a color to another tone
// while keeping its hue and chroma. Usage: tone("#4285f4", 90)
func MakeToneFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the color with the same hue and chroma at the given tone",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "tone", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			t, _ := args[1].AsBigFloat().Float64()
			h := hct.FromARGB(c)
			return cty.StringVal(hct.Solve(h.Hue, h.Chroma, min(max(t, 0), 100)).Hex()), nil
		},
	})
}

// Functions returns the functions available in config files.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"hct":  MakeHCTFunc(),
		"tone": MakeToneFunc(),
	}
}

// EvalContext creates the evaluation context for config files.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: Functions(),
	}
}
