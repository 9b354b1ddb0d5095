package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jsvensson/tonal"
	"github.com/jsvensson/tonal/internal/config"
	"github.com/jsvensson/tonal/internal/format"
	"github.com/jsvensson/tonal/internal/pixels"
	"github.com/jsvensson/tonal/internal/render"
)

var version = "dev" // Injected at build time via ldflags

var log = commonlog.GetLogger("tonal")

var errNoSeed = errors.New("a source color or an image file is required")

// flags holds the values of every command line flag.
type flags struct {
	source   string
	file     string
	output   string
	dark     bool
	variant  string
	template string
	config   string
	verbose  int
	check    bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:          "tonal",
		Short:        "Generate Material color schemes from a seed color or an image",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(f.verbose, nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f, "")
		},
	}
	rootCmd.PersistentFlags().CountVarP(&f.verbose, "verbose", "v", "log more (can be repeated)")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the color scheme, or render it through a template",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f, "")
		},
	}

	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "Print every tonal palette at each stop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f, render.PaletteTemplate)
		},
	}

	fmtCmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Format tonal config files",
		Long:  "Format one or more tonal config files in-place. Prints the name of each file that was modified.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, f.check)
		},
	}
	fmtCmd.Flags().BoolVarP(&f.check, "check", "c", false, "check if files are formatted (do not write changes)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	for _, cmd := range []*cobra.Command{rootCmd, generateCmd, paletteCmd} {
		themeFlags(cmd, f)
	}
	rootCmd.AddCommand(generateCmd, paletteCmd, fmtCmd, versionCmd)
	return rootCmd
}

// themeFlags registers the flags shared by the commands that build a theme.
func themeFlags(cmd *cobra.Command, f *flags) {
	fs := cmd.Flags()
	fs.StringVarP(&f.source, "source", "s", "", "seed color, e.g. #4285f4")
	fs.StringVarP(&f.file, "file", "f", "", "image to extract the seed color from")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.BoolVar(&f.dark, "dark", false, "use the dark scheme")
	fs.StringVar(&f.variant, "variant", "", "palette variant: tonal_spot, content, vibrant, expressive, neutral, monochrome")
	fs.StringVar(&f.template, "template", "", "text/template file to render instead of the scheme dump")
	fs.StringVarP(&f.config, "config", "c", config.DefaultFile, "path to config file")
	cmd.MarkFlagsMutuallyExclusive("source", "file")
}

// loadConfig reads the config file and applies the flags given on the
// command line on top of it. The default config file may be missing.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	fs := cmd.Flags()

	var cfg *config.Config
	var err error
	if fs.Changed("config") {
		cfg, err = config.Load(f.config)
	} else {
		cfg, err = config.LoadOptional(f.config)
	}
	if err != nil {
		return nil, err
	}

	if fs.Changed("source") {
		c, err := tonal.ParseHex(f.source)
		if err != nil {
			return nil, fmt.Errorf("parsing --source: %w", err)
		}
		cfg.Source, cfg.Image = c, ""
	}
	if fs.Changed("file") {
		cfg.Source, cfg.Image = 0, f.file
	}
	if fs.Changed("variant") {
		v, err := tonal.ParseVariant(f.variant)
		if err != nil {
			return nil, fmt.Errorf("parsing --variant: %w", err)
		}
		cfg.Variant = v
	}
	if fs.Changed("dark") {
		cfg.Dark = f.dark
	}
	if fs.Changed("output") {
		cfg.Output = f.output
	}
	if fs.Changed("template") {
		cfg.Template = f.template
	}
	return cfg, nil
}

// buildTheme builds the theme for the configured seed color or image.
func buildTheme(cmd *cobra.Command, cfg *config.Config) (*tonal.Theme, error) {
	opts := []tonal.Option{
		tonal.WithVariant(cfg.Variant),
		tonal.WithMaxColors(cfg.MaxColors),
		tonal.WithMaxIterations(cfg.MaxIterations),
		tonal.WithWorkers(cfg.Workers),
		tonal.WithScoreOptions(cfg.Score),
	}

	switch {
	case cfg.Source != 0:
		return tonal.FromSeed(cfg.Source, opts...), nil
	case cfg.Image != "":
		px, err := pixels.Load(cfg.Image, cfg.Width, cfg.Height)
		if err != nil {
			return nil, fmt.Errorf("loading image: %w", err)
		}
		log.Debugf("quantizing %d pixels from %s", len(px), cfg.Image)
		th, err := tonal.FromImage(cmd.Context(), px, opts...)
		if err != nil {
			return nil, err
		}
		log.Infof("seed color %s %s", th.Source.Hex(), th.Seed)
		return th, nil
	default:
		return nil, errNoSeed
	}
}

// runGenerate renders the theme. A non-empty tmpl replaces the configured
// template.
func runGenerate(cmd *cobra.Command, f *flags, tmpl string) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	th, err := buildTheme(cmd, cfg)
	if err != nil {
		return err
	}

	e := &render.Engine{TemplatePath: cfg.Template, Dark: cfg.Dark}
	if tmpl != "" {
		e.TemplatePath, e.Template = "", tmpl
	}

	if cfg.Output == "" {
		return e.Render(cmd.OutOrStdout(), th)
	}
	if err := e.WriteFile(cfg.Output, th); err != nil {
		return fmt.Errorf("generating: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", cfg.Output)
	return nil
}

func runFmt(cmd *cobra.Command, args []string, check bool) error {
	hasErrors := false
	unformatted := 0

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		unformatted++

		if !check {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	switch {
	case hasErrors:
		return errors.New("formatting failed")
	case check && unformatted > 0:
		return fmt.Errorf("%d file(s) need formatting", unformatted)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
