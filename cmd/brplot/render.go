package main

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iafilius/BestResponsePlot/src/config"
	"github.com/iafilius/BestResponsePlot/src/logging"
	"github.com/iafilius/BestResponsePlot/src/payoff"
	"github.com/iafilius/BestResponsePlot/src/render"
)

// Best responses of the payoff model, from dU1/ds1 = 0 and dU2/ds2 = 0.
func bestResponse1(s2 float64) float64 { return (1 + s2) / 2 }
func bestResponse2(s1 float64) float64 { return (3 + s1) / 2 }

type renderOptions struct {
	root *rootOptions

	s1Min, s1Max float64
	s2Min, s2Max float64
	out          string
	format       string
	caption      string
	formulas     bool
	show         bool
}

func (o *renderOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&o.s1Min, "s1-min", payoff.S1Min, "lower bound of s1")
	f.Float64Var(&o.s1Max, "s1-max", payoff.S1Max, "upper bound of s1")
	f.Float64Var(&o.s2Min, "s2-min", payoff.S2Min, "lower bound of s2")
	f.Float64Var(&o.s2Max, "s2-max", payoff.S2Max, "upper bound of s2")
	f.StringVar(&o.out, "out", config.DefaultOutputPath, "output file")
	f.StringVar(&o.format, "format", string(render.FormatPNG), "output format (png|svg)")
	f.StringVar(&o.caption, "caption", "", "caption drawn under the chart (png only)")
	f.BoolVar(&o.formulas, "formulas", false, "caption the chart with the payoff formulas")
	f.BoolVar(&o.show, "show", false, "open the chart in a window after writing it")
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	o := &renderOptions{root: root}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the best-response chart to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, o)
		},
	}
	o.bind(cmd)
	return cmd
}

// resolveConfig loads the config file and applies any flags the user set.
func resolveConfig(cmd *cobra.Command, o *renderOptions) (config.Config, error) {
	cfg, err := config.Load(o.root.configPath)
	if err != nil {
		return config.Config{}, err
	}
	f := cmd.Flags()
	if f.Changed("s1-min") {
		cfg.Domain.S1Min = o.s1Min
	}
	if f.Changed("s1-max") {
		cfg.Domain.S1Max = o.s1Max
	}
	if f.Changed("s2-min") {
		cfg.Domain.S2Min = o.s2Min
	}
	if f.Changed("s2-max") {
		cfg.Domain.S2Max = o.s2Max
	}
	if f.Changed("out") {
		cfg.Output.Path = o.out
	}
	if f.Changed("format") {
		cfg.Output.Format = o.format
	}
	if f.Changed("caption") {
		cfg.Figure.Caption = o.caption
	}
	if o.formulas {
		cfg.Figure.Caption = payoff.Formulas
	}
	if o.root.logLevel != "" {
		cfg.LogLevel = o.root.logLevel
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, o *renderOptions) error {
	defer logging.TimeTrack(time.Now(), "render")
	logging.SetOutput(cmd.ErrOrStderr())

	cfg, err := resolveConfig(cmd, o)
	if err != nil {
		return err
	}
	if !logging.SetLogLevel(cfg.LogLevel) {
		logging.Warnf("unknown log level %q, keeping %d", cfg.LogLevel, logging.GetLogLevel())
	}
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	d := cfg.Domain
	if d.Degenerate() {
		logging.Debugf("degenerate domain %+v; guides will collapse", d)
	}
	logging.Debugf("domain %+v eps1=%g eps2=%g", d, d.Eps1(), d.Eps2())

	r := &render.Renderer{Style: cfg.RenderStyle()}
	fig := r.Render(d, bestResponse1, bestResponse2)

	if fig.Caption != "" && format != render.FormatPNG {
		logging.Warnf("caption ignored for %s output", format)
	}
	var buf bytes.Buffer
	if err := render.Encode(fig, format, &buf); err != nil {
		return err
	}
	if dir := filepath.Dir(cfg.Output.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create output dir")
		}
	}
	if err := os.WriteFile(cfg.Output.Path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", cfg.Output.Path)
	}
	logging.Infof("wrote %s (%s, %dx%d)", cfg.Output.Path, format, fig.Size, fig.Size)

	if o.show {
		img, err := render.Image(fig)
		if err != nil {
			return err
		}
		showWindow("Best responses", img, fig.Size)
	}
	return nil
}
