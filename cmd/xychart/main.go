// Command xychart runs the four axis demo chart for a while and saves the
// final frame as a PNG image.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/vdobler/xychart"
	"github.com/vdobler/xychart/data"
	"github.com/vdobler/xychart/geom"
	"github.com/vdobler/xychart/internal/config"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const dt = 0.1

var demoSeries = []struct {
	name  string
	axis  int
	label string
	side  xychart.Side
	f     func(t float64) float64
}{
	{"Line 1 (small)", 0, "Line 1 (small)", xychart.Left, func(t float64) float64 { return math.Sin(t * 0.1) }},
	{"Line 2 (medium)", 1, "Line 2 (medium)", xychart.Right, func(t float64) float64 { return 100 * math.Sin(t*0.2) }},
	{"Line 3 (large)", 2, "Line 3 (large)", xychart.Left, func(t float64) float64 { return 1e6 * math.Sin(t*0.15) }},
	{"Line 4 (huge)", 3, "Line 4 (huge)", xychart.Right, func(t float64) float64 { return 1e9 * math.Cos(t*0.08+1) }},
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xychart",
		Short: "Render the multi axis demo chart to PNG",
		Long: `xychart feeds four sine waves of very different magnitude into a
chart with one Y axis per wave and writes the final frame as PNG.
Settings come from XYCHART_* environment variables and can be
overridden with flags.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringP("output", "o", "", "Output PNG file")
	rootCmd.Flags().Float64("width", 0, "Image width in pixels")
	rootCmd.Flags().Float64("height", 0, "Image height in pixels")
	rootCmd.Flags().Int("max-points", 0, "Points kept per series, 0 keeps all")
	rootCmd.Flags().Int("steps", 0, "Number of simulated timer ticks")
	rootCmd.Flags().Int("ticks", 0, "Tick divisions per axis, 0 uses gonum's ticker")
	rootCmd.Flags().Bool("dark", false, "Use the dark theme")
	rootCmd.Flags().Bool("single-axis", false, "Draw all series against one Y axis")
	return rootCmd
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("output") {
		if cfg.Output, err = flags.GetString("output"); err != nil {
			return err
		}
	}
	if flags.Changed("width") {
		if cfg.Width, err = flags.GetFloat64("width"); err != nil {
			return err
		}
	}
	if flags.Changed("height") {
		if cfg.Height, err = flags.GetFloat64("height"); err != nil {
			return err
		}
	}
	if flags.Changed("max-points") {
		if cfg.MaxPoints, err = flags.GetInt("max-points"); err != nil {
			return err
		}
	}
	if flags.Changed("steps") {
		if cfg.Steps, err = flags.GetInt("steps"); err != nil {
			return err
		}
	}
	if flags.Changed("ticks") {
		if cfg.Ticks, err = flags.GetInt("ticks"); err != nil {
			return err
		}
	}
	if flags.Changed("dark") {
		if cfg.Dark, err = flags.GetBool("dark"); err != nil {
			return err
		}
	}
	return cfg.Validate()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	single, _ := cmd.Flags().GetBool("single-axis")
	chart := newDemoChart(cfg, logger, !single)

	repaints := 0
	chart.SetUpdateFunc(func() { repaints++ })
	for i := 0; i < cfg.Steps; i++ {
		t := float64(i) * dt
		for _, ds := range demoSeries {
			chart.AddPoint(ds.name, t, ds.f(t))
		}
	}
	logger.Info("data generated", "steps", cfg.Steps, "repaints", repaints,
		"x", chart.XRange().String())

	simulatePointer(chart, logger)

	if err := save(chart, cfg); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Output, err)
	}
	logger.Info("chart saved", "file", cfg.Output)
	return nil
}

func newDemoChart(cfg *config.Config, logger *slog.Logger, multiAxis bool) *xychart.Chart {
	var ticker plot.Ticker = plot.DefaultTicks{}
	if cfg.Ticks > 0 {
		ticker = xychart.EvenTicks{Divisions: cfg.Ticks}
	}
	chart := xychart.NewChart(
		xychart.WithLogger(logger),
		xychart.WithTicker(ticker),
		xychart.WithSize(cfg.Width, cfg.Height),
	)
	chart.SetTitle("Multi-Axis Sine Waves")
	chart.SetXLabel("Time (s)")
	chart.SetYLabel("Value")
	chart.SetDarkMode(cfg.Dark)
	chart.SetMultiAxisEnabled(multiAxis)

	for i, ds := range demoSeries {
		chart.CreateYAxis(ds.axis, ds.label, ds.side)
		chart.SetAxisLabel(ds.axis, ds.label)
		chart.SetAxisAutoScale(ds.axis, true)
		chart.AddSeries(ds.name, xychart.Palette[i])
		chart.AssignSeriesToAxis(ds.name, ds.axis)
	}
	chart.SetMaxPointsPerSeries(cfg.MaxPoints)

	chart.OnSeriesClicked(func(name string, p data.Point) {
		logger.Info("series clicked", "series", name, "x", p.X, "y", p.Y)
	})
	return chart
}

// simulatePointer hovers over the middle of the plot area and clicks on
// the newest point of the first series.
func simulatePointer(chart *xychart.Chart, logger *slog.Logger) {
	r := chart.PlotRect()
	chart.MouseMove(xychart.Pixel{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2})

	name := demoSeries[0].name
	points := chart.SeriesPoints(name)
	if len(points) == 0 {
		return
	}
	last := points[len(points)-1]
	px := chart.ToPixelOnAxis(last, chart.AxisForSeries(name))
	if !chart.MultiAxisEnabled() {
		px = chart.ToPixel(last)
	}
	if _, ok := chart.Click(xychart.Pixel{X: px.X - 2, Y: px.Y + 1}); !ok {
		logger.Debug("click missed", "at", px)
	}
}

func save(chart *xychart.Chart, cfg *config.Config) error {
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(cfg.Width), vg.Length(cfg.Height)),
		vgimg.UseDPI(72), // one pixel per point
	)
	chart.Paint(geom.NewPainter(draw.New(img)))

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
