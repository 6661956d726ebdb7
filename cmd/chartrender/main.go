// Command chartrender renders a chart described in a YAML or TOML file to
// an image.
//
//	chartrender --config chart.yaml --out chart.png
//
// Every top-level key of the description can be overridden by a flag of
// the same name or by an environment variable with the CHARTRENDER_ prefix.
package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ansel1/merry"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vdobler/chartarea"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// BuildVersion is set at link time.
var BuildVersion = "(development build)"

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func main() {
	configFile := pflag.StringP("config", "c", "", "chart description (yaml or toml)")
	pflag.StringP("out", "o", config.Out, "output file, the extension selects png, jpg or tif")
	pflag.Float64("width", config.Width, "image width in cm")
	pflag.Float64("height", config.Height, "image height in cm")
	pflag.Float64("dpi", config.DPI, "image resolution")
	pflag.Bool("debug", false, "log at debug level")
	pflag.Bool("dry-run", false, "paint to a recorder and report the primitives instead of writing an image")
	envPrefix := pflag.String("envprefix", "CHARTRENDER", "prefix for environment variable overrides")
	pflag.Parse()

	for _, name := range []string{"out", "width", "height", "dpi", "debug"} {
		if err := viper.BindPFlag(name, pflag.Lookup(name)); err != nil {
			log.Fatal(err)
		}
	}
	if err := viper.BindPFlag("dryRun", pflag.Lookup("dry-run")); err != nil {
		log.Fatal(err)
	}

	if *configFile == "" {
		log.Fatal("missing --config option")
	}
	f, err := os.Open(*configFile)
	if err != nil {
		log.Fatalf("unable to load chart description: %v", err)
	}
	if *envPrefix != "" {
		viper.SetEnvPrefix(*envPrefix)
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configType := "YAML"
	if strings.HasSuffix(*configFile, ".toml") {
		configType = "TOML"
	}
	err = readConfig(f, configType)
	f.Close()
	if err != nil {
		log.Fatalf("failed to parse %s: %v", *configFile, err)
	}

	logger, err := newLogger(config.Debug)
	if err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	defer logger.Sync()
	chartarea.SetLogger(logger)
	logger = logger.Named("main")

	logger.Info("rendering chart",
		zap.String("build_version", BuildVersion),
		zap.String("config_file", *configFile),
		zap.Int("areas", len(config.Areas)),
		zap.Int("series", len(config.Series)),
	)

	c, err := buildChart()
	if err != nil {
		logger.Fatal("invalid chart description",
			zap.String("config_file", *configFile),
			zap.Error(err),
			zap.Any("details", merry.Values(err)),
		)
	}

	w := vg.Length(config.Width) * vg.Centimeter
	h := vg.Length(config.Height) * vg.Centimeter
	if config.DryRun {
		dryRun(logger, c, w, h)
		return
	}

	n, err := render(c, w, h)
	if err != nil {
		logger.Fatal("rendering failed",
			zap.String("out", config.Out),
			zap.Error(err),
			zap.Any("details", merry.Values(err)),
		)
	}
	logger.Info("chart written",
		zap.String("out", config.Out),
		zap.String("size", humanize.Bytes(uint64(n))),
		zap.Int("hot_regions", c.HotRegions.Len()),
	)
}

// readConfig parses a chart description into config. Values already set
// in config are kept unless the description overrides them.
func readConfig(in io.Reader, configType string) error {
	viper.SetConfigType(configType)
	if err := viper.ReadConfig(in); err != nil {
		return merry.Wrap(err)
	}
	return merry.Wrap(viper.Unmarshal(&config))
}

func dryRun(logger *zap.Logger, c *chartarea.Chart, w, h vg.Length) {
	rec := chartarea.NewRecorder(w, h)
	rec.Resolution = config.DPI
	if err := c.Render(rec); err != nil {
		logger.Fatal("rendering failed", zap.Error(err))
	}
	fields := []zap.Field{zap.Int("hot_regions", c.HotRegions.Len())}
	for k := chartarea.LinePrimitive; k <= chartarea.TextPrimitive; k++ {
		fields = append(fields, zap.Int(k.String(), rec.Count(k)))
	}
	logger.Info("dry run", fields...)
}

// render paints c to the configured output file and returns the number
// of bytes written.
func render(c *chartarea.Chart, w, h vg.Length) (int64, error) {
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(config.DPI)))
	dc := draw.New(img)
	if c.Style.Background != nil {
		dc.SetColor(c.Style.Background)
		dc.Fill(dc.Rectangle.Path())
	}
	if err := c.Render(chartarea.NewCanvasGraphics(dc)); err != nil {
		return 0, err
	}

	var wt io.WriterTo
	switch ext := strings.ToLower(filepath.Ext(config.Out)); ext {
	case ".png", "":
		wt = vgimg.PngCanvas{Canvas: img}
	case ".jpg", ".jpeg":
		wt = vgimg.JpegCanvas{Canvas: img}
	case ".tif", ".tiff":
		wt = vgimg.TiffCanvas{Canvas: img}
	default:
		return 0, chartarea.ErrImage.WithValue("out", config.Out).
			WithMessagef("unsupported image format %q", ext)
	}

	f, err := os.Create(config.Out)
	if err != nil {
		return 0, merry.Wrap(err)
	}
	n, err := wt.WriteTo(f)
	if err != nil {
		f.Close()
		return n, merry.Wrap(err)
	}
	return n, merry.Wrap(f.Close())
}
