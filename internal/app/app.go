package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/emissions-api/worldmap-creator/internal/config"
	"github.com/emissions-api/worldmap-creator/internal/emissions"
	"github.com/emissions-api/worldmap-creator/internal/imageio"
	"github.com/emissions-api/worldmap-creator/internal/render"
)

// ErrInvalidArgument is returned for bad command line input. It always
// surfaces before any network call is made.
var ErrInvalidArgument = errors.New("invalid arguments")

var validate = validator.New()

// Request describes one render run, fully resolved from flags, positional
// arguments and configuration defaults.
type Request struct {
	Product string        `validate:"required"`
	Begin   emissions.Day `validate:"-"`
	End     emissions.Day `validate:"-"`

	URL    string `validate:"required,url"`
	Output string `validate:"required"`

	// Explicit color scale bounds; nil means derive from the batch.
	Min *float64
	Max *float64

	Width  int `validate:"gt=1,lte=16384"`
	Height int `validate:"gt=1,lte=16384"`

	// Colormap is checked against the render package's registry in
	// ParseArgs; a validator tag would duplicate that list.
	Colormap  string `validate:"required"`
	PointSize int    `validate:"gte=0,lte=256"`

	BaseMap string
	Legend  bool
	Title   string

	Focus     string
	FocusSpan float64 `validate:"gt=0,lte=360"`

	NoCache bool
	Every   time.Duration
	Verbose bool
}

// ParseArgs parses and validates the command line. It returns flag.ErrHelp
// when help was requested, and ErrInvalidArgument-wrapped errors for
// anything the user got wrong.
func ParseArgs(args []string, cfg *config.AppConfig) (Request, error) {
	req := Request{}

	fs := flag.NewFlagSet("worldmap-creator", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: worldmap-creator [flags] <product> <day>[..<end-day>]\n\n")
		fmt.Fprintf(fs.Output(), "Generate a world map image from Emissions API data.\n")
		fmt.Fprintf(fs.Output(), "Example: worldmap-creator ozone 2020-06-04\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&req.Output, "output", "", "where to save the image (default <product>-<day>.png)")
	fs.StringVar(&req.Output, "o", "", "shorthand for -output")
	min := fs.Float64("min", math.NaN(), "value where the color scale starts (default: batch minimum)")
	max := fs.Float64("max", math.NaN(), "value where the color scale stops (default: batch maximum)")
	fs.IntVar(&req.Width, "width", cfg.MapWidth, "horizontal image size in pixels")
	fs.IntVar(&req.Height, "height", cfg.MapHeight, "vertical image size in pixels")
	fs.StringVar(&req.Colormap, "colormap", "rainbow",
		fmt.Sprintf("colors of the map; one of: %s", strings.Join(render.ColormapNames(), ", ")))
	fs.IntVar(&req.PointSize, "point-size", 3, "sample footprint radius in pixels")
	fs.StringVar(&req.BaseMap, "basemap", "", "path to an equirectangular PNG/JPEG base map (default: synthesized)")
	fs.BoolVar(&req.Legend, "legend", false, "draw a color bar with the scale bounds")
	fs.StringVar(&req.Title, "title", "", "title drawn on the image (default \"<Product> <day>\")")
	fs.StringVar(&req.Focus, "focus", "", "place name to crop the map around (needs GEOCODER_API_KEY)")
	fs.Float64Var(&req.FocusSpan, "focus-span", 60, "width of the focus window in degrees of longitude")
	fs.BoolVar(&req.NoCache, "no-cache", false, "disable caching of downloaded data")
	fs.DurationVar(&req.Every, "every", 0, "re-render on this interval instead of exiting (e.g. 6h)")
	fs.StringVar(&req.URL, "url", cfg.APIURL, "URL of the Emissions API instance")
	fs.BoolVar(&req.Verbose, "verbose", false, "be more verbose")
	fs.BoolVar(&req.Verbose, "v", false, "shorthand for -verbose")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return req, err
		}
		return req, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return req, fmt.Errorf("%w: expected <product> and <day> arguments, got %d", ErrInvalidArgument, fs.NArg())
	}
	req.Product = fs.Arg(0)

	begin, end, err := parseDayRange(fs.Arg(1))
	if err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	req.Begin, req.End = begin, end

	if !math.IsNaN(*min) {
		req.Min = min
	}
	if !math.IsNaN(*max) {
		req.Max = max
	}
	if req.Min != nil && req.Max != nil && *req.Min >= *req.Max {
		return req, fmt.Errorf("%w: -min (%g) must be below -max (%g)", ErrInvalidArgument, *req.Min, *req.Max)
	}

	if _, err := render.ColormapByName(req.Colormap); err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	if req.Output == "" {
		req.Output = defaultOutput(req.Product, begin, end)
	}
	if req.Title == "" {
		req.Title = fmt.Sprintf("%s %s", capitalize(req.Product), dayRangeLabel(begin, end))
	}

	if err := validate.Struct(req); err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return req, nil
}

// parseDayRange accepts "2020-06-04" or "2020-06-01..2020-06-04" (inclusive).
func parseDayRange(s string) (begin, end emissions.Day, err error) {
	beginStr, endStr, isRange := strings.Cut(s, "..")

	begin, err = emissions.ParseDay(beginStr)
	if err != nil {
		return begin, end, err
	}
	if !isRange {
		return begin, begin, nil
	}

	end, err = emissions.ParseDay(endStr)
	if err != nil {
		return begin, end, err
	}
	if begin.After(end) {
		return begin, end, fmt.Errorf("day range %s is backwards", s)
	}
	return begin, end, nil
}

func defaultOutput(product string, begin, end emissions.Day) string {
	return fmt.Sprintf("%s-%s.png", product, dayRangeLabel(begin, end))
}

func dayRangeLabel(begin, end emissions.Day) string {
	if begin == end {
		return begin.String()
	}
	return fmt.Sprintf("%s..%s", begin, end)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Fetcher is the data source of the pipeline; satisfied by
// *emissions.Service and stubbed in tests.
type Fetcher interface {
	GetSamples(ctx context.Context, product string, begin, end emissions.Day) ([]emissions.Sample, error)
}

// Geocoder resolves a place name to coordinates for --focus.
type Geocoder interface {
	Lookup(place string) (lat, lon float64, err error)
}

// App runs the fetch -> render -> write pipeline.
type App struct {
	Fetcher  Fetcher
	Geocoder Geocoder
}

// Run executes one render. The pipeline is strictly sequential: fetch
// samples, composite them onto the base map, overlay decorations, write the
// file. Nothing is retried.
func (a *App) Run(ctx context.Context, req Request) error {
	samples, err := a.Fetcher.GetSamples(ctx, req.Product, req.Begin, req.End)
	if err != nil {
		return err
	}

	min, max := render.ValueBounds(samples)
	if req.Min != nil {
		min = *req.Min
	}
	if req.Max != nil {
		max = *req.Max
	}

	cmap, err := render.ColormapByName(req.Colormap)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	scale := render.NewColorScale(cmap, min, max)

	base, err := a.baseMap(req)
	if err != nil {
		return err
	}

	log.Printf("INFO: rendering %d samples onto %dx%d canvas", len(samples), req.Width, req.Height)
	img := render.NewRenderer(scale, req.PointSize).Render(base, samples)

	if req.Focus != "" {
		lat, lon, err := a.Geocoder.Lookup(req.Focus)
		if err != nil {
			return err
		}
		log.Printf("INFO: focusing on %s (%.4f, %.4f)", req.Focus, lat, lon)
		img = render.CropRegion(img, lat, lon, req.FocusSpan)
	}

	render.DrawTitle(img, req.Title)
	if req.Legend {
		render.DrawLegend(img, scale)
	}

	log.Printf("INFO: saving output to %s", req.Output)
	return imageio.Write(req.Output, img)
}

func (a *App) baseMap(req Request) (*image.RGBA, error) {
	if req.BaseMap != "" {
		return render.LoadBaseMap(req.BaseMap, req.Width, req.Height)
	}
	return render.SynthesizeBaseMap(req.Width, req.Height), nil
}

// ExitCode maps an error from ParseArgs or Run to the process exit status:
// 2 for argument errors, 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalidArgument):
		return 2
	default:
		return 1
	}
}
