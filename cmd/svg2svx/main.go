// Command svg2svx converts an annotated cave drawing into a survex file.
//
// The drawing needs three kinds of colored line: a scale bar whose real length
// is given with --scale, an orientation line pointing north (or --north
// degrees east of north), and any number of polylines tracing survey legs.
// Stations closer than --tol metres are equated.
//
// Settings can also come from a svg2svx.yaml file next to the drawing. Flags
// given on the command line win over the file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/svgsurvex"
	"github.com/osuushi/svgsurvex/dbg"
	"github.com/osuushi/svgsurvex/internal/config"
	"github.com/osuushi/svgsurvex/internal/preview"
	"github.com/osuushi/svgsurvex/svx"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type command struct {
	app *kingpin.Application

	input          string
	output         string
	defaults       string
	ignoreDefaults bool
	extra          bool
	preview        string
	imgcat         bool
	dump           bool
	verbose        bool

	scale       *optionalFloat
	north       *optionalFloat
	tolerance   *optionalFloat
	layer       *optionalString
	name        *optionalString
	pathColor   *optionalString
	orientColor *optionalString
	scaleColor  *optionalString

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
	au     aurora.Aurora
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *command {
	c := &command{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		now:    time.Now,
		au:     aurora.NewAurora(false),
	}
	app := kingpin.New("svg2svx", "Convert an annotated cave drawing (SVG) into survex survey data.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	c.scale = floatFlag(app.Flag("scale", "Length of the scale bar in metres (default 100)."))
	c.north = floatFlag(app.Flag("north", "Bearing of the orientation line in degrees (default 0)."))
	c.tolerance = floatFlag(app.Flag("tol", "Equate stations closer than this many metres (default 0.2)."))
	c.layer = stringFlag(app.Flag("layer", "Only export survey lines on this layer."))
	c.name = stringFlag(app.Flag("name", "Name of the top level survey block."))
	c.pathColor = stringFlag(app.Flag("path-color", "Stroke color of survey lines (default red)."))
	c.orientColor = stringFlag(app.Flag("orient-color", "Stroke color of the orientation line (default green)."))
	c.scaleColor = stringFlag(app.Flag("scale-color", "Stroke color of the scale bar (default blue)."))
	app.Flag("output", "Survex file to write, or --output=- for standard output. Defaults to the drawing with a .svx extension.").
		Short('o').StringVar(&c.output)
	app.Flag("extra", "Add a comment describing each traverse.").BoolVar(&c.extra)
	app.Flag("preview", "Also render the network to this PNG file.").PlaceHolder("FILE.png").StringVar(&c.preview)
	app.Flag("imgcat", "Show a preview of the network in the terminal.").BoolVar(&c.imgcat)
	app.Flag("dump", "Dump the reconstructed network to standard error.").BoolVar(&c.dump)
	app.Flag("verbose", "Log progress and skipped drawing elements.").Short('v').BoolVar(&c.verbose)
	app.Flag("defaults", "Read defaults from this YAML file instead of "+config.FileName+" beside the drawing.").
		PlaceHolder("FILE").StringVar(&c.defaults)
	app.Flag("ignore-defaults", "Don't look for "+config.FileName+" beside the drawing.").BoolVar(&c.ignoreDefaults)
	app.Arg("drawing", "SVG drawing to convert. Standard input is read if omitted.").StringVar(&c.input)

	c.app = app
	return c
}

func main() {
	c := newCommand(os.Stdin, os.Stdout, os.Stderr)
	c.au = aurora.NewAurora(isTerminal(os.Stderr))
	os.Exit(c.run(os.Args[1:]))
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// run returns the process exit code.
func (c *command) run(args []string) int {
	if _, err := c.app.Parse(args); err != nil {
		fmt.Fprintf(c.stderr, "%s %v\n", c.au.Red("error:"), err)
		return 2
	}
	if c.input == "" {
		c.input = "-"
	}

	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level})))

	if err := c.convert(); err != nil {
		fmt.Fprintf(c.stderr, "%s %v\n", c.au.Red("error:"), err)
		return 1
	}
	return 0
}

// settings layers the built in defaults, then the defaults file, then the
// flags that were actually given.
func (c *command) settings() (config.Config, error) {
	cfg := config.Default()

	path := c.defaults
	if path == "" && !c.ignoreDefaults && c.input != "-" {
		path, _ = config.Beside(c.input)
	}
	if path != "" {
		var err error
		if cfg, err = config.LoadFile(path, cfg); err != nil {
			return cfg, err
		}
		slog.Debug("loaded defaults", "file", path)
	}

	c.scale.apply(&cfg.Scale)
	c.north.apply(&cfg.North)
	c.tolerance.apply(&cfg.Tolerance)
	c.layer.apply(&cfg.Layer)
	c.name.apply(&cfg.Name)
	c.pathColor.apply(&cfg.Colors.Path)
	c.orientColor.apply(&cfg.Colors.Orient)
	c.scaleColor.apply(&cfg.Colors.Scale)
	cfg.Extra = cfg.Extra || c.extra

	return cfg, cfg.Validate()
}

func (c *command) options(cfg config.Config) (svgsurvex.Options, error) {
	opts := svgsurvex.Options{
		ScaleLength: cfg.Scale,
		NorthOffset: cfg.North,
		Tolerance:   cfg.Tolerance,
		Layer:       cfg.Layer,
	}
	var err error
	if opts.Roles.Export, err = svgsurvex.ParseColor(cfg.Colors.Path); err != nil {
		return opts, errors.Wrap(err, "path color")
	}
	if opts.Roles.Orient, err = svgsurvex.ParseColor(cfg.Colors.Orient); err != nil {
		return opts, errors.Wrap(err, "orient color")
	}
	if opts.Roles.Scale, err = svgsurvex.ParseColor(cfg.Colors.Scale); err != nil {
		return opts, errors.Wrap(err, "scale color")
	}
	return opts, nil
}

func (c *command) open() (io.ReadCloser, error) {
	if c.input == "-" {
		return io.NopCloser(c.stdin), nil
	}
	f, err := os.Open(c.input)
	if err != nil {
		return nil, errors.Wrap(err, "opening drawing")
	}
	return f, nil
}

func (c *command) convert() error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}
	opts, err := c.options(cfg)
	if err != nil {
		return err
	}

	in, err := c.open()
	if err != nil {
		return err
	}
	doc, network, err := svgsurvex.Convert(in, opts)
	in.Close()
	if err != nil {
		return errors.Wrapf(err, "converting %s", sourceName("", c.input))
	}
	slog.Debug("reconstructed network",
		"records", len(doc.Records),
		"traverses", len(network.Traverses),
		"equates", len(network.Equates),
		"scale_factor", network.Basis.ScaleFactor)

	meta := svgsurvex.Meta{
		Name:      blockName(cfg.Name, cfg.Layer, doc.Name, c.input),
		Source:    sourceName(doc.Name, c.input),
		Image:     doc.Image,
		Generated: c.now(),
		Extra:     cfg.Extra,
	}
	data, err := svx.Render(network, meta)
	if err != nil {
		return err
	}

	out := outputPath(c.input, c.output)
	if out == "-" {
		if _, err := c.stdout.Write(data); err != nil {
			return errors.Wrap(err, "writing output")
		}
	} else if err := writeFileAtomic(out, data); err != nil {
		return err
	}
	slog.Debug("wrote survey", "file", out, "block", meta.Name)

	if c.preview != "" {
		if err := preview.Save(c.preview, network, preview.DefaultWidth); err != nil {
			return err
		}
	}
	if c.imgcat {
		if err := preview.Show(c.stderr, c.preview, network, preview.DefaultWidth); err != nil {
			return err
		}
	}
	if c.dump {
		if err := dbg.Dump(c.stderr, network); err != nil {
			return err
		}
	}

	if out != "-" {
		fmt.Fprintf(c.stderr, "%s %s: block %s, %s\n",
			c.au.Green("wrote"), out, c.au.Bold(svx.SurveyName(meta.Name)), svx.Counts(network))
	}
	return nil
}
