package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mcncl/jobj/internal/config"
	"github.com/mcncl/jobj/internal/errors"
	"github.com/mcncl/jobj/internal/models"
	"github.com/mcncl/jobj/internal/samples"
)

// CLI defines the command-line interface
var CLI struct {
	Sample    string `help:"Sample document to build and print." short:"s" default:"catalog" enum:"catalog,nested,growth,duplicates"`
	List      bool   `help:"List the available sample documents." short:"l"`
	Output    string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config    string `help:"Path to a YAML config file. Defaults to the nearest .jobj.yml." short:"c" type:"path"`
	Precision int    `help:"Fractional digits for floating-point values." short:"p" default:"6"`
	LabelCase string `help:"Case applied to property names when printing." default:"as_is" enum:"as_is,camel,lower_camel,snake,kebab"`
	Debug     bool   `help:"Enable debug logging." short:"d"`
	Version   bool   `help:"Show version information." short:"v"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Stdout io.Writer
	Stderr io.Writer
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jobj"),
		kong.Description("Build a sample value tree and print it as a flat debug dump"),
		kong.UsageOnError(),
	)

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if CLI.Version {
		fmt.Printf("jobj version %s\n", Version)
		return
	}

	if CLI.List {
		fmt.Println(strings.Join(samples.Names(), "\n"))
		return
	}

	ctx, err := newContext(explicitFlags(kctx))
	if err == nil {
		err = run(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jobj --help\n")
		os.Exit(1)
	}
}

// explicitFlags returns the names of flags given on the command line.
// Flags filled from their default tag are not included.
func explicitFlags(kctx *kong.Context) map[string]bool {
	set := make(map[string]bool)
	for _, p := range kctx.Path {
		if p.Flag != nil {
			set[p.Flag.Name] = true
		}
	}
	return set
}

// cliOverrides collects the CLI values for the flags named in set
func cliOverrides(set map[string]bool) config.CLIOverrides {
	var o config.CLIOverrides
	if set["sample"] {
		o.Sample = &CLI.Sample
	}
	if set["output"] {
		o.Output = &CLI.Output
	}
	if set["precision"] {
		o.Precision = &CLI.Precision
	}
	if set["label-case"] {
		o.LabelCase = &CLI.LabelCase
	}
	if set["debug"] {
		o.Debug = &CLI.Debug
	}
	return o
}

// newContext resolves the configuration from the config file and the
// flags named in set. Flags left at their defaults do not override the file.
func newContext(set map[string]bool) (*Context, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, cliOverrides(set))
	if err != nil {
		return nil, err
	}

	ctx := &Context{Config: cfg, Stdout: os.Stdout, Stderr: os.Stderr}
	if configPath != "" {
		ctx.debugf("loaded config from %s", configPath)
	}
	return ctx, nil
}

// run builds the configured sample, prints it and releases it
func run(ctx *Context) error {
	cfg := ctx.Config

	doc, err := samples.Build(cfg.Sample)
	if err != nil {
		return err
	}
	defer doc.Destroy()

	ctx.debugf("built sample %q: %s with %d entries (capacity %d)", cfg.Sample, doc.Kind(), doc.Len(), doc.Cap())

	opts := cfg.PrintOptions()
	ctx.debugf("printing with precision %d, label case %s", opts.FloatPrecision, opts.LabelCase)

	return writeOutput(ctx, doc, opts)
}

// writeOutput prints doc to the configured file or stdout
func writeOutput(ctx *Context, doc models.Container, opts models.PrintOptions) error {
	if ctx.Config.Output == "" {
		return models.NewPrinter(ctx.Stdout, opts).Print(doc)
	}

	file, err := os.Create(ctx.Config.Output)
	if err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to create file '%s'", ctx.Config.Output), err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(ctx.Stderr, "Error closing file: %v\n", err)
		}
	}()

	if err := models.NewPrinter(file, opts).Print(doc); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stderr, "Output written to %s\n", ctx.Config.Output)
	return nil
}

func (c *Context) debugf(format string, args ...any) {
	if c.Config == nil || !c.Config.Dev.Debug {
		return
	}
	fmt.Fprintf(c.Stderr, "[debug] "+format+"\n", args...)
}
