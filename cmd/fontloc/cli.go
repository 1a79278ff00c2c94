package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/fontloc"
	"github.com/fwojciec/fontloc/fs"
	fontlochttp "github.com/fwojciec/fontloc/http"
	"github.com/fwojciec/fontloc/localize"
	locslog "github.com/fwojciec/fontloc/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Metrics  fontloc.MetricsEngine
	Injector fontloc.HTMLInjector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Generate GenerateCmd `cmd:"" help:"Localize the fonts of one font-face stylesheet"`
	Build    BuildCmd    `cmd:"" help:"Localize the stylesheets listed in a config file"`
	Inject   InjectCmd   `cmd:"" help:"Inject a generated stylesheet into built HTML pages"`
}

// NetworkFlags tune remote access for commands that fetch fonts.
type NetworkFlags struct {
	Timeout     time.Duration `default:"10s" help:"Timeout per stylesheet request"`
	Concurrency int           `default:"0" help:"Concurrent font download limit (0 means unlimited)"`
	RateLimit   float64       `name:"rate-limit" default:"0" help:"Font requests per second per host (0 means unlimited)"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL       string   `arg:"" help:"Font-face stylesheet URL"`
	Family    string   `required:"" help:"Font family to localize"`
	Fallbacks []string `name:"fallback" short:"f" help:"Local fallback font (repeatable)"`
	Dir       string   `default:"./public/astro-fontaine" env:"FONTLOC_DIR" help:"Directory for fonts and cached stylesheets"`
	Mount     string   `default:"/astro-fontaine" help:"URL path the font directory is served under"`
	Output    string   `short:"o" help:"Write the stylesheet to this file instead of stdout"`

	NetworkFlags `embed:""`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Config string `default:"fontloc.yaml" type:"path" help:"Build configuration file"`
	Dir    string `env:"FONTLOC_DIR" help:"Directory for fonts and cached stylesheets (overrides the config's fontDirectory)"`
	Output string `short:"o" help:"Output file (default: generated.css in the font directory)"`

	NetworkFlags `embed:""`
}

// InjectCmd is the "inject" subcommand.
type InjectCmd struct {
	Dist   string   `arg:"" type:"existingdir" help:"Build output directory"`
	Pages  []string `arg:"" optional:"" help:"Page routes to inject into (default: every HTML file)"`
	CSS    string   `name:"css" required:"" type:"existingfile" help:"Generated stylesheet"`
	Href   string   `help:"Value of the style element's data-href (default: the stylesheet path)"`
	Format string   `enum:"directory,file" default:"directory" help:"Build format of the site (directory or file)"`
}

// localizer wires a Localizer for the given asset layout.
func (d *Dependencies) localizer(cfg localize.Config, nf NetworkFlags) *localize.Localizer {
	client := &http.Client{Timeout: nf.Timeout}

	fetcher := fontlochttp.NewFetcher(fontlochttp.WithTimeout(nf.Timeout))
	downloader := fontlochttp.NewDownloader(cfg.AssetDir,
		fontlochttp.WithHTTPClient(client),
		fontlochttp.WithConcurrency(nf.Concurrency),
		fontlochttp.WithRateLimit(nf.RateLimit),
	)
	cache := fs.NewCache(cfg.AssetDir)

	return &localize.Localizer{
		Fetcher:    locslog.NewLoggingFetcher(fetcher, d.Logger),
		Downloader: locslog.NewLoggingDownloader(downloader, d.Logger),
		Cache:      locslog.NewLoggingCache(cache, d.Logger),
		Metrics:    d.Metrics,
		Config:     cfg,
		Logger:     d.Logger,
		Progress: func(s localize.State) {
			d.Logger.Debug("localize", "state", s)
		},
	}
}
