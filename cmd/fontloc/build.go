package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/fontloc"
	"github.com/fwojciec/fontloc/localize"
)

// GeneratedFile is the stylesheet name used when build has no --output.
const GeneratedFile = "generated.css"

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	cfg, err := LoadConfig(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fontloc.ErrorMessage(err))
		return err
	}

	if c.Dir != "" {
		cfg.FontDirectory = c.Dir
	}

	l := deps.localizer(localize.Config{AssetDir: cfg.FontDirectory, MountPrefix: cfg.MountPrefix}, c.NetworkFlags)

	css, err := l.GenerateAll(deps.Ctx, localize.BuildRequest{
		Addresses:        cfg.Stylesheets,
		Fonts:            cfg.Fonts,
		DefaultFallbacks: cfg.DefaultFallbacks,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fontloc.ErrorMessage(err))
		return err
	}

	out := c.Output
	if out == "" {
		out = filepath.Join(cfg.FontDirectory, GeneratedFile)
	}
	return writeOutput(deps, out, css)
}
