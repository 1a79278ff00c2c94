package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/fontloc"
	"github.com/fwojciec/fontloc/fs"
	"github.com/fwojciec/fontloc/localize"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	l := deps.localizer(localize.Config{AssetDir: c.Dir, MountPrefix: c.Mount}, c.NetworkFlags)

	css, err := l.Generate(deps.Ctx, localize.Request{
		Address:   c.URL,
		Family:    c.Family,
		Fallbacks: c.Fallbacks,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fontloc.ErrorMessage(err))
		return err
	}

	return writeOutput(deps, c.Output, css)
}

// writeOutput writes css to path, or to stdout when path is empty.
func writeOutput(deps *Dependencies, path, css string) error {
	if path == "" {
		_, err := fmt.Fprint(deps.Stdout, css)
		return err
	}
	if _, err := fs.WriteFileAtomic(path, strings.NewReader(css)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	return nil
}
