package main

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/fontloc"
	"github.com/fwojciec/fontloc/fs"
	"golang.org/x/sync/errgroup"
)

// Run executes the inject command.
func (c *InjectCmd) Run(deps *Dependencies) error {
	format := fontloc.BuildFormat(c.Format)
	if err := format.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fontloc.ErrorMessage(err))
		return err
	}

	data, err := os.ReadFile(c.CSS)
	if err != nil {
		return fmt.Errorf("read stylesheet: %w", err)
	}
	css := string(data)

	href := c.Href
	if href == "" {
		href = c.CSS
	}

	pages, err := c.pages(format)
	if err != nil {
		return err
	}

	var g errgroup.Group
	changed := make([]bool, len(pages))
	for i, page := range pages {
		g.Go(func() error {
			ok, err := injectPage(deps.Injector, page, css, href)
			if err != nil {
				return fmt.Errorf("%s: %w", page, err)
			}
			changed[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fontloc.ErrorMessage(err))
		return err
	}

	var n int
	for _, ok := range changed {
		if ok {
			n++
		}
	}
	fmt.Fprintf(deps.Stdout, "Injected %s into %d of %d pages\n", href, n, len(pages))
	return nil
}

// pages returns the HTML files to process: the files for the given routes,
// or every .html file under Dist when no routes were given.
func (c *InjectCmd) pages(format fontloc.BuildFormat) ([]string, error) {
	if len(c.Pages) > 0 {
		paths := make([]string, len(c.Pages))
		for i, route := range c.Pages {
			paths[i] = filepath.Join(c.Dist, fontloc.PagePath(strings.TrimPrefix(route, "/"), format))
		}
		return paths, nil
	}

	var paths []string
	err := filepath.WalkDir(c.Dist, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".html") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", c.Dist, err)
	}
	return paths, nil
}

// injectPage rewrites one page and reports whether it changed.
func injectPage(injector fontloc.HTMLInjector, path, css, href string) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, fontloc.Errorf(fontloc.ENOTFOUND, "page not found: %s", path)
	} else if err != nil {
		return false, err
	}

	out, err := injector.Inject(string(data), css, href)
	if err != nil {
		return false, err
	}
	if out == string(data) {
		return false, nil
	}

	if _, err := fs.WriteFileAtomic(path, strings.NewReader(out)); err != nil {
		return false, err
	}
	return true, nil
}
