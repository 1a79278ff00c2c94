package fontloc

import (
	"path/filepath"
	"strings"
)

// HTMLInjector splices a stylesheet into built HTML documents.
type HTMLInjector interface {
	// Inject adds css to the document head inside a <style data-href=href>
	// element unless one with the same href is already present.
	Inject(html, css, href string) (string, error)
}

// BuildFormat is the output layout of a static site build.
type BuildFormat string

// Supported build formats.
const (
	// BuildFormatDirectory writes each page as <route>/index.html.
	BuildFormatDirectory BuildFormat = "directory"

	// BuildFormatFile writes each page as <route>.html.
	BuildFormatFile BuildFormat = "file"
)

// Validate returns an error if the format is not supported.
func (f BuildFormat) Validate() error {
	switch f {
	case BuildFormatDirectory, BuildFormatFile:
		return nil
	}
	return Errorf(EINVALID, "unsupported build format %q", string(f))
}

// PagePath maps a page route to the HTML file produced for it,
// relative to the build output directory.
func PagePath(pathname string, format BuildFormat) string {
	switch {
	case pathname == "":
		return "index.html"
	case pathname == "404/":
		return "404.html"
	case format == BuildFormatDirectory:
		return filepath.Join(filepath.FromSlash(pathname), "index.html")
	default:
		return filepath.FromSlash(strings.TrimSuffix(pathname, "/")) + ".html"
	}
}
