// Package localize orchestrates font localization: it fetches font-face
// stylesheets, downloads the fonts they reference, appends fallback
// declarations, rewrites font URLs to local paths, and caches the result.
package localize

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/fwojciec/fontloc"
	"github.com/fwojciec/fontloc/css"
)

// Defaults for Config.
const (
	DefaultAssetDir    = "./public/astro-fontaine"
	DefaultMountPrefix = "/astro-fontaine"
)

// Config holds per-invocation settings.
type Config struct {
	// AssetDir is where fonts and cached stylesheets are stored.
	// It must match the directory the Downloader and Cache were built with.
	AssetDir string

	// MountPrefix is the URL path under which AssetDir is served.
	MountPrefix string
}

// Localizer runs the localization pipeline. Each call to Generate or
// GenerateAll is an independent run that owns its syntax tree; a Localizer
// may be used concurrently.
type Localizer struct {
	Fetcher    fontloc.StylesheetFetcher
	Downloader fontloc.AssetDownloader
	Metrics    fontloc.MetricsEngine

	// Cache is optional; without it every run regenerates the stylesheet.
	Cache fontloc.StylesheetCache

	Config Config

	// Logger receives warnings for families without metrics. Optional.
	Logger *slog.Logger

	// Progress, if set, observes state transitions.
	Progress ProgressFunc
}

// Request describes a single-stylesheet run.
type Request struct {
	Address   string
	Family    string
	Fallbacks []string
}

// BuildRequest describes a batch run over several stylesheets.
type BuildRequest struct {
	Addresses        []string
	Fonts            []fontloc.Font
	DefaultFallbacks []string
}

// job is the normalized input of one pipeline run.
type job struct {
	key       string
	addresses []string
	fallbacks func(family string) []string
	extra     []fontloc.FontFace
}

// Generate localizes the stylesheet at req.Address. Every font face found
// gets req.Fallbacks. A cached result for the address is returned without
// any network access.
func (l *Localizer) Generate(ctx context.Context, req Request) (string, error) {
	if req.Address == "" {
		return "", fontloc.Errorf(fontloc.EINVALID, "stylesheet address required")
	}
	if req.Family == "" {
		return "", fontloc.Errorf(fontloc.EINVALID, "font family required")
	}

	return l.run(ctx, job{
		key:       req.Address,
		addresses: []string{req.Address},
		fallbacks: func(string) []string { return req.Fallbacks },
	})
}

// GenerateAll localizes several stylesheets as one. Fallbacks come from the
// configured font with the same family, else from DefaultFallbacks.
// Configured fonts whose family does not occur in any stylesheet still
// receive a fallback block. The cache key covers the addresses, the
// configured fonts and the default fallbacks (see batchKey).
func (l *Localizer) GenerateAll(ctx context.Context, req BuildRequest) (string, error) {
	if len(req.Addresses) == 0 && len(req.Fonts) == 0 {
		return "", fontloc.Errorf(fontloc.EINVALID, "at least one stylesheet or font required")
	}

	configured := make(map[string]fontloc.Font, len(req.Fonts))
	for i := range req.Fonts {
		if err := req.Fonts[i].Validate(); err != nil {
			return "", err
		}
		if _, ok := configured[req.Fonts[i].Family]; !ok {
			configured[req.Fonts[i].Family] = req.Fonts[i]
		}
	}

	fallbacks := func(family string) []string {
		if f, ok := configured[family]; ok && f.Fallbacks != nil {
			return f.Fallbacks
		}
		return req.DefaultFallbacks
	}

	extra := make([]fontloc.FontFace, 0, len(req.Fonts))
	for _, f := range req.Fonts {
		extra = append(extra, fontloc.FontFace{
			Family:    f.Family,
			Src:       f.Src,
			Fallbacks: fallbacks(f.Family),
		})
	}

	key, err := batchKey(req.Addresses, extra, req.DefaultFallbacks)
	if err != nil {
		return "", err
	}

	return l.run(ctx, job{
		key:       key,
		addresses: req.Addresses,
		fallbacks: fallbacks,
		extra:     extra,
	})
}

// batchKey identifies the output of a batch run. It starts with the
// addresses, one per line, followed by a JSON line holding the configured
// fonts with their resolved fallbacks and the default fallbacks. A nil
// fallback list encodes as null and an empty one as [], so "inherit the
// defaults" and "no fallbacks" never share an entry. With no fonts and no
// defaults the key is just the addresses.
func batchKey(addresses []string, fonts []fontloc.FontFace, defaults []string) (string, error) {
	key := strings.Join(addresses, "\n")
	if len(fonts) == 0 && len(defaults) == 0 {
		return key, nil
	}

	type keyFont struct {
		Family    string   `json:"family"`
		Src       string   `json:"src"`
		Fallbacks []string `json:"fallbacks"`
	}
	v := struct {
		Fonts    []keyFont `json:"fonts"`
		Defaults []string  `json:"defaults"`
	}{Defaults: defaults}
	for _, f := range fonts {
		v.Fonts = append(v.Fonts, keyFont{Family: f.Family, Src: f.Src, Fallbacks: f.Fallbacks})
	}

	buf, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	return key + "\n" + string(buf), nil
}

func (l *Localizer) run(ctx context.Context, j job) (string, error) {
	l.enter(StateCacheLookup)
	if l.Cache != nil {
		cached, ok, err := l.Cache.Read(ctx, j.key)
		if err != nil {
			return l.fail(fmt.Errorf("read cache: %w", err))
		}
		if ok {
			l.enter(StateDone)
			return cached, nil
		}
	}

	l.enter(StateFetching)
	text, err := l.Fetcher.FetchStylesheets(ctx, j.addresses)
	if err != nil {
		return l.fail(err)
	}

	l.enter(StateExtracting)
	sheet := css.Parse(text)
	faces := appendMissing(css.ExtractFontFaces(sheet, j.fallbacks), j.extra)

	l.enter(StateDownloading)
	if err := l.Downloader.Download(ctx, faces); err != nil {
		return l.fail(err)
	}

	l.enter(StateSynthesizing)
	blocks := l.synthesize(faces)

	l.enter(StateRewriting)
	css.RewriteURLs(sheet, faces, l.mountPrefix())
	out := assemble(sheet.String(), blocks)

	l.enter(StateCaching)
	if l.Cache != nil {
		if err := l.Cache.Write(ctx, j.key, out); err != nil {
			return l.fail(fmt.Errorf("write cache: %w", err))
		}
	}

	l.enter(StateDone)
	return out, nil
}

// synthesize requests one fallback block per distinct family, concurrently.
// Blocks are returned in order of each family's first occurrence.
func (l *Localizer) synthesize(faces []fontloc.FontFace) []string {
	families := fontloc.UniqueFamilies(faces)
	blocks := make([]string, len(families))

	var wg sync.WaitGroup
	for i, face := range families {
		wg.Go(func() {
			blocks[i] = l.fallbackBlock(face)
		})
	}
	wg.Wait()

	return blocks
}

// fallbackBlock asks the metrics engine for the family's fallback rule.
// When the built-in table has no entry, the downloaded font is read instead.
// Missing metrics are logged and yield no block.
func (l *Localizer) fallbackBlock(face fontloc.FontFace) string {
	m, ok := l.Metrics.LookupMetrics(face.Family)
	if !ok && face.Src != "" {
		path, err := fontloc.AssetPath(l.assetDir(), face.Src)
		if err == nil {
			m, err = l.Metrics.ReadMetricsFromFile(path)
		}
		if err != nil {
			l.logger().Warn("could not read font metrics", "family", face.Family, "src", face.Src, "err", err)
			return ""
		}
		ok = true
	}
	if !ok {
		l.logger().Warn("could not find metrics for font", "family", face.Family)
		return ""
	}

	return l.Metrics.FallbackBlock(m, fontloc.FallbackName(face.Family), face.Fallbacks)
}

func (l *Localizer) enter(s State) {
	if l.Progress != nil {
		l.Progress(s)
	}
}

func (l *Localizer) fail(err error) (string, error) {
	l.enter(StateFailed)
	return "", err
}

func (l *Localizer) assetDir() string {
	if l.Config.AssetDir == "" {
		return DefaultAssetDir
	}
	return l.Config.AssetDir
}

func (l *Localizer) mountPrefix() string {
	if l.Config.MountPrefix == "" {
		return DefaultMountPrefix
	}
	return l.Config.MountPrefix
}

func (l *Localizer) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}

// appendMissing adds each extra face whose family is not already present.
func appendMissing(faces, extra []fontloc.FontFace) []fontloc.FontFace {
	if len(extra) == 0 {
		return faces
	}
	present := make(map[string]bool, len(faces))
	for _, f := range faces {
		present[f.Family] = true
	}
	for _, f := range extra {
		if !present[f.Family] {
			present[f.Family] = true
			faces = append(faces, f)
		}
	}
	return faces
}

// assemble joins the rewritten stylesheet and the fallback blocks,
// separated by blank lines.
func assemble(stylesheet string, blocks []string) string {
	var parts []string
	if stylesheet != "" {
		parts = append(parts, stylesheet)
	}
	for _, b := range blocks {
		if b = strings.TrimRight(b, "\n"); b != "" {
			parts = append(parts, b)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}
