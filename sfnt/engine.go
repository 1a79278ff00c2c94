// Package sfnt implements fontloc.MetricsEngine using a built-in metric
// table and golang.org/x/image/font/sfnt for reading downloaded fonts.
package sfnt

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/fontloc"
	"github.com/h2non/filetype"
	webfont "github.com/tdewolff/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

//go:embed metrics.json
var metricsJSON []byte

// Ensure Engine implements fontloc.MetricsEngine at compile time.
var _ fontloc.MetricsEngine = (*Engine)(nil)

// Engine computes fallback font-face overrides from vertical metrics.
type Engine struct {
	table map[string]fontloc.Metrics
}

// NewEngine creates an Engine backed by the built-in metric table.
func NewEngine() (*Engine, error) {
	var raw map[string]fontloc.Metrics
	if err := json.Unmarshal(metricsJSON, &raw); err != nil {
		return nil, fmt.Errorf("load metric table: %w", err)
	}
	return NewEngineWithTable(raw), nil
}

// NewEngineWithTable creates an Engine backed by table, keyed by family.
func NewEngineWithTable(table map[string]fontloc.Metrics) *Engine {
	e := &Engine{table: make(map[string]fontloc.Metrics, len(table))}
	for family, m := range table {
		e.table[normalizeFamily(family)] = m
	}
	return e
}

// LookupMetrics returns table metrics for family, matched case-insensitively.
func (e *Engine) LookupMetrics(family string) (fontloc.Metrics, bool) {
	m, ok := e.table[normalizeFamily(family)]
	return m, ok
}

// ReadMetricsFromFile parses a TrueType, OpenType, WOFF or WOFF2 file and
// returns its horizontal header metrics.
func (e *Engine) ReadMetricsFromFile(path string) (fontloc.Metrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fontloc.Metrics{}, err
	}

	switch {
	case filetype.Is(data, "woff"), filetype.Is(data, "woff2"):
		if data, err = webfont.ToSFNT(data); err != nil {
			return fontloc.Metrics{}, fontloc.Errorf(fontloc.EINVALID, "convert %s to sfnt: %v", path, err)
		}
	case filetype.Is(data, "ttf"), filetype.Is(data, "otf"):
	default:
		return fontloc.Metrics{}, fontloc.Errorf(fontloc.EINVALID, "not a font file: %s", path)
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return fontloc.Metrics{}, fontloc.Errorf(fontloc.EINVALID, "parse font %s: %v", path, err)
	}

	// Scaling by unitsPerEm yields values in font units.
	upm := int(f.UnitsPerEm())
	var buf sfnt.Buffer
	fm, err := f.Metrics(&buf, fixed.I(upm), font.HintingNone)
	if err != nil {
		return fontloc.Metrics{}, fontloc.Errorf(fontloc.EINVALID, "read metrics %s: %v", path, err)
	}

	return fontloc.Metrics{
		Ascent:     fm.Ascent.Round(),
		Descent:    -fm.Descent.Round(),
		LineGap:    (fm.Height - fm.Ascent - fm.Descent).Round(),
		UnitsPerEm: upm,
	}, nil
}

// FallbackBlock renders an @font-face rule named name whose sources are the
// local fallback fonts, with overrides that reproduce m's line box.
func (e *Engine) FallbackBlock(m fontloc.Metrics, name string, fallbacks []string) string {
	if len(fallbacks) == 0 || m.UnitsPerEm == 0 {
		return ""
	}

	srcs := make([]string, len(fallbacks))
	for i, f := range fallbacks {
		srcs[i] = fmt.Sprintf("local(%q)", f)
	}

	upm := float64(m.UnitsPerEm)
	var b strings.Builder
	b.WriteString("@font-face {\n")
	fmt.Fprintf(&b, "  font-family: %q;\n", name)
	fmt.Fprintf(&b, "  src: %s;\n", strings.Join(srcs, ", "))
	fmt.Fprintf(&b, "  size-adjust: %s;\n", percentage(1))
	fmt.Fprintf(&b, "  ascent-override: %s;\n", percentage(float64(m.Ascent)/upm))
	fmt.Fprintf(&b, "  descent-override: %s;\n", percentage(math.Abs(float64(m.Descent))/upm))
	fmt.Fprintf(&b, "  line-gap-override: %s;\n", percentage(float64(m.LineGap)/upm))
	b.WriteString("}\n")
	return b.String()
}

// percentage formats v as a CSS percentage with at most four decimals.
func percentage(v float64) string {
	p := math.Round(v*100*1e4) / 1e4
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(strings.Trim(family, `"'`)))
}
