package fontloc

// Metrics holds the vertical metrics of a font in font units.
// Descent is negative for glyph extents below the baseline.
type Metrics struct {
	Ascent     int `json:"ascent"`
	Descent    int `json:"descent"`
	LineGap    int `json:"lineGap"`
	UnitsPerEm int `json:"unitsPerEm"`
}

// MetricsEngine computes fallback declarations from font metrics.
// The pipeline treats it as a black box: it supplies a family, the local
// fallback names and optionally a downloaded font file, and appends
// whatever block the engine returns.
type MetricsEngine interface {
	// LookupMetrics returns precomputed metrics for a family.
	// The boolean is false when the built-in table has no entry.
	LookupMetrics(family string) (Metrics, bool)

	// ReadMetricsFromFile derives metrics from a local font file.
	ReadMetricsFromFile(path string) (Metrics, error)

	// FallbackBlock renders an @font-face rule named name that maps to the
	// local fallback fonts with overrides matching m.
	// Returns an empty string when there is nothing to render.
	FallbackBlock(m Metrics, name string, fallbacks []string) string
}
