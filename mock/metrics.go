package mock

import "github.com/fwojciec/fontloc"

var _ fontloc.MetricsEngine = (*MetricsEngine)(nil)

// MetricsEngine is a mock implementation of fontloc.MetricsEngine.
type MetricsEngine struct {
	LookupMetricsFn       func(family string) (fontloc.Metrics, bool)
	ReadMetricsFromFileFn func(path string) (fontloc.Metrics, error)
	FallbackBlockFn       func(m fontloc.Metrics, name string, fallbacks []string) string
}

func (e *MetricsEngine) LookupMetrics(family string) (fontloc.Metrics, bool) {
	return e.LookupMetricsFn(family)
}

func (e *MetricsEngine) ReadMetricsFromFile(path string) (fontloc.Metrics, error) {
	return e.ReadMetricsFromFileFn(path)
}

func (e *MetricsEngine) FallbackBlock(m fontloc.Metrics, name string, fallbacks []string) string {
	return e.FallbackBlockFn(m, name, fallbacks)
}
