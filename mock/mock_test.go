package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/fontloc"
	"github.com/fwojciec/fontloc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesheetCache_Delegates(t *testing.T) {
	t.Parallel()

	var written string
	c := &mock.StylesheetCache{
		ReadFn: func(_ context.Context, address string) (string, bool, error) {
			return "cached " + address, true, nil
		},
		WriteFn: func(_ context.Context, _, css string) error {
			written = css
			return nil
		},
	}

	got, ok, err := c.Read(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cached a", got)

	require.NoError(t, c.Write(context.Background(), "a", "body{}"))
	assert.Equal(t, "body{}", written)
}

func TestMetricsEngine_Delegates(t *testing.T) {
	t.Parallel()

	var gotName string
	e := &mock.MetricsEngine{
		LookupMetricsFn: func(family string) (fontloc.Metrics, bool) {
			return fontloc.Metrics{UnitsPerEm: 1000}, family == "Inter"
		},
		FallbackBlockFn: func(_ fontloc.Metrics, name string, _ []string) string {
			gotName = name
			return "block"
		},
	}

	m, ok := e.LookupMetrics("Inter")
	assert.True(t, ok)
	assert.Equal(t, 1000, m.UnitsPerEm)
	assert.Equal(t, "block", e.FallbackBlock(m, "Inter fallback", nil))
	assert.Equal(t, "Inter fallback", gotName)
}
