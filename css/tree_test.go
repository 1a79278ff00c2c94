package css_test

import (
	"testing"

	"github.com/fwojciec/fontloc/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const interStylesheet = `@font-face {
  font-family: 'Inter';
  font-style: normal;
  font-weight: 400;
  src: url(https://fonts.gstatic.com/s/inter/v13/a.woff2) format('woff2');
  unicode-range: U+0000-00FF, U+0131;
}`

func TestParse_RoundTripsFontFace(t *testing.T) {
	t.Parallel()

	sheet := css.Parse(interStylesheet)

	assert.Equal(t, interStylesheet, sheet.String())
}

func TestParse_NormalizesLayout(t *testing.T) {
	t.Parallel()

	sheet := css.Parse("a,b{color:red}@media screen{.x{margin:0   auto}}@import url(x.css);")

	expected := `a, b {
  color: red;
}
@media screen {
  .x {
    margin: 0 auto;
  }
}
@import url(x.css);`
	assert.Equal(t, expected, sheet.String())
}

func TestParse_DropsComments(t *testing.T) {
	t.Parallel()

	sheet := css.Parse("/* latin */\n@font-face { font-family: 'A'; }")

	assert.Equal(t, "@font-face {\n  font-family: 'A';\n}", sheet.String())
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	sheet := css.Parse("")

	assert.Empty(t, sheet.Nodes)
	assert.Empty(t, sheet.String())
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	t.Run("finds font-face rules at any depth in document order", func(t *testing.T) {
		t.Parallel()

		sheet := css.Parse(`
@font-face { font-family: 'A'; }
@media screen { @font-face { font-family: 'B'; } }
@supports (display: grid) { @font-face { font-family: 'C'; } }
body { margin: 0 }`)

		found := css.FindAll(sheet, css.IsFontFace)

		require.Len(t, found, 3)
		for _, n := range found {
			assert.Equal(t, "font-face", n.(*css.AtRule).Name)
		}
	})

	t.Run("walk visits parents before children", func(t *testing.T) {
		t.Parallel()

		sheet := css.Parse("@media screen { a { color: red } }")

		var kinds []string
		css.Walk(sheet, func(n css.Node) {
			switch n.(type) {
			case *css.AtRule:
				kinds = append(kinds, "atrule")
			case *css.Ruleset:
				kinds = append(kinds, "ruleset")
			case *css.Declaration:
				kinds = append(kinds, "declaration")
			}
		})

		assert.Equal(t, []string{"atrule", "ruleset", "declaration"}, kinds)
	})
}

func TestURLValue(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in   string
		want string
	}{
		{"url(https://a.example/f.woff2)", "https://a.example/f.woff2"},
		{`url("https://a.example/f.woff2")`, "https://a.example/f.woff2"},
		{"url( 'https://a.example/f.woff2' )", "https://a.example/f.woff2"},
		{"URL(x)", "x"},
	} {
		got, ok := css.URLValue(tc.in)
		require.True(t, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, ok := css.URLValue("local(Arial)")
	assert.False(t, ok)
}
