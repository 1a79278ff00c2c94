package css_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/fontloc"
	"github.com/fwojciec/fontloc/css"
	"github.com/stretchr/testify/assert"
)

func TestRewriteURLs(t *testing.T) {
	t.Parallel()

	t.Run("replaces scheme with mount prefix", func(t *testing.T) {
		t.Parallel()

		sheet := css.Parse(interStylesheet)
		faces := css.ExtractFontFaces(sheet, nil)

		n := css.RewriteURLs(sheet, faces, "/astro-fontaine")

		assert.Equal(t, 1, n)
		out := sheet.String()
		assert.Contains(t, out, "src: url(/astro-fontaine/fonts.gstatic.com/s/inter/v13/a.woff2) format('woff2');")
		assert.NotContains(t, out, "https://")
	})

	t.Run("leaves unrelated URLs untouched", func(t *testing.T) {
		t.Parallel()

		sheet := css.Parse(`
@font-face { font-family: 'A'; src: url(https://cdn.example/a.woff2), url(https://cdn.example/a.woff); }
body { background: url(https://img.example/bg.png); }`)
		faces := css.ExtractFontFaces(sheet, nil)

		n := css.RewriteURLs(sheet, faces, "/fonts")

		assert.Equal(t, 1, n)
		out := sheet.String()
		assert.Contains(t, out, "url(/fonts/cdn.example/a.woff2)")
		assert.Contains(t, out, "url(https://cdn.example/a.woff)")
		assert.Contains(t, out, "url(https://img.example/bg.png)")
	})

	t.Run("rewrites every occurrence of a tracked source", func(t *testing.T) {
		t.Parallel()

		sheet := css.Parse(`
@font-face { font-family: 'A'; src: url(https://cdn.example/shared.woff2); }
@font-face { font-family: 'B'; src: url(https://cdn.example/shared.woff2); }`)
		faces := css.ExtractFontFaces(sheet, nil)

		n := css.RewriteURLs(sheet, faces, "/fonts")

		assert.Equal(t, 2, n)
		assert.Equal(t, 2, strings.Count(sheet.String(), "url(/fonts/cdn.example/shared.woff2)"))
	})

	t.Run("keeps quote style", func(t *testing.T) {
		t.Parallel()

		sheet := css.Parse(`@font-face { font-family: 'A'; src: url("https://cdn.example/a.woff2"); }`)
		faces := css.ExtractFontFaces(sheet, nil)

		css.RewriteURLs(sheet, faces, "/fonts")

		assert.Contains(t, sheet.String(), `url("/fonts/cdn.example/a.woff2")`)
	})

	t.Run("ignores faces that do not occur in the tree", func(t *testing.T) {
		t.Parallel()

		sheet := css.Parse(interStylesheet)
		faces := []fontloc.FontFace{{Family: "Other", Src: "https://elsewhere.example/o.woff2"}}

		n := css.RewriteURLs(sheet, faces, "/fonts")

		assert.Zero(t, n)
		assert.Equal(t, interStylesheet, sheet.String())
	})
}
