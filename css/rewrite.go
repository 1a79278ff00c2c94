package css

import (
	"strings"

	"github.com/fwojciec/fontloc"
	"github.com/tdewolff/parse/v2/css"
)

// RewriteURLs replaces every url() token whose address exactly matches the
// Src of one of faces with the local mount equivalent of that address.
// Other URLs are left alone. The tree is modified in place; the number of
// rewritten tokens is returned.
func RewriteURLs(sheet *Stylesheet, faces []fontloc.FontFace, mountPrefix string) int {
	srcs := make(map[string]bool, len(faces))
	for _, f := range faces {
		if f.Src != "" {
			srcs[f.Src] = true
		}
	}

	var n int
	WalkTokens(sheet, func(t *Token) {
		if t.Type != css.URLToken {
			return
		}
		u, ok := URLValue(t.Data)
		if !ok || !srcs[u] {
			return
		}
		local, ok := fontloc.MountURL(u, mountPrefix)
		if !ok {
			return
		}
		t.Data = "url(" + requote(t.Data, local) + ")"
		n++
	})
	return n
}

// requote wraps s in the quote style of the url token it replaces.
func requote(orig, s string) string {
	inner := strings.TrimLeft(orig[len("url("):len(orig)-1], " \t\n\r\f")
	if inner != "" && (inner[0] == '"' || inner[0] == '\'') {
		return string(inner[0]) + s + string(inner[0])
	}
	return s
}
