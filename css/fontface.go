package css

import (
	"strings"

	"github.com/fwojciec/fontloc"
	"github.com/tdewolff/parse/v2/css"
)

// ExtractFontFaces returns one FontFace per @font-face rule that declares
// both a font-family and a url() source, in order of appearance. Rules
// missing either are skipped without error. Only the first listed source
// of a src declaration is considered. fallbacks, if non-nil, supplies the
// fallback list for each family.
func ExtractFontFaces(sheet *Stylesheet, fallbacks func(family string) []string) []fontloc.FontFace {
	var faces []fontloc.FontFace
	for _, n := range FindAll(sheet, IsFontFace) {
		var family, src string
		for _, child := range n.(*AtRule).Block {
			d, ok := child.(*Declaration)
			if !ok {
				continue
			}
			switch strings.ToLower(d.Property) {
			case "src":
				src = firstURL(d.Values)
			case "font-family":
				family = firstFamily(d.Values)
			}
		}
		if family == "" || src == "" {
			continue
		}

		face := fontloc.FontFace{Family: family, Src: src}
		if fallbacks != nil {
			face.Fallbacks = fallbacks(family)
		}
		faces = append(faces, face)
	}
	return faces
}

// firstURL returns the address of the leading url() token, if any.
func firstURL(values []Token) string {
	for _, t := range values {
		if t.Type == css.WhitespaceToken {
			continue
		}
		if t.Type != css.URLToken {
			return ""
		}
		u, _ := URLValue(t.Data)
		return strings.TrimSpace(u)
	}
	return ""
}

// firstFamily returns the first family name of a font-family value:
// a quoted string, or a run of identifiers up to the first comma.
func firstFamily(values []Token) string {
	var idents []string
	for _, t := range values {
		switch t.Type {
		case css.WhitespaceToken:
			continue
		case css.StringToken:
			if len(idents) == 0 {
				return strings.TrimSpace(unquote(t.Data))
			}
			return strings.Join(idents, " ")
		case css.IdentToken:
			idents = append(idents, t.Data)
		default:
			return strings.Join(idents, " ")
		}
	}
	return strings.Join(idents, " ")
}
