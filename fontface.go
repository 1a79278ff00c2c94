package fontloc

import "strings"

// FontFace is a structured record of one @font-face rule.
type FontFace struct {
	// Family is the font-family name, unquoted.
	Family string `json:"family"`

	// Src is the absolute URL of the first source listed in the rule.
	// Faces contributed by configuration rather than a stylesheet may have
	// an empty Src; they are never downloaded or rewritten.
	Src string `json:"src,omitempty"`

	// Fallbacks lists local font names used to build the fallback block.
	Fallbacks []string `json:"fallbacks,omitempty"`
}

// Font is a configured font family with optional per-family fallbacks.
type Font struct {
	Family    string   `json:"family" yaml:"family" toml:"family"`
	Fallbacks []string `json:"fallbacks,omitempty" yaml:"fallbacks,omitempty" toml:"fallbacks"`
	Src       string   `json:"src,omitempty" yaml:"src,omitempty" toml:"src"`
}

// Validate returns an error if the font contains invalid fields.
func (f *Font) Validate() error {
	if f.Family == "" {
		return Errorf(EINVALID, "font family required")
	}
	return nil
}

// FallbackName returns the family name used for a generated fallback face.
func FallbackName(family string) string {
	return strings.Trim(family, `"'`) + " fallback"
}

// UniqueFamilies returns the first face of every distinct family,
// preserving order of first occurrence.
func UniqueFamilies(faces []FontFace) []FontFace {
	seen := make(map[string]bool, len(faces))
	var out []FontFace
	for _, f := range faces {
		if seen[f.Family] {
			continue
		}
		seen[f.Family] = true
		out = append(out, f)
	}
	return out
}
