package fontloc

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
)

// AssetDownloader ensures the font files referenced by faces exist locally.
type AssetDownloader interface {
	// Download fetches every distinct face source that is not already present
	// under the asset directory. Faces without a Src are ignored.
	// Returns EDOWNLOAD if any remote response is unsuccessful or empty.
	Download(ctx context.Context, faces []FontFace) error
}

// AssetPath maps a remote font URL to its local path: <dir>/<host>/<path...>.
// The mapping depends only on the URL's host and path, so it is identical
// across runs and processes. Query strings and fragments are ignored.
func AssetPath(dir, src string) (string, error) {
	u, err := url.Parse(src)
	if err != nil {
		return "", Errorf(EINVALID, "invalid font URL %q: %v", src, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", Errorf(EINVALID, "font URL must be absolute: %q", src)
	}

	parts := []string{dir, u.Host}
	for _, seg := range strings.Split(u.Path, "/") {
		if seg == "" {
			continue
		}
		if seg == "." || seg == ".." {
			return "", Errorf(EINVALID, "font URL path escapes asset directory: %q", src)
		}
		parts = append(parts, seg)
	}
	return filepath.Join(parts...), nil
}

// MountURL replaces the scheme of src with the local mount prefix,
// keeping host, path and query: https://h/p/a.woff2 → /mount/h/p/a.woff2.
// Returns false if src has no scheme separator.
func MountURL(src, mountPrefix string) (string, bool) {
	i := strings.Index(src, "://")
	if i <= 0 {
		return "", false
	}
	return strings.TrimSuffix(mountPrefix, "/") + "/" + src[i+len("://"):], true
}
