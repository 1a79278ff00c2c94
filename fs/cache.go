package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/fontloc"
)

// Ensure Cache implements fontloc.StylesheetCache at compile time.
var _ fontloc.StylesheetCache = (*Cache)(nil)

// Cache stores generated stylesheets as <dir>/<fingerprint>.css.
// The key is derived from the stylesheet address only, so an entry never
// goes stale from the cache's point of view.
type Cache struct {
	dir string
}

// NewCache creates a Cache rooted at dir. The directory is created on the
// first write.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Path returns the file that holds the entry for address.
func (c *Cache) Path(address string) string {
	return filepath.Join(c.dir, fontloc.Fingerprint(address)+".css")
}

// Read returns the cached stylesheet for address. An empty entry is
// reported as a miss.
func (c *Cache) Read(ctx context.Context, address string) (string, bool, error) {
	data, err := os.ReadFile(c.Path(address))
	if os.IsNotExist(err) {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}
	if len(data) == 0 {
		return "", false, nil
	}
	return string(data), true, nil
}

// Write stores css as the entry for address.
func (c *Cache) Write(ctx context.Context, address, css string) error {
	_, err := WriteFileAtomic(c.Path(address), strings.NewReader(css))
	return err
}
