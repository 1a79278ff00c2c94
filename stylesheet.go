package fontloc

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// StylesheetFetcher retrieves raw CSS text from remote stylesheets.
type StylesheetFetcher interface {
	// FetchStylesheets retrieves every URL and returns the bodies
	// concatenated in the order given.
	// Returns EFETCH if any response is not successful.
	FetchStylesheets(ctx context.Context, urls []string) (string, error)
}

// StylesheetCache stores generated stylesheets keyed by source address.
// Entries are never invalidated; a hit is permanent until removed externally.
type StylesheetCache interface {
	// Read returns the cached stylesheet for address.
	// The boolean is false when no entry exists.
	Read(ctx context.Context, address string) (string, bool, error)

	// Write stores css as the entry for address, replacing any previous one.
	Write(ctx context.Context, address, css string) error
}

// Fingerprint returns a fixed-width digest of a stylesheet address.
// It hashes the address string, not the stylesheet content.
func Fingerprint(address string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(address))
}
