// Package fontloc localizes remotely hosted web fonts for static sites.
// It fetches font-face stylesheets, downloads the referenced font files to
// a local directory, rewrites the stylesheet to point at the local copies,
// appends metric-matched fallback declarations, and caches the result.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., css/, sfnt/, goquery/).
package fontloc
