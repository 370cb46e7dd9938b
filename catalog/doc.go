// Package catalog resolves fingerspelling sign identifiers to the video
// clips that perform them.
//
// The catalog is loaded from the two-column mapper CSV (media id, sign)
// shared with the numeral mapping; clip filenames are derived from the
// media id as <prefix><media id><ext> (compressed_<id>.mp4 by default).
// The core conversion algorithms never touch this table — they only emit
// sign identifiers the catalog is keyed on.
//
// A loaded Catalog is immutable and safe for concurrent use. Reloading is
// explicit: call Load again, or run a Watcher to rebuild the catalog when
// the mapper CSV changes on disk.
package catalog
