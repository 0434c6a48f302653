// Package catalog provides a pre-fetched dataset of real-world user-agent
// strings, grouped into named browser categories.
//
// A Dataset ships with an embedded snapshot and answers category lookups
// in memory, so constructing one performs no network I/O. Load can
// refresh the snapshot from a remote JSON endpoint and falls back to the
// embedded data when the fetch fails.
//
//	ds, _ := catalog.New()
//	ua, _ := ds.Pick("chrome")
package catalog
