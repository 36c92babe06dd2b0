// Package mapset provides an in-memory description of a mapset and exposes the
// aggregate facts the skin rule engine needs.
//
// Parsing beatmap files is outside this package; callers fill Mapset directly
// or through the manifest loader. Storyboard sprite records are the one event
// type parsed here, since the paths they reference count as used assets.
package mapset
