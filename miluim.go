// Package miluim provides a CLI tool for collecting and searching
// reserve-duty job ads published as free-text posts on a public
// social-media channel. It scrapes a range of post pages, extracts
// structured job records from the marker-delimited Hebrew post bodies,
// stores them locally, and offers filtering and free-text search over
// the collection.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// goquery/, http/). The pure text-extraction engine lives in extract/.
package miluim
