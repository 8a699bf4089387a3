// Package drawfind locates the latest revision of technical drawing files.
// A drawing is identified by a dash-separated code such as "180-570-542";
// its files live either behind a web-served directory index or on local
// network shares, named CODE(-PAGE)?-REVISION.tif.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package drawfind
