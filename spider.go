// Package spider provides a local, sequential document crawler.
// It walks a graph of documents reachable through hyperlinks starting from
// a set of seed locations, extracts their text and outbound links, and
// skips content and locations it has already processed.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, bloom/, sqlite/).
package spider
