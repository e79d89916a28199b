package spider

import "strings"

// Location identifies a document to visit: a local path or an external
// reference. Identity is the URI alone; Parent records where the location
// was discovered and does not participate in equality.
type Location struct {
	URI    string
	Parent string
}

// NewLocation returns a seed location with no parent.
func NewLocation(uri string) Location {
	return Location{URI: uri}
}

// Child returns a location for uri discovered from l.
func (l Location) Child(uri string) Location {
	return Location{URI: uri, Parent: l.URI}
}

// Key returns the membership key of the location.
func (l Location) Key() string {
	return l.URI
}

// Equal reports whether l and other identify the same document.
func (l Location) Equal(other Location) bool {
	return l.URI == other.URI
}

// IsZero reports whether l is the empty location.
func (l Location) IsZero() bool {
	return l.URI == ""
}

func (l Location) String() string {
	return l.URI
}

// Locations converts uris to seed locations, preserving order.
func Locations(uris ...string) []Location {
	locs := make([]Location, 0, len(uris))
	for _, uri := range uris {
		locs = append(locs, NewLocation(uri))
	}
	return locs
}

// IsExternal reports whether link contains any of the external markers.
// External locations are recorded but never resolved or opened.
func IsExternal(markers []string, link string) bool {
	for _, m := range markers {
		if strings.Contains(link, m) {
			return true
		}
	}
	return false
}
