package spider

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is a content-derived identity used to detect duplicate
// documents. Two documents with equal content have equal fingerprints.
type Fingerprint string

// ComputeFingerprint returns the fingerprint of content.
// Only the content participates; titles never affect identity.
func ComputeFingerprint(content string) Fingerprint {
	return Fingerprint(fmt.Sprintf("%016x", xxhash.Sum64String(content)))
}

// Key returns the membership key of the fingerprint.
func (f Fingerprint) Key() string {
	return string(f)
}

func (f Fingerprint) String() string {
	return string(f)
}

// Document represents the normalized text extracted from one location.
type Document struct {
	Title   string
	Content string

	// Source is the location the document was extracted from.
	Source Location

	fingerprint Fingerprint
}

// NewDocument returns a document for content extracted from source.
func NewDocument(source Location, title, content string) *Document {
	return &Document{
		Title:   title,
		Content: content,
		Source:  source,
	}
}

// Fingerprint returns the document's fingerprint, computing it on first use.
// Content must not change after the first call.
func (d *Document) Fingerprint() Fingerprint {
	if d.fingerprint == "" {
		d.fingerprint = ComputeFingerprint(d.Content)
	}
	return d.fingerprint
}

// Equal reports whether d and other carry the same content.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Content == other.Content
}
