package spider

// Keyer is implemented by values that can be tracked in a MembershipStore.
// Two values with the same key are the same member.
type Keyer interface {
	Key() string
}

// MembershipStore records which items have already been processed.
// Duplicate adds and removals of absent items are ordinary false results.
type MembershipStore[T Keyer] interface {
	// Add inserts item. Returns false if it was already a member.
	Add(item T) bool

	// AddAll adds each item in order. Duplicates do not stop the batch.
	AddAll(items ...T)

	// Contains reports whether item is a member.
	Contains(item T) bool

	// Remove deletes item. Returns false if it was not a member.
	Remove(item T) bool

	// Count returns the number of members.
	Count() int
}

// DocumentStore tracks fingerprints of documents already emitted.
type DocumentStore = MembershipStore[Fingerprint]

// LocationStore tracks locations already admitted to the frontier.
type LocationStore = MembershipStore[Location]
