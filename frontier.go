package spider

// Frontier holds the locations still to visit in arrival order.
type Frontier interface {
	// Push appends a location to the tail.
	Push(loc Location)

	// PushAll pushes each location in the given order.
	PushAll(locs ...Location)

	// Peek returns the location the next Pop will return, without removing it.
	// Returns false if the frontier is empty.
	Peek() (Location, bool)

	// Pop removes and returns the head location.
	// Returns false if the frontier is empty.
	Pop() (Location, bool)

	// Len returns the number of pending locations.
	Len() int

	// Empty reports whether no locations are pending.
	Empty() bool
}
