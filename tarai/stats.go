package tarai

// Stats counts the work done by one top-level evaluation.
type Stats struct {
	// Calls is the number of recursive helper invocations, including the first.
	Calls int
	// Hits is the number of memo table hits. Memo only.
	Hits int
	// Forces is the number of deferred third arguments forced. Lazy variants only.
	Forces int
}
