package backend

// stateSource reports live button state. Each source defines its own raw
// code space; buttonIndex is the fixed translation table from semantic
// button to raw code for that source. The table is a vetted constant per
// platform/source pair, never derived at runtime.
type stateSource interface {
	Snapshot() Snapshot
	buttonIndex(b Button) int
	Close() error
}
