// Package composite provides views that combine several sequences into one
// logical traversal: chains, which concatenate, and zips, which pair
// positions.
package composite

// Composite is implemented by views built from more than one source sequence
type Composite interface {
	// NumSources returns the number of source sequences
	NumSources() int
}
