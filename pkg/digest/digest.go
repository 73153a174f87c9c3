// Package digest fingerprints the output of a traversal
package digest

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/KevoDB/seqview/pkg/common/cursor"
)

// separator follows every element so that ["ab"] and ["a", "b"] differ
const separator = "\x00"

// Sum64 traverses seq once and returns the xxhash of each element's
// formatted value followed by a separator. Two traversals that produce the
// same formatted elements in the same order have the same digest.
func Sum64[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any](seq S, format func(R) string) uint64 {
	d := xxhash.New()
	for r := range cursor.All(seq) {
		d.WriteString(format(r))
		d.WriteString(separator)
	}
	return d.Sum64()
}

// Pointee formats the value a pointer refers to with %v, for sequences over
// mutable storage
func Pointee[T any](p *T) string {
	return fmt.Sprint(*p)
}

// String returns the digest in the form the driver prints it
func String(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
