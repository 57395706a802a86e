// Package idgen derives sequential, zero-padded textual ids for a collection
// from its current size.
package idgen

import "fmt"

// UserWidth and HouseWidth are the fixed id widths of the two collections.
const (
	UserWidth  = 4
	HouseWidth = 3
)

// Next returns count+1 rendered as decimal, left-padded with zeros to width
// characters. Uniqueness relies on the highest-numbered record never having
// been deleted; ids can be reused after a deletion shrinks the collection.
func Next(count, width int) string {
	return fmt.Sprintf("%0*d", width, count+1)
}
