package Trees

import "fmt"

// InvalidSliceError is raised by builders that require a sorted slice of unique
// elements when sli[I] >= sli[I+1].
type InvalidSliceError struct {
	I          int
	Prev, Next int
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly increasing at index %d: %d >= %d", e.I, e.Prev, e.Next)
}
