package membership

import "fmt"

// Index maps universe elements to their stable positions.
// Lookups are O(1); the index is immutable once built.
type Index[T comparable] struct {
	pos   map[T]int
	elems []T
}

// NewIndex builds the element → position map for universe.
// It returns an *InputError wrapping ErrDuplicateElement on the first repeat,
// reporting the position of the second occurrence.
//
// Complexity: O(N) time and memory.
func NewIndex[T comparable](universe []T) (Index[T], error) {
	var (
		idx = Index[T]{
			pos:   make(map[T]int, len(universe)),
			elems: universe,
		}
		i    int
		e    T
		prev int
		dup  bool
	)
	for i, e = range universe {
		if prev, dup = idx.pos[e]; dup {
			return Index[T]{}, &InputError{
				Field:  "universe",
				Index:  i,
				Detail: fmt.Sprintf("%v already at position %d", e, prev),
				Err:    ErrDuplicateElement,
			}
		}
		idx.pos[e] = i
	}

	return idx, nil
}

// Position returns the position of e and whether e belongs to the universe.
func (x Index[T]) Position(e T) (int, bool) {
	j, ok := x.pos[e]

	return j, ok
}

// Element returns the element at position j.
func (x Index[T]) Element(j int) T { return x.elems[j] }

// Len returns the universe size N.
func (x Index[T]) Len() int { return len(x.elems) }
