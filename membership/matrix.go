package membership

import (
	"fmt"
	"slices"

	"github.com/prysmaticlabs/go-bitfield"
)

// Matrix is the membership of M candidate sets over a universe of N elements.
// It is read-only after Build and safe for concurrent readers.
type Matrix struct {
	n int // universe size (columns)
	m int // number of candidate sets (rows)

	// cols[j] has length m and marks the sets containing element j; State
	// intersects it with its active rows to list candidates. rows[i] has length
	// n and marks the elements of set i; Union and Disjoint fold over it.
	cols []bitfield.Bitlist
	rows []bitfield.Bitlist

	// Ascending member lists mirroring the bitlists; they let hot loops visit
	// only the set bits instead of scanning N or M positions.
	colMembers [][]int
	rowMembers [][]int

	maxRow int
}

// Build constructs the Membership Matrix for universe and sets.
//
// Contracts:
//   - universe has no duplicates (ErrDuplicateElement otherwise).
//   - every element of every set belongs to universe (ErrUnknownElement otherwise).
//   - repeated elements inside one set collapse to a single membership bit.
//
// Complexity: O(N + P) for the index and bit assignment, O(P log P) to sort
// row member lists, where P is the total number of membership pairs.
func Build[T comparable](universe []T, sets [][]T) (*Matrix, error) {
	// Stage 1: element → position index.
	idx, err := NewIndex(universe)
	if err != nil {
		return nil, err
	}

	var (
		n = len(universe)
		m = len(sets)
		x = &Matrix{
			n:          n,
			m:          m,
			cols:       make([]bitfield.Bitlist, n),
			rows:       make([]bitfield.Bitlist, m),
			colMembers: make([][]int, n),
			rowMembers: make([][]int, m),
		}
		i, j int
		e    T
		ok   bool
	)
	for j = 0; j < n; j++ {
		x.cols[j] = bitfield.NewBitlist(uint64(m))
	}

	// Stage 2: one pass over all membership pairs.
	for i = range sets {
		x.rows[i] = bitfield.NewBitlist(uint64(n))
		x.rowMembers[i] = make([]int, 0, len(sets[i]))
		for _, e = range sets[i] {
			if j, ok = idx.Position(e); !ok {
				return nil, &InputError{
					Field:  "sets",
					Index:  i,
					Detail: fmt.Sprintf("element %v", e),
					Err:    ErrUnknownElement,
				}
			}
			if x.rows[i].BitAt(uint64(j)) {
				continue // duplicate inside the set
			}
			x.rows[i].SetBitAt(uint64(j), true)
			x.cols[j].SetBitAt(uint64(i), true)
			x.rowMembers[i] = append(x.rowMembers[i], j)
			// i grows monotonically, so column member lists stay sorted.
			x.colMembers[j] = append(x.colMembers[j], i)
		}
		slices.Sort(x.rowMembers[i])
		if len(x.rowMembers[i]) > x.maxRow {
			x.maxRow = len(x.rowMembers[i])
		}
	}

	return x, nil
}

// Elements returns the universe size N.
func (x *Matrix) Elements() int { return x.n }

// Sets returns the number of candidate sets M.
func (x *Matrix) Sets() int { return x.m }

// Column returns the bitlist (length M) of sets containing element j.
// The returned bitlist is shared; callers must not modify it.
func (x *Matrix) Column(j int) bitfield.Bitlist { return x.cols[j] }

// Row returns the bitlist (length N) of elements contained in set i.
// The returned bitlist is shared; callers must not modify it.
func (x *Matrix) Row(i int) bitfield.Bitlist { return x.rows[i] }

// RowMembers returns the ascending element positions of set i (shared, read-only).
func (x *Matrix) RowMembers(i int) []int { return x.rowMembers[i] }

// ColumnMembers returns the ascending indices of sets containing element j (shared, read-only).
func (x *Matrix) ColumnMembers(j int) []int { return x.colMembers[j] }

// Contains reports whether set i contains element j.
func (x *Matrix) Contains(i, j int) bool { return x.rows[i].BitAt(uint64(j)) }

// RowSize returns |set i| after de-duplication.
func (x *Matrix) RowSize(i int) int { return len(x.rowMembers[i]) }

// ColumnSize returns how many sets contain element j.
func (x *Matrix) ColumnSize(j int) int { return len(x.colMembers[j]) }

// MaxRowSize returns the size of the largest candidate set.
func (x *Matrix) MaxRowSize() int { return x.maxRow }

// checkSets reports the first index in sets outside 0..M-1.
func (x *Matrix) checkSets(sets []int) error {
	for k, i := range sets {
		if i < 0 || i >= x.m {
			return &InputError{Field: "sets", Index: k, Detail: fmt.Sprintf("set %d of %d", i, x.m), Err: ErrSetIndex}
		}
	}

	return nil
}

// Union returns the bitlist (length N) of elements covered by the given sets.
// An index outside 0..M-1 yields an *InputError wrapping ErrSetIndex.
func (x *Matrix) Union(sets []int) (bitfield.Bitlist, error) {
	if err := x.checkSets(sets); err != nil {
		return nil, err
	}

	var (
		acc = bitfield.NewBitlist(uint64(x.n))
		i   int
		err error
	)
	for _, i = range sets {
		if acc, err = acc.Or(x.rows[i]); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Disjoint reports whether no two of the given sets share an element.
//
// Index errors are reported as in Union.
//
// Complexity: O(k·N/8) with k = len(sets).
func (x *Matrix) Disjoint(sets []int) (bool, error) {
	if err := x.checkSets(sets); err != nil {
		return false, err
	}

	var (
		acc     = bitfield.NewBitlist(uint64(x.n))
		i       int
		overlap bool
		err     error
	)
	for _, i = range sets {
		if overlap, err = acc.Overlaps(x.rows[i]); err != nil {
			return false, err
		} else if overlap {
			return false, nil
		}
		if acc, err = acc.Or(x.rows[i]); err != nil {
			return false, err
		}
	}

	return true, nil
}
