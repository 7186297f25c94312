package membership

import "github.com/prysmaticlabs/go-bitfield"

// State is the Active State of one search frame: which universe positions are
// still uncovered (active columns) and which sets are still eligible (active rows).
//
// A State is owned by exactly one frame. Select and Clone return independent
// copies; no method mutates the receiver.
type State struct {
	cols bitfield.Bitlist // length N
	rows bitfield.Bitlist // length M
	open int              // number of active columns
}

// NewState returns the root State of x: every column and every row active.
func NewState(x *Matrix) State {
	var (
		s = State{
			cols: bitfield.NewBitlist(uint64(x.n)),
			rows: bitfield.NewBitlist(uint64(x.m)),
			open: x.n,
		}
		k int
	)
	for k = 0; k < x.n; k++ {
		s.cols.SetBitAt(uint64(k), true)
	}
	for k = 0; k < x.m; k++ {
		s.rows.SetBitAt(uint64(k), true)
	}

	return s
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		cols: append(bitfield.Bitlist(nil), s.cols...),
		rows: append(bitfield.Bitlist(nil), s.rows...),
		open: s.open,
	}
}

// Open returns the number of active (uncovered) columns.
func (s State) Open() int { return s.open }

// Solved reports whether no active column remains.
func (s State) Solved() bool { return s.open == 0 }

// ColumnActive reports whether column j is still uncovered.
func (s State) ColumnActive(j int) bool { return s.cols.BitAt(uint64(j)) }

// RowActive reports whether row i is still eligible.
func (s State) RowActive(i int) bool { return s.rows.BitAt(uint64(i)) }

// ActiveColumns returns the ascending positions of uncovered columns.
func (s State) ActiveColumns() []int { return s.cols.BitIndices() }

// ActiveRows returns the number of eligible rows.
func (s State) ActiveRows() int { return int(s.rows.Count()) }

// CoverCount returns how many active rows of x cover column j.
//
// Complexity: O(|column j|).
func (s State) CoverCount(x *Matrix, j int) int {
	var (
		c int
		i int
	)
	for _, i = range x.colMembers[j] {
		if s.rows.BitAt(uint64(i)) {
			c++
		}
	}

	return c
}

// Candidates returns the active rows of x covering column j, ascending.
//
// Complexity: O(M/8).
func (s State) Candidates(x *Matrix, j int) []int {
	hit, err := s.rows.And(x.cols[j])
	if err != nil {
		return nil // s was not built from x
	}

	return hit.BitIndices()
}

// Select returns the State reached by choosing row r: every column of r is
// deactivated, and every row sharing a column with r (r included) is excluded.
// The receiver is left untouched.
//
// Complexity: O(N/8 + M/8) for the copy plus O(Σ_{j∈r} |column j|).
func (s State) Select(x *Matrix, r int) State {
	// Reads come from x and s, writes land on the copy only.
	var (
		next = s.Clone()
		j, k int
	)
	for _, j = range x.rowMembers[r] {
		if next.cols.BitAt(uint64(j)) {
			next.cols.SetBitAt(uint64(j), false)
			next.open--
		}
		for _, k = range x.colMembers[j] {
			next.rows.SetBitAt(uint64(k), false)
		}
	}
	// An empty row shares no column with itself.
	next.rows.SetBitAt(uint64(r), false)

	return next
}
