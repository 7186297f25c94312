// Package membership builds the bit-vector Membership Matrix shared by the
// covering engines in lvcover/cover, together with the per-branch Active State.
//
// What:
//
//   - Index[T]: hash index from universe element to its stable position 0..N-1.
//   - Matrix:   read-only membership of M candidate sets over N elements, kept
//     in two layouts:
//   - column-oriented: Column(j) is a bitlist over set indices (which sets
//     contain element j); used by exact cover to count remaining candidates.
//   - row-oriented: Row(i) is a bitlist over element positions (which elements
//     set i contains); used by the greedy engines for marginal coverage.
//   - State:    the pair (active columns, active rows) owned by one search frame.
//     Select returns a fresh reduced State and never mutates its receiver, so
//     sibling branches cannot alias each other.
//
// Bit-vectors are github.com/prysmaticlabs/go-bitfield Bitlists.
//
// Complexity:
//
//   - Build:  O(P + N) time, where P is the number of (set, element) pairs,
//     plus O(P log P) to order the row member lists.
//   - Memory: O(N·M/8) bytes for both bitlist views, plus O(P) member lists.
//
// Errors:
//
//   - ErrDuplicateElement  universe repeats an element
//   - ErrUnknownElement    a set references an element outside the universe
//
// Both are reported as *InputError and match ErrInvalidInput via errors.Is.
//
// A Matrix is built per solve call. Nothing in this package keeps state
// between calls.
package membership
