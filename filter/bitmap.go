package filter

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// RowSet is a set of row indices backed by a Roaring bitmap.
//
// Select produces one per filter application; because iteration yields
// indices in ascending order, filtering through a RowSet preserves the
// original row order.
type RowSet struct {
	rb *roaring.Bitmap
}

// NewRowSet creates a new empty row set.
func NewRowSet() *RowSet {
	return &RowSet{
		rb: roaring.New(),
	}
}

// Add adds a row index to the set.
func (s *RowSet) Add(i uint32) {
	s.rb.Add(i)
}

// Remove removes a row index from the set.
func (s *RowSet) Remove(i uint32) {
	s.rb.Remove(i)
}

// Contains checks if a row index is in the set.
func (s *RowSet) Contains(i uint32) bool {
	return s.rb.Contains(i)
}

// IsEmpty returns true if the set is empty.
func (s *RowSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of rows in the set.
func (s *RowSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *RowSet) Clone() *RowSet {
	return &RowSet{
		rb: s.rb.Clone(),
	}
}

// And intersects the set with another in place.
func (s *RowSet) And(other *RowSet) {
	s.rb.And(other.rb)
}

// Or unions the set with another in place.
func (s *RowSet) Or(other *RowSet) {
	s.rb.Or(other.rb)
}

// Clear removes all rows from the set.
func (s *RowSet) Clear() {
	s.rb.Clear()
}

// Iterator returns an iterator over the set in ascending index order.
func (s *RowSet) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Select evaluates node against every row and returns the set of matching
// row indices. A nil node selects every row.
func Select(rows []Record, node Node) *RowSet {
	out := NewRowSet()
	for i, rec := range rows {
		if Evaluate(rec, node) {
			out.Add(uint32(i))
		}
	}
	return out
}

// Apply filters rows by node, preserving their original relative order.
// A nil node returns a copy of rows unchanged.
func Apply(rows []Record, node Node) []Record {
	selected := Select(rows, node)
	out := make([]Record, 0, selected.Cardinality())
	for i := range selected.Iterator() {
		out = append(out, rows[i])
	}
	return out
}
