package data

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// SparseInstanceData keeps only the listed entries as parallel index/value
// slices sorted by attribute index. Attributes that are not listed read as
// 0, which is a value and not a missing one.
type SparseInstanceData struct {
	attributeValues []float64
	indexValues     []int
	//The maximum number of values that can be stored
	numAttributes int
}

// NewSparseInstanceData copies values and indices. Entries are put in
// attribute order; when an index is listed twice the later value wins.
func NewSparseInstanceData(values []float64, indices []int, numAttributes int) *SparseInstanceData {
	if len(values) != len(indices) {
		panic(errors.Errorf("sparse data: %d values for %d indices", len(values), len(indices)))
	}
	if numAttributes < 0 {
		panic(errors.Wrapf(ErrIndexOutOfRange, "negative number of attributes %d", numAttributes))
	}
	order := make([]int, len(indices))
	for j, idx := range indices {
		checkIndex(idx, numAttributes, "attribute")
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool {
		return indices[order[a]] < indices[order[b]]
	})
	s := &SparseInstanceData{
		attributeValues: make([]float64, 0, len(values)),
		indexValues:     make([]int, 0, len(indices)),
		numAttributes:   numAttributes,
	}
	for _, j := range order {
		last := len(s.indexValues) - 1
		if last >= 0 && s.indexValues[last] == indices[j] {
			s.attributeValues[last] = values[j]
			continue
		}
		s.indexValues = append(s.indexValues, indices[j])
		s.attributeValues = append(s.attributeValues, values[j])
	}
	return s
}

func (s *SparseInstanceData) Kind() DataKind {
	return Sparse
}

func (s *SparseInstanceData) NumAttributes() int {
	return s.numAttributes
}

func (s *SparseInstanceData) NumValues() int {
	return len(s.indexValues)
}

func (s *SparseInstanceData) Value(idx int) float64 {
	checkIndex(idx, s.numAttributes, "attribute")
	pos := s.locateIndex(idx)
	if pos >= 0 && s.indexValues[pos] == idx {
		return s.attributeValues[pos]
	}
	return 0.0
}

func (s *SparseInstanceData) SetValue(idx int, value float64) {
	checkIndex(idx, s.numAttributes, "attribute")
	pos := s.locateIndex(idx)
	if pos >= 0 && s.indexValues[pos] == idx {
		s.attributeValues[pos] = value
		return
	}
	//insert after pos to keep the order
	pos++
	s.indexValues = append(s.indexValues, 0)
	copy(s.indexValues[pos+1:], s.indexValues[pos:])
	s.indexValues[pos] = idx
	s.attributeValues = append(s.attributeValues, 0)
	copy(s.attributeValues[pos+1:], s.attributeValues[pos:])
	s.attributeValues[pos] = value
}

//Only an explicitly stored NaN is missing
func (s *SparseInstanceData) IsMissing(idx int) bool {
	return math.IsNaN(s.Value(idx))
}

func (s *SparseInstanceData) Index(pos int) int {
	checkIndex(pos, len(s.indexValues), "position")
	return s.indexValues[pos]
}

func (s *SparseInstanceData) ValueSparse(pos int) float64 {
	checkIndex(pos, len(s.attributeValues), "position")
	return s.attributeValues[pos]
}

func (s *SparseInstanceData) IsMissingSparse(pos int) bool {
	return math.IsNaN(s.ValueSparse(pos))
}

//Shifts every stored index >= idx up by one, idx itself reads as 0
func (s *SparseInstanceData) InsertAttributeAt(idx int) {
	checkIndex(idx, s.numAttributes+1, "attribute")
	for j := range s.indexValues {
		if s.indexValues[j] >= idx {
			s.indexValues[j]++
		}
	}
	s.numAttributes++
}

//Drops the entry stored for idx (if any) and shifts the following ones down
func (s *SparseInstanceData) DeleteAttributeAt(idx int) {
	checkIndex(idx, s.numAttributes, "attribute")
	newIndices := make([]int, 0, len(s.indexValues))
	newValues := make([]float64, 0, len(s.attributeValues))
	for j, attIdx := range s.indexValues {
		switch {
		case attIdx < idx:
			newIndices = append(newIndices, attIdx)
			newValues = append(newValues, s.attributeValues[j])
		case attIdx > idx:
			newIndices = append(newIndices, attIdx-1)
			newValues = append(newValues, s.attributeValues[j])
		}
	}
	s.indexValues = newIndices
	s.attributeValues = newValues
	s.numAttributes--
}

func (s *SparseInstanceData) ToDoubleArray() []float64 {
	newValues := make([]float64, s.numAttributes)
	for j, idx := range s.indexValues {
		newValues[idx] = s.attributeValues[j]
	}
	return newValues
}

func (s *SparseInstanceData) Copy() InstanceData {
	c := &SparseInstanceData{
		attributeValues: make([]float64, len(s.attributeValues)),
		indexValues:     make([]int, len(s.indexValues)),
		numAttributes:   s.numAttributes,
	}
	copy(c.attributeValues, s.attributeValues)
	copy(c.indexValues, s.indexValues)
	return c
}

// locateIndex returns the position of the entry for index, or of the last
// entry below it when index is not stored (-1 if there is none).
func (s *SparseInstanceData) locateIndex(index int) int {
	min := 0
	max := len(s.indexValues) - 1
	if max == -1 {
		return -1
	}
	//Binary search
	for s.indexValues[min] <= index && s.indexValues[max] >= index {
		current := (max + min) / 2
		if s.indexValues[current] > index {
			max = current - 1
		} else if s.indexValues[current] < index {
			min = current + 1
		} else {
			return current
		}
	}
	if s.indexValues[max] < index {
		return max
	}
	return min - 1
}
