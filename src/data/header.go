package data

import (
	"math"

	"github.com/pkg/errors"
)

//Class index reported by a header whose class has not been chosen
const UnsetClassIndex = math.MaxInt32

//Contiguous block of attributes [Start, End] used as output targets
type Range struct {
	Start, End int
}

// Header is the schema an instance reads its attribute metadata from.
// Instances never modify it, so one header can be shared by any number of
// instances and goroutines.
type Header interface {
	RelationName() string
	NumAttributes() int
	Attribute(idx int) *Attribute
	//-1 when the attribute does not belong to the header
	IndexOf(att *Attribute) int
	NumClasses() int
	//UnsetClassIndex when no class was chosen
	ClassIndex() int
	ClassRange() (Range, bool)
	NumInputAttributes() int
	NumOutputAttributes() int
	InputAttribute(k int) *Attribute
	OutputAttribute(k int) *Attribute
	InputAttributeIndex(k int) int
	OutputAttributeIndex(k int) int
}

//In memory header
type InstancesHeader struct {
	//Dataset's name
	relationName string
	//The attributes info
	attributes []*Attribute
	//Attribute name to index
	attributesIndices map[string]int
	//Class attribute's index
	classIndex int
	//Output targets, nil for a single class
	outputRange   *Range
	inputIndices  []int
	outputIndices []int
}

//Builds a header, attribute names must be unique
func NewInstancesHeader(relationName string, attributes []*Attribute) (*InstancesHeader, error) {
	h := &InstancesHeader{
		relationName:      relationName,
		attributes:        make([]*Attribute, len(attributes)),
		attributesIndices: make(map[string]int, len(attributes)),
		classIndex:        UnsetClassIndex,
	}
	for i, att := range attributes {
		if att == nil {
			return nil, errors.Errorf("attribute %d is nil", i)
		}
		if _, present := h.attributesIndices[att.Name()]; present {
			return nil, errors.Errorf("duplicate attribute name %q", att.Name())
		}
		h.attributes[i] = att
		h.attributesIndices[att.Name()] = i
	}
	h.computeInputOutput()
	return h, nil
}

// WithClassIndex returns a copy of the header with the class set. The
// receiver is left untouched so instances already bound to it keep their view.
func (h *InstancesHeader) WithClassIndex(classIndex int) (*InstancesHeader, error) {
	if classIndex != UnsetClassIndex && (classIndex < 0 || classIndex >= len(h.attributes)) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "class index %d, %d attributes", classIndex, len(h.attributes))
	}
	c := h.clone()
	c.classIndex = classIndex
	c.computeInputOutput()
	return c, nil
}

//Copy of the header whose outputs are the attributes in r
func (h *InstancesHeader) WithOutputRange(r Range) (*InstancesHeader, error) {
	if r.Start < 0 || r.End < r.Start || r.End >= len(h.attributes) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "output range [%d,%d], %d attributes", r.Start, r.End, len(h.attributes))
	}
	c := h.clone()
	c.outputRange = &Range{Start: r.Start, End: r.End}
	c.computeInputOutput()
	return c, nil
}

func (h *InstancesHeader) clone() *InstancesHeader {
	c := *h
	if h.outputRange != nil {
		r := *h.outputRange
		c.outputRange = &r
	}
	return &c
}

func (h *InstancesHeader) computeInputOutput() {
	isOutput := make([]bool, len(h.attributes))
	switch {
	case h.outputRange != nil:
		for i := h.outputRange.Start; i <= h.outputRange.End; i++ {
			isOutput[i] = true
		}
	case h.classIndex != UnsetClassIndex:
		isOutput[h.classIndex] = true
	}
	h.inputIndices = make([]int, 0, len(h.attributes))
	h.outputIndices = make([]int, 0, 1)
	for i := range h.attributes {
		if isOutput[i] {
			h.outputIndices = append(h.outputIndices, i)
		} else {
			h.inputIndices = append(h.inputIndices, i)
		}
	}
}

func (h *InstancesHeader) RelationName() string {
	return h.relationName
}

func (h *InstancesHeader) NumAttributes() int {
	return len(h.attributes)
}

func (h *InstancesHeader) Attribute(idx int) *Attribute {
	checkIndex(idx, len(h.attributes), "attribute")
	return h.attributes[idx]
}

func (h *InstancesHeader) Attributes() []*Attribute {
	atts := make([]*Attribute, len(h.attributes))
	copy(atts, h.attributes)
	return atts
}

func (h *InstancesHeader) IndexOf(att *Attribute) int {
	if att == nil {
		return -1
	}
	if idx, present := h.attributesIndices[att.Name()]; present {
		return idx
	}
	return -1
}

//Number of labels of the class attribute, 1 for a numeric class
func (h *InstancesHeader) NumClasses() int {
	if h.classIndex == UnsetClassIndex {
		return 0
	}
	att := h.attributes[h.classIndex]
	if att.IsNominal() {
		return att.NumValues()
	}
	return 1
}

func (h *InstancesHeader) ClassIndex() int {
	return h.classIndex
}

func (h *InstancesHeader) ClassRange() (Range, bool) {
	if h.outputRange == nil {
		return Range{}, false
	}
	return *h.outputRange, true
}

func (h *InstancesHeader) NumInputAttributes() int {
	return len(h.inputIndices)
}

func (h *InstancesHeader) NumOutputAttributes() int {
	return len(h.outputIndices)
}

func (h *InstancesHeader) InputAttribute(k int) *Attribute {
	return h.attributes[h.InputAttributeIndex(k)]
}

func (h *InstancesHeader) OutputAttribute(k int) *Attribute {
	return h.attributes[h.OutputAttributeIndex(k)]
}

func (h *InstancesHeader) InputAttributeIndex(k int) int {
	checkIndex(k, len(h.inputIndices), "input attribute")
	return h.inputIndices[k]
}

func (h *InstancesHeader) OutputAttributeIndex(k int) int {
	checkIndex(k, len(h.outputIndices), "output attribute")
	return h.outputIndices[k]
}
