package data

import (
	"github.com/pkg/errors"
)

const (
	NOMINAL = 0
	NUMERIC = 1
	STRING  = 2
	DATE    = 3
)

// Attribute describes one column of a header. Attributes are built once and
// shared read-only by every instance bound to the header.
type Attribute struct {
	//Attribute's name
	name string
	//Attribute type
	attrType int
	//Labels a nominal attribute can hold, the ordinal is the slice index
	values []string
	//Mapping of values to ordinals
	valuesIndexes map[string]int
}

func NewNumericAttribute(name string) *Attribute {
	return &Attribute{name: name, attrType: NUMERIC}
}

func NewDateAttribute(name string) *Attribute {
	return &Attribute{name: name, attrType: DATE}
}

func NewStringAttribute(name string) *Attribute {
	return &Attribute{name: name, attrType: STRING}
}

//Labels are copied, a repeated label keeps its first ordinal
func NewNominalAttribute(name string, labels []string) *Attribute {
	a := &Attribute{
		name:          name,
		attrType:      NOMINAL,
		values:        make([]string, len(labels)),
		valuesIndexes: make(map[string]int, len(labels)),
	}
	copy(a.values, labels)
	for i, label := range labels {
		if _, present := a.valuesIndexes[label]; !present {
			a.valuesIndexes[label] = i
		}
	}
	return a
}

func (a *Attribute) Name() string {
	return a.name
}

func (a *Attribute) Type() int {
	return a.attrType
}

func (a *Attribute) IsNominal() bool {
	return a.attrType == NOMINAL
}

func (a *Attribute) IsNumeric() bool {
	return a.attrType == NUMERIC
}

func (a *Attribute) IsString() bool {
	return a.attrType == STRING
}

func (a *Attribute) IsDate() bool {
	return a.attrType == DATE
}

//Zero for anything but nominal attributes
func (a *Attribute) NumValues() int {
	if !a.IsNominal() {
		return 0
	}
	return len(a.values)
}

// Value returns the label of a nominal ordinal. Non nominal attributes have
// no labels and return "".
func (a *Attribute) Value(valIndex int) string {
	if !a.IsNominal() {
		return ""
	}
	if valIndex < 0 || valIndex >= len(a.values) {
		panic(errors.Wrapf(ErrIndexOutOfRange, "label %d of attribute %s", valIndex, a.name))
	}
	return a.values[valIndex]
}

//-1 when the label is unknown
func (a *Attribute) IndexOfValue(label string) int {
	if idx, present := a.valuesIndexes[label]; present {
		return idx
	}
	return -1
}

func (a *Attribute) Values() []string {
	vals := make([]string, len(a.values))
	copy(vals, a.values)
	return vals
}

func (a *Attribute) TypeName() string {
	switch a.attrType {
	case NOMINAL:
		return "nominal"
	case NUMERIC:
		return "numeric"
	case STRING:
		return "string"
	case DATE:
		return "date"
	default:
		return "unknown"
	}
}
