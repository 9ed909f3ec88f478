package data

import (
	"math"
)

//Full length storage, position i holds attribute i
type DenseInstanceData struct {
	attributeValues []float64
}

//The slice is copied, the store never aliases caller memory
func NewDenseInstanceData(values []float64) *DenseInstanceData {
	vals := make([]float64, len(values))
	copy(vals, values)
	return &DenseInstanceData{attributeValues: vals}
}

func (d *DenseInstanceData) Kind() DataKind {
	return Dense
}

func (d *DenseInstanceData) NumAttributes() int {
	return len(d.attributeValues)
}

func (d *DenseInstanceData) NumValues() int {
	return len(d.attributeValues)
}

func (d *DenseInstanceData) Value(idx int) float64 {
	checkIndex(idx, len(d.attributeValues), "attribute")
	return d.attributeValues[idx]
}

func (d *DenseInstanceData) SetValue(idx int, value float64) {
	checkIndex(idx, len(d.attributeValues), "attribute")
	d.attributeValues[idx] = value
}

func (d *DenseInstanceData) IsMissing(idx int) bool {
	return math.IsNaN(d.Value(idx))
}

func (d *DenseInstanceData) Index(pos int) int {
	checkIndex(pos, len(d.attributeValues), "position")
	return pos
}

func (d *DenseInstanceData) ValueSparse(pos int) float64 {
	checkIndex(pos, len(d.attributeValues), "position")
	return d.attributeValues[pos]
}

func (d *DenseInstanceData) IsMissingSparse(pos int) bool {
	return math.IsNaN(d.ValueSparse(pos))
}

//Opens a missing slot at idx, idx may equal NumAttributes to append
func (d *DenseInstanceData) InsertAttributeAt(idx int) {
	checkIndex(idx, len(d.attributeValues)+1, "attribute")
	newValues := make([]float64, len(d.attributeValues)+1)
	copy(newValues, d.attributeValues[:idx])
	newValues[idx] = math.NaN()
	copy(newValues[idx+1:], d.attributeValues[idx:])
	d.attributeValues = newValues
}

func (d *DenseInstanceData) DeleteAttributeAt(idx int) {
	checkIndex(idx, len(d.attributeValues), "attribute")
	newValues := make([]float64, len(d.attributeValues)-1)
	copy(newValues, d.attributeValues[:idx])
	copy(newValues[idx:], d.attributeValues[idx+1:])
	d.attributeValues = newValues
}

func (d *DenseInstanceData) ToDoubleArray() []float64 {
	newValues := make([]float64, len(d.attributeValues))
	copy(newValues, d.attributeValues)
	return newValues
}

func (d *DenseInstanceData) Copy() InstanceData {
	return NewDenseInstanceData(d.attributeValues)
}
