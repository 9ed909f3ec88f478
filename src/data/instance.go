package data

import (
	"math"

	"github.com/pkg/errors"
)

// Instance is one weighted observation of a stream. It keeps two stores of
// the same shape: the current values, which is what algorithms read, and
// the original values, which keep the ground truth of masked attributes.
//
// Each attribute is in exactly one of three states:
//   - present: the current value is a number
//   - missing: NaN in both stores
//   - masked: NaN in the current store, a number in the original one
//
// An Instance is not safe for concurrent use. Copy it before handing it to
// more than one goroutine; the header may be shared freely.
type Instance struct {
	weight float64
	//What the algorithms see
	instanceData InstanceData
	//The original, unmasked data
	instanceOriginal InstanceData
	//Not owned, never modified
	header Header
}

func NewDenseInstance(weight float64, values []float64) *Instance {
	return &Instance{
		weight:           weight,
		instanceData:     NewDenseInstanceData(values),
		instanceOriginal: NewDenseInstanceData(values),
	}
}

func NewSparseInstance(weight float64, values []float64, indices []int, numAttributes int) *Instance {
	return &Instance{
		weight:           weight,
		instanceData:     NewSparseInstanceData(values, indices, numAttributes),
		instanceOriginal: NewSparseInstanceData(values, indices, numAttributes),
	}
}

//The instance takes ownership of data, the original view is a copy of it
func NewInstanceFromData(weight float64, data InstanceData) *Instance {
	return &Instance{
		weight:           weight,
		instanceData:     data,
		instanceOriginal: data.Copy(),
	}
}

//Dense instance of numAttributes zeros with weight 1
func NewInstanceWithNumAttributes(numAttributes int) *Instance {
	return &Instance{
		weight:           1,
		instanceData:     NewDenseInstanceData(make([]float64, numAttributes)),
		instanceOriginal: NewDenseInstanceData(make([]float64, numAttributes)),
	}
}

// Copy returns an instance with independent copies of both stores, bound
// to the same header.
func (i *Instance) Copy() *Instance {
	return &Instance{
		weight:           i.weight,
		instanceData:     i.instanceData.Copy(),
		instanceOriginal: i.instanceOriginal.Copy(),
		header:           i.header,
	}
}

func (i *Instance) Weight() float64 {
	return i.weight
}

func (i *Instance) SetWeight(weight float64) {
	i.weight = weight
}

func (i *Instance) Header() Header {
	return i.header
}

func (i *Instance) SetHeader(header Header) {
	i.header = header
}

func (i *Instance) Kind() DataKind {
	return i.instanceData.Kind()
}

func (i *Instance) requireHeader() Header {
	if i.header == nil {
		panic(ErrNoHeader)
	}
	return i.header
}

func (i *Instance) Attribute(idx int) *Attribute {
	return i.requireHeader().Attribute(idx)
}

func (i *Instance) IndexOfAttribute(att *Attribute) int {
	return i.requireHeader().IndexOf(att)
}

func (i *Instance) NumAttributes() int {
	return i.instanceData.NumAttributes()
}

func (i *Instance) NumValues() int {
	return i.instanceData.NumValues()
}

func (i *Instance) Index(pos int) int {
	return i.instanceData.Index(pos)
}

func (i *Instance) ValueSparse(pos int) float64 {
	return i.instanceData.ValueSparse(pos)
}

func (i *Instance) IsMissingSparse(pos int) bool {
	return i.instanceData.IsMissingSparse(pos)
}

func (i *Instance) InsertAttributeAt(idx int) {
	i.instanceData.InsertAttributeAt(idx)
	i.instanceOriginal.InsertAttributeAt(idx)
}

func (i *Instance) DeleteAttributeAt(idx int) {
	i.instanceData.DeleteAttributeAt(idx)
	i.instanceOriginal.DeleteAttributeAt(idx)
}

//Current value, NaN when missing or masked
func (i *Instance) Value(idx int) float64 {
	return i.instanceData.Value(idx)
}

func (i *Instance) ValueOf(att *Attribute) float64 {
	return i.Value(i.IndexOfAttribute(att))
}

//Raw string values are not kept by this representation
func (i *Instance) StringValue(idx int) (string, error) {
	return "", errors.Wrapf(ErrUnsupported, "string value of attribute %d", idx)
}

func (i *Instance) ToDoubleArray() []float64 {
	return i.instanceData.ToDoubleArray()
}

//Writes both views
func (i *Instance) SetValue(idx int, value float64) {
	i.instanceData.SetValue(idx, value)
	i.instanceOriginal.SetValue(idx, value)
}

func (i *Instance) SetValueOf(att *Attribute, value float64) {
	i.SetValue(i.IndexOfAttribute(att), value)
}

//Hides value from the current view and keeps it as the truth
func (i *Instance) SetMaskedValue(idx int, value float64) {
	i.instanceData.SetValue(idx, math.NaN())
	i.instanceOriginal.SetValue(idx, value)
}

// MaskedValue returns the ground truth of an attribute whatever its state.
func (i *Instance) MaskedValue(idx int) float64 {
	return i.instanceOriginal.Value(idx)
}

//Masks the attribute in place, the truth is what was there
func (i *Instance) SetMasked(idx int) {
	i.instanceData.SetValue(idx, math.NaN())
}

func (i *Instance) IsMasked(idx int) bool {
	return math.IsNaN(i.instanceData.Value(idx)) && !math.IsNaN(i.instanceOriginal.Value(idx))
}

// SetMissing clears the attribute in both views. A masked truth is lost.
func (i *Instance) SetMissing(idx int) {
	i.instanceData.SetValue(idx, math.NaN())
	i.instanceOriginal.SetValue(idx, math.NaN())
}

func (i *Instance) SetMissingOf(att *Attribute) {
	i.SetMissing(i.IndexOfAttribute(att))
}

func (i *Instance) IsMissing(idx int) bool {
	return i.instanceData.IsMissing(idx) && i.instanceOriginal.IsMissing(idx)
}

func (i *Instance) IsMissingOf(att *Attribute) bool {
	return i.IsMissing(i.IndexOfAttribute(att))
}

// ClassIndex is the last attribute when there is no header. Otherwise it is
// the header's class, or when that is unset the start of the header's class
// range, or 0.
func (i *Instance) ClassIndex() int {
	if i.header == nil {
		return i.instanceData.NumAttributes() - 1
	}
	classIndex := i.header.ClassIndex()
	if classIndex == UnsetClassIndex {
		if r, ok := i.header.ClassRange(); ok {
			classIndex = r.Start
		} else {
			classIndex = 0
		}
	}
	return classIndex
}

func (i *Instance) ClassAttribute() *Attribute {
	return i.Attribute(i.ClassIndex())
}

func (i *Instance) NumClasses() int {
	return i.requireHeader().NumClasses()
}

func (i *Instance) ClassValue() float64 {
	return i.instanceData.Value(i.ClassIndex())
}

//True label, even while it is masked
func (i *Instance) MaskedClassValue() float64 {
	return i.instanceOriginal.Value(i.ClassIndex())
}

func (i *Instance) ClassIsMissing() bool {
	return i.IsMissing(i.ClassIndex())
}

func (i *Instance) ClassIsMasked() bool {
	return i.IsMasked(i.ClassIndex())
}

func (i *Instance) SetClassValue(value float64) {
	i.SetValue(i.ClassIndex(), value)
}

func (i *Instance) SetMaskedClassValue(value float64) {
	i.SetMaskedValue(i.ClassIndex(), value)
}

func (i *Instance) NumInputAttributes() int {
	return i.requireHeader().NumInputAttributes()
}

func (i *Instance) NumOutputAttributes() int {
	return i.NumberOutputTargets()
}

func (i *Instance) NumberOutputTargets() int {
	return i.requireHeader().NumOutputAttributes()
}

func (i *Instance) InputAttribute(k int) *Attribute {
	return i.requireHeader().InputAttribute(k)
}

func (i *Instance) OutputAttribute(k int) *Attribute {
	return i.requireHeader().OutputAttribute(k)
}

//Current value of the k-th input attribute
func (i *Instance) ValueInputAttribute(k int) float64 {
	return i.instanceData.Value(i.requireHeader().InputAttributeIndex(k))
}

//Current value of the k-th output target
func (i *Instance) ValueOutputAttribute(k int) float64 {
	return i.instanceData.Value(i.requireHeader().OutputAttributeIndex(k))
}

func (i *Instance) ClassValueAt(k int) float64 {
	return i.ValueOutputAttribute(k)
}

// SetOutputValueCurrent writes the k-th output target into the current view
// only. The original view keeps its value, so a masked target stays
// recoverable through MaskedValue; use SetValue to write both views.
func (i *Instance) SetOutputValueCurrent(k int, value float64) {
	i.instanceData.SetValue(i.requireHeader().OutputAttributeIndex(k), value)
}

// AddSparseValues replaces both views with sparse stores built from the
// given entries. The two views get distinct stores.
func (i *Instance) AddSparseValues(indices []int, values []float64, numAttributes int) {
	i.instanceData = NewSparseInstanceData(values, indices, numAttributes)
	i.instanceOriginal = NewSparseInstanceData(values, indices, numAttributes)
}
