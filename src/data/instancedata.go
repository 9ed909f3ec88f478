package data

//Storage variants of an instance's values
type DataKind int

const (
	Dense DataKind = iota
	Sparse
)

func (k DataKind) String() string {
	switch k {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// InstanceData stores the values of one instance. Logical indices are
// attribute indices; positions address only the stored entries, which for a
// dense store are the same thing.
//
// Invalid indices and positions panic with an error wrapping
// ErrIndexOutOfRange.
type InstanceData interface {
	Kind() DataKind
	NumAttributes() int
	//Number of stored entries
	NumValues() int
	Value(idx int) float64
	SetValue(idx int, value float64)
	IsMissing(idx int) bool
	//Attribute index of the entry stored at position pos
	Index(pos int) int
	ValueSparse(pos int) float64
	IsMissingSparse(pos int) bool
	InsertAttributeAt(idx int)
	DeleteAttributeAt(idx int)
	ToDoubleArray() []float64
	Copy() InstanceData
}
