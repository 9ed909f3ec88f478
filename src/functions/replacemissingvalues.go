package functions

import (
	"math"

	"github.com/project-mac/src/data"
	"github.com/project-mac/src/logger"
	"github.com/project-mac/src/utils"
)

// ReplaceMissingValues fills missing values with the weighted mean of the
// attribute, or its mode for nominal attributes. The first batch is
// buffered until BatchFinished computes the statistics; after that every
// input is converted at once.
//
// Only missing cells are filled. Masked cells are not seen as values when
// computing statistics and keep their hidden truth.
type ReplaceMissingValues struct {
	//Fill the class attribute as well
	IgnoreClass   bool
	modesAndMeans []float64
	inputQueue    *instanceQueue
	outputQueue   *instanceQueue
	numReplaced   int
	log           logger.Logger
}

func NewReplaceMissingValues(log logger.Logger) *ReplaceMissingValues {
	if log == nil {
		log = logger.GetDefault()
	}
	return &ReplaceMissingValues{
		inputQueue:  newInstanceQueue(),
		outputQueue: newInstanceQueue(),
		log:         log.With("filter", "replace-missing-values"),
	}
}

func (m *ReplaceMissingValues) Input(instance *data.Instance) {
	if m.modesAndMeans == nil {
		m.inputQueue.push(instance)
		return
	}
	m.ConvertInstance(instance)
}

func (m *ReplaceMissingValues) BatchFinished() {
	if m.modesAndMeans != nil {
		return
	}
	if m.inputQueue.size() == 0 {
		m.log.Debug("empty batch, nothing to compute")
		return
	}
	buffered := make([]*data.Instance, 0, m.inputQueue.size())
	for m.inputQueue.size() > 0 {
		buffered = append(buffered, m.inputQueue.pop())
	}
	m.modesAndMeans = computeModesAndMeans(buffered)
	for _, inst := range buffered {
		m.ConvertInstance(inst)
	}
	m.log.Debug("batch finished", "instances", len(buffered), "replaced", m.numReplaced)
}

// ConvertInstance queues a copy of instance with its missing values
// replaced and returns it.
func (m *ReplaceMissingValues) ConvertInstance(instance *data.Instance) *data.Instance {
	inst := instance.Copy()
	classIndex := inst.ClassIndex()
	for j := 0; j < inst.NumAttributes() && j < len(m.modesAndMeans); j++ {
		if j == classIndex && !m.IgnoreClass {
			continue
		}
		if inst.IsMissing(j) && !math.IsNaN(m.modesAndMeans[j]) {
			inst.SetValue(j, m.modesAndMeans[j])
			m.numReplaced++
		}
	}
	m.outputQueue.push(inst)
	return inst
}

// Statistics over the current view of present values, NaN where an
// attribute has none (or is a string attribute).
func computeModesAndMeans(instances []*data.Instance) []float64 {
	numAttributes := 0
	for _, inst := range instances {
		if inst.NumAttributes() > numAttributes {
			numAttributes = inst.NumAttributes()
		}
	}
	counts := make([][]float64, numAttributes)
	sums := make([]float64, numAttributes)
	results := make([]float64, numAttributes)
	for _, inst := range instances {
		header := inst.Header()
		for j := 0; j < inst.NumAttributes(); j++ {
			if inst.IsMissing(j) || inst.IsMasked(j) {
				continue
			}
			value := inst.Value(j)
			if header != nil && header.Attribute(j).IsString() {
				continue
			}
			if header != nil && header.Attribute(j).IsNominal() {
				att := header.Attribute(j)
				if counts[j] == nil {
					counts[j] = make([]float64, att.NumValues())
				}
				if ordinal := int(value); ordinal >= 0 && ordinal < len(counts[j]) {
					counts[j][ordinal] += inst.Weight()
				}
				continue
			}
			results[j] += inst.Weight() * value
			sums[j] += inst.Weight()
		}
	}
	modesAndMeans := make([]float64, numAttributes)
	for j := range modesAndMeans {
		modesAndMeans[j] = math.NaN()
		if counts[j] != nil {
			if mode := utils.MaxIndex(counts[j]); mode >= 0 && !utils.Eq(counts[j][mode], 0) {
				modesAndMeans[j] = float64(mode)
			}
		} else if utils.Gr(sums[j], 0) {
			modesAndMeans[j] = results[j] / sums[j]
		}
	}
	return modesAndMeans
}

func (m *ReplaceMissingValues) Output() *data.Instance {
	return m.outputQueue.pop()
}

func (m *ReplaceMissingValues) NumPendingOutput() int {
	return m.outputQueue.size()
}

//nil until the first batch is finished
func (m *ReplaceMissingValues) ModesAndMeans() []float64 {
	if m.modesAndMeans == nil {
		return nil
	}
	vals := make([]float64, len(m.modesAndMeans))
	copy(vals, m.modesAndMeans)
	return vals
}

//Missing values filled so far
func (m *ReplaceMissingValues) NumReplaced() int {
	return m.numReplaced
}
