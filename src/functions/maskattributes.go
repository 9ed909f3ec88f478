package functions

import (
	"math/rand"

	"github.com/project-mac/src/data"
	"github.com/project-mac/src/logger"
)

// MaskAttributes hides present, non class attributes with the given
// probability. The truth stays in the original view of the emitted copy.
type MaskAttributes struct {
	Probability float64
	outputQueue *instanceQueue
	random      *rand.Rand
	numMasked   int
	log         logger.Logger
}

func NewMaskAttributes(probability float64, seed int64, log logger.Logger) *MaskAttributes {
	if log == nil {
		log = logger.GetDefault()
	}
	return &MaskAttributes{
		Probability: probability,
		outputQueue: newInstanceQueue(),
		random:      rand.New(rand.NewSource(seed)),
		log:         log.With("filter", "mask-attributes"),
	}
}

func (m *MaskAttributes) Input(instance *data.Instance) {
	inst := instance.Copy()
	classIndex := inst.ClassIndex()
	for j := 0; j < inst.NumAttributes(); j++ {
		if j == classIndex || inst.IsMissing(j) || inst.IsMasked(j) {
			continue
		}
		if m.random.Float64() < m.Probability {
			inst.SetMasked(j)
			m.numMasked++
		}
	}
	m.outputQueue.push(inst)
}

func (m *MaskAttributes) BatchFinished() {
	m.log.Debug("batch finished", "masked", m.numMasked)
}

func (m *MaskAttributes) Output() *data.Instance {
	return m.outputQueue.pop()
}

func (m *MaskAttributes) NumPendingOutput() int {
	return m.outputQueue.size()
}

//Attribute values masked so far
func (m *MaskAttributes) NumMasked() int {
	return m.numMasked
}
