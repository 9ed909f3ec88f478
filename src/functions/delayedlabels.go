package functions

import (
	"github.com/project-mac/src/data"
	"github.com/project-mac/src/logger"
)

// DelayedLabels simulates labels that arrive late. Every input is emitted
// at once with its class masked, and again, labelled, once Delay more
// instances have gone through. Instances whose class is missing have no
// label to give back and are emitted once, unchanged.
type DelayedLabels struct {
	Delay       int
	outputQueue *instanceQueue
	//Labelled copies waiting for release
	pending     *instanceQueue
	numMasked   int
	numReleased int
	log         logger.Logger
}

func NewDelayedLabels(delay int, log logger.Logger) *DelayedLabels {
	if log == nil {
		log = logger.GetDefault()
	}
	return &DelayedLabels{
		Delay:       delay,
		outputQueue: newInstanceQueue(),
		pending:     newInstanceQueue(),
		log:         log.With("filter", "delayed-labels"),
	}
}

func (m *DelayedLabels) Input(instance *data.Instance) {
	if instance.ClassIsMissing() {
		m.outputQueue.push(instance.Copy())
		return
	}
	masked := instance.Copy()
	masked.SetMasked(masked.ClassIndex())
	m.outputQueue.push(masked)
	m.numMasked++

	labelled := instance.Copy()
	if labelled.ClassIsMasked() {
		labelled.SetClassValue(labelled.MaskedClassValue())
	}
	m.pending.push(labelled)
	for m.pending.size() > m.Delay {
		m.release()
	}
}

func (m *DelayedLabels) release() {
	m.outputQueue.push(m.pending.pop())
	m.numReleased++
}

//Releases every label still held back
func (m *DelayedLabels) BatchFinished() {
	m.log.Debug("flushing pending labels", "pending", m.pending.size())
	for m.pending.size() > 0 {
		m.release()
	}
}

func (m *DelayedLabels) Output() *data.Instance {
	return m.outputQueue.pop()
}

func (m *DelayedLabels) NumPendingOutput() int {
	return m.outputQueue.size()
}

func (m *DelayedLabels) IsOutputEmpty() bool {
	return m.outputQueue.size() == 0
}

//Labels held back and not released yet
func (m *DelayedLabels) NumWaiting() int {
	return m.pending.size()
}

func (m *DelayedLabels) NumMasked() int {
	return m.numMasked
}

func (m *DelayedLabels) NumReleased() int {
	return m.numReleased
}
