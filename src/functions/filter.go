package functions

import (
	"github.com/cosn/collections/queue"
	"github.com/project-mac/src/data"
)

// Filter is a stream stage: instances go in through Input and come out, in
// order, through Output. Filters own the instances they emit, inputs are
// never modified.
type Filter interface {
	Input(instance *data.Instance)
	//Signals the end of the stream, buffered instances become available
	BatchFinished()
	//nil when nothing is ready
	Output() *data.Instance
	NumPendingOutput() int
}

//FIFO of instances with a size counter
type instanceQueue struct {
	q   queue.Q
	len int
}

func newInstanceQueue() *instanceQueue {
	var iq instanceQueue
	iq.q.Init()
	return &iq
}

func (iq *instanceQueue) push(instance *data.Instance) {
	iq.q.Push(instance)
	iq.len++
}

func (iq *instanceQueue) pop() *data.Instance {
	if iq.q.IsEmpty() {
		return nil
	}
	iq.len--
	if result, ok := iq.q.Pop().(*data.Instance); ok {
		return result
	}
	return nil
}

func (iq *instanceQueue) size() int {
	return iq.len
}

// Exec runs the instances through the filters in order and returns
// everything the last filter emitted.
func Exec(instances []*data.Instance, filters ...Filter) []*data.Instance {
	current := instances
	for _, f := range filters {
		next := make([]*data.Instance, 0, len(current))
		for _, instance := range current {
			f.Input(instance)
			next = drain(f, next)
		}
		f.BatchFinished()
		current = drain(f, next)
	}
	return current
}

func drain(f Filter, out []*data.Instance) []*data.Instance {
	for f.NumPendingOutput() > 0 {
		out = append(out, f.Output())
	}
	return out
}
