package functions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project-mac/src/data"
	"github.com/project-mac/src/logger"
)

func newStream(values ...float64) []*data.Instance {
	instances := make([]*data.Instance, len(values))
	for j, v := range values {
		instances[j] = data.NewDenseInstance(1, []float64{float64(j), v})
	}
	return instances
}

func TestDelayedLabels(t *testing.T) {
	log := logger.NewLogger(logger.TestConfig())

	t.Run("Should emit a masked copy at once and hold the label", func(t *testing.T) {
		f := NewDelayedLabels(2, log)
		stream := newStream(10, 20, 30)
		f.Input(stream[0])
		require.Equal(t, 1, f.NumPendingOutput())
		out := f.Output()
		assert.True(t, out.ClassIsMasked())
		assert.Equal(t, 10.0, out.MaskedClassValue())
		assert.Equal(t, 1, f.NumWaiting())
		assert.True(t, f.IsOutputEmpty())
		assert.Nil(t, f.Output())

		f.Input(stream[1])
		f.Input(stream[2])
		//masked 1, masked 2, labelled 0
		require.Equal(t, 3, f.NumPendingOutput())
		assert.True(t, f.Output().ClassIsMasked())
		assert.True(t, f.Output().ClassIsMasked())
		labelled := f.Output()
		assert.False(t, labelled.ClassIsMasked())
		assert.Equal(t, 10.0, labelled.ClassValue())
		assert.Equal(t, 0.0, labelled.Value(0))
	})

	t.Run("Should not modify its input", func(t *testing.T) {
		f := NewDelayedLabels(0, log)
		inst := data.NewDenseInstance(1, []float64{1, 2})
		f.Input(inst)
		assert.False(t, inst.ClassIsMasked())
		assert.Equal(t, 2.0, inst.ClassValue())
	})

	t.Run("Should emit masked then labelled with no delay", func(t *testing.T) {
		f := NewDelayedLabels(0, log)
		f.Input(newStream(5)[0])
		require.Equal(t, 2, f.NumPendingOutput())
		assert.True(t, f.Output().ClassIsMasked())
		assert.Equal(t, 5.0, f.Output().ClassValue())
		assert.Equal(t, 1, f.NumReleased())
	})

	t.Run("Should pass instances with a missing class once", func(t *testing.T) {
		f := NewDelayedLabels(1, log)
		f.Input(data.NewDenseInstance(1, []float64{1, math.NaN()}))
		require.Equal(t, 1, f.NumPendingOutput())
		assert.True(t, f.Output().ClassIsMissing())
		assert.Equal(t, 0, f.NumWaiting())
		assert.Equal(t, 0, f.NumMasked())
	})

	t.Run("Should restore an already masked label", func(t *testing.T) {
		f := NewDelayedLabels(0, log)
		inst := data.NewDenseInstance(1, []float64{1, 2})
		inst.SetMaskedClassValue(3)
		f.Input(inst)
		f.Output()
		assert.Equal(t, 3.0, f.Output().ClassValue())
	})

	t.Run("Should flush pending labels at the end of the batch", func(t *testing.T) {
		f := NewDelayedLabels(5, log)
		for _, inst := range newStream(1, 2, 3) {
			f.Input(inst)
		}
		assert.Equal(t, 3, f.NumWaiting())
		f.BatchFinished()
		assert.Equal(t, 0, f.NumWaiting())
		assert.Equal(t, 6, f.NumPendingOutput())
		assert.Equal(t, 3, f.NumMasked())
		assert.Equal(t, 3, f.NumReleased())
	})
}

func TestExec(t *testing.T) {
	t.Run("Should chain filters and keep the stream order", func(t *testing.T) {
		log := logger.NewLogger(logger.TestConfig())
		out := Exec(newStream(1, 2), NewMaskAttributes(0, 1, log), NewDelayedLabels(1, log))
		require.Len(t, out, 4)
		assert.Equal(t, "0.0,?(1.0)", out[0].String())
		assert.Equal(t, "1.0,?(2.0)", out[1].String())
		assert.Equal(t, "0.0,1.0", out[2].String())
		assert.Equal(t, "1.0,2.0", out[3].String())
	})

	t.Run("Should return the input without filters", func(t *testing.T) {
		stream := newStream(1)
		assert.Equal(t, stream, Exec(stream))
	})
}
