package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//color (nominal), size (numeric), label (nominal class)
func newTestHeader(t *testing.T) *InstancesHeader {
	t.Helper()
	header, err := NewInstancesHeader("test", []*Attribute{
		NewNominalAttribute("color", []string{"red", "green"}),
		NewNumericAttribute("size"),
		NewNominalAttribute("label", []string{"no", "yes"}),
	})
	require.NoError(t, err)
	header, err = header.WithClassIndex(2)
	require.NoError(t, err)
	return header
}

func TestInstancesHeader(t *testing.T) {
	t.Run("Should reject duplicate and nil attributes", func(t *testing.T) {
		_, err := NewInstancesHeader("dup", []*Attribute{NewNumericAttribute("a"), NewNumericAttribute("a")})
		assert.ErrorContains(t, err, "duplicate")
		_, err = NewInstancesHeader("nil", []*Attribute{nil})
		assert.Error(t, err)
	})

	t.Run("Should start with the class unset", func(t *testing.T) {
		header, err := NewInstancesHeader("r", []*Attribute{NewNumericAttribute("a")})
		require.NoError(t, err)
		assert.Equal(t, UnsetClassIndex, header.ClassIndex())
		assert.Equal(t, 0, header.NumClasses())
		assert.Equal(t, 0, header.NumOutputAttributes())
		assert.Equal(t, 1, header.NumInputAttributes())
		_, ok := header.ClassRange()
		assert.False(t, ok)
	})

	t.Run("Should leave the receiver untouched when setting the class", func(t *testing.T) {
		header, err := NewInstancesHeader("r", []*Attribute{NewNumericAttribute("a"), NewNumericAttribute("b")})
		require.NoError(t, err)
		withClass, err := header.WithClassIndex(0)
		require.NoError(t, err)
		assert.Equal(t, UnsetClassIndex, header.ClassIndex())
		assert.Equal(t, 0, withClass.ClassIndex())
		assert.Equal(t, 1, withClass.NumClasses())
		assert.Equal(t, 0, withClass.OutputAttributeIndex(0))
		assert.Equal(t, 1, withClass.InputAttributeIndex(0))
		_, err = header.WithClassIndex(2)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("Should map inputs and outputs around a range", func(t *testing.T) {
		header, err := NewInstancesHeader("r", []*Attribute{
			NewNumericAttribute("a"), NewNumericAttribute("b"), NewNumericAttribute("c"), NewNumericAttribute("d"),
		})
		require.NoError(t, err)
		ranged, err := header.WithOutputRange(Range{Start: 1, End: 2})
		require.NoError(t, err)
		r, ok := ranged.ClassRange()
		require.True(t, ok)
		assert.Equal(t, Range{Start: 1, End: 2}, r)
		assert.Equal(t, 2, ranged.NumInputAttributes())
		assert.Equal(t, 0, ranged.InputAttributeIndex(0))
		assert.Equal(t, 3, ranged.InputAttributeIndex(1))
		assert.Equal(t, 1, ranged.OutputAttributeIndex(0))
		assert.Equal(t, "c", ranged.OutputAttribute(1).Name())
		assert.Equal(t, "d", ranged.InputAttribute(1).Name())
		requirePanicsWith(t, ErrIndexOutOfRange, func() { ranged.OutputAttributeIndex(2) })
		_, err = header.WithOutputRange(Range{Start: 2, End: 4})
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("Should find attributes by name", func(t *testing.T) {
		header := newTestHeader(t)
		assert.Equal(t, "test", header.RelationName())
		assert.Equal(t, 3, header.NumAttributes())
		assert.Equal(t, 1, header.IndexOf(header.Attribute(1)))
		assert.Equal(t, -1, header.IndexOf(NewNumericAttribute("missing")))
		assert.Equal(t, -1, header.IndexOf(nil))
		assert.Len(t, header.Attributes(), 3)
		requirePanicsWith(t, ErrIndexOutOfRange, func() { header.Attribute(3) })
	})
}

func TestAttribute(t *testing.T) {
	t.Run("Should look up nominal labels", func(t *testing.T) {
		att := NewNominalAttribute("color", []string{"red", "green", "red"})
		assert.True(t, att.IsNominal())
		assert.Equal(t, 3, att.NumValues())
		assert.Equal(t, "green", att.Value(1))
		assert.Equal(t, 0, att.IndexOfValue("red"))
		assert.Equal(t, -1, att.IndexOfValue("blue"))
		assert.Equal(t, "nominal", att.TypeName())
		requirePanicsWith(t, ErrIndexOutOfRange, func() { att.Value(3) })
	})

	t.Run("Should report kinds", func(t *testing.T) {
		assert.True(t, NewNumericAttribute("n").IsNumeric())
		assert.True(t, NewDateAttribute("d").IsDate())
		assert.True(t, NewStringAttribute("s").IsString())
		assert.Equal(t, DATE, NewDateAttribute("d").Type())
		assert.Equal(t, 0, NewNumericAttribute("n").NumValues())
		assert.Equal(t, "", NewNumericAttribute("n").Value(4))
	})

	t.Run("Should not expose its label table", func(t *testing.T) {
		labels := []string{"a", "b"}
		att := NewNominalAttribute("x", labels)
		labels[0] = "z"
		vals := att.Values()
		vals[1] = "z"
		assert.Equal(t, []string{"a", "b"}, att.Values())
	})
}
