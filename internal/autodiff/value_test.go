package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asungy/hail-andrej/internal/autodiff"
)

func TestValue_New(t *testing.T) {
	v := autodiff.New(2.5)

	assert.Equal(t, 2.5, v.Data())
	assert.Equal(t, 0.0, v.Grad())
	assert.Empty(t, v.Label())
	assert.True(t, v.IsLeaf())
}

func TestValue_OperationsAllocateNewNodes(t *testing.T) {
	a := autodiff.New(1.0)
	b := autodiff.New(2.0)

	c := a.Add(b)
	d := a.Add(b)

	require.NotSame(t, c, d, "each operation must allocate a fresh node")
	assert.Equal(t, c.Data(), d.Data())
	assert.False(t, c.IsLeaf())

	// Operand data is untouched by construction.
	assert.Equal(t, 1.0, a.Data())
	assert.Equal(t, 2.0, b.Data())
}

func TestValue_String(t *testing.T) {
	a := autodiff.New(2.0).WithLabel("a")
	assert.Equal(t, "(a: data: 2, gradient: 0)", a.String())

	unnamed := autodiff.New(-1.5)
	assert.Equal(t, "(<no label>: data: -1.5, gradient: 0)", unnamed.String())
}

func TestValue_StringAfterBackward(t *testing.T) {
	a := autodiff.New(3.0).WithLabel("a")
	b := a.Mul(a).WithLabel("b")

	b.Backward()

	assert.Equal(t, "(a: data: 3, gradient: 6)", a.String())
	assert.Equal(t, "(b: data: 9, gradient: 1)", b.String())
}

func TestValue_WithLabelReturnsReceiver(t *testing.T) {
	a := autodiff.New(1.0)
	assert.Same(t, a, a.WithLabel("a"))
	assert.Equal(t, "a", a.Label())
}

func TestValue_GradStartsAtZeroForEveryNode(t *testing.T) {
	a := autodiff.New(4.0)
	b := autodiff.New(2.0)
	nodes := []*autodiff.Value{
		a.Add(b), a.Sub(b), a.Mul(b), a.Div(b), a.Pow(b), a.Exp(), a.Tanh(),
	}

	for _, n := range nodes {
		assert.Zero(t, n.Grad())
	}
}
