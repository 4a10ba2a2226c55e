// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// A Value is one scalar node in a computation graph. Combining values with
// the arithmetic methods (Add, Mul, Tanh, ...) eagerly evaluates the forward
// result and records which operation produced it and from which operands.
// The resulting structure is a DAG: an operand always predates the node that
// consumes it, and the same value may feed arbitrarily many downstream nodes.
//
// Calling Backward on the final node of an expression computes the partial
// derivative of that node with respect to every node reachable from it,
// accumulating results into each node's gradient field.
//
// Usage:
//
//	a := autodiff.New(2.0)
//	b := autodiff.New(-3.0)
//	c := a.Mul(b) // c.Data() == -6
//
//	c.Backward()
//	fmt.Println(a.Grad()) // dc/da = b = -3
package autodiff

import "fmt"

// Value is a single scalar in the computation graph.
//
// The forward result (data) is fixed at construction and never changes.
// The gradient starts at zero and is written only by Backward, which
// accumulates into it. Reusing a graph across backward passes therefore
// adds the new gradients on top of the old ones; call ZeroGrad between
// passes when a fresh result is wanted.
type Value struct {
	data  float64
	grad  float64
	op    op     // nil for leaves
	label string // display name only, no effect on computation
}

// New creates a leaf value holding data.
func New(data float64) *Value {
	return &Value{data: data}
}

// newValue creates a value produced by the given operation. Every operation
// constructor funnels through here; forward evaluation already happened in
// the caller.
func newValue(data float64, op op) *Value {
	return &Value{data: data, op: op}
}

// WithLabel sets the display label and returns the value for chaining:
//
//	a := autodiff.New(2.0).WithLabel("a")
func (v *Value) WithLabel(label string) *Value {
	v.label = label
	return v
}

// Data returns the forward-evaluated result.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the accumulated gradient from the most recent backward
// pass(es). For a leaf this is the sensitivity of the backward root to
// this input.
func (v *Value) Grad() float64 {
	return v.grad
}

// Label returns the display label, or the empty string when unset.
func (v *Value) Label() string {
	return v.label
}

// IsLeaf reports whether the value was created directly from a number
// rather than by an operation.
func (v *Value) IsLeaf() bool {
	return v.op == nil
}

// String renders the value as "(label: data: X, gradient: Y)", with a
// placeholder when no label was set.
func (v *Value) String() string {
	label := v.label
	if label == "" {
		label = "<no label>"
	}
	return fmt.Sprintf("(%s: data: %v, gradient: %v)", label, v.data, v.grad)
}
