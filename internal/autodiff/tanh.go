package autodiff

import "math"

// tanhOp records output = tanh(x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x), so grad_x += outputGrad * (1 - output²)
type tanhOp struct {
	x *Value
}

// Tanh returns a new value holding the hyperbolic tangent of v.
func (v *Value) Tanh() *Value {
	return newValue(math.Tanh(v.data), &tanhOp{v})
}

func (op *tanhOp) operands() []*Value { return []*Value{op.x} }

func (op *tanhOp) name() string { return "tanh" }

func (op *tanhOp) backward(out *Value) {
	// tanh(x) is already computed in the forward pass.
	op.x.grad += out.grad * (1 - out.data*out.data)
}
