package autodiff

import "math"

// expOp records output = e^x.
//
// Backward pass:
//   - d(e^x)/dx = e^x = output, so grad_x += outputGrad * output
type expOp struct {
	x *Value
}

// Exp returns a new value holding e raised to the power v.
func (v *Value) Exp() *Value {
	return newValue(math.Exp(v.data), &expOp{v})
}

func (op *expOp) operands() []*Value { return []*Value{op.x} }

func (op *expOp) name() string { return "exp" }

func (op *expOp) backward(out *Value) {
	// e^x is already computed in the forward pass.
	op.x.grad += out.grad * out.data
}
