package autodiff

import "math"

// powOp records output = base ^ exponent (real-valued power).
//
// Backward pass:
//   - d(x^y)/dx = y * x^(y-1), so grad_base += outputGrad * y * x^(y-1)
//   - d(x^y)/dy = x^y * ln(x), so grad_exp += outputGrad * output * ln(x)
type powOp struct {
	base, exp *Value
}

// Pow returns a new value holding v raised to the power other.
//
// A non-positive base combined with a fractional exponent yields NaN per
// math.Pow, and the ln(base) term of the exponent derivative is NaN for
// base <= 0. Neither case is guarded; both propagate as ordinary
// floating-point values.
func (v *Value) Pow(other *Value) *Value {
	return newValue(math.Pow(v.data, other.data), &powOp{v, other})
}

func (op *powOp) operands() []*Value { return []*Value{op.base, op.exp} }

func (op *powOp) name() string { return "pow" }

func (op *powOp) backward(out *Value) {
	op.base.grad += out.grad * op.exp.data * math.Pow(op.base.data, op.exp.data-1)
	// out.data is base^exp, already computed in the forward pass.
	op.exp.grad += out.grad * out.data * math.Log(op.base.data)
}
