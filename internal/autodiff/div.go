package autodiff

// divOp records output = num / den.
//
// Backward pass:
//   - d(num/den)/dnum = 1/den, so grad_num += outputGrad / den
//   - d(num/den)/dden = -num/den², so grad_den += outputGrad * (-num/den²)
type divOp struct {
	num, den *Value
}

// Div returns a new value holding v / other.
//
// Division by zero is not guarded: the result is ±Inf or NaN per IEEE 754,
// and those values flow through any later backward pass the same way.
func (v *Value) Div(other *Value) *Value {
	return newValue(v.data/other.data, &divOp{v, other})
}

func (op *divOp) operands() []*Value { return []*Value{op.num, op.den} }

func (op *divOp) name() string { return "div" }

func (op *divOp) backward(out *Value) {
	op.num.grad += out.grad / op.den.data
	op.den.grad += out.grad * (-op.num.data / (op.den.data * op.den.data))
}
