package autodiff

// mulOp records output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a += outputGrad * b
//   - d(a*b)/db = a, so grad_b += outputGrad * a
type mulOp struct {
	a, b *Value
}

// Mul returns a new value holding v * other.
func (v *Value) Mul(other *Value) *Value {
	return newValue(v.data*other.data, &mulOp{v, other})
}

func (op *mulOp) operands() []*Value { return []*Value{op.a, op.b} }

func (op *mulOp) name() string { return "mul" }

func (op *mulOp) backward(out *Value) {
	op.a.grad += out.grad * op.b.data
	op.b.grad += out.grad * op.a.data
}
