package autodiff

// subOp records output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a += outputGrad
//   - d(a-b)/db = -1, so grad_b += -outputGrad
type subOp struct {
	a, b *Value
}

// Sub returns a new value holding v - other.
func (v *Value) Sub(other *Value) *Value {
	return newValue(v.data-other.data, &subOp{v, other})
}

func (op *subOp) operands() []*Value { return []*Value{op.a, op.b} }

func (op *subOp) name() string { return "sub" }

func (op *subOp) backward(out *Value) {
	op.a.grad += out.grad
	op.b.grad -= out.grad
}
