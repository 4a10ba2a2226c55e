package autodiff

// addOp records output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a += outputGrad
//   - d(a+b)/db = 1, so grad_b += outputGrad
type addOp struct {
	a, b *Value
}

// Add returns a new value holding v + other.
func (v *Value) Add(other *Value) *Value {
	return newValue(v.data+other.data, &addOp{v, other})
}

func (op *addOp) operands() []*Value { return []*Value{op.a, op.b} }

func (op *addOp) name() string { return "add" }

func (op *addOp) backward(out *Value) {
	op.a.grad += out.grad
	op.b.grad += out.grad
}
