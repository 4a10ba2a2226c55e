package autodiff

// op records the provenance of a non-leaf value: which operation produced it
// and from which operands.
//
// The set of operations is closed: every variant lives in this package, one
// per file, and the backward pass relies on that set being exhaustive. Each
// variant holds shared references to its operand values: operands do not
// belong to the node that consumes them, and the same operand may appear in
// any number of variants.
type op interface {
	// operands returns the input values of the operation.
	operands() []*Value

	// backward accumulates the local gradient contribution into each
	// operand, given the node the operation produced. out.grad must be
	// final when this is called; backward never assigns, only adds.
	backward(out *Value)

	// name identifies the operation in renderings ("add", "mul", ...).
	name() string
}
