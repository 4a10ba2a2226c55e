package autodiff

import "k8s.io/klog/v2"

// Backward computes d(v)/d(n) for every node n reachable from v, writing
// the result into each node's gradient field.
//
// The root gradient is seeded to 1 (the derivative of a value with respect
// to itself) and every other write is an accumulation, so a node reached
// through several paths ends up with the sum over all paths of the chain
// rule products, so shared sub-expressions like x.Add(x) come out correct.
//
// Nodes are processed in reverse topological order: a node propagates to
// its operands only after every contribution feeding into it has landed.
// Backward never resets gradients. Running it twice over nodes that were
// not zeroed in between accumulates the passes on top of each other; call
// ZeroGrad first when that is not wanted.
func (v *Value) Backward() {
	order := topoOrder(v)
	if klog.V(2).Enabled() {
		klog.Infof("backward: %d nodes reachable from root %s", len(order), v)
	}

	v.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.op != nil {
			n.op.backward(n)
		}
	}
}

// ZeroGrad resets the gradient of every node reachable from v to zero.
// It is the explicit reset required between independent backward passes
// over overlapping graphs.
func (v *Value) ZeroGrad() {
	for _, n := range topoOrder(v) {
		n.grad = 0
	}
}

// topoOrder returns every node reachable from root, ordered so that each
// operand appears before any node that consumes it (root last). Iterative
// post-order DFS; the visited set is keyed by node identity, so a value
// referenced along many paths is emitted exactly once.
func topoOrder(root *Value) []*Value {
	type frame struct {
		node     *Value
		expanded bool
	}

	var order []*Value
	visited := make(map[*Value]bool)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			order = append(order, f.node)
			continue
		}
		if visited[f.node] {
			continue
		}
		visited[f.node] = true

		stack = append(stack, frame{node: f.node, expanded: true})
		if f.node.op != nil {
			for _, operand := range f.node.op.operands() {
				if !visited[operand] {
					stack = append(stack, frame{node: operand})
				}
			}
		}
	}

	return order
}
