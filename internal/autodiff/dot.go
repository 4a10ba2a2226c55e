package autodiff

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// WriteDOT writes the computation graph reachable from root to w in
// Graphviz DOT format.
//
// Each value becomes a record node showing its label (when set), forward
// data, and current gradient. Each operation becomes a small ellipse
// between its operands and its result, so shared sub-expressions are
// visible as nodes with multiple outgoing edges.
//
// The output is a one-way debugging aid: it is meant for `dot -Tsvg`, not
// for reconstructing the graph.
func WriteDOT(w io.Writer, root *Value) error {
	if root == nil {
		return errors.New("dot: nil root")
	}

	order := topoOrder(root)
	ids := make(map[*Value]int, len(order))
	for i, n := range order {
		ids[n] = i
	}

	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return errors.Wrap(err, "dot: write header")
	}
	if _, err := fmt.Fprintln(w, "\trankdir=LR;"); err != nil {
		return errors.Wrap(err, "dot: write header")
	}

	for _, n := range order {
		id := ids[n]
		caption := ""
		if n.label != "" {
			caption = n.label + " | "
		}
		_, err := fmt.Fprintf(w, "\tv%d [shape=record, label=\"{ %sdata %.4f | grad %.4f }\"];\n",
			id, caption, n.data, n.grad)
		if err != nil {
			return errors.Wrapf(err, "dot: write node v%d", id)
		}

		if n.op == nil {
			continue
		}
		// Operation node sits between the operands and their result.
		if _, err := fmt.Fprintf(w, "\tv%dop [label=%q];\n", id, n.op.name()); err != nil {
			return errors.Wrapf(err, "dot: write op node for v%d", id)
		}
		if _, err := fmt.Fprintf(w, "\tv%dop -> v%d;\n", id, id); err != nil {
			return errors.Wrapf(err, "dot: write op edge for v%d", id)
		}
		for _, operand := range n.op.operands() {
			if _, err := fmt.Fprintf(w, "\tv%d -> v%dop;\n", ids[operand], id); err != nil {
				return errors.Wrapf(err, "dot: write operand edge for v%d", id)
			}
		}
	}

	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return errors.Wrap(err, "dot: write footer")
	}
	return nil
}
