// Copyright 2025 The hail-andrej Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Expressions are built eagerly from leaf values; every operation returns
// a new node that remembers its operands. A single Backward call on the
// final node computes the gradient of that node with respect to every
// node in the expression, including nodes reached through multiple paths.
//
// Example:
//
//	import "github.com/asungy/hail-andrej/autodiff"
//
//	func main() {
//	    a := autodiff.New(2.0).WithLabel("a")
//	    b := autodiff.New(-3.0).WithLabel("b")
//	    c := a.Mul(b).Add(a) // c = a*b + a
//
//	    c.Backward()
//
//	    fmt.Println(a.Grad()) // dc/da = b + 1 = -2
//	    fmt.Println(b.Grad()) // dc/db = a = 2
//	}
//
// Gradients accumulate: a second Backward over nodes that were not reset
// adds onto the first pass. Use ZeroGrad on the root for a clean slate.
//
// The engine is single-threaded. Running backward passes over a shared
// graph from multiple goroutines races on the gradient fields and needs
// external synchronization.
package autodiff

import (
	"io"

	"github.com/asungy/hail-andrej/internal/autodiff"
)

// Value is a single scalar node in a computation graph.
//
// Combine values with Add, Sub, Mul, Div, Pow, Exp, and Tanh; inspect
// them with Data, Grad, Label, and String; differentiate with Backward.
type Value = autodiff.Value

// New creates a leaf value holding data.
func New(data float64) *Value {
	return autodiff.New(data)
}

// WriteDOT writes the computation graph reachable from root to w in
// Graphviz DOT format, for rendering with `dot -Tsvg`.
func WriteDOT(w io.Writer, root *Value) error {
	return autodiff.WriteDOT(w, root)
}
