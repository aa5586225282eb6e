// Copyright 2026 The Grad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Callers build arithmetic expressions out of scalar values, evaluate
// them forward as they are constructed, and compute the exact partial
// derivative of the final result with respect to every input with a
// single backward traversal.
//
// Nodes live in a Graph arena and are addressed by handle, so the same
// sub-expression can feed multiple downstream expressions; gradients
// arriving over different paths are summed.
//
// Example:
//
//	import "github.com/scalar-ml/grad/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//
//	    // y = tanh(a*b + c)
//	    a := g.Leaf(2.0)
//	    b := g.Leaf(-3.0)
//	    c := g.Leaf(7.0)
//	    y := g.Tanh(g.Add(g.Mul(a, b), c))
//
//	    // Compute gradients
//	    g.Backward(y)
//	    fmt.Println(y.Data(), a.Grad(), b.Grad(), c.Grad())
//	}
package autodiff

import (
	"github.com/scalar-ml/grad/internal/autodiff"
	"github.com/scalar-ml/grad/internal/autodiff/ops"
)

// Graph is the arena owning every node of one computation graph.
type Graph = autodiff.Graph

// Value is a handle to a node in a Graph.
type Value = autodiff.Value

// ID is a stable handle to a node within its Graph.
type ID = autodiff.ID

// Kind identifies the operation that produced a node.
type Kind = ops.Kind

// Operation kinds, re-exported for callers inspecting nodes.
const (
	Leaf = ops.Leaf
	Neg  = ops.Neg
	Add  = ops.Add
	Sub  = ops.Sub
	Mul  = ops.Mul
	Div  = ops.Div
	Pow  = ops.Pow
	Exp  = ops.Exp
	Tanh = ops.Tanh
	ReLU = ops.ReLU
)

// NewGraph creates an empty computation graph.
//
// Example:
//
//	g := autodiff.NewGraph()
//	x := g.Leaf(3.0)
func NewGraph() *Graph {
	return autodiff.NewGraph()
}
