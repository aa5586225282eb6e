// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Expressions are built as a directed acyclic graph of scalar nodes owned
// by a single Graph arena. Every reference to a node is a stable integer
// handle into the arena, so a node can be an operand of any number of
// parents and all gradient mutation goes through the arena.
//
// Architecture:
//   - Graph: arena owning every node of one computation graph
//   - Value: handle to a node (graph pointer + ID)
//   - ops.Operation: per-node local derivative rule, holding the op tag
//     plus any scalar values the rule captured at construction
//   - Backward: reverse topological walk propagating gradients
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.Leaf(2.0)
//	y := g.Mul(x, x) // y = x²
//
//	g.Backward(y)
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4.0
package autodiff

import (
	"fmt"
	"math"

	"github.com/scalar-ml/grad/internal/autodiff/ops"
)

// ID is a stable handle to a node within its Graph's arena.
type ID int

// node is one scalar in the computation graph. value, op and operands
// are fixed at creation; only grad is mutated afterwards, and only by
// the backward pass (or ZeroGrad).
type node struct {
	value    float64
	grad     float64
	op       ops.Operation
	operands []ID // creation order preserved; empty for leaves
}

// Graph is the arena owning every node of one computation graph.
// Constructors only ever append a node pointing at pre-existing nodes,
// so the graph is acyclic by construction.
type Graph struct {
	nodes []node
}

// NewGraph creates an empty computation graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Value is a handle to a node in a Graph. The zero Value is invalid;
// handles are obtained from Graph constructors.
type Value struct {
	g  *Graph
	id ID
}

// NumNodes returns the number of nodes in the arena.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// newNode appends a node to the arena and returns its handle.
func (g *Graph) newNode(value float64, op ops.Operation, operands ...ID) Value {
	g.nodes = append(g.nodes, node{
		value:    value,
		op:       op,
		operands: operands,
	})
	return Value{g: g, id: ID(len(g.nodes) - 1)}
}

// mustOwn panics if v is not a handle into this graph. Mixing handles
// across graphs (or using a zero Value) is a programming-contract
// violation, not a recoverable error.
func (g *Graph) mustOwn(v Value) {
	if v.g != g {
		panic("autodiff: value does not belong to this graph")
	}
}

// Leaf creates an input scalar with no operands.
func (g *Graph) Leaf(x float64) Value {
	return g.newNode(x, ops.NewLeafOp())
}

// Neg creates a node computing -a.
func (g *Graph) Neg(a Value) Value {
	g.mustOwn(a)
	return g.newNode(-g.nodes[a.id].value, ops.NewNegOp(), a.id)
}

// Add creates a node computing a + b.
func (g *Graph) Add(a, b Value) Value {
	g.mustOwn(a)
	g.mustOwn(b)
	return g.newNode(g.nodes[a.id].value+g.nodes[b.id].value, ops.NewAddOp(), a.id, b.id)
}

// Sub creates a node computing a - b. Operand order is preserved: a is
// the minuend, b the subtrahend.
func (g *Graph) Sub(a, b Value) Value {
	g.mustOwn(a)
	g.mustOwn(b)
	return g.newNode(g.nodes[a.id].value-g.nodes[b.id].value, ops.NewSubOp(), a.id, b.id)
}

// Mul creates a node computing a * b. Both operand values are captured
// into the node's rule for the backward pass.
func (g *Graph) Mul(a, b Value) Value {
	g.mustOwn(a)
	g.mustOwn(b)
	av, bv := g.nodes[a.id].value, g.nodes[b.id].value
	return g.newNode(av*bv, ops.NewMulOp(av, bv), a.id, b.id)
}

// Div creates a node computing a / b.
func (g *Graph) Div(a, b Value) Value {
	g.mustOwn(a)
	g.mustOwn(b)
	av, bv := g.nodes[a.id].value, g.nodes[b.id].value
	return g.newNode(av/bv, ops.NewDivOp(av, bv), a.id, b.id)
}

// Pow creates a node computing a raised to the constant exponent c.
func (g *Graph) Pow(a Value, c float64) Value {
	g.mustOwn(a)
	av := g.nodes[a.id].value
	return g.newNode(math.Pow(av, c), ops.NewPowOp(av, c), a.id)
}

// Exp creates a node computing e^a.
func (g *Graph) Exp(a Value) Value {
	g.mustOwn(a)
	y := math.Exp(g.nodes[a.id].value)
	return g.newNode(y, ops.NewExpOp(y), a.id)
}

// Tanh creates a node computing the hyperbolic tangent of a, using the
// closed form (e^{2x} - 1) / (e^{2x} + 1).
func (g *Graph) Tanh(a Value) Value {
	g.mustOwn(a)
	e2x := math.Exp(2 * g.nodes[a.id].value)
	t := (e2x - 1) / (e2x + 1)
	return g.newNode(t, ops.NewTanhOp(t), a.id)
}

// ReLU creates a node computing max(0, a).
func (g *Graph) ReLU(a Value) Value {
	g.mustOwn(a)
	av := g.nodes[a.id].value
	y := av
	if y < 0 {
		y = 0
	}
	return g.newNode(y, ops.NewReLUOp(av), a.id)
}

// Data returns the node's forward-computed value.
func (v Value) Data() float64 {
	return v.g.nodes[v.id].value
}

// Grad returns the node's accumulated gradient. It is 0 until Backward
// has run over a graph containing this node.
func (v Value) Grad() float64 {
	return v.g.nodes[v.id].grad
}

// Kind reports which operation produced the node.
func (v Value) Kind() ops.Kind {
	return v.g.nodes[v.id].op.Kind()
}

// ID returns the node's handle within its graph.
func (v Value) ID() ID {
	return v.id
}

// String renders the node's current state for logging. It carries no
// semantic contract beyond reflecting the fields.
func (v Value) String() string {
	n := &v.g.nodes[v.id]
	return fmt.Sprintf("Value(op=%s, data=%v, grad=%v)", n.op.Kind(), n.value, n.grad)
}
