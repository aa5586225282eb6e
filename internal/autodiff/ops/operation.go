// Package ops defines the per-operation local derivative rules for
// automatic differentiation.
//
// Each operation implements the Operation interface, which provides the
// backward pass: given the gradient of the final output with respect to
// the operation's result, it returns the gradient contribution for each
// operand (chain rule, one step).
//
// Operations capture the scalar values their rule needs at construction
// time (for example MulOp captures both operand values). Node values are
// immutable after creation, so the captured copies never go stale. The
// graph arena resolves operands by handle at propagation time; no rule
// holds a reference to another node.
//
// Supported operations:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - SubOp: subtraction (d(a-b)/da = 1, d(a-b)/db = -1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - DivOp: division (d(a/b)/da = 1/b, d(a/b)/db = -a/b²)
//   - NegOp: negation (d(-a)/da = -1)
//   - PowOp: power with constant exponent (d(a^c)/da = c*a^(c-1))
//   - ExpOp: exponential (d(exp(a))/da = exp(a))
//   - TanhOp: hyperbolic tangent (d(tanh(a))/da = 1 - tanh²(a))
//   - ReLUOp: rectified linear unit (d(ReLU(a))/da = 1 if a > 0, else 0)
//   - LeafOp: input scalar, no operands and no rule
package ops

// Kind identifies the operation that produced a node.
type Kind uint8

// Operation kinds.
const (
	Leaf Kind = iota
	Neg
	Add
	Sub
	Mul
	Div
	Pow
	Exp
	Tanh
	ReLU
)

// String returns the display symbol for the operation kind.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Neg:
		return "neg"
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "pow"
	case Exp:
		return "exp"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	default:
		return "unknown"
	}
}

// Operation is the local derivative rule attached to a node in the
// computation graph.
type Operation interface {
	// Kind reports which operation produced the node.
	Kind() Kind

	// Backward computes the gradient contribution for each operand given
	// the node's own (fully accumulated) gradient. The returned slice
	// matches the node's operand order; leaves return nil.
	//
	// Example for AddOp:
	//   operands: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)] (gradient flows equally to both)
	Backward(outputGrad float64) []float64
}
