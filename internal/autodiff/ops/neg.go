package ops

// NegOp represents a scalar negation operation: output = -a.
//
// Backward pass:
//   - d(-a)/da = -1, so grad_a = -outputGrad
type NegOp struct{}

// NewNegOp creates a new NegOp.
func NewNegOp() *NegOp {
	return &NegOp{}
}

// Kind returns Neg.
func (op *NegOp) Kind() Kind {
	return Neg
}

// Backward computes the operand gradient for negation.
func (op *NegOp) Backward(outputGrad float64) []float64 {
	return []float64{-outputGrad}
}
