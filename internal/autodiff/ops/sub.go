package ops

// SubOp represents a scalar subtraction operation: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct{}

// NewSubOp creates a new SubOp.
func NewSubOp() *SubOp {
	return &SubOp{}
}

// Kind returns Sub.
func (op *SubOp) Kind() Kind {
	return Sub
}

// Backward computes operand gradients for subtraction. Operand order
// matters: the minuend receives outputGrad, the subtrahend -outputGrad.
func (op *SubOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, -outputGrad}
}
