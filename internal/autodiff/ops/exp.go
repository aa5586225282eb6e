package ops

// ExpOp represents the exponential: output = exp(a).
//
// Backward pass:
//   - d(exp(a))/da = exp(a), which is the forward output itself, so
//     grad_a = outputGrad * output.
type ExpOp struct {
	output float64 // exp(a), computed during the forward pass
}

// NewExpOp creates a new ExpOp capturing the forward output.
func NewExpOp(output float64) *ExpOp {
	return &ExpOp{output: output}
}

// Kind returns Exp.
func (op *ExpOp) Kind() Kind {
	return Exp
}

// Backward computes the operand gradient for exp.
func (op *ExpOp) Backward(outputGrad float64) []float64 {
	return []float64{op.output * outputGrad}
}
