package ops

// TanhOp represents the hyperbolic tangent: output = tanh(a).
//
// Backward pass:
//   - d(tanh(a))/da = 1 - tanh²(a)
//
// The rule reuses the forward output, captured at construction time:
// grad_a = outputGrad * (1 - output²).
type TanhOp struct {
	output float64 // tanh(a), computed during the forward pass
}

// NewTanhOp creates a new TanhOp capturing the forward output.
func NewTanhOp(output float64) *TanhOp {
	return &TanhOp{output: output}
}

// Kind returns Tanh.
func (op *TanhOp) Kind() Kind {
	return Tanh
}

// Backward computes the operand gradient for tanh.
func (op *TanhOp) Backward(outputGrad float64) []float64 {
	return []float64{(1 - op.output*op.output) * outputGrad}
}
