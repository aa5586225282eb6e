package ops

// AddOp represents a scalar addition operation: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct{}

// NewAddOp creates a new AddOp.
func NewAddOp() *AddOp {
	return &AddOp{}
}

// Kind returns Add.
func (op *AddOp) Kind() Kind {
	return Add
}

// Backward computes operand gradients for addition.
// Since d(a+b)/da = d(a+b)/db = 1, the gradient flows equally to both operands.
func (op *AddOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, outputGrad}
}
