package ops

// ReLUOp represents the rectified linear unit: output = max(0, a).
//
// Backward pass:
//   - d(ReLU(a))/da = 1 if a > 0, else 0
//
// The input value is captured at construction time to decide which side
// of the hinge the operand was on.
type ReLUOp struct {
	input float64 // operand value at creation time
}

// NewReLUOp creates a new ReLUOp capturing the input value.
func NewReLUOp(input float64) *ReLUOp {
	return &ReLUOp{input: input}
}

// Kind returns ReLU.
func (op *ReLUOp) Kind() Kind {
	return ReLU
}

// Backward computes the operand gradient for ReLU. The gradient at
// exactly zero is zero, matching the forward hinge.
func (op *ReLUOp) Backward(outputGrad float64) []float64 {
	if op.input > 0 {
		return []float64{outputGrad}
	}
	return []float64{0}
}
