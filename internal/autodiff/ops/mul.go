package ops

// MulOp represents a scalar multiplication operation: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
//
// The operand values are captured at construction time.
type MulOp struct {
	a float64 // left operand value
	b float64 // right operand value
}

// NewMulOp creates a new MulOp capturing both operand values.
func NewMulOp(a, b float64) *MulOp {
	return &MulOp{a: a, b: b}
}

// Kind returns Mul.
func (op *MulOp) Kind() Kind {
	return Mul
}

// Backward computes operand gradients for multiplication.
func (op *MulOp) Backward(outputGrad float64) []float64 {
	return []float64{op.b * outputGrad, op.a * outputGrad}
}
