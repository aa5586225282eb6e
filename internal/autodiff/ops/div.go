package ops

// DivOp represents a scalar division operation: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b²
type DivOp struct {
	a float64 // numerator value
	b float64 // denominator value
}

// NewDivOp creates a new DivOp capturing both operand values.
func NewDivOp(a, b float64) *DivOp {
	return &DivOp{a: a, b: b}
}

// Kind returns Div.
func (op *DivOp) Kind() Kind {
	return Div
}

// Backward computes operand gradients for division.
func (op *DivOp) Backward(outputGrad float64) []float64 {
	gradA := outputGrad / op.b
	gradB := -outputGrad * op.a / (op.b * op.b)
	return []float64{gradA, gradB}
}
