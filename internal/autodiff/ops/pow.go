package ops

import "math"

// PowOp represents raising a node to a constant exponent: output = a^c.
// The exponent is a plain constant, not a graph node, so only the base
// receives gradient.
//
// Backward pass:
//   - d(a^c)/da = c * a^(c-1), so grad_a = outputGrad * c * a^(c-1)
type PowOp struct {
	base     float64 // operand value at creation time
	exponent float64 // constant exponent
}

// NewPowOp creates a new PowOp capturing the base value and exponent.
func NewPowOp(base, exponent float64) *PowOp {
	return &PowOp{base: base, exponent: exponent}
}

// Kind returns Pow.
func (op *PowOp) Kind() Kind {
	return Pow
}

// Backward computes the operand gradient for the power rule.
func (op *PowOp) Backward(outputGrad float64) []float64 {
	return []float64{op.exponent * math.Pow(op.base, op.exponent-1) * outputGrad}
}
