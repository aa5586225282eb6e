package ops

// LeafOp marks an input scalar. Leaves have no operands and no local
// derivative rule; the backward pass stops at them.
type LeafOp struct{}

// NewLeafOp creates a new LeafOp.
func NewLeafOp() *LeafOp {
	return &LeafOp{}
}

// Kind returns Leaf.
func (op *LeafOp) Kind() Kind {
	return Leaf
}

// Backward returns nil: a leaf has no operands to propagate to.
func (op *LeafOp) Backward(outputGrad float64) []float64 {
	return nil
}
