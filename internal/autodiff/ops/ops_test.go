package ops

import (
	"math"
	"testing"
)

// TestLeafOp tests that leaves have no rule to run.
func TestLeafOp(t *testing.T) {
	op := NewLeafOp()

	if op.Kind() != Leaf {
		t.Errorf("Kind() = %v, want Leaf", op.Kind())
	}
	if grads := op.Backward(1.0); grads != nil {
		t.Errorf("Backward(1) = %v, want nil", grads)
	}
}

// TestAddOp tests that addition passes the gradient through unchanged
// to both operands.
func TestAddOp(t *testing.T) {
	op := NewAddOp()

	for _, g := range []float64{1.0, 0.5, -2.0, 0.0} {
		grads := op.Backward(g)
		if len(grads) != 2 {
			t.Fatalf("Backward(%v) returned %d grads, want 2", g, len(grads))
		}
		if grads[0] != g || grads[1] != g {
			t.Errorf("Backward(%v) = %v, want [%v %v]", g, grads, g, g)
		}
	}
}

// TestSubOp tests that the subtrahend's gradient is negated.
func TestSubOp(t *testing.T) {
	op := NewSubOp()

	grads := op.Backward(0.5)
	if grads[0] != 0.5 {
		t.Errorf("grad_a = %v, want 0.5", grads[0])
	}
	if grads[1] != -0.5 {
		t.Errorf("grad_b = %v, want -0.5", grads[1])
	}
}

// TestMulOp tests that each operand receives the other's captured value
// scaled by the output gradient.
func TestMulOp(t *testing.T) {
	op := NewMulOp(2.0, -3.0)

	grads := op.Backward(1.0)
	if grads[0] != -3.0 {
		t.Errorf("grad_a = %v, want -3.0 (value of b)", grads[0])
	}
	if grads[1] != 2.0 {
		t.Errorf("grad_b = %v, want 2.0 (value of a)", grads[1])
	}

	grads = op.Backward(0.5)
	if grads[0] != -1.5 || grads[1] != 1.0 {
		t.Errorf("Backward(0.5) = %v, want [-1.5 1]", grads)
	}
}

// TestDivOp tests the division rule.
func TestDivOp(t *testing.T) {
	op := NewDivOp(6.0, 2.0)

	grads := op.Backward(1.0)
	if math.Abs(grads[0]-0.5) > 1e-12 {
		t.Errorf("grad_a = %v, want 1/b = 0.5", grads[0])
	}
	if math.Abs(grads[1]-(-1.5)) > 1e-12 {
		t.Errorf("grad_b = %v, want -a/b² = -1.5", grads[1])
	}
}

// TestNegOp tests the negation rule.
func TestNegOp(t *testing.T) {
	op := NewNegOp()

	if grads := op.Backward(2.5); grads[0] != -2.5 {
		t.Errorf("Backward(2.5) = %v, want [-2.5]", grads)
	}
}

// TestPowOp tests the constant-exponent power rule.
func TestPowOp(t *testing.T) {
	// d(a³)/da at a=2 is 3·4 = 12
	op := NewPowOp(2.0, 3)
	if grads := op.Backward(1.0); math.Abs(grads[0]-12.0) > 1e-12 {
		t.Errorf("Backward(1) = %v, want [12]", grads)
	}

	// d(sqrt(a))/da at a=4 is 1/(2·sqrt(4)) = 0.25
	op = NewPowOp(4.0, 0.5)
	if grads := op.Backward(1.0); math.Abs(grads[0]-0.25) > 1e-12 {
		t.Errorf("Backward(1) = %v, want [0.25]", grads)
	}
}

// TestExpOp tests that exp's rule reuses the captured forward output.
func TestExpOp(t *testing.T) {
	y := math.Exp(1.5)
	op := NewExpOp(y)

	if grads := op.Backward(2.0); math.Abs(grads[0]-2*y) > 1e-12 {
		t.Errorf("Backward(2) = %v, want [%v]", grads, 2*y)
	}
}

// TestTanhOp tests the 1 - t² rule against the captured output.
func TestTanhOp(t *testing.T) {
	tv := math.Tanh(0.5)
	op := NewTanhOp(tv)

	want := 1 - tv*tv
	if grads := op.Backward(1.0); math.Abs(grads[0]-want) > 1e-12 {
		t.Errorf("Backward(1) = %v, want [%v]", grads, want)
	}
}

// TestReLUOp tests the hinge: gradient passes only for positive inputs.
func TestReLUOp(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{2.0, 1.0},
		{0.001, 1.0},
		{0.0, 0.0},
		{-1.0, 0.0},
	}

	for _, tt := range tests {
		op := NewReLUOp(tt.input)
		if grads := op.Backward(1.0); grads[0] != tt.want {
			t.Errorf("ReLU(%v).Backward(1) = %v, want [%v]", tt.input, grads, tt.want)
		}
	}
}

// TestKind_String tests the display symbols.
func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Leaf, "leaf"},
		{Neg, "neg"},
		{Add, "+"},
		{Sub, "-"},
		{Mul, "*"},
		{Div, "/"},
		{Pow, "pow"},
		{Exp, "exp"},
		{Tanh, "tanh"},
		{ReLU, "relu"},
		{Kind(255), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
