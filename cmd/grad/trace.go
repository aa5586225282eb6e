package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/scalar-ml/grad/autodiff"
)

var (
	traceX1   float64
	traceX2   float64
	traceW1   float64
	traceW2   float64
	traceBias float64

	traceCmd = &cobra.Command{
		Use:   "trace",
		Short: "Run a worked perceptron expression and print every node's gradient",
		Long: `Builds tanh(x1*w1 + x2*w2 + b), runs a backward pass, and prints a
table with each node's operation, forward value and gradient.`,
		Run: runTrace,
	}

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	opStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func init() {
	traceCmd.Flags().Float64Var(&traceX1, "x1", 2.0, "first input")
	traceCmd.Flags().Float64Var(&traceX2, "x2", 0.0, "second input")
	traceCmd.Flags().Float64Var(&traceW1, "w1", -3.0, "first weight")
	traceCmd.Flags().Float64Var(&traceW2, "w2", 1.0, "second weight")
	traceCmd.Flags().Float64Var(&traceBias, "bias", 6.8813735870195432, "bias")
}

// tracedNode pairs a handle with the label shown in the table.
type tracedNode struct {
	name  string
	value autodiff.Value
}

func runTrace(cmd *cobra.Command, args []string) {
	g := autodiff.NewGraph()

	x1 := g.Leaf(traceX1)
	x2 := g.Leaf(traceX2)
	w1 := g.Leaf(traceW1)
	w2 := g.Leaf(traceW2)
	b := g.Leaf(traceBias)

	x1w1 := g.Mul(x1, w1)
	x2w2 := g.Mul(x2, w2)
	n := g.Add(g.Add(x1w1, x2w2), b)
	out := g.Tanh(n)

	g.Backward(out)

	renderTrace(cmd.OutOrStdout(), []tracedNode{
		{"x1", x1},
		{"x2", x2},
		{"w1", w1},
		{"w2", w2},
		{"b", b},
		{"x1*w1", x1w1},
		{"x2*w2", x2w2},
		{"n", n},
		{"out", out},
	})
}

// renderTrace prints the node table.
func renderTrace(w io.Writer, nodes []tracedNode) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-8s %-6s %18s %18s", "node", "op", "value", "gradient")))
	for _, tn := range nodes {
		fmt.Fprintf(w, "%s %s %18.12f %18.12f\n",
			nameStyle.Render(fmt.Sprintf("%-8s", tn.name)),
			opStyle.Render(fmt.Sprintf("%-6s", tn.value.Kind().String())),
			tn.value.Data(),
			tn.value.Grad(),
		)
	}
}
