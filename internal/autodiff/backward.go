package autodiff

// Backward computes the gradient of out with respect to every node
// reachable from it, accumulating into each node's grad field.
//
// Algorithm:
//  1. Topologically order the reachable subgraph (post-order DFS, so
//     every node appears exactly once, after all of its operands).
//  2. Seed the output node's gradient with 1.0 (d(out)/d(out) = 1).
//  3. Walk the order from the output down; each node's rule fires once,
//     reading its now-final gradient and adding the per-operand
//     contributions through the arena.
//
// Walking output-first guarantees that by the time a node's rule fires,
// every parent has already pushed its contribution, so gradients over
// shared subexpressions sum correctly instead of being overwritten.
//
// Backward never resets gradients: a second call on the same graph
// accumulates on top of the first. Call ZeroGrad first if an
// independent pass is wanted. Node values are never modified.
func (g *Graph) Backward(out Value) {
	g.mustOwn(out)

	order := g.topoOrder(out.id)

	g.nodes[out.id].grad = 1.0

	for i := len(order) - 1; i >= 0; i-- {
		n := &g.nodes[order[i]]
		contributions := n.op.Backward(n.grad)
		for j, operand := range n.operands {
			g.nodes[operand].grad += contributions[j]
		}
	}
}

// ZeroGrad resets grad to 0 across the subgraph reachable from out.
// Callers run this between independent backward passes.
func (g *Graph) ZeroGrad(out Value) {
	g.mustOwn(out)
	for _, id := range g.topoOrder(out.id) {
		g.nodes[id].grad = 0
	}
}

// topoOrder returns a post-order over the subgraph reachable from root:
// every node appears exactly once, after all of its operands. Visited
// nodes are keyed by handle, not value, so a node reachable through
// several parents is ordered only once. One linear pass, O(nodes + edges).
func (g *Graph) topoOrder(root ID) []ID {
	visited := make(map[ID]bool)
	order := make([]ID, 0, len(g.nodes))

	var visit func(id ID)
	visit = func(id ID) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, operand := range g.nodes[id].operands {
			visit(operand)
		}
		order = append(order, id)
	}
	visit(root)

	return order
}
