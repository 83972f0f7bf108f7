package syntax

import "fmt"

// Traverse rebuilds the tree rooted at n in depth-first order.
// f is called for each node, children before parents, and the result
// replaces the node in the rebuilt tree. The input tree is left intact.
// If f returns an error, f also must return the original argument n.
func Traverse(n Node, f func(Node, error) (Node, error)) (Node, error) {
	n, err := n.Plate(nil, func(n Node, err error) (Node, error) {
		return Traverse(n, f)
	})

	return f(n, err)
}

// Children returns the direct children of n.
func Children(n Node) []Node {
	var children []Node
	_, err := n.Plate(nil, func(n Node, _ error) (Node, error) {
		children = append(children, n)

		return n, nil
	})
	if err != nil {
		panic(fmt.Errorf("unexpected error: %w", err))
	}

	return children
}

// Universe returns every node of the tree rooted at n, including n
// itself, in depth-first order.
func Universe(n Node) []Node {
	var nodes []Node
	_, err := Traverse(n, func(n Node, _ error) (Node, error) {
		nodes = append(nodes, n)

		return n, nil
	})
	if err != nil {
		panic(fmt.Errorf("unexpected error: %w", err))
	}

	return nodes
}
