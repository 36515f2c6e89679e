package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(n Node) bool

// Walk traverses the tree rooted at n in pre-order, left to right.
func Walk(n Node, v Visitor) {
	if n == nil || !v(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, v)
	}
}
