package microkanren

// index is a persistent AVL tree from variable to its most recent binding.
// Inserts copy the path from the root; untouched subtrees are shared, so an
// older index stays valid after a newer one is derived from it.
type index struct {
	key   Var
	value Term

	left   *index
	right  *index
	height int
}

func (n *index) copyNode() *index {
	return &index{
		key:    n.key,
		value:  n.value,
		left:   n.left,
		right:  n.right,
		height: n.height,
	}
}

// insert returns a new tree with k bound to v, replacing any earlier binding.
func (n *index) insert(k Var, v Term) *index {
	if n == nil {
		return &index{key: k, value: v, height: 1}
	}
	newn := n.copyNode()
	switch {
	case k < n.key:
		newn.left = n.left.insert(k, v)
	case k > n.key:
		newn.right = n.right.insert(k, v)
	default:
		newn.value = v
		return newn
	}
	return newn.rebalance()
}

func (n *index) getHeight() int {
	if n == nil {
		return 0
	}
	return n.height
}

// we just copied n and the child on the insertion path, potentially causing
// imbalance; these are therefore all safe to modify in this function
func (n *index) rebalance() *index {
	imbalance := n.right.getHeight() - n.left.getHeight()
	if imbalance < 2 && imbalance > -2 {
		n.resetHeight()
		return n
	}
	if imbalance == -2 { // left is higher
		child := n.left
		if child.left.getHeight() >= child.right.getHeight() {
			n.left = child.right
			child.right = n
			n.resetHeight()
			child.resetHeight()
			return child
		}
		grandchild := child.right.copyNode()
		child.right = grandchild.left
		grandchild.left = child
		n.left = grandchild.right
		grandchild.right = n
		n.resetHeight()
		child.resetHeight()
		grandchild.resetHeight()
		return grandchild
	}
	// imbalance == 2, right is higher
	child := n.right
	if child.right.getHeight() >= child.left.getHeight() {
		n.right = child.left
		child.left = n
		n.resetHeight()
		child.resetHeight()
		return child
	}
	grandchild := child.left.copyNode()
	child.left = grandchild.right
	grandchild.right = child
	n.right = grandchild.left
	grandchild.left = n
	n.resetHeight()
	child.resetHeight()
	grandchild.resetHeight()
	return grandchild
}

func (n *index) resetHeight() {
	n.height = max(n.left.getHeight(), n.right.getHeight()) + 1
}

func (n *index) lookup(k Var) (Term, bool) {
	for n != nil {
		switch {
		case k < n.key:
			n = n.left
		case k > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	return nil, false
}
