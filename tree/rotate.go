package tree

// RotateLeft rotates a Node to the left and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateLeft:
//	  -> n            p
//      / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
// The right child p is returned from n.RotateLeft.
// The ordering invariant m < n < o < p < q is always preserved.
//
// Parent links are kept consistent, including the link from
// n's old parent, which now points at p. o may be nil.
// If n was a root, p becomes a root and the caller must
// update its own root pointer.
func (n *Node[T, X]) RotateLeft() *Node[T, X] {
	if n == nil {
		panic("cannot RotateLeft on nil")
	}

	p := n.Right
	if p == nil {
		panic("cannot RotateLeft with nil right")
	}

	n.replaceWith(p)

	o := p.Left
	n.Right = o
	if o != nil {
		o.Parent = n
	}

	p.Left = n
	n.Parent = p

	return p
}

// RotateRight rotates a Node to the right and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateRight:
//	  -> n            l
//      / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
// The left child l is returned from n.RotateRight.
// The ordering invariant k < l < m < n < o is always preserved.
//
// See RotateLeft for how parent links are handled.
func (n *Node[T, X]) RotateRight() *Node[T, X] {
	if n == nil {
		panic("cannot RotateRight on nil")
	}

	l := n.Left
	if l == nil {
		panic("cannot RotateRight with nil left")
	}

	n.replaceWith(l)

	m := l.Right
	n.Left = m
	if m != nil {
		m.Parent = n
	}

	l.Right = n
	n.Parent = l

	return l
}

// replaceWith hangs c where n used to hang under n.Parent.
// n.Parent itself is left alone.
func (n *Node[T, X]) replaceWith(c *Node[T, X]) {
	parent := n.Parent
	c.Parent = parent
	if parent == nil {
		return
	}

	switch n {
	case parent.Left:
		parent.Left = c
	case parent.Right:
		parent.Right = c
	default:
		panic("impossible: parent does not link back to node")
	}
}
