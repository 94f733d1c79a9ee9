// Package linkedtreebimap provides the red-black machinery shared by both
// embedded trees.
//
// Every structural operation is parameterized by side and touches only that
// side's links and color bit, so the key tree and the value tree balance
// independently over the same nodes. Deletion swaps nodes positionally rather
// than copying pair data, preserving node identity for the other tree and for
// outstanding references.
package linkedtreebimap

// --------------------------------------------------------------------------------
// Relatives

// grandparent returns the node's grandparent in the given tree, or nil.
func (m *Map[K, V]) grandparent(s side, n *node[K, V]) *node[K, V] {
	if n != nil && n.parent[s] != nil {
		return n.parent[s].parent[s]
	}

	return nil
}

// uncle returns the node's uncle in the given tree, or nil.
func (m *Map[K, V]) uncle(s side, n *node[K, V]) *node[K, V] {
	if gp := m.grandparent(s, n); gp != nil {
		if n.parent[s] == gp.left[s] {
			return gp.right[s]
		}

		return gp.left[s]
	}

	return nil
}

// sibling returns the node's sibling in the given tree, or nil.
func (m *Map[K, V]) sibling(s side, n *node[K, V]) *node[K, V] {
	if n != nil && n.parent[s] != nil {
		if n == n.parent[s].left[s] {
			return n.parent[s].right[s]
		}

		return n.parent[s].left[s]
	}

	return nil
}

// --------------------------------------------------------------------------------
// Walks

// least returns the leftmost node of the subtree in the given tree.
func (m *Map[K, V]) least(s side, n *node[K, V]) *node[K, V] {
	for n != nil && n.left[s] != nil {
		n = n.left[s]
	}

	return n
}

// greatest returns the rightmost node of the subtree in the given tree.
func (m *Map[K, V]) greatest(s side, n *node[K, V]) *node[K, V] {
	for n != nil && n.right[s] != nil {
		n = n.right[s]
	}

	return n
}

// nextGreater returns the in-order successor of the node in the given tree.
func (m *Map[K, V]) nextGreater(s side, n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}

	if n.right[s] != nil {
		return m.least(s, n.right[s])
	}

	child, parent := n, n.parent[s]
	for parent != nil && child == parent.right[s] {
		child, parent = parent, parent.parent[s]
	}

	return parent
}

// nextSmaller returns the in-order predecessor of the node in the given tree.
func (m *Map[K, V]) nextSmaller(s side, n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}

	if n.left[s] != nil {
		return m.greatest(s, n.left[s])
	}

	child, parent := n, n.parent[s]
	for parent != nil && child == parent.left[s] {
		child, parent = parent, parent.parent[s]
	}

	return parent
}

// --------------------------------------------------------------------------------
// Rotations

// rotateLeft performs a left rotation around the node in the given tree.
func (m *Map[K, V]) rotateLeft(s side, n *node[K, V]) {
	r := n.right[s]
	m.replaceNode(s, n, r)

	n.right[s] = r.left[s]
	if r.left[s] != nil {
		r.left[s].parent[s] = n
	}

	r.left[s] = n
	n.parent[s] = r
}

// rotateRight performs a right rotation around the node in the given tree.
func (m *Map[K, V]) rotateRight(s side, n *node[K, V]) {
	l := n.left[s]
	m.replaceNode(s, n, l)

	n.left[s] = l.right[s]
	if l.right[s] != nil {
		l.right[s].parent[s] = n
	}

	l.right[s] = n
	n.parent[s] = l
}

// replaceNode replaces oldNode with newNode in the given tree's structure.
func (m *Map[K, V]) replaceNode(s side, oldNode, newNode *node[K, V]) {
	if oldNode.parent[s] == nil {
		m.root[s] = newNode
	} else if oldNode == oldNode.parent[s].left[s] {
		oldNode.parent[s].left[s] = newNode
	} else {
		oldNode.parent[s].right[s] = newNode
	}

	if newNode != nil {
		newNode.parent[s] = oldNode.parent[s]
	}
}

// --------------------------------------------------------------------------------
// Insert Balancing

// insertFixup balances the given tree after attaching a red leaf.
func (m *Map[K, V]) insertFixup(s side, n *node[K, V]) {
	if n.parent[s] == nil {
		n.setBlack(s, true)

		return
	}

	if n.parent[s].black(s) {
		return
	}

	if u := m.uncle(s, n); !u.black(s) {
		n.parent[s].setBlack(s, true)
		u.setBlack(s, true)
		gp := m.grandparent(s, n)
		gp.setBlack(s, false)
		m.insertFixup(s, gp)

		return
	}

	m.insertFixupStep(s, n)
}

// insertFixupStep handles rotation cases for insertion balancing.
func (m *Map[K, V]) insertFixupStep(s side, n *node[K, V]) {
	gp := m.grandparent(s, n)
	if n == n.parent[s].right[s] && n.parent[s] == gp.left[s] {
		m.rotateLeft(s, n.parent[s])
		n = n.left[s]
	} else if n == n.parent[s].left[s] && n.parent[s] == gp.right[s] {
		m.rotateRight(s, n.parent[s])
		n = n.right[s]
	}

	n.parent[s].setBlack(s, true)
	gp.setBlack(s, false)

	if n == n.parent[s].left[s] {
		m.rotateRight(s, gp)
	} else {
		m.rotateLeft(s, gp)
	}
}

// --------------------------------------------------------------------------------
// Deletion

// deleteNode removes the node from the given tree only and rebalances it.
//
// A node with two children first swaps position with its in-order successor,
// preserving node identity for the other tree and for outstanding references.
// The node's links for this tree are cleared afterwards; its links in the
// other tree are untouched.
func (m *Map[K, V]) deleteNode(s side, n *node[K, V]) {
	if n.left[s] != nil && n.right[s] != nil {
		m.swapPosition(s, m.nextGreater(s, n), n)
	}

	child := n.right[s]
	if n.left[s] != nil {
		child = n.left[s]
	}

	if n.black(s) {
		n.setBlack(s, child.black(s))
		m.deleteFixup(s, n)
	}

	m.replaceNode(s, n, child)

	if n.parent[s] == nil && child != nil {
		child.setBlack(s, true)
	}

	n.detach(s)
}

// deleteFixup balances the given tree after deletion.
func (m *Map[K, V]) deleteFixup(s side, n *node[K, V]) {
	if n.parent[s] == nil {
		return
	}

	sib := m.sibling(s, n)
	if !sib.black(s) {
		n.parent[s].setBlack(s, false)
		sib.setBlack(s, true)

		if n == n.parent[s].left[s] {
			m.rotateLeft(s, n.parent[s])
		} else {
			m.rotateRight(s, n.parent[s])
		}

		sib = m.sibling(s, n)
	}

	m.deleteFixupCases(s, n, sib)
}

// deleteFixupCases handles specific deletion balancing cases.
func (m *Map[K, V]) deleteFixupCases(s side, n, sib *node[K, V]) {
	if n.parent[s].black(s) && sib.black(s) &&
		sib.left[s].black(s) && sib.right[s].black(s) {
		sib.setBlack(s, false)

		m.deleteFixup(s, n.parent[s])

		return
	}

	if !n.parent[s].black(s) && sib.black(s) &&
		sib.left[s].black(s) && sib.right[s].black(s) {
		sib.setBlack(s, false)
		n.parent[s].setBlack(s, true)

		return
	}

	m.deleteFixupRotations(s, n, sib)
}

// deleteFixupRotations handles rotation cases for deletion balancing.
func (m *Map[K, V]) deleteFixupRotations(s side, n, sib *node[K, V]) {
	if n == n.parent[s].left[s] && sib.black(s) &&
		!sib.left[s].black(s) && sib.right[s].black(s) {
		sib.setBlack(s, false)
		sib.left[s].setBlack(s, true)
		m.rotateRight(s, sib)
		sib = m.sibling(s, n)
	} else if n == n.parent[s].right[s] && sib.black(s) &&
		!sib.right[s].black(s) && sib.left[s].black(s) {
		sib.setBlack(s, false)
		sib.right[s].setBlack(s, true)
		m.rotateLeft(s, sib)
		sib = m.sibling(s, n)
	}

	sib.setBlack(s, n.parent[s].black(s))
	n.parent[s].setBlack(s, true)

	if n == n.parent[s].left[s] {
		sib.right[s].setBlack(s, true)

		m.rotateLeft(s, n.parent[s])
	} else {
		sib.left[s].setBlack(s, true)

		m.rotateRight(s, n.parent[s])
	}
}

// --------------------------------------------------------------------------------
// Positional Swap

// swapPosition exchanges the two nodes' topological positions in the given
// tree: parent, left, right, and color bit. The other tree is untouched and
// both nodes keep their identity.
//
// Handles all adjacency cases, including either node being the other's parent
// and either node being the root.
func (m *Map[K, V]) swapPosition(s side, x, y *node[K, V]) {
	if x == y {
		return
	}

	xp, xl, xr := x.parent[s], x.left[s], x.right[s]
	yp, yl, yr := y.parent[s], y.left[s], y.right[s]

	xWasLeft := xp != nil && xp.left[s] == x
	yWasLeft := yp != nil && yp.left[s] == y

	// Each node takes the other's links; direct adjacency collapses so the
	// nodes reference each other rather than themselves.
	nxp, nxl, nxr := yp, yl, yr
	if nxp == x {
		nxp = y
	}

	if nxl == x {
		nxl = y
	}

	if nxr == x {
		nxr = y
	}

	nyp, nyl, nyr := xp, xl, xr
	if nyp == y {
		nyp = x
	}

	if nyl == y {
		nyl = x
	}

	if nyr == y {
		nyr = x
	}

	x.parent[s], x.left[s], x.right[s] = nxp, nxl, nxr
	y.parent[s], y.left[s], y.right[s] = nyp, nyl, nyr

	xBlack := x.black(s)
	x.setBlack(s, y.black(s))
	y.setBlack(s, xBlack)

	// Children follow their new parent.
	if x.left[s] != nil {
		x.left[s].parent[s] = x
	}

	if x.right[s] != nil {
		x.right[s].parent[s] = x
	}

	if y.left[s] != nil {
		y.left[s].parent[s] = y
	}

	if y.right[s] != nil {
		y.right[s].parent[s] = y
	}

	// Parents point at their new child; adjacency was already wired above.
	switch {
	case x.parent[s] == nil:
		m.root[s] = x
	case x.parent[s] != y:
		if yWasLeft {
			x.parent[s].left[s] = x
		} else {
			x.parent[s].right[s] = x
		}
	}

	switch {
	case y.parent[s] == nil:
		m.root[s] = y
	case y.parent[s] != x:
		if xWasLeft {
			y.parent[s].left[s] = y
		} else {
			y.parent[s].right[s] = y
		}
	}
}

// --------------------------------------------------------------------------------
// Descent

// insertKeyNode attaches the detached node as a red leaf of the key tree and
// rebalances. The key must not already be present.
func (m *Map[K, V]) insertKeyNode(n *node[K, V]) {
	if m.root[keySide] == nil {
		n.setBlack(keySide, true)
		m.root[keySide] = n

		return
	}

	cur, parent := m.root[keySide], (*node[K, V])(nil)
	for cur != nil {
		parent = cur

		if m.kcmp(n.key, cur.key) < 0 {
			cur = cur.left[keySide]
		} else {
			cur = cur.right[keySide]
		}
	}

	n.setBlack(keySide, false)
	n.parent[keySide] = parent

	if m.kcmp(n.key, parent.key) < 0 {
		parent.left[keySide] = n
	} else {
		parent.right[keySide] = n
	}

	m.insertFixup(keySide, n)
}

// insertValueNode attaches the detached node as a red leaf of the value tree
// and rebalances. The value must not already be present.
func (m *Map[K, V]) insertValueNode(n *node[K, V]) {
	if m.root[valSide] == nil {
		n.setBlack(valSide, true)
		m.root[valSide] = n

		return
	}

	cur, parent := m.root[valSide], (*node[K, V])(nil)
	for cur != nil {
		parent = cur

		if m.vcmp(n.value, cur.value) < 0 {
			cur = cur.left[valSide]
		} else {
			cur = cur.right[valSide]
		}
	}

	n.setBlack(valSide, false)
	n.parent[valSide] = parent

	if m.vcmp(n.value, parent.value) < 0 {
		parent.left[valSide] = n
	} else {
		parent.right[valSide] = n
	}

	m.insertFixup(valSide, n)
}

// seekKey descends the key tree and returns the exact match, the greatest
// node below the key, and the least node above it.
func (m *Map[K, V]) seekKey(key K) (exact, below, above *node[K, V]) {
	n := m.root[keySide]
	for n != nil {
		switch c := m.kcmp(key, n.key); {
		case c == 0:
			return n, below, above
		case c < 0:
			above = n
			n = n.left[keySide]
		default:
			below = n
			n = n.right[keySide]
		}
	}

	return nil, below, above
}

// seekValue descends the value tree and returns the exact match, the greatest
// node below the value, and the least node above it.
func (m *Map[K, V]) seekValue(value V) (exact, below, above *node[K, V]) {
	n := m.root[valSide]
	for n != nil {
		switch c := m.vcmp(value, n.value); {
		case c == 0:
			return n, below, above
		case c < 0:
			above = n
			n = n.left[valSide]
		default:
			below = n
			n = n.right[valSide]
		}
	}

	return nil, below, above
}

// lookupKey returns the node holding the key, or nil.
func (m *Map[K, V]) lookupKey(key K) *node[K, V] {
	exact, _, _ := m.seekKey(key)

	return exact
}

// lookupValue returns the node holding the value, or nil.
func (m *Map[K, V]) lookupValue(value V) *node[K, V] {
	exact, _, _ := m.seekValue(value)

	return exact
}

// takeValuePosition grafts target into victim's place in the value tree,
// copying the victim's value-color, and clears the victim's value-tree links.
//
// Used by the put protocol to transplant the surviving node onto an evicted
// holder of the same value without a delete-insert cycle.
func (m *Map[K, V]) takeValuePosition(target, victim *node[K, V]) {
	target.parent[valSide] = victim.parent[valSide]
	target.left[valSide] = victim.left[valSide]
	target.right[valSide] = victim.right[valSide]
	target.setBlack(valSide, victim.black(valSide))

	if target.left[valSide] != nil {
		target.left[valSide].parent[valSide] = target
	}

	if target.right[valSide] != nil {
		target.right[valSide].parent[valSide] = target
	}

	switch {
	case target.parent[valSide] == nil:
		m.root[valSide] = target
	case victim == target.parent[valSide].left[valSide]:
		target.parent[valSide].left[valSide] = target
	default:
		target.parent[valSide].right[valSide] = target
	}

	victim.detach(valSide)
}
