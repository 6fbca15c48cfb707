package lib

// List is a doubly linked list of Nodes threaded through caller owned
// descriptors. The zero value is not ready to use, call Init first.
type List struct {
	root  Node
	count int64
}

// Node links one descriptor into one List. Index identifies the
// descriptor within its caller owned table, standing in for
// container-of pointer arithmetic.
type Node struct {
	Index int64
	next  *Node
	prev  *Node
}

// Init empty the list, can also be called on a list in use to reset it.
func (l *List) Init() *List {
	l.root.next, l.root.prev = &l.root, &l.root
	l.count = 0
	return l
}

// Insert node at the head of the list. Node shall not already be on a
// list.
func (l *List) Insert(n *Node) {
	n.prev, n.next = &l.root, l.root.next
	l.root.next.prev = n
	l.root.next = n
	l.count++
}

// Remove node from the list.
func (l *List) Remove(n *Node) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev = nil, nil
	l.count--
}

// IsEmpty return whether the list has no nodes.
func (l *List) IsEmpty() bool {
	return l.root.next == &l.root
}

// Count return the number of nodes on the list.
func (l *List) Count() int64 {
	return l.count
}

// Head return the first node on the list, nil when empty.
func (l *List) Head() *Node {
	if l.IsEmpty() {
		return nil
	}
	return l.root.next
}

// Each iterate nodes head to tail, until callb returns false. Nodes
// shall not be inserted or removed during iteration.
func (l *List) Each(callb func(n *Node) bool) {
	for n := l.root.next; n != &l.root; n = n.next {
		if callb(n) == false {
			return
		}
	}
}
