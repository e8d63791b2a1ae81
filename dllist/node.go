package dllist

// Node узел содержащий данное значение в связанном списке.
// Значение узла не меняется: запись на позицию заменяет узел целиком.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]

	value T
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// HasNext проверка наличия следующего узла.
func (n *Node[T]) HasNext() bool {
	return n.next != nil
}

// Next следующий узел.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev предыдущий узел.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

func (n *Node[T]) setNext(node *Node[T]) {
	n.next = node
}

func (n *Node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}
