// Package dllist двусвязный список с доступом по позиции.
package dllist

import "github.com/sirkon/seqlist/seq"

var _ seq.Sequence[int] = (*DLList[int])(nil)

// New конструктор пустого двусвязного списка.
func New[T any]() *DLList[T] {
	return &DLList[T]{}
}

// From создание списка из данных значений.
func From[T any](values ...T) *DLList[T] {
	l := New[T]()
	for _, v := range values {
		l.Push(v)
	}

	return l
}

// DLList двусвязный список.
//
// Доступ по позиции проходит цепочку от начала списка, т.е. стоит O(n)
// даже для позиций около конца.
//
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
// Список нельзя менять пока им пользуется полученный из него итератор или
// курсор, исключение составляет добавление в конец.
type DLList[T any] struct {
	first *Node[T]
	last  *Node[T]
	size  int
}

// Len количество элементов списка.
func (l *DLList[T]) Len() int {
	return l.size
}

// Push добавление нового значения в конец списка с возвратом созданного узла.
// После Set на позицию узла он выходит из цепочки и больше не относится к списку.
func (l *DLList[T]) Push(v T) *Node[T] {
	n := &Node[T]{
		next:  nil,
		prev:  l.last,
		value: v,
	}
	l.size++

	if l.first == nil {
		l.first = n
		l.last = n
		return n
	}

	l.last.setNext(n)
	l.last = n

	return n
}

// Append добавление значения в конец списка.
func (l *DLList[T]) Append(v T) {
	l.Push(v)
}

// Add то же, что и Append.
func (l *DLList[T]) Add(v T) {
	l.Push(v)
}

// First получение первого элемента списка.
func (l *DLList[T]) First() *Node[T] {
	return l.first
}

// Last получение последнего элемента списка.
func (l *DLList[T]) Last() *Node[T] {
	return l.last
}

// DeleteFirst удаление первого элемента списка.
func (l *DLList[T]) DeleteFirst() {
	if l.first == nil {
		return
	}

	l.DeleteNode(l.first)
}

// DeleteNode удаление данного узла из списка. Узел должен принадлежать этому списку.
// Узлы уже удалённые или заменённые через Set в цепочке не состоят, для них
// ничего не делается и возвращается false.
func (l *DLList[T]) DeleteNode(n *Node[T]) bool {
	if !l.linked(n) {
		return false
	}

	if n.prev != nil {
		n.prev.next = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	}

	if l.first == n {
		l.first = n.next
	}

	if l.last == n {
		l.last = n.prev
	}

	l.size--
	n.cleanup()
	return true
}

// linked проверка, что узел всё ещё стоит в цепочке.
func (l *DLList[T]) linked(n *Node[T]) bool {
	if n == nil {
		return false
	}

	if n.prev == nil {
		return l.first == n
	}

	return n.prev.next == n
}

// Iter итератор по значениям списка.
func (l *DLList[T]) Iter() seq.Iterator[T] {
	return &iterator[T]{
		next: l.first,
	}
}

func (l *DLList[T]) String() string {
	return seq.Render(l.Iter())
}

// забирает узлы другого списка себе в конец, other после этого пуст.
func (l *DLList[T]) takeOver(other *DLList[T]) {
	if other.first == nil {
		return
	}

	if l.first == nil {
		l.first = other.first
	} else {
		l.last.setNext(other.first)
		other.first.prev = l.last
	}
	l.last = other.last
	l.size += other.size

	other.first = nil
	other.last = nil
	other.size = 0
}

type iterator[T any] struct {
	cur  *Node[T]
	next *Node[T]
}

func (it *iterator[T]) Next() bool {
	if it.next == nil {
		return false
	}

	it.cur = it.next
	it.next = it.next.next
	return true
}

func (it *iterator[T]) Item() T {
	return it.cur.value
}
