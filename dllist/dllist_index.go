package dllist

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/seqlist/seq"
)

// Get значение на данной позиции. Отрицательные позиции отсчитываются
// от конца списка.
func (l *DLList[T]) Get(index int) (T, error) {
	n, err := l.node(index)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "look for the node")
	}

	return n.value, nil
}

// Set запись значения на данную позицию.
//
// Запись на позицию равную длине списка добавляет значение в конец.
// Существующий узел не меняется, вместо него в цепочку встаёт новый,
// поэтому итераторы стоящие на старом узле продолжают видеть старое значение.
// Старый узел из цепочки выходит, DeleteNode для него ничего не делает.
func (l *DLList[T]) Set(index int, v T) error {
	switch {
	case index == l.size:
		// В том числе инициализация пустого списка.
		l.Push(v)
		return nil
	case index > l.size:
		return seq.OutOfRange(index, l.size)
	}

	old, err := l.node(index)
	if err != nil {
		return errors.Wrap(err, "look for the node to replace")
	}

	l.replace(old, &Node[T]{
		prev:  old.prev,
		next:  old.next,
		value: v,
	})
	return nil
}

// Insert то же самое, что и Set: существующие элементы не сдвигаются.
// Для вставки со сдвигом есть InsertBefore.
func (l *DLList[T]) Insert(index int, v T) error {
	return l.Set(index, v)
}

// InsertBefore вставка значения перед элементом на данной позиции
// со сдвигом последующих. Позиция равная длине списка означает вставку в конец.
func (l *DLList[T]) InsertBefore(index int, v T) error {
	if index == l.size {
		l.Push(v)
		return nil
	}

	mark, err := l.node(index)
	if err != nil {
		return errors.Wrap(err, "look for the node to insert before")
	}

	n := &Node[T]{
		prev:  mark.prev,
		next:  mark,
		value: v,
	}
	if mark.prev != nil {
		mark.prev.setNext(n)
	} else {
		l.first = n
	}
	mark.prev = n
	l.size++

	return nil
}

// Delete удаление элемента на данной позиции.
func (l *DLList[T]) Delete(index int) error {
	n, err := l.node(index)
	if err != nil {
		return errors.Wrap(err, "look for the node to delete")
	}

	l.DeleteNode(n)
	return nil
}

// node поиск узла по позиции, всегда проходом от начала.
func (l *DLList[T]) node(index int) (*Node[T], error) {
	pos, err := seq.Position(index, l.size)
	if err != nil {
		return nil, err
	}

	n := l.first
	for i := 0; i < pos; i++ {
		n = n.next
	}

	return n, nil
}

// replace ставит n на место old. Связи old остаются как есть.
func (l *DLList[T]) replace(old, n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n
	}
	if n.next != nil {
		n.next.prev = n
	}

	if l.first == old {
		l.first = n
	}
	if l.last == old {
		l.last = n
	}
}
