package dllist

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/seqlist/seq"
)

// Cursor курсор по узлам списка с логической позицией.
//
// Курсор держит прямую ссылку на узел. Поведение курсора после изменения
// структуры списка не определено, кроме добавления в конец списка.
type Cursor[T any] struct {
	node  *Node[T]
	index int
}

// Cursor курсор стоящий на первом элементе. Для пустого списка
// возвращается seq.ErrEndOfSequence.
func (l *DLList[T]) Cursor() (*Cursor[T], error) {
	if l.first == nil {
		return nil, seq.ErrEndOfSequence
	}

	return &Cursor[T]{
		node:  l.first,
		index: 0,
	}, nil
}

// Index логическая позиция курсора.
func (c *Cursor[T]) Index() int {
	return c.index
}

// Value значение текущего узла без перемещения.
func (c *Cursor[T]) Value() (T, error) {
	if c.node == nil {
		var zero T
		return zero, seq.ErrEndOfSequence
	}

	return c.node.value, nil
}

// Next возвращает значение текущего узла и переходит к следующему.
func (c *Cursor[T]) Next() (T, error) {
	if c.node == nil {
		var zero T
		return zero, seq.ErrEndOfSequence
	}

	v := c.node.value
	c.node = c.node.next
	c.index++
	return v, nil
}

// Previous возвращает значение текущего узла и переходит к предыдущему.
func (c *Cursor[T]) Previous() (T, error) {
	if c.node == nil {
		var zero T
		return zero, seq.ErrEndOfSequence
	}

	v := c.node.value
	c.node = c.node.prev
	c.index--
	return v, nil
}

// MoveTo перемещение курсора на данную позицию шагами по одному узлу,
// стоимость пропорциональна расстоянию.
func (c *Cursor[T]) MoveTo(target int) error {
	for c.index < target {
		if _, err := c.Next(); err != nil {
			return errors.Wrap(err, "move forward").
				Int("target-index", target).
				Int("reached-index", c.index)
		}
	}

	for c.index > target {
		if _, err := c.Previous(); err != nil {
			return errors.Wrap(err, "move backward").
				Int("target-index", target).
				Int("reached-index", c.index)
		}
	}

	return nil
}
