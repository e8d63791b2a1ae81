// Package arrseq последовательность поверх слайса с тем же контрактом,
// что и у двусвязного списка.
package arrseq

import (
	"github.com/sirkon/errors"
	"golang.org/x/exp/slices"

	"github.com/sirkon/seqlist/seq"
)

var _ seq.Sequence[int] = (*Array[int])(nil)

// New конструктор пустого массива.
func New[T any](opts ...Opt) *Array[T] {
	var c config
	for _, opt := range opts {
		opt(&c, optRestriction{})
	}

	return &Array[T]{
		items: make([]T, 0, c.capacity),
	}
}

// From создание массива из копии данных значений.
func From[T any](values ...T) *Array[T] {
	return &Array[T]{
		items: slices.Clone(values),
	}
}

// Array последовательность на слайсе, доступ по позиции за O(1).
//
// В отличие от dllist.DLList запись на позицию меняет значение на месте.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Array[T any] struct {
	items []T
}

// Len количество элементов.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Add добавление значения в конец.
func (a *Array[T]) Add(v T) {
	a.items = append(a.items, v)
}

// Get значение на данной позиции, отрицательные отсчитываются от конца.
func (a *Array[T]) Get(index int) (T, error) {
	pos, err := seq.Position(index, len(a.items))
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "resolve position")
	}

	return a.items[pos], nil
}

// Set запись значения на данную позицию, позиция равная длине означает
// добавление в конец.
func (a *Array[T]) Set(index int, v T) error {
	switch {
	case index == len(a.items):
		a.Add(v)
		return nil
	case index > len(a.items):
		return seq.OutOfRange(index, len(a.items))
	}

	pos, err := seq.Position(index, len(a.items))
	if err != nil {
		return errors.Wrap(err, "resolve position")
	}

	a.items[pos] = v
	return nil
}

// Insert то же самое, что и Set.
func (a *Array[T]) Insert(index int, v T) error {
	return a.Set(index, v)
}

// InsertBefore вставка со сдвигом последующих элементов.
func (a *Array[T]) InsertBefore(index int, v T) error {
	if index == len(a.items) {
		a.Add(v)
		return nil
	}

	pos, err := seq.Position(index, len(a.items))
	if err != nil {
		return errors.Wrap(err, "resolve position")
	}

	a.items = slices.Insert(a.items, pos, v)
	return nil
}

// Delete удаление элемента на данной позиции.
func (a *Array[T]) Delete(index int) error {
	pos, err := seq.Position(index, len(a.items))
	if err != nil {
		return errors.Wrap(err, "resolve position")
	}

	last := len(a.items) - 1
	a.items = slices.Delete(a.items, pos, pos+1)

	// Освобождаем хвост, чтобы GC мог забрать значение.
	var zero T
	a.items[:last+1][last] = zero

	return nil
}

// GetSlice новый массив из элементов попадающих в срез.
func (a *Array[T]) GetSlice(s seq.Slice) (*Array[T], error) {
	positions, err := s.Positions(len(a.items))
	if err != nil {
		return nil, errors.Wrap(err, "compute slice positions").Stg("slice", s)
	}

	res := New[T](WithCapacity(len(positions)))
	for _, pos := range positions {
		res.items = append(res.items, a.items[pos])
	}

	return res, nil
}

// GetMultiple новый массив из результатов выборки по каждому из ключей.
func (a *Array[T]) GetMultiple(keys ...seq.Key) (*Array[T], error) {
	res := New[T]()
	for i, key := range keys {
		switch k := key.(type) {
		case seq.Index:
			v, err := a.Get(int(k))
			if err != nil {
				return nil, errors.Wrap(err, "get value by index").Int("key-no", i)
			}
			res.Add(v)

		case seq.Slice:
			part, err := a.GetSlice(k)
			if err != nil {
				return nil, errors.Wrap(err, "get values by slice").Int("key-no", i)
			}
			res.items = append(res.items, part.items...)

		default:
			return nil, errors.New("unsupported key").Int("key-no", i).Any("invalid-key", key)
		}
	}

	return res, nil
}

// Iter итератор по значениям.
func (a *Array[T]) Iter() seq.Iterator[T] {
	return &iterator[T]{
		items: a.items,
		pos:   -1,
	}
}

func (a *Array[T]) String() string {
	return seq.Render(a.Iter())
}

type iterator[T any] struct {
	items []T
	pos   int
}

func (it *iterator[T]) Next() bool {
	if it.pos+1 >= len(it.items) {
		return false
	}

	it.pos++
	return true
}

func (it *iterator[T]) Item() T {
	return it.items[it.pos]
}
