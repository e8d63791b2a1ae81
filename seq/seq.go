// Package seq описывает абстракцию индексируемой изменяемой последовательности
// и общие для её реализаций вещи: разрешение позиций, срезы, ошибки,
// сравнение и строковое представление.
package seq

import "fmt"

// Sequence абстракция последовательности с доступом по позиции.
//
// Отрицательные позиции отсчитываются от конца: -1 — последний элемент.
// Реализации не предоставляют гарантий безопасности при многопоточном доступе.
type Sequence[T any] interface {
	fmt.Stringer

	// Len возвращает количество элементов.
	Len() int

	// Iter возвращает итератор по элементам от первого к последнему.
	Iter() Iterator[T]

	// Get возвращает значение на данной позиции.
	Get(index int) (T, error)

	// Set записывает значение на данную позицию. Запись на позицию
	// равную длине последовательности добавляет значение в конец.
	Set(index int, value T) error

	// Delete удаляет элемент на данной позиции.
	Delete(index int) error

	// Add добавляет значение в конец.
	Add(value T)
}

// Iterator итератор по последовательности для использования в цикле:
//
//	for it := s.Iter(); it.Next(); {
//	    v := it.Item()
//	}
type Iterator[T any] interface {
	// Next переходит к следующему элементу, возвращает false если элементы закончились.
	Next() bool

	// Item значение текущего элемента. Вызывать только после Next вернувшего true.
	Item() T
}
