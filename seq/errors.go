package seq

import "github.com/sirkon/errors"

const (
	// ErrIndexOutOfRange позиция не существует в последовательности данной длины.
	ErrIndexOutOfRange errors.Const = "index out of range"

	// ErrEndOfSequence элементы закончились.
	ErrEndOfSequence errors.Const = "end of sequence"

	// ErrZeroSliceStep шаг среза не может быть нулевым.
	ErrZeroSliceStep errors.Const = "slice step cannot be zero"
)

// OutOfRange ошибка ErrIndexOutOfRange с контекстом.
func OutOfRange(index, length int) error {
	return errors.Wrap(ErrIndexOutOfRange, "check index").
		Int("index", index).
		Int("length", length)
}
