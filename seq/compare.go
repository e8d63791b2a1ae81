package seq

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/slices"
)

// Equal проверка равенства последовательности s и other. Равными считаются
// последовательности одинаковой длины с попарно равными элементами.
// В качестве other принимаются Sequence[T] и []T, всё остальное не равно s.
func Equal[T comparable](s Sequence[T], other any) bool {
	return EqualFunc(s, other, func(a, b T) bool {
		return a == b
	})
}

// EqualFunc то же, что и Equal, но с заданным сравнением элементов.
func EqualFunc[T any](s Sequence[T], other any, eq func(a, b T) bool) bool {
	switch v := other.(type) {
	case Sequence[T]:
		if isNilPointer(v) || s.Len() != v.Len() {
			return false
		}

		a := s.Iter()
		b := v.Iter()
		for a.Next() {
			if !b.Next() {
				return false
			}
			if !eq(a.Item(), b.Item()) {
				return false
			}
		}

		return !b.Next()

	case []T:
		if s.Len() != len(v) {
			return false
		}

		return slices.EqualFunc(Collect(s), v, eq)

	default:
		return false
	}
}

// isNilPointer типизированный nil в интерфейсе, например (*dllist.DLList[int])(nil).
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Collect копирует значения последовательности в слайс.
func Collect[T any](s Sequence[T]) []T {
	res := make([]T, 0, s.Len())
	for it := s.Iter(); it.Next(); {
		res = append(res, it.Item())
	}

	return res
}

// Render строковое представление вида [5, 3, 2].
func Render[T any](it Iterator[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	var notFirst bool
	for it.Next() {
		if notFirst {
			b.WriteString(", ")
		}
		notFirst = true
		_, _ = fmt.Fprint(&b, it.Item())
	}
	b.WriteByte(']')

	return b.String()
}
