package seq

// IndexOf позиция первого элемента равного v или -1 если такого нет.
func IndexOf[T comparable](s Sequence[T], v T) int {
	var i int
	for it := s.Iter(); it.Next(); i++ {
		if it.Item() == v {
			return i
		}
	}

	return -1
}

// Contains проверка наличия элемента равного v.
func Contains[T comparable](s Sequence[T], v T) bool {
	return IndexOf(s, v) >= 0
}

// Count количество элементов равных v.
func Count[T comparable](s Sequence[T], v T) int {
	var n int
	for it := s.Iter(); it.Next(); {
		if it.Item() == v {
			n++
		}
	}

	return n
}
