package seq

// Position переводит позицию, возможно отрицательную, в абсолютную
// для последовательности данной длины.
func Position(index, length int) (int, error) {
	pos := index
	if index < 0 {
		pos = length + index
	}

	if pos < 0 || pos >= length {
		return 0, OutOfRange(index, length)
	}

	return pos, nil
}
