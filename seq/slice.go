package seq

import (
	"strconv"
	"strings"
)

// Key ключ выборки нескольких элементов: одиночная позиция Index или срез Slice.
type Key interface {
	isKey()
}

// Index одиночная позиция в выборке.
type Index int

func (Index) isKey() {}

// Slice срез с началом, концом и шагом, любой из которых может
// отсутствовать. Семантика совпадает со срезами Python: границы
// могут быть отрицательными и выходить за пределы последовательности,
// шаг может быть отрицательным.
//
// Нулевое значение соответствует срезу всей последовательности.
type Slice struct {
	start int
	stop  int
	step  int

	hasStart bool
	hasStop  bool
	hasStep  bool
}

func (Slice) isKey() {}

// All срез всей последовательности, аналог [:].
func All() Slice {
	return Slice{}
}

// Range срез [start:stop].
func Range(start, stop int) Slice {
	return All().From(start).To(stop)
}

// From задаёт начало среза.
func (s Slice) From(start int) Slice {
	s.start = start
	s.hasStart = true
	return s
}

// To задаёт конец среза, сам конец в срез не входит.
func (s Slice) To(stop int) Slice {
	s.stop = stop
	s.hasStop = true
	return s
}

// By задаёт шаг среза.
func (s Slice) By(step int) Slice {
	s.step = step
	s.hasStep = true
	return s
}

// Indices вычисляет фактические начало, конец и шаг среза для
// последовательности данной длины. Позиции среза это start, start+step, ...
// строго до stop.
func (s Slice) Indices(length int) (start, stop, step int, err error) {
	step = 1
	if s.hasStep {
		if s.step == 0 {
			return 0, 0, 0, ErrZeroSliceStep
		}
		step = s.step
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	if step < 0 {
		start = sliceBound(s.start, s.hasStart, upper, lower, upper, length)
		stop = sliceBound(s.stop, s.hasStop, lower, lower, upper, length)
	} else {
		start = sliceBound(s.start, s.hasStart, lower, lower, upper, length)
		stop = sliceBound(s.stop, s.hasStop, upper, lower, upper, length)
	}

	return start, stop, step, nil
}

// Positions список абсолютных позиций среза в порядке обхода.
func (s Slice) Positions(length int) ([]int, error) {
	start, stop, step, err := s.Indices(length)
	if err != nil {
		return nil, err
	}

	var n int
	switch {
	case step > 0 && start < stop:
		n = (stop-start-1)/step + 1
	case step < 0 && start > stop:
		n = (start-stop-1)/(-step) + 1
	}

	res := make([]int, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, start+i*step)
	}

	return res, nil
}

func (s Slice) String() string {
	var b strings.Builder
	if s.hasStart {
		b.WriteString(strconv.Itoa(s.start))
	}
	b.WriteByte(':')
	if s.hasStop {
		b.WriteString(strconv.Itoa(s.stop))
	}
	if s.hasStep {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(s.step))
	}

	return b.String()
}

func sliceBound(v int, set bool, def, lower, upper, length int) int {
	if !set {
		return def
	}

	if v < 0 {
		v += length
		if v < lower {
			return lower
		}
		return v
	}

	if v > upper {
		return upper
	}

	return v
}
