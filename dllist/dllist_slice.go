package dllist

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/seqlist/seq"
)

// GetSlice новый список из элементов попадающих в срез s.
func (l *DLList[T]) GetSlice(s seq.Slice) (*DLList[T], error) {
	positions, err := s.Positions(l.size)
	if err != nil {
		return nil, errors.Wrap(err, "compute slice positions").Stg("slice", s)
	}

	res := New[T]()
	if len(positions) == 0 {
		return res, nil
	}

	c, err := l.Cursor()
	if err != nil {
		return nil, errors.Wrap(err, "get cursor")
	}

	for _, pos := range positions {
		if err := c.MoveTo(pos); err != nil {
			return nil, errors.Wrap(err, "move cursor to the slice position")
		}

		v, err := c.Value()
		if err != nil {
			return nil, errors.Wrap(err, "take value under the cursor").Int("position", pos)
		}
		res.Push(v)
	}

	return res, nil
}

// GetMultiple новый список из результатов выборки по каждому из ключей,
// в порядке ключей.
func (l *DLList[T]) GetMultiple(keys ...seq.Key) (*DLList[T], error) {
	res := New[T]()
	for i, key := range keys {
		switch k := key.(type) {
		case seq.Index:
			v, err := l.Get(int(k))
			if err != nil {
				return nil, errors.Wrap(err, "get value by index").Int("key-no", i)
			}
			res.Push(v)

		case seq.Slice:
			part, err := l.GetSlice(k)
			if err != nil {
				return nil, errors.Wrap(err, "get values by slice").Int("key-no", i)
			}
			res.takeOver(part)

		default:
			return nil, errors.New("unsupported key").Int("key-no", i).Any("invalid-key", key)
		}
	}

	return res, nil
}
