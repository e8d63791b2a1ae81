package dllist

import (
	"testing"

	"github.com/sirkon/errors"

	"github.com/sirkon/seqlist/internal/tlog"
	"github.com/sirkon/seqlist/seq"
)

func TestCursorNext(t *testing.T) {
	c, err := exampleList().Cursor()
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "get cursor"))
		return
	}

	for i, want := range []int{5, 3, 2} {
		got, err := c.Next()
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "next value").Int("step", i))
			return
		}
		if got != want {
			t.Errorf("unexpected value %d at step %d, want %d", got, i, want)
		}
	}

	_, err = c.Next()
	tlog.Expect(t, err, seq.ErrEndOfSequence)
	_, err = c.Value()
	tlog.Expect(t, err, seq.ErrEndOfSequence)
	_, err = c.Previous()
	tlog.Expect(t, err, seq.ErrEndOfSequence)
}

func TestCursorEmpty(t *testing.T) {
	c, err := New[int]().Cursor()
	tlog.Expect(t, err, seq.ErrEndOfSequence)
	if c != nil {
		t.Error("no cursor must be given for an empty list")
	}
}

func TestCursorMoveTo(t *testing.T) {
	c, err := From(10, 11, 12, 13, 14).Cursor()
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "get cursor"))
		return
	}

	for _, target := range []int{3, 1, 4, 0, 2, 2} {
		if err := c.MoveTo(target); err != nil {
			tlog.Error(t, errors.Wrap(err, "move cursor").Int("target", target))
			return
		}
		if c.Index() != target {
			t.Errorf("unexpected cursor index %d, want %d", c.Index(), target)
		}

		v, err := c.Value()
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "get value under cursor"))
			return
		}
		if v != 10+target {
			t.Errorf("unexpected value %d at %d", v, target)
		}
	}

	tlog.Expect(t, c.MoveTo(7), seq.ErrEndOfSequence)
}

func TestCursorPrevious(t *testing.T) {
	c, err := exampleList().Cursor()
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "get cursor"))
		return
	}
	if err := c.MoveTo(2); err != nil {
		tlog.Error(t, errors.Wrap(err, "move to the end"))
		return
	}

	var got []int
	for {
		v, err := c.Previous()
		if err != nil {
			tlog.Expect(t, err, seq.ErrEndOfSequence)
			break
		}
		got = append(got, v)
	}

	if !seq.Equal[int](From(got...), []int{2, 3, 5}) {
		t.Errorf("unexpected backward walk %v", got)
	}
	if c.Index() != -1 {
		t.Errorf("unexpected index %d after walking off the start", c.Index())
	}
}
