package dllist

import (
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"

	"github.com/sirkon/seqlist/internal/tlog"
	"github.com/sirkon/seqlist/seq"
)

func TestGetSlice(t *testing.T) {
	tests := []struct {
		name  string
		slice seq.Slice
		want  []int
	}{
		{name: "from-0", slice: seq.All().From(0), want: []int{5, 3, 2}},
		{name: "0-3", slice: seq.Range(0, 3), want: []int{5, 3, 2}},
		{name: "from-1", slice: seq.All().From(1), want: []int{3, 2}},
		{name: "1-2", slice: seq.Range(1, 2), want: []int{3}},
		{name: "all-but-last", slice: seq.All().To(-1), want: []int{5, 3}},
		{name: "reversed", slice: seq.All().By(-1), want: []int{2, 3, 5}},
		{name: "every-second", slice: seq.All().By(2), want: []int{5, 2}},
		{name: "reversed-from-middle", slice: seq.All().From(1).By(-1), want: []int{3, 5}},
		{name: "empty", slice: seq.Range(2, 1), want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := exampleList()
			got, err := l.GetSlice(tt.slice)
			if err != nil {
				tlog.Error(t, errors.Wrap(err, "get slice"))
				return
			}

			checkLinks(t, got)
			deepequal.SideBySide(t, "values", tt.want, seq.Collect[int](got))
			deepequal.SideBySide(t, "source", []int{5, 3, 2}, seq.Collect[int](l))
		})
	}

	t.Run("full-range-round-trip", func(t *testing.T) {
		l := From(1, 2, 3, 4, 5, 6)
		got, err := l.GetSlice(seq.Range(0, l.Len()))
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "get slice"))
			return
		}
		if !seq.Equal[int](l, got) {
			t.Errorf("full slice %s must be equal to the source %s", got, l)
		}
		if got.First() == l.First() {
			t.Error("slice must not share nodes with the source")
		}
	})

	t.Run("zero-step", func(t *testing.T) {
		_, err := exampleList().GetSlice(seq.All().By(0))
		tlog.Expect(t, err, seq.ErrZeroSliceStep)
	})

	t.Run("empty-source", func(t *testing.T) {
		got, err := New[int]().GetSlice(seq.All())
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "get slice of empty list"))
			return
		}
		if got.Len() != 0 {
			t.Errorf("unexpected slice length %d", got.Len())
		}
	})
}

func TestGetMultiple(t *testing.T) {
	tests := []struct {
		name string
		keys []seq.Key
		want []int
	}{
		{name: "0-1", keys: []seq.Key{seq.Index(0), seq.Index(1)}, want: []int{5, 3}},
		{name: "1-2", keys: []seq.Key{seq.Index(1), seq.Index(2)}, want: []int{3, 2}},
		{name: "last-twice", keys: []seq.Key{seq.Index(-1), seq.Index(2)}, want: []int{2, 2}},
		{name: "mixed", keys: []seq.Key{seq.Index(0), seq.All().From(1), seq.All().By(-1)}, want: []int{5, 3, 2, 2, 3, 5}},
		{name: "none", keys: nil, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exampleList().GetMultiple(tt.keys...)
			if err != nil {
				tlog.Error(t, errors.Wrap(err, "get multiple"))
				return
			}

			checkLinks(t, got)
			deepequal.SideBySide(t, "values", tt.want, seq.Collect[int](got))
		})
	}

	t.Run("out-of-range", func(t *testing.T) {
		_, err := exampleList().GetMultiple(seq.Index(0), seq.Index(3))
		tlog.Expect(t, err, seq.ErrIndexOutOfRange)
	})

	t.Run("nil-key", func(t *testing.T) {
		_, err := exampleList().GetMultiple(nil)
		if err == nil {
			t.Error("nil key must be rejected")
			return
		}
		tlog.Log(t, err)
	})
}
