package dllist_test

import (
	"fmt"

	"github.com/sirkon/errors"

	"github.com/sirkon/seqlist/dllist"
	"github.com/sirkon/seqlist/seq"
)

func ExampleDLList() {
	l := dllist.New[int]()
	l.Append(5)
	l.Append(3)
	l.Append(2)

	last, err := l.Get(-1)
	if err != nil {
		panic(errors.Wrap(err, "get last value"))
	}
	fmt.Println(l, last)

	head, err := l.GetSlice(seq.All().To(-1))
	if err != nil {
		panic(errors.Wrap(err, "get all but last"))
	}
	fmt.Println(head)

	picked, err := l.GetMultiple(seq.Index(-1), seq.Index(2))
	if err != nil {
		panic(errors.Wrap(err, "pick values"))
	}
	fmt.Println(picked)

	if _, err := l.Get(3); errors.Is(err, seq.ErrIndexOutOfRange) {
		fmt.Println("no such position")
	}

	for it := l.Iter(); it.Next(); {
		fmt.Print(it.Item(), " ")
	}
	fmt.Println()

	// Output:
	// [5, 3, 2] 2
	// [5, 3]
	// [2, 2]
	// no such position
	// 5 3 2
}
