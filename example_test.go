package callback_test

import (
	"fmt"

	"github.com/smartwalle/callback"
)

func ExampleList() {
	var list = callback.NewList()
	list.AddNamed("upper", callback.Func(func(args ...any) any {
		return fmt.Sprintf("%v!", args[0])
	}))
	list.Add(callback.Action(func(args ...any) {
		fmt.Println("seen", args[0])
	}))

	var results, err = list.Call("hello")
	fmt.Println(results, err)

	list.Remove("upper")
	fmt.Println(list.Len())
	// Output:
	// seen hello
	// [hello! <nil>] <nil>
	// 1
}

func ExampleList_Get() {
	var list = callback.NewList()
	list.AddNamed("a", callback.Func(func(args ...any) any { return 1 }))

	var _, err = list.Get("b")
	fmt.Println(err)
	// Output:
	// callback: "b": handler not found
}
