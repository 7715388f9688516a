// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets_test

import (
	"fmt"

	"github.com/erwanm/petrikripke"
)

// This example shows the basic usage of the package: build a small net by
// hand and print the result. Note that we print the number of places and
// transitions of the net as a comment.
func Example_basic() {
	net := &nets.Net{Name: "mutex"}
	free := net.AddPlace("free", "")
	cs1 := net.AddPlace("cs1", "")
	cs2 := net.AddPlace("cs2", "")
	net.AddTransition("enter1", "enter", nets.Marking{{Pl: free, Mult: 1}}, nets.Marking{{Pl: cs1, Mult: 1}})
	net.AddTransition("leave1", "leave", nets.Marking{{Pl: cs1, Mult: 1}}, nets.Marking{{Pl: free, Mult: 1}})
	net.AddTransition("enter2", "enter", nets.Marking{{Pl: free, Mult: 1}}, nets.Marking{{Pl: cs2, Mult: 1}})
	net.AddTransition("leave2", "leave", nets.Marking{{Pl: cs2, Mult: 1}}, nets.Marking{{Pl: free, Mult: 1}})
	net.Initial = nets.Marking{{Pl: free, Mult: 1}}

	fmt.Printf("%s", net)
	// Output:
	// #
	// # net mutex
	// # 3 places, 4 transitions
	// #
	//
	// pl free (1)
	// pl cs1
	// pl cs2
	// tr enter1 : enter free -> cs1
	// tr leave1 : leave cs1 -> free
	// tr enter2 : enter free -> cs2
	// tr leave2 : leave cs2 -> free
}

// This example shows how TryFire reports a disabled transition without
// mutating the marking it was given.
func Example_tryFire() {
	net := &nets.Net{Name: "toy"}
	p0 := net.AddPlace("p0", "")
	p1 := net.AddPlace("p1", "")
	net.AddTransition("t0", "", nets.Marking{{Pl: p0, Mult: 1}}, nets.Marking{{Pl: p1, Mult: 1}})

	empty := nets.Marking{}
	if _, ok := net.TryFire(empty, 0); ok {
		fmt.Println("t0 should not be enabled at the empty marking")
	}

	m := nets.Marking{{Pl: p0, Mult: 1}}
	next, ok := net.TryFire(m, 0)
	fmt.Println(ok, next, m)
	// Output:
	// true [{1 1}] [{0 1}]
}
