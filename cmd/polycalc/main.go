// cmd/polycalc — command line front end for gopoly
//
// Usage:
//
//	polycalc demo
//	polycalc show -p 2:4,-1:3,5:1,-5:0
//	polycalc eval -p P1 --x 0,1
//	polycalc mul --a P2 --b 1:1,-1:0
//	polycalc divide --a 10:5 --b 4:2
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
