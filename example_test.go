package formula_test

import (
	"fmt"

	"github.com/alexgaiv/formula"
)

func ExampleCompile() {
	prog, err := formula.Compile("2(x+1)")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(prog)
	fmt.Println(prog.Eval(3))
	// Output:
	// 2 x 1 + *
	// 8
}

func ExampleParser() {
	var p formula.Parser
	fmt.Println(p.Parse("3x"))
	fmt.Println(p.Evaluate(2))
	fmt.Println(p.Parse("2+"))
	fmt.Println(p.Evaluate(2))
	// Output:
	// true
	// 6
	// false
	// 0
}

func ExampleProgram_Sample() {
	prog, _ := formula.Compile("x^2")
	for _, pt := range prog.Sample(0, 2, 3) {
		fmt.Printf("%g %g\n", pt.X, pt.Y)
	}
	// Output:
	// 0 0
	// 1 1
	// 2 4
}
