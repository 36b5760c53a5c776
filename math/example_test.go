package math_test

import (
	"fmt"

	"github.com/db47h/rational"
	"github.com/db47h/rational/math"
)

// Successive mediants of 0/1 and 1/0 walk down the Stern-Brocot tree towards
// any positive rational.
func ExampleMediant() {
	target := rational.NewFromFloat64(0.375)
	lo, hi := rational.NewFromInt64(0), new(rational.Rational).SetFrac64(1, 0)
	for {
		m := math.Mediant(new(rational.Rational), lo, hi)
		fmt.Print(m, " ")
		c := m.Cmp(target)
		if c == 0 {
			break
		}
		if c < 0 {
			lo = m
		} else {
			hi = m
		}
	}
	fmt.Println()
	// Output:
	// 1/1 1/2 1/3 2/5 3/8
}

func ExamplePow() {
	x := rational.NewFromInt64(-2)
	fmt.Println(math.Pow(new(rational.Rational), x, 5), math.Pow(new(rational.Rational), x, -5))
	// Output:
	// -32/1 -1/32
}
