// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational_test

import (
	"fmt"

	"github.com/db47h/rational"
)

func Example() {
	third, _ := rational.NewFromParts("1", "3")
	f, _ := third.Float64()
	fmt.Println(third, third.EqualFloat64(1.0/3), f == 1.0/3)
	// Output:
	// 1/3 false true
}

func ExampleNewFromFloat64() {
	fmt.Println(rational.NewFromFloat64(0.1))
	fmt.Println(rational.NewFromFloat64(-0.75))
	// Output:
	// 3602879701896397/36028797018963968
	// -3/4
}

func ExampleRational_Canonicalize() {
	x, _ := rational.NewFromString("4/-8")
	fmt.Println(x)
	fmt.Println(x.Canonicalize())
	// Output:
	// 4/-8
	// -1/2
}

func ExampleRational_Quo() {
	x := rational.NewFromInt64(3)
	zero := new(rational.Rational)
	inf := new(rational.Rational).Quo(x, zero)
	fmt.Println(inf, inf.IsInf(), inf.Cmp(x))
	fmt.Println(new(rational.Rational).Quo(x, inf))
	// Output:
	// 1/0 true 1
	// 0/1
}

func ExampleRational_Num() {
	x, _ := rational.NewFromString("-36893488147419103232/6")
	if _, err := x.NumInt64(); err != nil {
		fmt.Println(err)
	}
	fmt.Println(x.Num(), x.Denom())
	// Output:
	// rational: -36893488147419103232 does not fit in an int64: value out of range
	// -36893488147419103232 6
}

func ExampleParseError() {
	_, err := rational.NewFromString("1/2/3")
	fmt.Println(err)
	// Output:
	// rational: invalid literal "1/2/3": trailing characters in "/3"
}
