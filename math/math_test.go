package math

import (
	"math"
	"testing"

	"github.com/db47h/rational"
	"github.com/stretchr/testify/assert"
)

func r(s string) *rational.Rational {
	x, err := rational.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return x
}

func TestPow(t *testing.T) {
	for _, test := range []struct {
		x    string
		n    int64
		want string
	}{
		{"2/3", 0, "1/1"},
		{"0/0", 0, "1/1"},
		{"4/8", 1, "1/2"},
		{"2/3", 2, "4/9"},
		{"-2/3", 3, "-8/27"},
		{"-2/3", 4, "16/81"},
		{"2", 10, "1024/1"},
		{"2", 100, "1267650600228229401496703205376/1"},
		{"2/3", -2, "9/4"},
		{"-2", -3, "-1/8"},
		{"0", 5, "0/1"},
		{"0", -1, "1/0"},
		{"1/0", 2, "1/0"},
		{"-1/0", 3, "-1/0"},
		{"-1/0", 2, "1/0"},
		{"-7/0", -1, "0/1"},
		{"1", math.MinInt64, "1/1"},
		{"-1", math.MinInt64, "1/1"},
	} {
		x := r(test.x)
		got := Pow(new(rational.Rational), x, test.n)
		assert.Equal(t, test.want, got.String(), "%s**%d", test.x, test.n)
		assert.Equal(t, test.x, x.String(), "operand modified")
		// aliased
		assert.Equal(t, test.want, Pow(x, x, test.n).String(), "%s**%d aliased", test.x, test.n)
	}
	assert.Panics(t, func() { Pow(new(rational.Rational), r("0/0"), 1) })
	assert.Panics(t, func() { Pow(new(rational.Rational), r("0/0"), -2) })
}

func TestInv(t *testing.T) {
	for _, test := range []struct{ x, want string }{
		{"3/4", "4/3"},
		{"-4/8", "-2/1"},
		{"6/-4", "-2/3"},
		{"0", "1/0"},
		{"1/0", "0/1"},
		{"-5/0", "0/1"},
	} {
		assert.Equal(t, test.want, Inv(new(rational.Rational), r(test.x)).String(), test.x)
	}
	assert.Panics(t, func() { Inv(new(rational.Rational), r("0/0")) })
}

func TestAbs(t *testing.T) {
	for _, test := range []struct{ x, want string }{
		{"3/4", "3/4"},
		{"-3/4", "3/4"},
		{"6/-4", "6/4"},
		{"-6/-4", "6/4"},
		{"-1/0", "1/0"},
		{"0/0", "0/0"},
	} {
		x := r(test.x)
		assert.Equal(t, test.want, Abs(x, x).String(), test.x)
	}
}

func TestFloorCeil(t *testing.T) {
	for _, test := range []struct{ x, floor, ceil string }{
		{"7/2", "3/1", "4/1"},
		{"-7/2", "-4/1", "-3/1"},
		{"7/-2", "-4/1", "-3/1"},
		{"8/4", "2/1", "2/1"},
		{"-8/4", "-2/1", "-2/1"},
		{"1/3", "0/1", "1/1"},
		{"-1/3", "-1/1", "0/1"},
		{"0", "0/1", "0/1"},
		{"5/0", "1/0", "1/0"},
		{"-5/0", "-1/0", "-1/0"},
		{"0/0", "0/0", "0/0"},
	} {
		assert.Equal(t, test.floor, Floor(new(rational.Rational), r(test.x)).String(), "Floor(%s)", test.x)
		assert.Equal(t, test.ceil, Ceil(new(rational.Rational), r(test.x)).String(), "Ceil(%s)", test.x)
	}
}

func TestMediant(t *testing.T) {
	for _, test := range []struct{ x, y, want string }{
		{"1/2", "1/1", "2/3"},
		{"2/4", "1/1", "3/5"},
		{"0/1", "1/0", "1/1"},
		{"1/3", "1/2", "2/5"},
	} {
		x, y := r(test.x), r(test.y)
		m := Mediant(new(rational.Rational), x, y)
		assert.Equal(t, test.want, m.String(), "mediant(%s, %s)", test.x, test.y)
		if !x.IsInf() && !y.IsInf() {
			lo, hi := x, y
			if lo.Cmp(hi) > 0 {
				lo, hi = hi, lo
			}
			assert.True(t, lo.Cmp(m) <= 0 && m.Cmp(hi) <= 0)
		}
	}
}
