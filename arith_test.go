// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "testing"

func TestFloorDivSignRules(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
	}
	for _, c := range cases {
		if got := floorDivInt(c.a, c.b); got != c.want {
			t.Errorf("floorDivInt(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestModSignRules(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{7, 2, 1},
		{-7, 2, 1},
		{7, -2, -1},
		{-7, -2, -1},
	}
	for _, c := range cases {
		if got := modInt(c.a, c.b); got != c.want {
			t.Errorf("modInt(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestIntPowSquareAndMultiply(t *testing.T) {
	cases := []struct{ base, exp, want int64 }{
		{2, 0, 1},
		{2, 10, 1024},
		{3, 5, 243},
		{5, 1, 5},
	}
	for _, c := range cases {
		if got := intPow(c.base, c.exp); got != c.want {
			t.Errorf("intPow(%d, %d) = %d, want %d", c.base, c.exp, got, c.want)
		}
	}
}

func TestAddPromotesToFloat(t *testing.T) {
	rt := InitRuntime()
	sum := Add(rt, newInt(rt, 1), newFloat(rt, 2.5))
	if TagOf(sum) != TagFloat {
		t.Fatalf("expected float result, got tag %v", TagOf(sum))
	}
	if FloatValue(sum) != 3.5 {
		t.Fatalf("got %v, want 3.5", FloatValue(sum))
	}
}

func TestAddIntStaysInt(t *testing.T) {
	rt := InitRuntime()
	sum := Add(rt, newInt(rt, 1), newInt(rt, 2))
	if TagOf(sum) != TagInt {
		t.Fatalf("expected int result, got tag %v", TagOf(sum))
	}
	if IntValue(sum) != 3 {
		t.Fatalf("got %d, want 3", IntValue(sum))
	}
}

func TestDivisionByZeroAborts(t *testing.T) {
	rt := InitRuntime()
	oldExit := exit
	defer func() { exit = oldExit }()
	aborted := false
	exit = func(int) { aborted = true; panic("abort") }
	defer func() {
		recover()
		if !aborted {
			t.Fatal("expected division by zero to abort")
		}
	}()
	TrueDiv(rt, newInt(rt, 1), newInt(rt, 0))
}

func TestBoolParticipatesInArithmeticAsInt(t *testing.T) {
	rt := InitRuntime()
	sum := Add(rt, rt.trueValue, newInt(rt, 1))
	if TagOf(sum) != TagInt {
		t.Fatalf("expected int result, got tag %v", TagOf(sum))
	}
	if IntValue(sum) != 2 {
		t.Fatalf("True + 1 = %d, want 2", IntValue(sum))
	}
	if !Eq(rt, rt.falseValue, newInt(rt, 0)) {
		t.Fatal("expected False to equal 0")
	}
}

func TestCastToIntAndFloat(t *testing.T) {
	rt := InitRuntime()
	if got := IntValue(CastToInt(rt, newFloat(rt, 3.9))); got != 3 {
		t.Fatalf("CastToInt(3.9) = %d, want 3", got)
	}
	if got := IntValue(CastToInt(rt, rt.trueValue)); got != 1 {
		t.Fatalf("CastToInt(True) = %d, want 1", got)
	}
	if got := IntValue(CastToInt(rt, newString(rt, "42"))); got != 42 {
		t.Fatalf(`CastToInt("42") = %d, want 42`, got)
	}
	if got := FloatValue(CastToFloat(rt, newInt(rt, 7))); got != 7.0 {
		t.Fatalf("CastToFloat(7) = %v, want 7.0", got)
	}
	if got := FloatValue(CastToFloat(rt, newString(rt, "1.5"))); got != 1.5 {
		t.Fatalf(`CastToFloat("1.5") = %v, want 1.5`, got)
	}
}

func TestComparisons(t *testing.T) {
	rt := InitRuntime()
	a := newInt(rt, 3)
	b := newInt(rt, 5)
	if !Lt(a, b) || Lt(b, a) {
		t.Fatal("Lt failed basic ordering")
	}
	if !Le(a, a) || !Ge(a, a) {
		t.Fatal("Le/Ge failed reflexivity")
	}
	if !Eq(rt, newInt(rt, 2), newFloat(rt, 2.0)) {
		t.Fatal("expected int 2 to equal float 2.0")
	}
}
