// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package tlca_test

import (
	"errors"
	"testing"

	. "github.com/wdamron/tlca"
	. "github.com/wdamron/tlca/construct"

	"github.com/wdamron/tlca/ast"
	"github.com/wdamron/tlca/values"
)

func TestMatchLiterals(t *testing.T) {
	lines, _ := execute(t, EmptyEnvironment(), Exprs(
		Match(Tuple(Int(1), Str("a")),
			Case(PTuple(PInt(0), PWildcard()), Str("zero")),
			Case(PTuple(PVar("n"), PStr("a")), Str("a")),
			Case(PWildcard(), Str("other")),
		),
		Match(Unit(), Case(PUnit(), Int(5))),
		Match(Bool(true), Case(PBool(false), Int(0)), Case(PBool(true), Int(1))),
		Match(Tuple(Int(2), Int(3)), Case(PTuple(PVar("a"), PVar("b")), Times(Var("a"), Var("b")))),
	))
	checkLines(t, []string{
		`"a": String`,
		"5: Int",
		"1: Int",
		"6: Int",
	}, lines)
}

func TestMatchFailure(t *testing.T) {
	program := Exprs(
		Int(1),
		Match(Int(3), Case(PInt(1), Bool(true)), Case(PInt(2), Bool(false))),
		Int(2),
	)

	results, _, err := Execute(program, EmptyEnvironment())
	var failure *MatchFailureError
	if !errors.As(err, &failure) || failure.Value != values.Int(3) {
		t.Fatalf("expected match failure, found %v", err)
	}
	if err.Error() != "No case matched value 3" {
		t.Fatalf("error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected results of completed statements, found %d", len(results))
	}
}

func TestTuplePatternArity(t *testing.T) {
	expr := Match(Tuple(Int(1), Int(2)), Case(PTuple(PVar("a"), PVar("b"), PVar("c")), Var("a")))

	_, _, err := Execute(Exprs(expr), EmptyEnvironment())
	var unify *UnificationError
	if !errors.As(err, &unify) {
		t.Fatalf("expected unification error, found %v", err)
	}
}

func TestDivisionByZero(t *testing.T) {
	_, env, err := Execute(Exprs(
		Let([]ast.Decl{Decl("x", Int(1))}, nil),
		Divide(Var("x"), Int(0)),
	), EmptyEnvironment())
	var div *DivisionByZeroError
	if !errors.As(err, &div) {
		t.Fatalf("expected division by zero, found %v", err)
	}
	if v, ok := env.Runtime.Lookup("x"); !ok || v != values.Int(1) {
		t.Fatalf("expected environment after the last successful statement")
	}
}

func TestUninitializedRecursiveValue(t *testing.T) {
	group := LetRec([]ast.Decl{Decl("a", Var("b")), Decl("b", Int(1))}, nil)

	_, _, err := Execute(Exprs(group), EmptyEnvironment())
	var uninit *UninitializedValueError
	if !errors.As(err, &uninit) || uninit.Name != "b" {
		t.Fatalf("expected uninitialized value error, found %v", err)
	}

	// Forward references within functions resolve once the group is bound:
	group = LetRec([]ast.Decl{FuncDecl("a", []string{"x"}, App(Var("b"), Var("x"))), Decl("b", Lam1("y", Var("y")))}, nil)
	lines, _ := execute(t, EmptyEnvironment(), Exprs(group, App(Var("a"), Int(7))))
	checkLines(t, []string{
		"a = function: V5 -> V5",
		"b = function: V5 -> V5",
		"7: Int",
	}, lines)
}

func TestLetScope(t *testing.T) {
	_, _, err := Execute(Exprs(
		Let([]ast.Decl{Decl("z", Int(1))}, Var("z")),
		Var("z"),
	), EmptyEnvironment())
	var unknown *UnknownNameError
	if !errors.As(err, &unknown) || unknown.Name != "z" {
		t.Fatalf("expected unknown name error, found %v", err)
	}
	if err.Error() != "Variable z not found" {
		t.Fatalf("error: %v", err)
	}
}

func TestLiteralRoundTrip(t *testing.T) {
	literals := []struct {
		expr  ast.Expr
		value values.Value
		ty    string
	}{
		{Int(42), values.Int(42), "Int"},
		{Bool(false), values.Bool(false), "Bool"},
		{Str("abc"), values.String("abc"), "String"},
		{Unit(), values.Unit{}, "()"},
	}
	for _, lit := range literals {
		v, err := Evaluate(lit.expr, values.NewEnv())
		if err != nil {
			t.Fatal(err)
		}
		if !values.Equal(v, lit.value) {
			t.Fatalf("value: %s", values.ValueString(v, nil))
		}
		results, _, err := Execute(Exprs(lit.expr), EmptyEnvironment())
		if err != nil {
			t.Fatal(err)
		}
		if s := results[0].Lines()[0]; s != values.ValueString(lit.value, nil)+": "+lit.ty {
			t.Fatalf("result: %s", s)
		}
	}
}

func TestBuiltins(t *testing.T) {
	lines, _ := execute(t, DefaultEnvironment(), Exprs(
		App(Var("string_length"), Str("héllo")),
		App(Var("string_concat"), Str("a"), Str("b")),
		App(Var("string_concat"), Str("a")),
		App(Var("string_substring"), Str("hello"), Int(1), Int(3)),
		App(Var("string_substring"), Str("hello"), Int(3), Int(1)),
		App(Var("string_substring"), Str("hello"), Int(-2), Int(10)),
		App(Var("string_equal"), Str("a"), Str("a")),
		App(Var("string_equal"), Str("a"), Str("b")),
		App(Var("string_compare"), Str("a"), Str("b")),
		App(Var("string_compare"), Str("b"), Str("b")),
		App(Var("string_compare"), Str("b"), Str("a")),
		Var("string_substring"),
	))
	checkLines(t, []string{
		"5: Int",
		`"ab": String`,
		"function: String -> String",
		`"el": String`,
		`"": String`,
		`"hello": String`,
		"true: Bool",
		"false: Bool",
		"-1: Int",
		"0: Int",
		"1: Int",
		"function: String -> Int -> Int -> String",
	}, lines)
}

func TestBuiltinTypeErrors(t *testing.T) {
	_, _, err := Execute(Exprs(App(Var("string_length"), Int(1))), DefaultEnvironment())
	var unify *UnificationError
	if !errors.As(err, &unify) {
		t.Fatalf("expected unification error, found %v", err)
	}
}
