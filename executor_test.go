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
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	. "github.com/wdamron/tlca"
	. "github.com/wdamron/tlca/construct"

	"github.com/wdamron/tlca/ast"
	"github.com/wdamron/tlca/types"
)

func execute(t *testing.T, env Environment, program ast.Program) ([]string, Environment) {
	t.Helper()
	results, env, err := Execute(program, env)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, spew.Sdump(program))
	}
	var lines []string
	for _, r := range results {
		lines = append(lines, r.Lines()...)
	}
	return lines, env
}

func checkLines(t *testing.T, expected, actual []string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("expected %d lines, found %d:\n%s", len(expected), len(actual), strings.Join(actual, "\n"))
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Fatalf("line %d: expected %q, found %q", i, expected[i], actual[i])
		}
	}
	for _, line := range actual {
		t.Logf("%s", line)
	}
}

func TestApplication(t *testing.T) {
	add := Lam([]string{"a", "b"}, Plus(Var("a"), Var("b")))

	exprString := ast.ExprString(App(add, Int(10), Int(20)))
	if exprString != `(\a -> \b -> a + b) 10 20` {
		t.Fatalf("expr: %s", exprString)
	}

	lines, _ := execute(t, EmptyEnvironment(), Exprs(App(add, Int(10), Int(20)), add))
	checkLines(t, []string{
		"30: Int",
		"function: Int -> Int -> Int",
	}, lines)
}

func TestConditional(t *testing.T) {
	lines, _ := execute(t, EmptyEnvironment(), Exprs(
		If(Bool(true), Int(1), Int(2)),
		If(Bool(false), Int(1), Int(2)),
	))
	checkLines(t, []string{"1: Int", "2: Int"}, lines)
}

func TestLiterals(t *testing.T) {
	lines, _ := execute(t, EmptyEnvironment(), Exprs(
		Bool(true),
		Int(123),
		Str(`a "quoted" \ string`),
		Unit(),
		Tuple(Int(1), Bool(false), Str("x")),
	))
	checkLines(t, []string{
		"true: Bool",
		"123: Int",
		`"a \"quoted\" \\ string": String`,
		"(): ()",
		`(1, false, "x"): (Int * Bool * String)`,
	}, lines)
}

func TestOperators(t *testing.T) {
	lines, _ := execute(t, EmptyEnvironment(), Exprs(
		Equals(Int(1), Int(2)),
		Equals(Int(2), Int(2)),
		Plus(Int(3), Int(2)),
		Minus(Int(3), Int(2)),
		Times(Int(3), Int(2)),
		Divide(Int(9), Int(2)),
		Divide(Int(-9), Int(2)),
	))
	checkLines(t, []string{
		"false: Bool",
		"true: Bool",
		"5: Int",
		"1: Int",
		"6: Int",
		"4: Int",
		"-4: Int",
	}, lines)
}

func TestLetGroup(t *testing.T) {
	group := Let([]ast.Decl{
		FuncDecl("add", []string{"a", "b"}, Plus(Var("a"), Var("b"))),
		Decl("incr", App(Var("add"), Int(1))),
	}, nil)

	exprString := ast.ExprString(group)
	if exprString != `let add = \a -> \b -> a + b and incr = add 1` {
		t.Fatalf("expr: %s", exprString)
	}

	lines, env := execute(t, EmptyEnvironment(), Exprs(group, App(Var("incr"), Int(10))))
	checkLines(t, []string{
		"add = function: Int -> Int -> Int",
		"incr = function: Int -> Int",
		"11: Int",
	}, lines)

	sc, ok := env.Types.Lookup("incr")
	if !ok || types.SchemeString(sc) != "Int -> Int" {
		t.Fatalf("expected incr to be declared in the type-environment")
	}
	if _, ok := env.Runtime.Lookup("add"); !ok {
		t.Fatalf("expected add to be declared in the runtime environment")
	}
}

func TestLetWithBody(t *testing.T) {
	expr := Let([]ast.Decl{Decl("x", Int(1))}, Plus(Var("x"), Int(1)))

	results, env, err := Execute(Exprs(expr), EmptyEnvironment())
	if err != nil {
		t.Fatal(err)
	}
	checkLines(t, []string{"2: Int"}, results[0].Lines())
	if _, ok := env.Types.Lookup("x"); ok {
		t.Fatalf("expected let-binding with a body to leave the type-environment unchanged")
	}
	if _, ok := env.Runtime.Lookup("x"); ok {
		t.Fatalf("expected let-binding with a body to leave the runtime environment unchanged")
	}
}

func TestTopLevelBinding(t *testing.T) {
	lines, _ := execute(t, EmptyEnvironment(), Exprs(
		Let([]ast.Decl{Decl("x", Int(1))}, nil),
		Var("x"),
	))
	checkLines(t, []string{"x = 1: Int", "1: Int"}, lines)
}

func TestPolymorphicInstantiation(t *testing.T) {
	lines, _ := execute(t, EmptyEnvironment(), Exprs(
		Let([]ast.Decl{Decl("x", Lam1("a", Var("a")))}, nil),
		Var("x"),
	))
	checkLines(t, []string{
		"x = function: V1 -> V1",
		"function: V2 -> V2",
	}, lines)
}

func TestLetPolymorphism(t *testing.T) {
	expr := Let([]ast.Decl{Decl("id", Lam1("x", Var("x")))},
		Tuple(App(Var("id"), Int(1)), App(Var("id"), Bool(true))))

	lines, _ := execute(t, EmptyEnvironment(), Exprs(expr))
	checkLines(t, []string{"(1, true): (Int * Bool)"}, lines)
}

func factorial() *ast.LetRec {
	return LetRec([]ast.Decl{
		FuncDecl("fact", []string{"n"},
			If(Equals(Var("n"), Int(0)),
				Int(1),
				Times(Var("n"), App(Var("fact"), Minus(Var("n"), Int(1)))))),
	}, nil)
}

func TestRecursiveLet(t *testing.T) {
	exprString := ast.ExprString(factorial())
	if exprString != `let rec fact = \n -> if (n == 0) 1 else (n * (fact (n - 1)))` {
		t.Fatalf("expr: %s", exprString)
	}

	lines, _ := execute(t, EmptyEnvironment(), Exprs(
		factorial(),
		App(Var("fact"), Int(5)),
		Var("fact"),
	))
	checkLines(t, []string{
		"fact = function: Int -> Int",
		"120: Int",
		"function: Int -> Int",
	}, lines)
}

func TestMutuallyRecursiveLet(t *testing.T) {
	group := LetRec([]ast.Decl{
		FuncDecl("isOdd", []string{"n"},
			If(Equals(Var("n"), Int(0)), Bool(false), App(Var("isEven"), Minus(Var("n"), Int(1))))),
		FuncDecl("isEven", []string{"n"},
			If(Equals(Var("n"), Int(0)), Bool(true), App(Var("isOdd"), Minus(Var("n"), Int(1))))),
	}, nil)

	lines, _ := execute(t, EmptyEnvironment(), Exprs(
		group,
		App(Var("isEven"), Int(5)),
		App(Var("isOdd"), Int(5)),
	))
	checkLines(t, []string{
		"isOdd = function: Int -> Bool",
		"isEven = function: Int -> Bool",
		"false: Bool",
		"true: Bool",
	}, lines)
}

func TestRecursiveLetWithBody(t *testing.T) {
	expr := LetRec([]ast.Decl{FuncDecl("f", []string{"x"}, Var("x"))},
		Tuple(App(Var("f"), Int(1)), App(Var("f"), Str("a"))))

	lines, _ := execute(t, EmptyEnvironment(), Exprs(expr))
	checkLines(t, []string{`(1, "a"): (Int * String)`}, lines)
}

func TestNonRecursiveLetCannotReferenceItself(t *testing.T) {
	expr := Let([]ast.Decl{FuncDecl("f", []string{"n"}, App(Var("f"), Var("n")))}, nil)

	_, _, err := Execute(Exprs(expr), EmptyEnvironment())
	var unknown *UnknownNameError
	if !errors.As(err, &unknown) || unknown.Name != "f" {
		t.Fatalf("expected unknown name error, found %v", err)
	}
}

func TestClosureCapture(t *testing.T) {
	lines, _ := execute(t, EmptyEnvironment(), Exprs(
		Let([]ast.Decl{Decl("x", Int(1))}, nil),
		Let([]ast.Decl{Decl("f", Lam1("y", Var("x")))}, nil),
		Let([]ast.Decl{Decl("x", Int(2))}, nil),
		App(Var("f"), Int(0)),
	))
	checkLines(t, []string{
		"x = 1: Int",
		"f = function: V1 -> Int",
		"x = 2: Int",
		"1: Int",
	}, lines)
}

func TestAbortOnError(t *testing.T) {
	program := Exprs(
		Let([]ast.Decl{Decl("x", Int(1))}, nil),
		Let([]ast.Decl{Decl("y", Plus(Int(1), Bool(true)))}, nil),
		Int(3),
	)

	results, env, err := Execute(program, EmptyEnvironment())
	var unify *UnificationError
	if !errors.As(err, &unify) {
		t.Fatalf("expected unification error, found %v", err)
	}
	if err.Error() != "Unable to unify Bool with Int" {
		t.Fatalf("error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected results of completed statements, found %d", len(results))
	}
	if _, ok := env.Types.Lookup("x"); !ok {
		t.Fatalf("expected environment after the last successful statement")
	}
	if _, ok := env.Types.Lookup("y"); ok {
		t.Fatalf("expected failed statement to leave the type-environment unchanged")
	}
	if _, ok := env.Runtime.Lookup("y"); ok {
		t.Fatalf("expected failed statement to leave the runtime environment unchanged")
	}
}

func TestExecutorLogging(t *testing.T) {
	var buf bytes.Buffer
	x := NewExecutor(WithLogger(log.New(&buf, "", 0)))

	if _, _, err := x.Execute(Exprs(Plus(Int(1), Int(2))), EmptyEnvironment()); err != nil {
		t.Fatal(err)
	}

	logged := buf.String()
	if !strings.Contains(logged, "infer 1 + 2 : Int") || !strings.Contains(logged, "eval 3") {
		t.Fatalf("log: %s", logged)
	}
}

func TestResultString(t *testing.T) {
	results, _, err := Execute(Exprs(Let([]ast.Decl{Decl("a", Int(1)), Decl("b", Str("b"))}, nil)), EmptyEnvironment())
	if err != nil {
		t.Fatal(err)
	}
	if s := results[0].String(); s != "a = 1: Int\nb = \"b\": String" {
		t.Fatalf("result: %s", s)
	}
}
