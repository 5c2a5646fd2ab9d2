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

func listData() *ast.DataStmt {
	return DataStmt(Data("List", []string{"a"},
		Ctor("Nil"),
		Ctor("Cons", TVar("a"), TCon("List", TVar("a"))),
	))
}

func list(elems ...ast.Expr) ast.Expr {
	var e ast.Expr = Var("Nil")
	for i := len(elems) - 1; i >= 0; i-- {
		e = App(Var("Cons"), elems[i], e)
	}
	return e
}

func TestDataDeclaration(t *testing.T) {
	lines, env := execute(t, EmptyEnvironment(), Program(
		listData(),
		ExprStmt(list(Int(1), Int(2))),
		ExprStmt(Var("Nil")),
		ExprStmt(Var("Cons")),
	))
	checkLines(t, []string{
		"data List a = Nil | Cons a (List a)",
		"Cons 1 (Cons 2 Nil): List Int",
		"Nil: List V8",
		"function: V9 -> List V9 -> List V9",
	}, lines)

	if _, ok := env.Types.Data("List"); !ok {
		t.Fatalf("expected List to be registered")
	}
	if _, ok := env.Types.ConstructorData("Cons"); !ok {
		t.Fatalf("expected Cons to be indexed")
	}
	if _, ok := env.Runtime.Lookup("Nil"); !ok {
		t.Fatalf("expected Nil to be bound in the runtime environment")
	}
}

func TestMutuallyRecursiveData(t *testing.T) {
	lines, _ := execute(t, EmptyEnvironment(), Program(
		DataStmt(
			Data("Tree", []string{"a"},
				Ctor("Leaf", TVar("a")),
				Ctor("Node", TCon("Forest", TVar("a")))),
			Data("Forest", []string{"a"},
				Ctor("Empty"),
				Ctor("Trees", TCon("Tree", TVar("a")), TCon("Forest", TVar("a")))),
		),
		ExprStmt(App(Var("Node"), App(Var("Trees"), App(Var("Leaf"), Bool(true)), Var("Empty")))),
	))
	checkLines(t, []string{
		"data Tree a = Leaf a | Node (Forest a)",
		"data Forest a = Empty | Trees (Tree a) (Forest a)",
		"Node (Trees (Leaf true) Empty): Tree Bool",
	}, lines)
}

func TestDataArgumentSyntax(t *testing.T) {
	lines, _ := execute(t, EmptyEnvironment(), Program(
		DataStmt(Data("Box", []string{"a"},
			Ctor("Box", TFunc(TVar("a"), TVar("a")), TTuple(TVar("a"), TUnit()), TUnit()),
		)),
		ExprStmt(Var("Box")),
	))
	checkLines(t, []string{
		"data Box a = Box (a -> a) (a * ()) ()",
		"function: (V1 -> V1) -> (V1 * ()) -> () -> Box V1",
	}, lines)
}

func TestMatchData(t *testing.T) {
	sum := LetRec([]ast.Decl{
		FuncDecl("sum", []string{"xs"}, Match(Var("xs"),
			Case(PData("Nil"), Int(0)),
			Case(PData("Cons", PVar("x"), PVar("rest")), Plus(Var("x"), App(Var("sum"), Var("rest")))),
		)),
	}, nil)

	exprString := ast.ExprString(sum)
	if exprString != `let rec sum = \xs -> match xs with Nil -> 0 | Cons x rest -> (x + (sum rest))` {
		t.Fatalf("expr: %s", exprString)
	}

	lines, _ := execute(t, EmptyEnvironment(), Program(
		listData(),
		ExprStmt(sum),
		ExprStmt(App(Var("sum"), list(Int(1), Int(2), Int(3)))),
	))
	checkLines(t, []string{
		"data List a = Nil | Cons a (List a)",
		"sum = function: List Int -> Int",
		"6: Int",
	}, lines)
}

func TestNestedDataPattern(t *testing.T) {
	second := Lam1("xs", Match(Var("xs"),
		Case(PData("Cons", PWildcard(), PData("Cons", PVar("y"), PWildcard())), Var("y")),
		Case(PWildcard(), Int(0)),
	))

	lines, _ := execute(t, EmptyEnvironment(), Program(
		listData(),
		ExprStmt(App(second, list(Int(1), Int(2), Int(3)))),
		ExprStmt(App(second, list(Int(1)))),
	))
	checkLines(t, []string{
		"data List a = Nil | Cons a (List a)",
		"2: Int",
		"0: Int",
	}, lines)
}

func TestDuplicateDataDeclaration(t *testing.T) {
	_, env, err := Execute(Program(listData(), listData()), EmptyEnvironment())
	var dup *DuplicateDataDeclarationError
	if !errors.As(err, &dup) || dup.Name != "List" {
		t.Fatalf("expected duplicate data declaration error, found %v", err)
	}
	if _, ok := env.Types.Data("List"); !ok {
		t.Fatalf("expected the first declaration to remain registered")
	}

	_, _, err = DeclareData(EmptyEnvironment(), []ast.DataDeclaration{
		Data("A", nil, Ctor("A1")),
		Data("A", nil, Ctor("A2")),
	})
	if !errors.As(err, &dup) || dup.Name != "A" {
		t.Fatalf("expected duplicate data declaration error within a group, found %v", err)
	}

	_, _, err = DeclareData(DefaultEnvironment(), []ast.DataDeclaration{Data("Int", nil)})
	if !errors.As(err, &dup) || dup.Name != "Int" {
		t.Fatalf("expected duplicate declaration of a base type to fail, found %v", err)
	}
}

func TestUnknownData(t *testing.T) {
	decls := []ast.DataDeclaration{Data("A", nil, Ctor("A", TCon("B")))}

	_, env, err := DeclareData(EmptyEnvironment(), decls)
	var unknown *UnknownDataError
	if !errors.As(err, &unknown) || unknown.Name != "B" {
		t.Fatalf("expected unknown data error, found %v", err)
	}
	if _, ok := env.Types.Data("A"); ok {
		t.Fatalf("expected a failed declaration to leave the environment unchanged")
	}

	// Base types must be declared before they can be referenced:
	named := []ast.DataDeclaration{Data("Named", nil, Ctor("Named", TCon("String"), TCon("Int"), TCon("Bool")))}
	if _, _, err = DeclareData(EmptyEnvironment(), named); !errors.As(err, &unknown) || unknown.Name != "String" {
		t.Fatalf("expected unknown data error, found %v", err)
	}
	if _, _, err = DeclareData(DefaultEnvironment(), named); err != nil {
		t.Fatal(err)
	}
}

func TestIncorrectTypeArguments(t *testing.T) {
	_, _, err := DeclareData(EmptyEnvironment(), []ast.DataDeclaration{
		Data("A", []string{"b"}, Ctor("A", TCon("A"))),
	})
	var incorrect *IncorrectTypeArgumentsError
	if !errors.As(err, &incorrect) {
		t.Fatalf("expected incorrect type arguments error, found %v", err)
	}
	if incorrect.Name != "A" || incorrect.Expected != 1 || incorrect.Actual != 0 {
		t.Fatalf("error: %v", err)
	}
}

func TestConstructorArity(t *testing.T) {
	args := []ast.TypeExpr{TVar("a"), TVar("a"), TVar("a"), TVar("a"), TVar("a"), TVar("a")}
	decls := []ast.DataDeclaration{Data("Six", []string{"a"}, Ctor("Six", args...))}

	_, _, err := NewExecutor(WithMaxConstructorArity(5)).DeclareData(EmptyEnvironment(), decls)
	var tooMany *TooManyConstructorArgumentsError
	if !errors.As(err, &tooMany) || tooMany.Name != "Six" || tooMany.Arity != 6 {
		t.Fatalf("expected too many constructor arguments error, found %v", err)
	}

	_, env, err := NewExecutor().DeclareData(EmptyEnvironment(), decls)
	if err != nil {
		t.Fatal(err)
	}
	lines, _ := execute(t, env, Exprs(App(Var("Six"), Int(1), Int(2), Int(3), Int(4), Int(5), Int(6))))
	checkLines(t, []string{"Six 1 2 3 4 5 6: Six Int"}, lines)
}

func TestPartialConstructorApplication(t *testing.T) {
	results, _, err := Execute(Program(
		DataStmt(Data("Pair", []string{"a", "b"}, Ctor("Pair", TVar("a"), TVar("b")))),
		ExprStmt(App(Var("Pair"), Int(1))),
	), EmptyEnvironment())
	if err != nil {
		t.Fatal(err)
	}
	c, ok := results[1].Value.(*values.Constructor)
	if !ok || c.Arity != 2 || len(c.Args) != 1 {
		t.Fatalf("expected partially applied constructor, found %s", values.ValueString(results[1].Value, nil))
	}
	checkLines(t, []string{"function: V2 -> Pair Int V2"}, results[1].Lines())
}

func TestConstructorPatternErrors(t *testing.T) {
	_, _, err := Execute(Exprs(Match(Int(1), Case(PData("Foo"), Int(1)))), EmptyEnvironment())
	var unknown *UnknownConstructorError
	if !errors.As(err, &unknown) || unknown.Name != "Foo" {
		t.Fatalf("expected unknown constructor error, found %v", err)
	}

	_, _, err = Execute(Program(
		listData(),
		ExprStmt(Match(Var("Nil"), Case(PData("Cons", PVar("x")), Int(1)))),
	), EmptyEnvironment())
	var incorrect *IncorrectPatternArgumentsError
	if !errors.As(err, &incorrect) || incorrect.Name != "Cons" || incorrect.Expected != 2 || incorrect.Actual != 1 {
		t.Fatalf("expected incorrect pattern arguments error, found %v", err)
	}
}
