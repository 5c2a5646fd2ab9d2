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

package construct

import (
	"github.com/wdamron/tlca/ast"
)

// Expressions:

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Curried application: `f x y`
func App(f ast.Expr, args ...ast.Expr) ast.Expr {
	e := f
	for _, arg := range args {
		e = &ast.App{Func: e, Arg: arg}
	}
	return e
}

// Curried abstraction: `\x -> \y -> x`
func Lam(params []string, body ast.Expr) ast.Expr {
	e := body
	for i := len(params) - 1; i >= 0; i-- {
		e = &ast.Lam{Param: params[i], Body: e}
	}
	return e
}

// Abstraction: `\x -> x`
func Lam1(param string, body ast.Expr) *ast.Lam {
	return &ast.Lam{Param: param, Body: body}
}

// Let-group: `let a = 1 and b = 2 in e`
//
// A nil body declares the group at the top level: `let a = 1 and b = 2`
func Let(decls []ast.Decl, body ast.Expr) *ast.Let {
	return &ast.Let{Decls: decls, Body: body}
}

// Recursive let-group: `let rec f = ... and g = ... in e`
//
// A nil body declares the group at the top level: `let rec f = ... and g = ...`
func LetRec(decls []ast.Decl, body ast.Expr) *ast.LetRec {
	return &ast.LetRec{Decls: decls, Body: body}
}

// Declaration within a let-group: `a = 1`
func Decl(name string, value ast.Expr) ast.Decl {
	return ast.Decl{Name: name, Value: value}
}

// Function declaration within a let-group: `add a b = a + b`
func FuncDecl(name string, params []string, body ast.Expr) ast.Decl {
	return ast.Decl{Name: name, Value: Lam(params, body)}
}

// Conditional: `if (c) a else b`
func If(cond, then, els ast.Expr) *ast.If {
	return &ast.If{Cond: cond, Then: then, Else: els}
}

// Integer literal
func Int(n int) *ast.Int {
	return &ast.Int{Value: n}
}

// Boolean literal: `True`, `False`
func Bool(b bool) *ast.Bool {
	return &ast.Bool{Value: b}
}

// String literal: `"abc"`
func Str(s string) *ast.String {
	return &ast.String{Value: s}
}

// Unit literal: `()`
func Unit() *ast.Unit {
	return &ast.Unit{}
}

// Tuple literal: `(a, b)`
func Tuple(elems ...ast.Expr) *ast.Tuple {
	return &ast.Tuple{Elems: elems}
}

// Binary operator: `a + b`
func Op(op ast.Operator, left, right ast.Expr) *ast.Op {
	return &ast.Op{Op: op, Left: left, Right: right}
}

// `a == b`
func Equals(left, right ast.Expr) *ast.Op { return Op(ast.Equals, left, right) }

// `a + b`
func Plus(left, right ast.Expr) *ast.Op { return Op(ast.Plus, left, right) }

// `a - b`
func Minus(left, right ast.Expr) *ast.Op { return Op(ast.Minus, left, right) }

// `a * b`
func Times(left, right ast.Expr) *ast.Op { return Op(ast.Times, left, right) }

// `a / b`
func Divide(left, right ast.Expr) *ast.Op { return Op(ast.Divide, left, right) }

// Pattern-matching expression:
//
//	match e with
//	    (a, b) -> expr1
//	  | _ -> expr2
func Match(value ast.Expr, cases ...ast.MatchCase) *ast.Match {
	return &ast.Match{Value: value, Cases: cases}
}

// Case within Match: `(a, b) -> expr1`
func Case(pattern ast.Pattern, body ast.Expr) ast.MatchCase {
	return ast.MatchCase{Pattern: pattern, Body: body}
}

// Patterns:

func PVar(name string) *ast.VarPattern { return &ast.VarPattern{Name: name} }

func PInt(n int) *ast.IntPattern { return &ast.IntPattern{Value: n} }

func PBool(b bool) *ast.BoolPattern { return &ast.BoolPattern{Value: b} }

func PStr(s string) *ast.StringPattern { return &ast.StringPattern{Value: s} }

// `()`
func PUnit() *ast.UnitPattern { return &ast.UnitPattern{} }

// `_`
func PWildcard() *ast.WildcardPattern { return &ast.WildcardPattern{} }

// `(a, b)`
func PTuple(elems ...ast.Pattern) *ast.TuplePattern {
	return &ast.TuplePattern{Elems: elems}
}

// `Cons x xs`
func PData(constructor string, args ...ast.Pattern) *ast.DataPattern {
	return &ast.DataPattern{Constructor: constructor, Args: args}
}

// Type syntax:

// Reference to a data type: `List a`
func TCon(name string, args ...ast.TypeExpr) *ast.TypeConstructor {
	return &ast.TypeConstructor{Name: name, Args: args}
}

// Reference to a type parameter: `a`
func TVar(name string) *ast.TypeVariable {
	return &ast.TypeVariable{Name: name}
}

// Function type: `a -> b`
func TFunc(left, right ast.TypeExpr) *ast.TypeFunction {
	return &ast.TypeFunction{Left: left, Right: right}
}

// Tuple type: `a * b`
func TTuple(elems ...ast.TypeExpr) *ast.TypeTuple {
	return &ast.TypeTuple{Elems: elems}
}

// Unit type: `()`
func TUnit() *ast.TypeUnit {
	return &ast.TypeUnit{}
}

// Declarations and statements:

// Data type declaration: `data List a = Nil | Cons a (List a)`
func Data(name string, params []string, constructors ...ast.ConstructorDecl) ast.DataDeclaration {
	return ast.DataDeclaration{Name: name, Params: params, Constructors: constructors}
}

// Constructor within a data type declaration: `Cons a (List a)`
func Ctor(name string, args ...ast.TypeExpr) ast.ConstructorDecl {
	return ast.ConstructorDecl{Name: name, Args: args}
}

// Top-level expression
func ExprStmt(e ast.Expr) *ast.ExprStmt {
	return &ast.ExprStmt{Expr: e}
}

// Top-level group of mutually-recursive data declarations
func DataStmt(decls ...ast.DataDeclaration) *ast.DataStmt {
	return &ast.DataStmt{Decls: decls}
}

// Program of top-level expressions and data declarations
func Program(stmts ...ast.Stmt) ast.Program {
	return ast.Program(stmts)
}

// Program of top-level expressions
func Exprs(es ...ast.Expr) ast.Program {
	program := make(ast.Program, len(es))
	for i, e := range es {
		program[i] = ExprStmt(e)
	}
	return program
}
