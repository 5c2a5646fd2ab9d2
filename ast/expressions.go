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

package ast

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*App)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetRec)(nil)
	_ Expr = (*Lam)(nil)
	_ Expr = (*Bool)(nil)
	_ Expr = (*Int)(nil)
	_ Expr = (*String)(nil)
	_ Expr = (*Unit)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*Match)(nil)
	_ Expr = (*Op)(nil)
	_ Expr = (*Var)(nil)
)

// Application: `f x`
type App struct {
	Func Expr
	Arg  Expr
}

// "App"
func (e *App) ExprName() string { return "App" }

// Conditional: `if (c) a else b`
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// "If"
func (e *If) ExprName() string { return "If" }

// Grouped let-bindings: `let a = 1 and b = 2 in e`
//
// Body may be nil, in which case the group evaluates to the tuple of its declared values.
type Let struct {
	Decls []Decl
	Body  Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Grouped, mutually-recursive let-bindings: `let rec f n = g n and g n = f n in e`
//
// Body may be nil, in which case the group evaluates to the tuple of its declared values.
type LetRec struct {
	Decls []Decl
	Body  Expr
}

// "LetRec"
func (e *LetRec) ExprName() string { return "LetRec" }

// Paired identifier and value
type Decl struct {
	Name  string
	Value Expr
}

// Abstraction: `\x -> e`
type Lam struct {
	Param string
	Body  Expr
}

// "Lam"
func (e *Lam) ExprName() string { return "Lam" }

// Boolean literal: `True`
type Bool struct {
	Value bool
}

// "Bool"
func (e *Bool) ExprName() string { return "Bool" }

// Integer literal: `123`
type Int struct {
	Value int
}

// "Int"
func (e *Int) ExprName() string { return "Int" }

// String literal: `"hello"`
type String struct {
	Value string
}

// "String"
func (e *String) ExprName() string { return "String" }

// Unit literal: `()`
type Unit struct{}

// "Unit"
func (e *Unit) ExprName() string { return "Unit" }

// Tuple literal: `(1, True)`
type Tuple struct {
	Elems []Expr
}

// "Tuple"
func (e *Tuple) ExprName() string { return "Tuple" }

// Pattern-matching case expression:
//
//	match e with
//	    (a, 1) -> expr1
//	  | (_, b) -> expr2
type Match struct {
	Value Expr
	Cases []MatchCase
}

// "Match"
func (e *Match) ExprName() string { return "Match" }

// Case expression within Match: `(a, 1) -> expr1`
type MatchCase struct {
	Pattern Pattern
	Body    Expr
}

// Binary operator: `a + b`
type Op struct {
	Op    Operator
	Left  Expr
	Right Expr
}

// "Op"
func (e *Op) ExprName() string { return "Op" }

// Operator of a binary expression
type Operator int

const (
	Equals Operator = iota
	Plus
	Minus
	Times
	Divide
)

func (op Operator) String() string {
	switch op {
	case Equals:
		return "=="
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Divide:
		return "/"
	}
	return "?"
}

// Variable
type Var struct {
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }
