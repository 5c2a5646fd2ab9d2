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

// TypeExpr is the base for surface type syntax within data declarations.
type TypeExpr interface {
	TypeExprName() string
}

var (
	_ TypeExpr = (*TypeConstructor)(nil)
	_ TypeExpr = (*TypeVariable)(nil)
	_ TypeExpr = (*TypeFunction)(nil)
	_ TypeExpr = (*TypeTuple)(nil)
	_ TypeExpr = (*TypeUnit)(nil)
)

// Reference to a declared data type: `List a`
type TypeConstructor struct {
	Name string
	Args []TypeExpr
}

func (t *TypeConstructor) TypeExprName() string { return "TypeConstructor" }

// Reference to a type parameter: `a`
type TypeVariable struct {
	Name string
}

func (t *TypeVariable) TypeExprName() string { return "TypeVariable" }

// Function type: `a -> b`
type TypeFunction struct {
	Left  TypeExpr
	Right TypeExpr
}

func (t *TypeFunction) TypeExprName() string { return "TypeFunction" }

// Tuple type: `a * b`
type TypeTuple struct {
	Elems []TypeExpr
}

func (t *TypeTuple) TypeExprName() string { return "TypeTuple" }

// Unit type: `()`
type TypeUnit struct{}

func (t *TypeUnit) TypeExprName() string { return "TypeUnit" }

// Data type declaration: `data List a = Nil | Cons a (List a)`
type DataDeclaration struct {
	Name         string
	Params       []string
	Constructors []ConstructorDecl
}

// Constructor within a data type declaration: `Cons a (List a)`
type ConstructorDecl struct {
	Name string
	Args []TypeExpr
}

// Stmt is a top-level item of a program.
type Stmt interface {
	StmtName() string
}

var (
	_ Stmt = (*ExprStmt)(nil)
	_ Stmt = (*DataStmt)(nil)
)

// Top-level expression
type ExprStmt struct {
	Expr Expr
}

func (s *ExprStmt) StmtName() string { return "ExprStmt" }

// Top-level group of mutually-recursive data declarations: `data A = ... and B = ...`
type DataStmt struct {
	Decls []DataDeclaration
}

func (s *DataStmt) StmtName() string { return "DataStmt" }

// Program is an ordered sequence of top-level items.
type Program []Stmt
