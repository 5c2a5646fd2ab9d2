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

package types

import (
	"github.com/hashicorp/go-set/v3"
)

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*Con)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*Tuple)(nil)
)

func (t *Var) TypeName() string   { return "Var" }
func (t *Con) TypeName() string   { return "Con" }
func (t *Arrow) TypeName() string { return "Arrow" }
func (t *Tuple) TypeName() string { return "Tuple" }

// Type variable: `V1`, or a data-type parameter `a`
type Var struct {
	Name string
}

// Type constructor applied to zero or more arguments: `Int`, `List a`
type Con struct {
	Name string
	Args []Type
}

// Function type: `Int -> Int`
type Arrow struct {
	From Type
	To   Type
}

// Tuple type: `(Int * Bool)`
type Tuple struct {
	Elems []Type
}

// Base types.
var (
	Int    = &Con{Name: "Int"}
	Bool   = &Con{Name: "Bool"}
	String = &Con{Name: "String"}
	Unit   = &Con{Name: "()"}
)

func NewVar(name string) *Var { return &Var{Name: name} }

func NewCon(name string, args ...Type) *Con { return &Con{Name: name, Args: args} }

func NewArrow(from, to Type) *Arrow { return &Arrow{From: from, To: to} }

func NewTuple(elems ...Type) *Tuple { return &Tuple{Elems: elems} }

// Create a right-associated function type: `a -> b -> ret`
func Curried(args []Type, ret Type) Type {
	t := ret
	for i := len(args) - 1; i >= 0; i-- {
		t = &Arrow{From: args[i], To: t}
	}
	return t
}

// Equal reports whether a and b have the same shape with equal components.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Con:
		b, ok := b.(*Con)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.From, b.From) && Equal(a.To, b.To)
	case *Tuple:
		b, ok := b.(*Tuple)
		if !ok || len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// FreeVars returns the names of all type-variables occurring in t.
func FreeVars(t Type) *set.Set[string] {
	vars := set.New[string](4)
	collectVars(vars, t)
	return vars
}

func collectVars(vars *set.Set[string], t Type) {
	switch t := t.(type) {
	case *Var:
		vars.Insert(t.Name)
	case *Con:
		for _, arg := range t.Args {
			collectVars(vars, arg)
		}
	case *Arrow:
		collectVars(vars, t.From)
		collectVars(vars, t.To)
	case *Tuple:
		for _, elem := range t.Elems {
			collectVars(vars, elem)
		}
	}
}

// Occurs reports whether the type-variable name occurs within t.
func Occurs(name string, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Name == name
	case *Con:
		for _, arg := range t.Args {
			if Occurs(name, arg) {
				return true
			}
		}
	case *Arrow:
		return Occurs(name, t.From) || Occurs(name, t.To)
	case *Tuple:
		for _, elem := range t.Elems {
			if Occurs(name, elem) {
				return true
			}
		}
	}
	return false
}
