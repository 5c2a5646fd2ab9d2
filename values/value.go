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

package values

import (
	"github.com/wdamron/tlca/ast"
)

// Value is the base interface for all runtime values.
type Value interface {
	ValueName() string
}

var (
	_ Value = Int(0)
	_ Value = Bool(false)
	_ Value = String("")
	_ Value = Unit{}
	_ Value = Tuple(nil)
	_ Value = (*Closure)(nil)
	_ Value = (*Data)(nil)
	_ Value = (*Constructor)(nil)
	_ Value = (*Builtin)(nil)
)

func (v Int) ValueName() string          { return "Int" }
func (v Bool) ValueName() string         { return "Bool" }
func (v String) ValueName() string       { return "String" }
func (v Unit) ValueName() string         { return "Unit" }
func (v Tuple) ValueName() string        { return "Tuple" }
func (v *Closure) ValueName() string     { return "Closure" }
func (v *Data) ValueName() string        { return "Data" }
func (v *Constructor) ValueName() string { return "Constructor" }
func (v *Builtin) ValueName() string     { return "Builtin" }

type Int int

type Bool bool

type String string

type Unit struct{}

type Tuple []Value

// Closure pairs a captured environment with a parameter and a body.
type Closure struct {
	Env   Env
	Param string
	Body  ast.Expr
}

// Data is a tagged value built by a data constructor: `Cons 1 Nil`
type Data struct {
	Name string
	Args []Value
}

// Constructor is a (partially applied) data constructor, collecting arguments until Arity are supplied.
type Constructor struct {
	Name  string
	Arity int
	Args  []Value
}

// Apply the constructor to one more argument. Once all arguments are collected, a Data value is returned.
// The receiver is not modified.
func (c *Constructor) Apply(arg Value) Value {
	args := make([]Value, len(c.Args), len(c.Args)+1)
	copy(args, c.Args)
	args = append(args, arg)
	if len(args) == c.Arity {
		return &Data{Name: c.Name, Args: args}
	}
	return &Constructor{Name: c.Name, Arity: c.Arity, Args: args}
}

// Create the runtime value bound to a constructor name. Nullary constructors are data values themselves.
func NewConstructor(name string, arity int) Value {
	if arity == 0 {
		return &Data{Name: name}
	}
	return &Constructor{Name: name, Arity: arity}
}

// Builtin is a (partially applied) native function of fixed arity.
type Builtin struct {
	Name  string
	Arity int
	Args  []Value
	Fn    func(args []Value) (Value, error)
}

// Apply the builtin to one more argument. Once all arguments are collected, Fn is called.
// The receiver is not modified.
func (b *Builtin) Apply(arg Value) (Value, error) {
	args := make([]Value, len(b.Args), len(b.Args)+1)
	copy(args, b.Args)
	args = append(args, arg)
	if len(args) == b.Arity {
		return b.Fn(args)
	}
	return &Builtin{Name: b.Name, Arity: b.Arity, Args: args, Fn: b.Fn}, nil
}

// IsFunction reports whether v can be applied to an argument.
func IsFunction(v Value) bool {
	switch v.(type) {
	case *Closure, *Constructor, *Builtin:
		return true
	}
	return false
}

// Equal reports whether a and b are equal literal, tuple or data values. Functions are never equal.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Int, Bool, String, Unit:
		return a == b
	case Tuple:
		b, ok := b.(Tuple)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case *Data:
		b, ok := b.(*Data)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}
