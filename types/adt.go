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
	"strings"
)

// ADT is a declared algebraic data type: `data List a = Nil | Cons a (List a)`
type ADT struct {
	Name         string
	Params       []string
	Constructors []Constructor
}

// Constructor of an ADT, with argument types over the ADT's parameters.
type Constructor struct {
	Name string
	Args []Type
}

// Get the type of values of the ADT, applied to its own parameters: `List a`
func (adt *ADT) Type() *Con {
	args := make([]Type, len(adt.Params))
	for i, p := range adt.Params {
		args[i] = &Var{Name: p}
	}
	return &Con{Name: adt.Name, Args: args}
}

// Get the scheme of a constructor function, quantified over the ADT's parameters: `a -> List a -> List a`
func (adt *ADT) ConstructorScheme(c Constructor) *Scheme {
	return NewScheme(adt.Params, Curried(c.Args, adt.Type()))
}

// Lookup a constructor by name.
func (adt *ADT) Constructor(name string) (Constructor, bool) {
	for _, c := range adt.Constructors {
		if c.Name == name {
			return c, true
		}
	}
	return Constructor{}, false
}

func (adt *ADT) String() string {
	var sb strings.Builder
	sb.WriteString("data ")
	sb.WriteString(adt.Name)
	for _, p := range adt.Params {
		sb.WriteByte(' ')
		sb.WriteString(p)
	}
	for i, c := range adt.Constructors {
		if i == 0 {
			sb.WriteString(" = ")
		} else {
			sb.WriteString(" | ")
		}
		sb.WriteString(c.Name)
		for _, arg := range c.Args {
			sb.WriteByte(' ')
			typeString(&sb, true, arg)
		}
	}
	return sb.String()
}
