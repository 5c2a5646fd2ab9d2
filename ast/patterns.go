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

// Pattern is the base for all patterns within match cases.
type Pattern interface {
	PatternName() string
}

var (
	_ Pattern = (*BoolPattern)(nil)
	_ Pattern = (*IntPattern)(nil)
	_ Pattern = (*StringPattern)(nil)
	_ Pattern = (*VarPattern)(nil)
	_ Pattern = (*TuplePattern)(nil)
	_ Pattern = (*UnitPattern)(nil)
	_ Pattern = (*WildcardPattern)(nil)
	_ Pattern = (*DataPattern)(nil)
)

// Boolean literal pattern: `True`
type BoolPattern struct {
	Value bool
}

func (p *BoolPattern) PatternName() string { return "BoolPattern" }

// Integer literal pattern: `0`
type IntPattern struct {
	Value int
}

func (p *IntPattern) PatternName() string { return "IntPattern" }

// String literal pattern: `"a"`
type StringPattern struct {
	Value string
}

func (p *StringPattern) PatternName() string { return "StringPattern" }

// Variable pattern, binding the matched value: `x`
type VarPattern struct {
	Name string
}

func (p *VarPattern) PatternName() string { return "VarPattern" }

// Tuple pattern: `(a, _, 1)`
type TuplePattern struct {
	Elems []Pattern
}

func (p *TuplePattern) PatternName() string { return "TuplePattern" }

// Unit pattern: `()`
type UnitPattern struct{}

func (p *UnitPattern) PatternName() string { return "UnitPattern" }

// Wildcard pattern: `_`
type WildcardPattern struct{}

func (p *WildcardPattern) PatternName() string { return "WildcardPattern" }

// Constructor pattern over a declared data type: `Cons x xs`
type DataPattern struct {
	Constructor string
	Args        []Pattern
}

func (p *DataPattern) PatternName() string { return "DataPattern" }
