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

import (
	"strconv"
	"strings"
)

// ExprString returns a string representation of an expression, in surface syntax.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// PatternString returns a string representation of a pattern, in surface syntax.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, false, p)
	return sb.String()
}

// TypeExprString returns a string representation of surface type syntax.
func TypeExprString(t TypeExpr) string {
	var sb strings.Builder
	typeExprString(&sb, false, t)
	return sb.String()
}

// Quote a string literal, escaping backslashes and double-quotes.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// When simple is true, compound expressions are parenthesized.
func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *Var:
		sb.WriteString(et.Name)

	case *Bool:
		if et.Value {
			sb.WriteString("True")
		} else {
			sb.WriteString("False")
		}

	case *Int:
		sb.WriteString(strconv.Itoa(et.Value))

	case *String:
		sb.WriteString(Quote(et.Value))

	case *Unit:
		sb.WriteString("()")

	case *Tuple:
		sb.WriteByte('(')
		for i, elem := range et.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, elem)
		}
		sb.WriteByte(')')

	case *App:
		if simple {
			sb.WriteByte('(')
		}
		_, nested := et.Func.(*App)
		exprString(sb, !nested, et.Func)
		sb.WriteByte(' ')
		exprString(sb, true, et.Arg)
		if simple {
			sb.WriteByte(')')
		}

	case *Lam:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteByte('\\')
		sb.WriteString(et.Param)
		sb.WriteString(" -> ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *If:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("if (")
		exprString(sb, false, et.Cond)
		sb.WriteString(") ")
		exprString(sb, true, et.Then)
		sb.WriteString(" else ")
		exprString(sb, true, et.Else)
		if simple {
			sb.WriteByte(')')
		}

	case *Let:
		letString(sb, simple, "let ", et.Decls, et.Body)

	case *LetRec:
		letString(sb, simple, "let rec ", et.Decls, et.Body)

	case *Op:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Left)
		sb.WriteByte(' ')
		sb.WriteString(et.Op.String())
		sb.WriteByte(' ')
		exprString(sb, true, et.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *Match:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("match ")
		exprString(sb, false, et.Value)
		sb.WriteString(" with ")
		for i, c := range et.Cases {
			if i > 0 {
				sb.WriteString(" | ")
			}
			patternString(sb, false, c.Pattern)
			sb.WriteString(" -> ")
			exprString(sb, true, c.Body)
		}
		if simple {
			sb.WriteByte(')')
		}

	case nil:
		sb.WriteString("<nil>")
	}
}

func letString(sb *strings.Builder, simple bool, keyword string, decls []Decl, body Expr) {
	if simple {
		sb.WriteByte('(')
	}
	sb.WriteString(keyword)
	for i, d := range decls {
		if i > 0 {
			sb.WriteString(" and ")
		}
		sb.WriteString(d.Name)
		sb.WriteString(" = ")
		exprString(sb, false, d.Value)
	}
	if body != nil {
		sb.WriteString(" in ")
		exprString(sb, false, body)
	}
	if simple {
		sb.WriteByte(')')
	}
}

func patternString(sb *strings.Builder, simple bool, p Pattern) {
	switch pt := p.(type) {
	case *BoolPattern:
		if pt.Value {
			sb.WriteString("True")
		} else {
			sb.WriteString("False")
		}

	case *IntPattern:
		sb.WriteString(strconv.Itoa(pt.Value))

	case *StringPattern:
		sb.WriteString(Quote(pt.Value))

	case *VarPattern:
		sb.WriteString(pt.Name)

	case *TuplePattern:
		sb.WriteByte('(')
		for i, elem := range pt.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			patternString(sb, false, elem)
		}
		sb.WriteByte(')')

	case *UnitPattern:
		sb.WriteString("()")

	case *WildcardPattern:
		sb.WriteByte('_')

	case *DataPattern:
		compound := simple && len(pt.Args) > 0
		if compound {
			sb.WriteByte('(')
		}
		sb.WriteString(pt.Constructor)
		for _, arg := range pt.Args {
			sb.WriteByte(' ')
			patternString(sb, true, arg)
		}
		if compound {
			sb.WriteByte(')')
		}
	}
}

func typeExprString(sb *strings.Builder, simple bool, t TypeExpr) {
	switch tt := t.(type) {
	case *TypeConstructor:
		compound := simple && len(tt.Args) > 0
		if compound {
			sb.WriteByte('(')
		}
		sb.WriteString(tt.Name)
		for _, arg := range tt.Args {
			sb.WriteByte(' ')
			typeExprString(sb, true, arg)
		}
		if compound {
			sb.WriteByte(')')
		}

	case *TypeVariable:
		sb.WriteString(tt.Name)

	case *TypeFunction:
		if simple {
			sb.WriteByte('(')
		}
		typeExprString(sb, true, tt.Left)
		sb.WriteString(" -> ")
		typeExprString(sb, false, tt.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *TypeTuple:
		sb.WriteByte('(')
		for i, elem := range tt.Elems {
			if i > 0 {
				sb.WriteString(" * ")
			}
			typeExprString(sb, false, elem)
		}
		sb.WriteByte(')')

	case *TypeUnit:
		sb.WriteString("()")
	}
}
