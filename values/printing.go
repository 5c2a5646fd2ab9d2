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
	"strconv"
	"strings"

	"github.com/wdamron/tlca/ast"
	"github.com/wdamron/tlca/types"
)

// ValueString returns a string representation of a value of type t. If t is nil, the representation
// is derived from the value alone.
//
// Unit values print as `()`, strings as quoted literals, tuples as `(a, b)`, data values as `Cons 1 Nil`,
// and every function as `function`.
func ValueString(v Value, t types.Type) string {
	var sb strings.Builder
	valueString(&sb, false, v, t)
	return sb.String()
}

func valueString(sb *strings.Builder, simple bool, v Value, t types.Type) {
	if _, isArrow := t.(*types.Arrow); isArrow || IsFunction(v) {
		sb.WriteString("function")
		return
	}
	switch v := v.(type) {
	case Unit:
		sb.WriteString("()")

	case Int:
		sb.WriteString(strconv.Itoa(int(v)))

	case Bool:
		sb.WriteString(strconv.FormatBool(bool(v)))

	case String:
		sb.WriteString(ast.Quote(string(v)))

	case Tuple:
		var elemTypes []types.Type
		if tt, ok := t.(*types.Tuple); ok && len(tt.Elems) == len(v) {
			elemTypes = tt.Elems
		}
		sb.WriteByte('(')
		for i, elem := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			var et types.Type
			if elemTypes != nil {
				et = elemTypes[i]
			}
			valueString(sb, false, elem, et)
		}
		sb.WriteByte(')')

	case *Data:
		compound := simple && len(v.Args) > 0
		if compound {
			sb.WriteByte('(')
		}
		sb.WriteString(v.Name)
		for _, arg := range v.Args {
			sb.WriteByte(' ')
			valueString(sb, true, arg, nil)
		}
		if compound {
			sb.WriteByte(')')
		}

	case nil:
		sb.WriteString("<uninitialized>")
	}
}
