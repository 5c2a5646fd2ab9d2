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

package tlca

import (
	"github.com/wdamron/tlca/ast"
	"github.com/wdamron/tlca/values"
)

// Match v against pattern p, returning env extended with the pattern's bindings if p matches.
func matchPattern(p ast.Pattern, v values.Value, env values.Env) (values.Env, bool) {
	switch p := p.(type) {
	case *ast.WildcardPattern:
		return env, true

	case *ast.VarPattern:
		return env.Extend(p.Name, v), true

	case *ast.BoolPattern:
		return env, v == values.Bool(p.Value)

	case *ast.IntPattern:
		return env, v == values.Int(p.Value)

	case *ast.StringPattern:
		return env, v == values.String(p.Value)

	case *ast.UnitPattern:
		_, ok := v.(values.Unit)
		return env, ok

	case *ast.TuplePattern:
		tuple, ok := v.(values.Tuple)
		if !ok || len(tuple) != len(p.Elems) {
			return env, false
		}
		return matchPatterns(p.Elems, tuple, env)

	case *ast.DataPattern:
		data, ok := v.(*values.Data)
		if !ok || data.Name != p.Constructor || len(data.Args) != len(p.Args) {
			return env, false
		}
		return matchPatterns(p.Args, data.Args, env)
	}
	return env, false
}

// Match each value against the corresponding pattern, left to right, stopping at the first mismatch.
func matchPatterns(ps []ast.Pattern, vs []values.Value, env values.Env) (values.Env, bool) {
	for i, p := range ps {
		var ok bool
		if env, ok = matchPattern(p, vs[i], env); !ok {
			return env, false
		}
	}
	return env, true
}
