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
	"strings"
	"unicode/utf8"

	"github.com/wdamron/tlca/types"
	"github.com/wdamron/tlca/values"
)

type builtin struct {
	name string
	t    types.Type
	fn   func(args []values.Value) (values.Value, error)
}

var builtins = []builtin{
	{
		name: "string_length",
		t:    types.Curried([]types.Type{types.String}, types.Int),
		fn: func(args []values.Value) (values.Value, error) {
			return values.Int(utf8.RuneCountInString(str(args[0]))), nil
		},
	},
	{
		name: "string_concat",
		t:    types.Curried([]types.Type{types.String, types.String}, types.String),
		fn: func(args []values.Value) (values.Value, error) {
			return values.String(str(args[0]) + str(args[1])), nil
		},
	},
	{
		name: "string_substring",
		t:    types.Curried([]types.Type{types.String, types.Int, types.Int}, types.String),
		fn: func(args []values.Value) (values.Value, error) {
			start, end := integer(args[1]), integer(args[2])
			return values.String(substring(str(args[0]), start, end)), nil
		},
	},
	{
		name: "string_equal",
		t:    types.Curried([]types.Type{types.String, types.String}, types.Bool),
		fn: func(args []values.Value) (values.Value, error) {
			return values.Bool(str(args[0]) == str(args[1])), nil
		},
	},
	{
		name: "string_compare",
		t:    types.Curried([]types.Type{types.String, types.String}, types.Int),
		fn: func(args []values.Value) (values.Value, error) {
			return values.Int(strings.Compare(str(args[0]), str(args[1]))), nil
		},
	},
}

// Create an environment with the base data types `Int`, `String` and `Bool` registered, and bindings for
// the string builtins:
//
//	string_length: String -> Int
//	string_concat: String -> String -> String
//	string_substring: String -> Int -> Int -> String
//	string_equal: String -> String -> Bool
//	string_compare: String -> String -> Int
func DefaultEnvironment() Environment {
	env := EmptyEnvironment()
	for _, base := range []*types.Con{types.Int, types.String, types.Bool} {
		env.Types = env.Types.AddData(&types.ADT{Name: base.Name})
	}
	for _, b := range builtins {
		arity := 0
		for t := b.t; ; arity++ {
			arrow, ok := t.(*types.Arrow)
			if !ok {
				break
			}
			t = arrow.To
		}
		env.Types = env.Types.Extend(b.name, types.Monotype(b.t))
		env.Runtime = env.Runtime.Extend(b.name, &values.Builtin{Name: b.name, Arity: arity, Fn: b.fn})
	}
	return env
}

// Extract the runes of s within [start, end). Inverted bounds produce an empty string; out-of-range
// bounds are clamped.
func substring(s string, start, end int) string {
	if start > end {
		return ""
	}
	runes := []rune(s)
	start, end = clamp(start, 0, len(runes)), clamp(end, 0, len(runes))
	return string(runes[start:end])
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func str(v values.Value) string {
	s, _ := v.(values.String)
	return string(s)
}

func integer(v values.Value) int {
	n, _ := v.(values.Int)
	return int(n)
}
