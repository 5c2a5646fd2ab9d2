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

	"github.com/wdamron/tlca/types"
	"github.com/wdamron/tlca/values"
)

// Lines returns the presentation of a result.
//
// Each declared data type is presented as `data List a = Nil | Cons a (List a)`. Each declaration of a
// let-group is presented as `name = value: Type`, in declaration order. Any other expression is
// presented as `value: Type`.
func (r Result) Lines() []string {
	if r.Data != nil {
		lines := make([]string, len(r.Data))
		for i, adt := range r.Data {
			lines[i] = adt.String()
		}
		return lines
	}
	if r.Bindings != nil {
		lines := make([]string, len(r.Bindings))
		for i, b := range r.Bindings {
			lines[i] = b.Name + " = " + typedValueString(b.Value, b.Type)
		}
		return lines
	}
	return []string{typedValueString(r.Value, r.Type)}
}

// String returns the lines of the result's presentation, separated by newlines.
func (r Result) String() string { return strings.Join(r.Lines(), "\n") }

func typedValueString(v values.Value, t types.Type) string {
	return values.ValueString(v, t) + ": " + types.TypeString(t)
}
